package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest = "failed to process request body"

	ErrParseUUID = errors.New("failed to parse UUID")
)
