package domain

import "errors"

var (
	MessageSuccessAddPerson    = "person added successfully"
	MessageSuccessUpdatePerson = "person updated successfully"
	MessageSuccessDeletePerson = "person deleted successfully"
	MessageSuccessGetPeople    = "people retrieved successfully"

	MessageFailedAddPerson    = "failed to add person"
	MessageFailedUpdatePerson = "failed to update person"
	MessageFailedDeletePerson = "failed to delete person"
	MessageFailedGetPeople    = "failed to retrieve people"

	ErrPersonNotFound  = errors.New("person not found")
	ErrEmptyPersonName = errors.New("person name must not be empty")
	ErrNotAPayer       = errors.New("person is not flagged as a payer")
)

type (
	AddPersonRequest struct {
		Name    string `json:"name" validate:"required"`
		IsPayer bool   `json:"is_payer"`
	}

	UpdatePersonRequest struct {
		Name    string `json:"name" validate:"omitempty"`
		IsPayer *bool  `json:"is_payer" validate:"omitempty"`
	}

	PersonResponse struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		IsPayer bool   `json:"is_payer"`
	}
)
