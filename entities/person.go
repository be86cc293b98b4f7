package entities

import (
	"github.com/google/uuid"
)

type Person struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name    string    `json:"name"`
	IsPayer bool      `json:"is_payer"`

	Timestamp
}
