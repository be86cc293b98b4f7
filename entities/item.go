package entities

import (
	"github.com/google/uuid"
)

const (
	ItemStatusPending = "pending"
	ItemStatusBought  = "bought"
)

type Item struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	EstimatedPrice *float64  `json:"estimated_price,omitempty"`
	ActualPrice    *float64  `json:"actual_price,omitempty"`
	Status         string    `json:"status"` // "pending", "bought"
	// BoughtByID is an opaque reference; no FK constraint, so a deleted
	// person leaves bought items pointing at an unknown payer.
	BoughtByID *uuid.UUID `gorm:"type:uuid" json:"bought_by,omitempty"`
	ReceiptURL string     `json:"receipt_url,omitempty"`

	Timestamp
}
