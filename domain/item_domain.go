package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddItem       = "item added successfully"
	MessageSuccessUpdateItem    = "item updated successfully"
	MessageSuccessDeleteItem    = "item deleted successfully"
	MessageSuccessGetItems      = "items retrieved successfully"
	MessageSuccessPurchaseItem  = "item marked as bought"
	MessageSuccessRevertItem    = "item reverted to pending"
	MessageSuccessUploadReceipt = "receipt uploaded successfully"

	MessageFailedAddItem       = "failed to add item"
	MessageFailedUpdateItem    = "failed to update item"
	MessageFailedDeleteItem    = "failed to delete item"
	MessageFailedGetItems      = "failed to retrieve items"
	MessageFailedPurchaseItem  = "failed to mark item as bought"
	MessageFailedRevertItem    = "failed to revert item"
	MessageFailedUploadReceipt = "failed to upload receipt"

	ErrItemNotFound    = errors.New("item not found")
	ErrEmptyItemName   = errors.New("item name must not be empty")
	ErrUnknownCategory = errors.New("category is not in the category list")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrItemNotBought   = errors.New("item is not marked as bought")
	ErrMissingPayer    = errors.New("a payer must be selected")
)

type (
	AddItemRequest struct {
		Name           string   `json:"name" validate:"required"`
		Category       string   `json:"category" validate:"required"`
		EstimatedPrice *float64 `json:"estimated_price" validate:"omitempty,gte=0"`
	}

	UpdateItemRequest struct {
		Name           string   `json:"name" validate:"omitempty"`
		Category       string   `json:"category" validate:"omitempty"`
		EstimatedPrice *float64 `json:"estimated_price" validate:"omitempty,gte=0"`
		Status         string   `json:"status" validate:"omitempty,oneof=pending bought"`
		ActualPrice    *float64 `json:"actual_price" validate:"omitempty,gte=0"`
		BoughtBy       string   `json:"bought_by" validate:"omitempty,uuid"`
		ReceiptURL     string   `json:"receipt_url" validate:"omitempty,url"`
	}

	PurchaseItemRequest struct {
		BoughtBy    string   `json:"bought_by" validate:"required,uuid"`
		ActualPrice *float64 `json:"actual_price" validate:"required,gte=0"`
		ReceiptURL  string   `json:"receipt_url" validate:"omitempty,url"`
	}

	UploadReceiptRequest struct {
		Receipt *multipart.FileHeader `json:"receipt" form:"receipt" validate:"required"`
	}

	UploadReceiptResponse struct {
		URL       string `json:"url"`
		ObjectKey string `json:"object_key"`
	}

	// ItemQuery drives the search/filter/sort engine. Filters are applied
	// before sorting and are independent of each other.
	ItemQuery struct {
		Search   string
		Category string
		Sort     string
		Status   string
	}

	ItemResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Category       string    `json:"category"`
		EstimatedPrice *float64  `json:"estimated_price,omitempty"`
		ActualPrice    *float64  `json:"actual_price,omitempty"`
		Status         string    `json:"status"`
		BoughtBy       string    `json:"bought_by,omitempty"`
		BoughtByName   string    `json:"bought_by_name,omitempty"`
		ReceiptURL     string    `json:"receipt_url,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}
)
