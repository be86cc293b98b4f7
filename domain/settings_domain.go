package domain

import "errors"

var (
	MessageSuccessGetSettings      = "settings retrieved successfully"
	MessageSuccessUpdateBudget     = "budget updated successfully"
	MessageSuccessUpdateAlertEmail = "alert email updated successfully"
	MessageSuccessAddCategory      = "category added successfully"
	MessageSuccessRenameCategory   = "category renamed successfully"
	MessageSuccessRemoveCategory   = "category removed successfully"

	MessageFailedGetSettings      = "failed to retrieve settings"
	MessageFailedUpdateBudget     = "failed to update budget"
	MessageFailedUpdateAlertEmail = "failed to update alert email"
	MessageFailedAddCategory      = "failed to add category"
	MessageFailedRenameCategory   = "failed to rename category"
	MessageFailedRemoveCategory   = "failed to remove category"

	ErrEmptyCategory         = errors.New("category name must not be empty")
	ErrDuplicateCategory     = errors.New("category already exists")
	ErrCategoryIndexOutOfRange = errors.New("category index out of range")
)

type (
	UpdateBudgetRequest struct {
		Budget *float64 `json:"budget" validate:"omitempty,gte=0"`
	}

	UpdateAlertEmailRequest struct {
		Email string `json:"email" validate:"omitempty,email"`
	}

	AddCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	RenameCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	SettingsResponse struct {
		ID         string   `json:"id"`
		Budget     *float64 `json:"budget,omitempty"`
		AlertEmail string   `json:"alert_email,omitempty"`
		Categories []string `json:"categories"`
	}
)
