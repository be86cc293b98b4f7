package handlers

import (
	"strconv"

	"movelist-backend/domain"
	"movelist-backend/internal/api/presenters"
	"movelist-backend/pkg/settings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SettingsHandler interface {
		GetSettings(c *fiber.Ctx) error
		UpdateBudget(c *fiber.Ctx) error
		UpdateAlertEmail(c *fiber.Ctx) error
		AddCategory(c *fiber.Ctx) error
		RenameCategory(c *fiber.Ctx) error
		RemoveCategory(c *fiber.Ctx) error
	}

	settingsHandler struct {
		settingsService settings.SettingsService
		validator       *validator.Validate
	}
)

func NewSettingsHandler(settingsService settings.SettingsService, validator *validator.Validate) SettingsHandler {
	return &settingsHandler{
		settingsService: settingsService,
		validator:       validator,
	}
}

func (h *settingsHandler) GetSettings(c *fiber.Ctx) error {
	res, err := h.settingsService.GetSettings(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSettings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSettings)
}

func (h *settingsHandler) UpdateBudget(c *fiber.Ctx) error {
	req := new(domain.UpdateBudgetRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBudget, err)
	}

	res, err := h.settingsService.UpdateBudget(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBudget, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateBudget)
}

func (h *settingsHandler) UpdateAlertEmail(c *fiber.Ctx) error {
	req := new(domain.UpdateAlertEmailRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAlertEmail, err)
	}

	res, err := h.settingsService.UpdateAlertEmail(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAlertEmail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAlertEmail)
}

func (h *settingsHandler) AddCategory(c *fiber.Ctx) error {
	req := new(domain.AddCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategory, err)
	}

	res, err := h.settingsService.AddCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCategory)
}

func (h *settingsHandler) RenameCategory(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameCategory, domain.ErrCategoryIndexOutOfRange)
	}

	req := new(domain.RenameCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameCategory, err)
	}

	res, err := h.settingsService.RenameCategory(c.Context(), index, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRenameCategory)
}

func (h *settingsHandler) RemoveCategory(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCategory, domain.ErrCategoryIndexOutOfRange)
	}

	res, err := h.settingsService.RemoveCategory(c.Context(), index)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveCategory)
}
