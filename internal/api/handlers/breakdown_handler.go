package handlers

import (
	"movelist-backend/domain"
	"movelist-backend/internal/api/presenters"
	"movelist-backend/pkg/breakdown"

	"github.com/gofiber/fiber/v2"
)

type (
	BreakdownHandler interface {
		GetSpendBreakdown(c *fiber.Ctx) error
		GetBudgetStatus(c *fiber.Ctx) error
		GetSummary(c *fiber.Ctx) error
	}

	breakdownHandler struct {
		breakdownService breakdown.BreakdownService
	}
)

func NewBreakdownHandler(breakdownService breakdown.BreakdownService) BreakdownHandler {
	return &breakdownHandler{
		breakdownService: breakdownService,
	}
}

func (h *breakdownHandler) GetSpendBreakdown(c *fiber.Ctx) error {
	res, err := h.breakdownService.GetSpendBreakdown(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBreakdown, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBreakdown)
}

func (h *breakdownHandler) GetBudgetStatus(c *fiber.Ctx) error {
	res, err := h.breakdownService.GetBudgetStatus(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBudgetStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBudgetStatus)
}

func (h *breakdownHandler) GetSummary(c *fiber.Ctx) error {
	res, err := h.breakdownService.GetSummary(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}
