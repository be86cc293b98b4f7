package handlers

import (
	"movelist-backend/domain"
	"movelist-backend/internal/api/presenters"
	"movelist-backend/pkg/person"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PersonHandler interface {
		AddPerson(c *fiber.Ctx) error
		GetPeople(c *fiber.Ctx) error
		UpdatePerson(c *fiber.Ctx) error
		DeletePerson(c *fiber.Ctx) error
	}

	personHandler struct {
		personService person.PersonService
		validator     *validator.Validate
	}
)

func NewPersonHandler(personService person.PersonService, validator *validator.Validate) PersonHandler {
	return &personHandler{
		personService: personService,
		validator:     validator,
	}
}

func (h *personHandler) AddPerson(c *fiber.Ctx) error {
	req := new(domain.AddPersonRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPerson, err)
	}

	res, err := h.personService.AddPerson(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPerson, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPerson)
}

func (h *personHandler) GetPeople(c *fiber.Ctx) error {
	people, err := h.personService.GetPeople(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPeople, err)
	}

	return presenters.SuccessResponse(c, people, fiber.StatusOK, domain.MessageSuccessGetPeople)
}

func (h *personHandler) UpdatePerson(c *fiber.Ctx) error {
	personID := c.Params("id")
	req := new(domain.UpdatePersonRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePerson, err)
	}

	if err := h.personService.UpdatePerson(c.Context(), personID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePerson, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePerson)
}

func (h *personHandler) DeletePerson(c *fiber.Ctx) error {
	personID := c.Params("id")

	if err := h.personService.DeletePerson(c.Context(), personID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePerson, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePerson)
}
