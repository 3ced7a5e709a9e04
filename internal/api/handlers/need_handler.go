package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ysabouh/hama-togather-sub000/domain"
	"github.com/ysabouh/hama-togather-sub000/internal/api/presenters"
	"github.com/ysabouh/hama-togather-sub000/pkg/need"
)

type (
	NeedHandler interface {
		CreateNeed(c *fiber.Ctx) error
		UpdateNeed(c *fiber.Ctx) error
		ToggleNeed(c *fiber.Ctx) error
		DeleteNeed(c *fiber.Ctx) error
		GetFamilyNeeds(c *fiber.Ctx) error
	}

	needHandler struct {
		needService need.NeedService
		validator   *validator.Validate
	}
)

func NewNeedHandler(needService need.NeedService, validator *validator.Validate) NeedHandler {
	return &needHandler{
		needService: needService,
		validator:   validator,
	}
}

func (h *needHandler) CreateNeed(c *fiber.Ctx) error {
	familyID := c.Params("id")

	req := new(domain.CreateNeedRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateNeed, err)
	}

	created, err := h.needService.CreateNeed(c.Context(), familyID, *req, actorFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateNeed, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessCreateNeed)
}

func (h *needHandler) UpdateNeed(c *fiber.Ctx) error {
	needID := c.Params("id")

	req := new(domain.UpdateNeedRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNeed, err)
	}

	updated, err := h.needService.UpdateNeed(c.Context(), needID, *req, actorFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateNeed, err)
	}

	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessUpdateNeed)
}

func (h *needHandler) ToggleNeed(c *fiber.Ctx) error {
	needID := c.Params("id")

	updated, err := h.needService.ToggleNeed(c.Context(), needID, actorFromCtx(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedToggleNeed, err)
	}

	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessToggleNeed)
}

func (h *needHandler) DeleteNeed(c *fiber.Ctx) error {
	needID := c.Params("id")

	if err := h.needService.DeleteNeed(c.Context(), needID, actorFromCtx(c)); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteNeed, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteNeed)
}

func (h *needHandler) GetFamilyNeeds(c *fiber.Ctx) error {
	familyID := c.Params("id")

	needs, err := h.needService.GetNeedsByFamily(c.Context(), familyID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetNeeds, err)
	}

	return presenters.SuccessResponse(c, needs, fiber.StatusOK, domain.MessageSuccessGetNeeds)
}
