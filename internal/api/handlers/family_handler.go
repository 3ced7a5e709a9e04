package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ysabouh/hama-togather-sub000/domain"
	"github.com/ysabouh/hama-togather-sub000/internal/api/presenters"
	"github.com/ysabouh/hama-togather-sub000/pkg/family"
)

type (
	FamilyHandler interface {
		CreateFamily(c *fiber.Ctx) error
		UpdateFamily(c *fiber.Ctx) error
		ToggleFamilyActive(c *fiber.Ctx) error
		GetFamily(c *fiber.Ctx) error
		GetFamilies(c *fiber.Ctx) error
		GetNeedTypes(c *fiber.Ctx) error
		GetNeighborhoods(c *fiber.Ctx) error
	}

	familyHandler struct {
		familyService family.FamilyService
		validator     *validator.Validate
	}
)

func NewFamilyHandler(familyService family.FamilyService, validator *validator.Validate) FamilyHandler {
	return &familyHandler{
		familyService: familyService,
		validator:     validator,
	}
}

func (h *familyHandler) CreateFamily(c *fiber.Ctx) error {
	req := new(domain.CreateFamilyRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFamily, err)
	}

	created, err := h.familyService.CreateFamily(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateFamily, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessCreateFamily)
}

func (h *familyHandler) UpdateFamily(c *fiber.Ctx) error {
	familyID := c.Params("id")

	req := new(domain.UpdateFamilyRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFamily, err)
	}

	updated, err := h.familyService.UpdateFamily(c.Context(), familyID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateFamily, err)
	}

	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessUpdateFamily)
}

func (h *familyHandler) ToggleFamilyActive(c *fiber.Ctx) error {
	familyID := c.Params("id")

	updated, err := h.familyService.ToggleFamilyActive(c.Context(), familyID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedToggleFamily, err)
	}

	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessToggleFamily)
}

func (h *familyHandler) GetFamily(c *fiber.Ctx) error {
	familyID := c.Params("id")

	found, err := h.familyService.GetFamilyByID(c.Context(), familyID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFamily, err)
	}

	return presenters.SuccessResponse(c, found, fiber.StatusOK, domain.MessageSuccessGetFamily)
}

func (h *familyHandler) GetFamilies(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	families, count, err := h.familyService.GetFamilies(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFamilies, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"families": families,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFamilies)
}

func (h *familyHandler) GetNeedTypes(c *fiber.Ctx) error {
	needTypes, err := h.familyService.GetNeedTypes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetNeeds, err)
	}

	return presenters.SuccessResponse(c, needTypes, fiber.StatusOK, domain.MessageSuccessGetNeeds)
}

func (h *familyHandler) GetNeighborhoods(c *fiber.Ctx) error {
	neighborhoods, err := h.familyService.GetNeighborhoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFamilies, err)
	}

	return presenters.SuccessResponse(c, neighborhoods, fiber.StatusOK, domain.MessageSuccessGetFamilies)
}
