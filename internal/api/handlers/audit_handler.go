package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ysabouh/hama-togather-sub000/domain"
	"github.com/ysabouh/hama-togather-sub000/internal/api/presenters"
	"github.com/ysabouh/hama-togather-sub000/pkg/audit"
)

type (
	AuditHandler interface {
		GetAuditLog(c *fiber.Ctx) error
	}

	auditHandler struct {
		auditService audit.AuditService
		validator    *validator.Validate
	}
)

func NewAuditHandler(auditService audit.AuditService, validator *validator.Validate) AuditHandler {
	return &auditHandler{
		auditService: auditService,
		validator:    validator,
	}
}

func (h *auditHandler) GetAuditLog(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.Query("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := domain.AuditQuery{
		ResourceType: c.Query("resource_type"),
		ResourceID:   c.Query("resource_id"),
		ActionType:   c.Query("action_type"),
		Search:       c.Query("search"),
		Page:         page,
		PageSize:     pageSize,
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAuditLog, err)
	}

	result, err := h.auditService.QueryLog(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetAuditLog, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetAuditLog)
}
