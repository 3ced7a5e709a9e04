package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ysabouh/hama-togather-sub000/domain"
	"github.com/ysabouh/hama-togather-sub000/internal/api/presenters"
	"github.com/ysabouh/hama-togather-sub000/pkg/reconciliation"
)

type (
	ReconciliationHandler interface {
		GetFamilyReconciliation(c *fiber.Ctx) error
		GetPlatformStats(c *fiber.Ctx) error
	}

	reconciliationHandler struct {
		reconciliationService reconciliation.ReconciliationService
	}
)

func NewReconciliationHandler(reconciliationService reconciliation.ReconciliationService) ReconciliationHandler {
	return &reconciliationHandler{reconciliationService: reconciliationService}
}

func (h *reconciliationHandler) GetFamilyReconciliation(c *fiber.Ctx) error {
	familyID := c.Params("id")

	result, err := h.reconciliationService.Reconcile(c.Context(), familyID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetReconciliation, err)
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetReconciliation)
}

func (h *reconciliationHandler) GetPlatformStats(c *fiber.Ctx) error {
	stats, err := h.reconciliationService.GetPlatformStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}
