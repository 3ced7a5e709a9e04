package domain

import (
	"time"

	"github.com/ysabouh/hama-togather-sub000/entities"
)

var (
	MessageSuccessGetAuditLog = "audit log retrieved successfully"
	MessageFailedGetAuditLog  = "failed to retrieve audit log"
)

type (
	AuditQuery struct {
		ResourceType string `json:"resource_type" validate:"omitempty,oneof=need_entry donation"`
		ResourceID   string `json:"resource_id" validate:"omitempty,uuid"`
		ActionType   string `json:"action_type" validate:"omitempty,oneof=created updated activated deactivated deleted status_changed"`
		Search       string `json:"search"`
		Page         int    `json:"page" validate:"min=1"`
		PageSize     int    `json:"page_size" validate:"min=1,max=100"`
	}

	AuditEntry struct {
		ID           string                `json:"id"`
		ResourceType string                `json:"resource_type"`
		ResourceID   string                `json:"resource_id"`
		ResourceName string                `json:"resource_name"`
		Action       string                `json:"action"`
		ActorID      string                `json:"actor_id"`
		ActorName    string                `json:"actor_name"`
		Changes      entities.FieldChanges `json:"changes"`
		CreatedAt    time.Time             `json:"created_at"`
	}

	Pagination struct {
		CurrentPage int   `json:"current_page"`
		PerPage     int   `json:"per_page"`
		TotalCount  int64 `json:"total_count"`
		TotalPages  int   `json:"total_pages"`
		HasNext     bool  `json:"has_next"`
		HasPrev     bool  `json:"has_prev"`
	}

	AuditLogResult struct {
		Entries    []*AuditEntry `json:"entries"`
		Pagination Pagination    `json:"pagination"`
	}
)
