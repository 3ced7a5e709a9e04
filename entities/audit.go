package entities

import (
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditActionCreated       AuditAction = "created"
	AuditActionUpdated       AuditAction = "updated"
	AuditActionActivated     AuditAction = "activated"
	AuditActionDeactivated   AuditAction = "deactivated"
	AuditActionDeleted       AuditAction = "deleted"
	AuditActionStatusChanged AuditAction = "status_changed"
)

const (
	ResourceTypeNeedEntry = "need_entry"
	ResourceTypeDonation  = "donation"
)

// FieldChange holds the before and after value of one field.
type FieldChange struct {
	Old interface{} `json:"old"`
	New interface{} `json:"new"`
}

type FieldChanges map[string]FieldChange

// AuditEntry is an immutable record of one mutation to an audited resource.
// Rows are only ever inserted, never updated or deleted.
type AuditEntry struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	ResourceType string       `gorm:"index" json:"resource_type"` // need_entry or donation
	ResourceID   uuid.UUID    `gorm:"type:uuid;index" json:"resource_id"`
	ResourceName string       `json:"resource_name"` // display name at mutation time, kept for search
	Action       AuditAction  `gorm:"index" json:"action"`
	ActorID      uuid.UUID    `gorm:"type:uuid" json:"actor_id"`
	ActorName    string       `json:"actor_name"`
	Changes      FieldChanges `gorm:"serializer:json" json:"changes"` // empty for created
	CreatedAt    time.Time    `gorm:"index" json:"created_at"`
}
