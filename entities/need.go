package entities

import (
	"github.com/google/uuid"
)

const (
	DurationOneTime = "one-time"
	DurationMonthly = "monthly"
)

type NeedEntry struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FamilyID        uuid.UUID `gorm:"type:uuid;index" json:"family_id"` // immutable after creation
	NeedTypeID      uuid.UUID `gorm:"type:uuid" json:"need_type_id"`
	Quantity        string    `json:"quantity"`
	EstimatedAmount float64   `json:"estimated_amount"`
	DurationType    string    `json:"duration_type"` // one-time or monthly
	Month           string    `json:"month"`         // required iff duration_type is monthly, e.g. "JAN-2025"
	Notes           string    `json:"notes"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedBy       uuid.UUID `gorm:"type:uuid" json:"created_by"`
	UpdatedBy       uuid.UUID `gorm:"type:uuid" json:"updated_by"`

	Family   *Family   `gorm:"foreignKey:FamilyID" json:"family,omitempty"`
	NeedType *NeedType `gorm:"foreignKey:NeedTypeID" json:"need_type,omitempty"`
	Timestamp
}
