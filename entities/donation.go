package entities

import (
	"time"

	"github.com/google/uuid"
)

type DonationStatus string

const (
	DonationStatusPending    DonationStatus = "pending"
	DonationStatusInProgress DonationStatus = "inprogress"
	DonationStatusCompleted  DonationStatus = "completed"
	DonationStatusCancelled  DonationStatus = "cancelled"
	DonationStatusRejected   DonationStatus = "rejected"
)

// IsTerminal reports whether no further status transition is allowed.
func (s DonationStatus) IsTerminal() bool {
	switch s {
	case DonationStatusCompleted, DonationStatusCancelled, DonationStatusRejected:
		return true
	}
	return false
}

const (
	DeliveryStatusScheduled = "scheduled"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusCancelled = "cancelled"
)

type Donation struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FamilyID     uuid.UUID      `gorm:"type:uuid;index" json:"family_id"`
	DonorName    string         `json:"donor_name"`
	DonorPhone   string         `json:"donor_phone"`
	DonorEmail   string         `json:"donor_email"`
	Amount       float64        `json:"amount"`
	Description  string         `json:"description"`
	Status       DonationStatus `gorm:"index" json:"status"` // pending, inprogress, completed, cancelled, rejected
	DonationDate *time.Time     `json:"donation_date,omitempty"`
	// DeliveryStatus is an informational hint (scheduled, delivered,
	// cancelled) and is independent from the authoritative Status; its
	// "cancelled" value does not imply a cancelled workflow status.
	DeliveryStatus     string    `json:"delivery_status"`
	CompletionImages   []string  `gorm:"serializer:json" json:"completion_images"` // meaningful only when status is completed
	CancellationReason string    `json:"cancellation_reason"`                      // set iff status is cancelled
	IsActive           bool      `gorm:"default:true" json:"is_active"`            // false once detached from counting toward its family
	UpdatedBy          uuid.UUID `gorm:"type:uuid" json:"updated_by"`
	UpdatedByName      string    `json:"updated_by_name"`

	Family *Family `gorm:"foreignKey:FamilyID" json:"family,omitempty"`
	Timestamp
}
