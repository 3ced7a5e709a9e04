package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateDonation       = "donation created successfully"
	MessageSuccessGetDonations         = "donations retrieved successfully"
	MessageSuccessUpdateDonation       = "donation updated successfully"
	MessageSuccessUpdateDonationStatus = "donation status updated successfully"
	MessageSuccessToggleDonation       = "donation active state changed successfully"

	MessageFailedCreateDonation       = "failed to create donation"
	MessageFailedGetDonations         = "failed to retrieve donations"
	MessageFailedUpdateDonation       = "failed to update donation"
	MessageFailedUpdateDonationStatus = "failed to update donation status"
	MessageFailedToggleDonation       = "failed to change donation active state"

	ErrDonationNotFound = errors.New("donation not found")
)

// StatusLabels maps canonical donation statuses to the Arabic labels the
// admin screens render. Presentation data only, never compared against.
var StatusLabels = map[string]string{
	"pending":    "قيد المعالجة",
	"inprogress": "قيد التنفيذ",
	"completed":  "مكتمل",
	"cancelled":  "ملغي",
	"rejected":   "مرفوض",
}

type (
	CreateDonationRequest struct {
		DonorName      string  `json:"donor_name" validate:"required"`
		DonorPhone     string  `json:"donor_phone"`
		DonorEmail     string  `json:"donor_email" validate:"omitempty,email"`
		Amount         float64 `json:"amount" validate:"required,gt=0"`
		Description    string  `json:"description"`
		DonationDate   string  `json:"donation_date" validate:"omitempty,datetime=2006-01-02"`
		DeliveryStatus string  `json:"delivery_status" validate:"omitempty,oneof=scheduled delivered cancelled"`
	}

	UpdateDonationRequest struct {
		DonorName      string  `json:"donor_name" validate:"required"`
		DonorPhone     string  `json:"donor_phone"`
		DonorEmail     string  `json:"donor_email" validate:"omitempty,email"`
		Amount         float64 `json:"amount" validate:"required,gt=0"`
		Description    string  `json:"description"`
		DonationDate   string  `json:"donation_date" validate:"omitempty,datetime=2006-01-02"`
		DeliveryStatus string  `json:"delivery_status" validate:"omitempty,oneof=scheduled delivered cancelled"`
	}

	UpdateDonationStatusRequest struct {
		Status             string   `json:"status" validate:"required,oneof=inprogress completed cancelled rejected"`
		CompletionImages   []string `json:"completion_images"`
		CancellationReason string   `json:"cancellation_reason"`
	}

	Donation struct {
		ID                 string     `json:"id"`
		FamilyID           string     `json:"family_id"`
		DonorName          string     `json:"donor_name"`
		DonorPhone         string     `json:"donor_phone"`
		DonorEmail         string     `json:"donor_email"`
		Amount             float64    `json:"amount"`
		Description        string     `json:"description"`
		Status             string     `json:"status"`
		DonationDate       *time.Time `json:"donation_date,omitempty"`
		DeliveryStatus     string     `json:"delivery_status"`
		CompletionImages   []string   `json:"completion_images"`
		CancellationReason string     `json:"cancellation_reason"`
		IsActive           bool       `json:"is_active"`
		UpdatedByName      string     `json:"updated_by_name"`
		CreatedAt          time.Time  `json:"created_at"`
		UpdatedAt          time.Time  `json:"updated_at"`
	}
)
