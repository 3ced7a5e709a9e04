package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateNeed = "need entry created successfully"
	MessageSuccessGetNeeds   = "need entries retrieved successfully"
	MessageSuccessUpdateNeed = "need entry updated successfully"
	MessageSuccessToggleNeed = "need entry active state changed successfully"
	MessageSuccessDeleteNeed = "need entry deleted successfully"

	MessageFailedCreateNeed = "failed to create need entry"
	MessageFailedGetNeeds   = "failed to retrieve need entries"
	MessageFailedUpdateNeed = "failed to update need entry"
	MessageFailedToggleNeed = "failed to change need entry active state"
	MessageFailedDeleteNeed = "failed to delete need entry"

	ErrNeedNotFound = errors.New("need entry not found")
)

type (
	CreateNeedRequest struct {
		NeedTypeID      string  `json:"need_type_id" validate:"required,uuid"`
		Quantity        string  `json:"quantity"`
		EstimatedAmount float64 `json:"estimated_amount" validate:"min=0"`
		DurationType    string  `json:"duration_type" validate:"required,oneof=one-time monthly"`
		Month           string  `json:"month"`
		Notes           string  `json:"notes"`
	}

	UpdateNeedRequest struct {
		NeedTypeID      string  `json:"need_type_id" validate:"required,uuid"`
		Quantity        string  `json:"quantity"`
		EstimatedAmount float64 `json:"estimated_amount" validate:"min=0"`
		DurationType    string  `json:"duration_type" validate:"required,oneof=one-time monthly"`
		Month           string  `json:"month"`
		Notes           string  `json:"notes"`
	}

	NeedEntry struct {
		ID              string    `json:"id"`
		FamilyID        string    `json:"family_id"`
		NeedTypeID      string    `json:"need_type_id"`
		NeedType        string    `json:"need_type,omitempty"`
		Quantity        string    `json:"quantity"`
		EstimatedAmount float64   `json:"estimated_amount"`
		DurationType    string    `json:"duration_type"`
		Month           string    `json:"month,omitempty"`
		Notes           string    `json:"notes"`
		IsActive        bool      `json:"is_active"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}
)
