package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateFamily = "family created successfully"
	MessageSuccessGetFamilies  = "families retrieved successfully"
	MessageSuccessGetFamily    = "family retrieved successfully"
	MessageSuccessUpdateFamily = "family updated successfully"
	MessageSuccessToggleFamily = "family active state changed successfully"

	MessageFailedCreateFamily = "failed to create family"
	MessageFailedGetFamilies  = "failed to retrieve families"
	MessageFailedGetFamily    = "failed to retrieve family"
	MessageFailedUpdateFamily = "failed to update family"
	MessageFailedToggleFamily = "failed to change family active state"

	ErrFamilyNotFound = errors.New("family not found")
)

type (
	CreateFamilyRequest struct {
		Name             string `json:"name" validate:"required"`
		FamilyNumber     string `json:"family_number" validate:"required"`
		NeighborhoodID   string `json:"neighborhood_id" validate:"required,uuid"`
		CategoryID       string `json:"category_id" validate:"required,uuid"`
		IncomeLevelID    string `json:"income_level_id" validate:"required,uuid"`
		NeedAssessmentID string `json:"need_assessment_id" validate:"required,uuid"`
		MembersCount     int    `json:"members_count" validate:"required,min=1"`
		ChildrenCount    int    `json:"children_count" validate:"min=0"`
	}

	UpdateFamilyRequest struct {
		Name             string `json:"name" validate:"required"`
		NeighborhoodID   string `json:"neighborhood_id" validate:"required,uuid"`
		CategoryID       string `json:"category_id" validate:"required,uuid"`
		IncomeLevelID    string `json:"income_level_id" validate:"required,uuid"`
		NeedAssessmentID string `json:"need_assessment_id" validate:"required,uuid"`
		MembersCount     int    `json:"members_count" validate:"required,min=1"`
		ChildrenCount    int    `json:"children_count" validate:"min=0"`
	}

	Family struct {
		ID               string    `json:"id"`
		Name             string    `json:"name"`
		FamilyNumber     string    `json:"family_number"`
		NeighborhoodID   string    `json:"neighborhood_id"`
		Neighborhood     string    `json:"neighborhood,omitempty"`
		CategoryID       string    `json:"category_id"`
		Category         string    `json:"category,omitempty"`
		IncomeLevelID    string    `json:"income_level_id"`
		IncomeLevel      string    `json:"income_level,omitempty"`
		NeedAssessmentID string    `json:"need_assessment_id"`
		NeedAssessment   string    `json:"need_assessment,omitempty"`
		MembersCount     int       `json:"members_count"`
		ChildrenCount    int       `json:"children_count"`
		IsActive         bool      `json:"is_active"`
		CreatedAt        time.Time `json:"created_at"`
		UpdatedAt        time.Time `json:"updated_at"`
	}

	ReferenceItem struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		IsActive bool   `json:"is_active"`
	}
)
