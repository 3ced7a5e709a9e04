package entities

import (
	"github.com/google/uuid"
)

// Reference tables managed by the admin screens. The core only reads them
// to validate foreign references on families and need entries.

type Neighborhood struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}

type FamilyCategory struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}

type IncomeLevel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}

type NeedAssessment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}

type NeedType struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `gorm:"default:true" json:"is_active"`

	Timestamp
}
