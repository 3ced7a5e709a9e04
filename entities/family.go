package entities

import (
	"github.com/google/uuid"
)

type Family struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name             string    `json:"name"`
	FamilyNumber     string    `gorm:"uniqueIndex" json:"family_number"`
	NeighborhoodID   uuid.UUID `gorm:"type:uuid" json:"neighborhood_id"`
	CategoryID       uuid.UUID `gorm:"type:uuid" json:"category_id"`
	IncomeLevelID    uuid.UUID `gorm:"type:uuid" json:"income_level_id"`
	NeedAssessmentID uuid.UUID `gorm:"type:uuid" json:"need_assessment_id"`
	MembersCount     int       `json:"members_count"`
	ChildrenCount    int       `json:"children_count"`
	IsActive         bool      `gorm:"default:true" json:"is_active"` // families are never hard-deleted

	Neighborhood   *Neighborhood   `gorm:"foreignKey:NeighborhoodID" json:"neighborhood,omitempty"`
	Category       *FamilyCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IncomeLevel    *IncomeLevel    `gorm:"foreignKey:IncomeLevelID" json:"income_level,omitempty"`
	NeedAssessment *NeedAssessment `gorm:"foreignKey:NeedAssessmentID" json:"need_assessment,omitempty"`
	NeedEntries    []*NeedEntry    `gorm:"foreignKey:FamilyID" json:"need_entries,omitempty"`
	Donations      []*Donation     `gorm:"foreignKey:FamilyID" json:"donations,omitempty"`
	Timestamp
}
