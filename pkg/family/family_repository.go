package family

import (
	"context"

	"gorm.io/gorm"

	"github.com/ysabouh/hama-togather-sub000/entities"
)

type (
	FamilyRepository interface {
		CreateFamily(ctx context.Context, family *entities.Family) error
		UpdateFamily(ctx context.Context, family *entities.Family) error
		GetFamilyByID(ctx context.Context, id string) (*entities.Family, error)
		GetFamilies(ctx context.Context, page, limit int) ([]*entities.Family, int64, error)

		// Reference data, read side only.
		NeighborhoodExists(ctx context.Context, id string) (bool, error)
		CategoryExists(ctx context.Context, id string) (bool, error)
		IncomeLevelExists(ctx context.Context, id string) (bool, error)
		NeedAssessmentExists(ctx context.Context, id string) (bool, error)
		GetNeedTypeByID(ctx context.Context, id string) (*entities.NeedType, error)
		GetNeedTypes(ctx context.Context) ([]*entities.NeedType, error)
		GetNeighborhoods(ctx context.Context) ([]*entities.Neighborhood, error)
	}

	familyRepository struct {
		db *gorm.DB
	}
)

func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{db: db}
}

func (r *familyRepository) CreateFamily(ctx context.Context, family *entities.Family) error {
	return r.db.WithContext(ctx).Create(family).Error
}

func (r *familyRepository) UpdateFamily(ctx context.Context, family *entities.Family) error {
	return r.db.WithContext(ctx).Save(family).Error
}

func (r *familyRepository) GetFamilyByID(ctx context.Context, id string) (*entities.Family, error) {
	var family entities.Family
	if err := r.db.WithContext(ctx).
		Preload("Neighborhood").
		Preload("Category").
		Preload("IncomeLevel").
		Preload("NeedAssessment").
		Where("id = ?", id).
		First(&family).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

func (r *familyRepository) GetFamilies(ctx context.Context, page, limit int) ([]*entities.Family, int64, error) {
	var families []*entities.Family
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Family{}).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Neighborhood").
		Preload("Category").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&families).Error; err != nil {
		return nil, 0, err
	}

	return families, count, nil
}

func (r *familyRepository) referenceExists(ctx context.Context, model interface{}, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND is_active = ?", id, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *familyRepository) NeighborhoodExists(ctx context.Context, id string) (bool, error) {
	return r.referenceExists(ctx, &entities.Neighborhood{}, id)
}

func (r *familyRepository) CategoryExists(ctx context.Context, id string) (bool, error) {
	return r.referenceExists(ctx, &entities.FamilyCategory{}, id)
}

func (r *familyRepository) IncomeLevelExists(ctx context.Context, id string) (bool, error) {
	return r.referenceExists(ctx, &entities.IncomeLevel{}, id)
}

func (r *familyRepository) NeedAssessmentExists(ctx context.Context, id string) (bool, error) {
	return r.referenceExists(ctx, &entities.NeedAssessment{}, id)
}

func (r *familyRepository) GetNeedTypeByID(ctx context.Context, id string) (*entities.NeedType, error) {
	var needType entities.NeedType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&needType).Error; err != nil {
		return nil, err
	}
	return &needType, nil
}

func (r *familyRepository) GetNeedTypes(ctx context.Context) ([]*entities.NeedType, error) {
	var needTypes []*entities.NeedType
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&needTypes).Error; err != nil {
		return nil, err
	}
	return needTypes, nil
}

func (r *familyRepository) GetNeighborhoods(ctx context.Context) ([]*entities.Neighborhood, error) {
	var neighborhoods []*entities.Neighborhood
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&neighborhoods).Error; err != nil {
		return nil, err
	}
	return neighborhoods, nil
}
