package family

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ysabouh/hama-togather-sub000/domain"
	"github.com/ysabouh/hama-togather-sub000/entities"
)

type (
	FamilyService interface {
		CreateFamily(ctx context.Context, req domain.CreateFamilyRequest) (*domain.Family, error)
		UpdateFamily(ctx context.Context, id string, req domain.UpdateFamilyRequest) (*domain.Family, error)
		ToggleFamilyActive(ctx context.Context, id string) (*domain.Family, error)
		GetFamilyByID(ctx context.Context, id string) (*domain.Family, error)
		GetFamilies(ctx context.Context, page, limit int) ([]*domain.Family, int64, error)
		GetNeedTypes(ctx context.Context) ([]*domain.ReferenceItem, error)
		GetNeighborhoods(ctx context.Context) ([]*domain.ReferenceItem, error)
	}

	familyService struct {
		familyRepository FamilyRepository
	}
)

func NewFamilyService(familyRepository FamilyRepository) FamilyService {
	return &familyService{familyRepository: familyRepository}
}

func (s *familyService) validateReferences(ctx context.Context, neighborhoodID, categoryID, incomeLevelID, needAssessmentID string) error {
	checks := []struct {
		field  string
		exists func(context.Context, string) (bool, error)
		id     string
	}{
		{"neighborhood_id", s.familyRepository.NeighborhoodExists, neighborhoodID},
		{"category_id", s.familyRepository.CategoryExists, categoryID},
		{"income_level_id", s.familyRepository.IncomeLevelExists, incomeLevelID},
		{"need_assessment_id", s.familyRepository.NeedAssessmentExists, needAssessmentID},
	}
	for _, check := range checks {
		ok, err := check.exists(ctx, check.id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewValidationError(check.field, "referenced record does not exist or is inactive")
		}
	}
	return nil
}

func (s *familyService) CreateFamily(ctx context.Context, req domain.CreateFamilyRequest) (*domain.Family, error) {
	if err := s.validateReferences(ctx, req.NeighborhoodID, req.CategoryID, req.IncomeLevelID, req.NeedAssessmentID); err != nil {
		return nil, err
	}

	neighborhoodID, err := uuid.Parse(req.NeighborhoodID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	incomeLevelID, err := uuid.Parse(req.IncomeLevelID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	needAssessmentID, err := uuid.Parse(req.NeedAssessmentID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	family := &entities.Family{
		ID:               uuid.New(),
		Name:             req.Name,
		FamilyNumber:     req.FamilyNumber,
		NeighborhoodID:   neighborhoodID,
		CategoryID:       categoryID,
		IncomeLevelID:    incomeLevelID,
		NeedAssessmentID: needAssessmentID,
		MembersCount:     req.MembersCount,
		ChildrenCount:    req.ChildrenCount,
		IsActive:         true,
	}

	if err := s.familyRepository.CreateFamily(ctx, family); err != nil {
		return nil, err
	}

	return toFamily(family), nil
}

func (s *familyService) UpdateFamily(ctx context.Context, id string, req domain.UpdateFamilyRequest) (*domain.Family, error) {
	family, err := s.familyRepository.GetFamilyByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFamilyNotFound
		}
		return nil, err
	}

	if err := s.validateReferences(ctx, req.NeighborhoodID, req.CategoryID, req.IncomeLevelID, req.NeedAssessmentID); err != nil {
		return nil, err
	}

	neighborhoodID, err := uuid.Parse(req.NeighborhoodID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	incomeLevelID, err := uuid.Parse(req.IncomeLevelID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	needAssessmentID, err := uuid.Parse(req.NeedAssessmentID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	family.Name = req.Name
	family.NeighborhoodID = neighborhoodID
	family.CategoryID = categoryID
	family.IncomeLevelID = incomeLevelID
	family.NeedAssessmentID = needAssessmentID
	family.MembersCount = req.MembersCount
	family.ChildrenCount = req.ChildrenCount
	family.Neighborhood = nil
	family.Category = nil
	family.IncomeLevel = nil
	family.NeedAssessment = nil

	if err := s.familyRepository.UpdateFamily(ctx, family); err != nil {
		return nil, err
	}

	return toFamily(family), nil
}

func (s *familyService) ToggleFamilyActive(ctx context.Context, id string) (*domain.Family, error) {
	family, err := s.familyRepository.GetFamilyByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFamilyNotFound
		}
		return nil, err
	}

	family.IsActive = !family.IsActive
	if err := s.familyRepository.UpdateFamily(ctx, family); err != nil {
		return nil, err
	}

	return toFamily(family), nil
}

func (s *familyService) GetFamilyByID(ctx context.Context, id string) (*domain.Family, error) {
	family, err := s.familyRepository.GetFamilyByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFamilyNotFound
		}
		return nil, err
	}
	return toFamily(family), nil
}

func (s *familyService) GetFamilies(ctx context.Context, page, limit int) ([]*domain.Family, int64, error) {
	families, count, err := s.familyRepository.GetFamilies(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.Family, 0, len(families))
	for _, family := range families {
		result = append(result, toFamily(family))
	}
	return result, count, nil
}

func (s *familyService) GetNeedTypes(ctx context.Context) ([]*domain.ReferenceItem, error) {
	needTypes, err := s.familyRepository.GetNeedTypes(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.ReferenceItem, 0, len(needTypes))
	for _, needType := range needTypes {
		result = append(result, &domain.ReferenceItem{
			ID:       needType.ID.String(),
			Name:     needType.Name,
			IsActive: needType.IsActive,
		})
	}
	return result, nil
}

func (s *familyService) GetNeighborhoods(ctx context.Context) ([]*domain.ReferenceItem, error) {
	neighborhoods, err := s.familyRepository.GetNeighborhoods(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.ReferenceItem, 0, len(neighborhoods))
	for _, neighborhood := range neighborhoods {
		result = append(result, &domain.ReferenceItem{
			ID:       neighborhood.ID.String(),
			Name:     neighborhood.Name,
			IsActive: neighborhood.IsActive,
		})
	}
	return result, nil
}

func toFamily(family *entities.Family) *domain.Family {
	result := &domain.Family{
		ID:               family.ID.String(),
		Name:             family.Name,
		FamilyNumber:     family.FamilyNumber,
		NeighborhoodID:   family.NeighborhoodID.String(),
		CategoryID:       family.CategoryID.String(),
		IncomeLevelID:    family.IncomeLevelID.String(),
		NeedAssessmentID: family.NeedAssessmentID.String(),
		MembersCount:     family.MembersCount,
		ChildrenCount:    family.ChildrenCount,
		IsActive:         family.IsActive,
		CreatedAt:        family.CreatedAt,
		UpdatedAt:        family.UpdatedAt,
	}
	if family.Neighborhood != nil {
		result.Neighborhood = family.Neighborhood.Name
	}
	if family.Category != nil {
		result.Category = family.Category.Name
	}
	if family.IncomeLevel != nil {
		result.IncomeLevel = family.IncomeLevel.Name
	}
	if family.NeedAssessment != nil {
		result.NeedAssessment = family.NeedAssessment.Name
	}
	return result
}
