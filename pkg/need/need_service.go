package need

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ysabouh/hama-togather-sub000/domain"
	"github.com/ysabouh/hama-togather-sub000/entities"
	"github.com/ysabouh/hama-togather-sub000/internal/utils"
	"github.com/ysabouh/hama-togather-sub000/pkg/audit"
	"github.com/ysabouh/hama-togather-sub000/pkg/family"
)

type (
	NeedService interface {
		CreateNeed(ctx context.Context, familyID string, req domain.CreateNeedRequest, actor domain.Actor) (*domain.NeedEntry, error)
		UpdateNeed(ctx context.Context, id string, req domain.UpdateNeedRequest, actor domain.Actor) (*domain.NeedEntry, error)
		ToggleNeed(ctx context.Context, id string, actor domain.Actor) (*domain.NeedEntry, error)
		DeleteNeed(ctx context.Context, id string, actor domain.Actor) error
		GetNeedsByFamily(ctx context.Context, familyID string) ([]*domain.NeedEntry, error)
	}

	needService struct {
		needRepository   NeedRepository
		familyRepository family.FamilyRepository
		auditRepository  audit.AuditRepository
		locker           *utils.ResourceLocker
	}
)

func NewNeedService(
	needRepository NeedRepository,
	familyRepository family.FamilyRepository,
	auditRepository audit.AuditRepository,
	locker *utils.ResourceLocker,
) NeedService {
	return &needService{
		needRepository:   needRepository,
		familyRepository: familyRepository,
		auditRepository:  auditRepository,
		locker:           locker,
	}
}

// validateDuration enforces the duration/month pairing: monthly needs carry a
// target month, one-time needs must not.
func validateDuration(durationType, month string) error {
	if durationType == entities.DurationMonthly && month == "" {
		return domain.NewValidationError("month", "month is required when duration_type is monthly")
	}
	if durationType == entities.DurationOneTime && month != "" {
		return domain.NewValidationError("month", "month must be empty when duration_type is one-time")
	}
	return nil
}

func (s *needService) CreateNeed(ctx context.Context, familyID string, req domain.CreateNeedRequest, actor domain.Actor) (*domain.NeedEntry, error) {
	if err := validateDuration(req.DurationType, req.Month); err != nil {
		return nil, err
	}

	if _, err := s.familyRepository.GetFamilyByID(ctx, familyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFamilyNotFound
		}
		return nil, err
	}

	needType, err := s.familyRepository.GetNeedTypeByID(ctx, req.NeedTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("need_type_id", "need type does not exist")
		}
		return nil, err
	}

	familyUUID, err := uuid.Parse(familyID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	actorUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	need := &entities.NeedEntry{
		ID:              uuid.New(),
		FamilyID:        familyUUID,
		NeedTypeID:      needType.ID,
		Quantity:        req.Quantity,
		EstimatedAmount: req.EstimatedAmount,
		DurationType:    req.DurationType,
		Month:           req.Month,
		Notes:           req.Notes,
		IsActive:        true,
		CreatedBy:       actorUUID,
		UpdatedBy:       actorUUID,
	}

	entry := &entities.AuditEntry{
		ResourceType: entities.ResourceTypeNeedEntry,
		ResourceID:   need.ID,
		ResourceName: needType.Name,
		Action:       entities.AuditActionCreated,
		ActorID:      actorUUID,
		ActorName:    actor.Name,
		Changes:      entities.FieldChanges{},
	}

	if err := s.needRepository.CreateWithAudit(ctx, need, entry); err != nil {
		return nil, err
	}

	need.NeedType = needType
	return toNeedEntry(need), nil
}

func (s *needService) UpdateNeed(ctx context.Context, id string, req domain.UpdateNeedRequest, actor domain.Actor) (*domain.NeedEntry, error) {
	unlock := s.locker.Lock(id)
	defer unlock()

	need, err := s.needRepository.GetNeedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNeedNotFound
		}
		return nil, err
	}

	if err := validateDuration(req.DurationType, req.Month); err != nil {
		return nil, err
	}

	needType := need.NeedType
	changes := entities.FieldChanges{}

	if req.NeedTypeID != need.NeedTypeID.String() {
		needType, err = s.familyRepository.GetNeedTypeByID(ctx, req.NeedTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.NewValidationError("need_type_id", "need type does not exist")
			}
			return nil, err
		}
		changes["need_type_id"] = entities.FieldChange{Old: need.NeedTypeID.String(), New: req.NeedTypeID}
		need.NeedTypeID = needType.ID
	}
	if req.Quantity != need.Quantity {
		changes["quantity"] = entities.FieldChange{Old: need.Quantity, New: req.Quantity}
		need.Quantity = req.Quantity
	}
	if req.EstimatedAmount != need.EstimatedAmount {
		changes["estimated_amount"] = entities.FieldChange{Old: need.EstimatedAmount, New: req.EstimatedAmount}
		need.EstimatedAmount = req.EstimatedAmount
	}
	if req.DurationType != need.DurationType {
		changes["duration_type"] = entities.FieldChange{Old: need.DurationType, New: req.DurationType}
		need.DurationType = req.DurationType
	}
	if req.Month != need.Month {
		changes["month"] = entities.FieldChange{Old: need.Month, New: req.Month}
		need.Month = req.Month
	}
	if req.Notes != need.Notes {
		changes["notes"] = entities.FieldChange{Old: need.Notes, New: req.Notes}
		need.Notes = req.Notes
	}

	if len(changes) == 0 {
		return toNeedEntry(need), nil
	}

	actorUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	need.UpdatedBy = actorUUID
	need.NeedType = nil

	entry := &entities.AuditEntry{
		ResourceType: entities.ResourceTypeNeedEntry,
		ResourceID:   need.ID,
		ResourceName: needType.Name,
		Action:       entities.AuditActionUpdated,
		ActorID:      actorUUID,
		ActorName:    actor.Name,
		Changes:      changes,
	}

	if err := s.needRepository.UpdateWithAudit(ctx, need, entry); err != nil {
		return nil, err
	}

	need.NeedType = needType
	return toNeedEntry(need), nil
}

func (s *needService) ToggleNeed(ctx context.Context, id string, actor domain.Actor) (*domain.NeedEntry, error) {
	unlock := s.locker.Lock(id)
	defer unlock()

	need, err := s.needRepository.GetNeedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNeedNotFound
		}
		return nil, err
	}

	actorUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	wasActive := need.IsActive
	need.IsActive = !need.IsActive
	need.UpdatedBy = actorUUID

	action := entities.AuditActionActivated
	if wasActive {
		action = entities.AuditActionDeactivated
	}

	needType := need.NeedType
	need.NeedType = nil

	entry := &entities.AuditEntry{
		ResourceType: entities.ResourceTypeNeedEntry,
		ResourceID:   need.ID,
		ResourceName: resourceName(needType),
		Action:       action,
		ActorID:      actorUUID,
		ActorName:    actor.Name,
		Changes: entities.FieldChanges{
			"is_active": {Old: wasActive, New: need.IsActive},
		},
	}

	if err := s.needRepository.UpdateWithAudit(ctx, need, entry); err != nil {
		return nil, err
	}

	need.NeedType = needType
	return toNeedEntry(need), nil
}

func (s *needService) DeleteNeed(ctx context.Context, id string, actor domain.Actor) error {
	unlock := s.locker.Lock(id)
	defer unlock()

	need, err := s.needRepository.GetNeedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNeedNotFound
		}
		return err
	}

	// Hard deletion is only allowed while the entry is still in its original
	// un-deactivated history; once a deactivation has been recorded the entry
	// must be kept for the trail.
	deactivated, err := s.auditRepository.HasAction(ctx, entities.ResourceTypeNeedEntry, need.ID, entities.AuditActionDeactivated)
	if err != nil {
		return err
	}
	if deactivated || !need.IsActive {
		return domain.NewInvalidTransitionError("deactivated", "deleted")
	}

	actorUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return domain.ErrParseUUID
	}

	entry := &entities.AuditEntry{
		ResourceType: entities.ResourceTypeNeedEntry,
		ResourceID:   need.ID,
		ResourceName: resourceName(need.NeedType),
		Action:       entities.AuditActionDeleted,
		ActorID:      actorUUID,
		ActorName:    actor.Name,
		Changes: entities.FieldChanges{
			"need_type_id":     {Old: need.NeedTypeID.String(), New: nil},
			"quantity":         {Old: need.Quantity, New: nil},
			"estimated_amount": {Old: need.EstimatedAmount, New: nil},
			"duration_type":    {Old: need.DurationType, New: nil},
			"month":            {Old: need.Month, New: nil},
			"notes":            {Old: need.Notes, New: nil},
			"is_active":        {Old: need.IsActive, New: nil},
		},
	}

	return s.needRepository.DeleteWithAudit(ctx, need, entry)
}

func (s *needService) GetNeedsByFamily(ctx context.Context, familyID string) ([]*domain.NeedEntry, error) {
	needs, err := s.needRepository.GetNeedsByFamily(ctx, familyID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.NeedEntry, 0, len(needs))
	for _, need := range needs {
		result = append(result, toNeedEntry(need))
	}
	return result, nil
}

func resourceName(needType *entities.NeedType) string {
	if needType == nil {
		return ""
	}
	return needType.Name
}

func toNeedEntry(need *entities.NeedEntry) *domain.NeedEntry {
	result := &domain.NeedEntry{
		ID:              need.ID.String(),
		FamilyID:        need.FamilyID.String(),
		NeedTypeID:      need.NeedTypeID.String(),
		Quantity:        need.Quantity,
		EstimatedAmount: need.EstimatedAmount,
		DurationType:    need.DurationType,
		Month:           need.Month,
		Notes:           need.Notes,
		IsActive:        need.IsActive,
		CreatedAt:       need.CreatedAt,
		UpdatedAt:       need.UpdatedAt,
	}
	if need.NeedType != nil {
		result.NeedType = need.NeedType.Name
	}
	return result
}
