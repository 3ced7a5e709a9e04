package donation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ysabouh/hama-togather-sub000/domain"
	"github.com/ysabouh/hama-togather-sub000/entities"
	"github.com/ysabouh/hama-togather-sub000/internal/utils"
	"github.com/ysabouh/hama-togather-sub000/pkg/family"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, familyID string, req domain.CreateDonationRequest, actor domain.Actor) (*domain.Donation, error)
		UpdateDonationDetails(ctx context.Context, id string, req domain.UpdateDonationRequest, actor domain.Actor) (*domain.Donation, error)
		ChangeStatus(ctx context.Context, id string, req domain.UpdateDonationStatusRequest, actor domain.Actor) (*domain.Donation, error)
		ToggleDonationActive(ctx context.Context, id string, actor domain.Actor) (*domain.Donation, error)
		GetDonationByID(ctx context.Context, id string) (*domain.Donation, error)
		GetDonationsByFamily(ctx context.Context, familyID string, page, limit int) ([]*domain.Donation, int64, error)
	}

	donationService struct {
		donationRepository DonationRepository
		familyRepository   family.FamilyRepository
		locker             *utils.ResourceLocker
	}
)

func NewDonationService(
	donationRepository DonationRepository,
	familyRepository family.FamilyRepository,
	locker *utils.ResourceLocker,
) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		familyRepository:   familyRepository,
		locker:             locker,
	}
}

func parseDonationDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, domain.NewValidationError("donation_date", "must be formatted as YYYY-MM-DD")
	}
	return &parsed, nil
}

func (s *donationService) CreateDonation(ctx context.Context, familyID string, req domain.CreateDonationRequest, actor domain.Actor) (*domain.Donation, error) {
	if _, err := s.familyRepository.GetFamilyByID(ctx, familyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFamilyNotFound
		}
		return nil, err
	}

	donationDate, err := parseDonationDate(req.DonationDate)
	if err != nil {
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

	donation := &entities.Donation{
		ID:               uuid.New(),
		FamilyID:         familyUUID,
		DonorName:        req.DonorName,
		DonorPhone:       req.DonorPhone,
		DonorEmail:       req.DonorEmail,
		Amount:           req.Amount,
		Description:      req.Description,
		Status:           entities.DonationStatusPending,
		DonationDate:     donationDate,
		DeliveryStatus:   req.DeliveryStatus,
		CompletionImages: []string{},
		IsActive:         true,
		UpdatedBy:        actorUUID,
		UpdatedByName:    actor.Name,
	}

	entry := &entities.AuditEntry{
		ResourceType: entities.ResourceTypeDonation,
		ResourceID:   donation.ID,
		ResourceName: donation.DonorName,
		Action:       entities.AuditActionCreated,
		ActorID:      actorUUID,
		ActorName:    actor.Name,
		Changes:      entities.FieldChanges{},
	}

	if err := s.donationRepository.CreateWithAudit(ctx, donation, entry); err != nil {
		return nil, err
	}

	return toDonation(donation), nil
}

func (s *donationService) UpdateDonationDetails(ctx context.Context, id string, req domain.UpdateDonationRequest, actor domain.Actor) (*domain.Donation, error) {
	unlock := s.locker.Lock(id)
	defer unlock()

	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	donationDate, err := parseDonationDate(req.DonationDate)
	if err != nil {
		return nil, err
	}

	changes := entities.FieldChanges{}
	if req.DonorName != donation.DonorName {
		changes["donor_name"] = entities.FieldChange{Old: donation.DonorName, New: req.DonorName}
		donation.DonorName = req.DonorName
	}
	if req.DonorPhone != donation.DonorPhone {
		changes["donor_phone"] = entities.FieldChange{Old: donation.DonorPhone, New: req.DonorPhone}
		donation.DonorPhone = req.DonorPhone
	}
	if req.DonorEmail != donation.DonorEmail {
		changes["donor_email"] = entities.FieldChange{Old: donation.DonorEmail, New: req.DonorEmail}
		donation.DonorEmail = req.DonorEmail
	}
	if req.Amount != donation.Amount {
		changes["amount"] = entities.FieldChange{Old: donation.Amount, New: req.Amount}
		donation.Amount = req.Amount
	}
	if req.Description != donation.Description {
		changes["description"] = entities.FieldChange{Old: donation.Description, New: req.Description}
		donation.Description = req.Description
	}
	if !equalDates(donationDate, donation.DonationDate) {
		changes["donation_date"] = entities.FieldChange{Old: formatDate(donation.DonationDate), New: formatDate(donationDate)}
		donation.DonationDate = donationDate
	}
	if req.DeliveryStatus != donation.DeliveryStatus {
		changes["delivery_status"] = entities.FieldChange{Old: donation.DeliveryStatus, New: req.DeliveryStatus}
		donation.DeliveryStatus = req.DeliveryStatus
	}

	if len(changes) == 0 {
		return toDonation(donation), nil
	}

	actorUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	donation.UpdatedBy = actorUUID
	donation.UpdatedByName = actor.Name

	entry := &entities.AuditEntry{
		ResourceType: entities.ResourceTypeDonation,
		ResourceID:   donation.ID,
		ResourceName: donation.DonorName,
		Action:       entities.AuditActionUpdated,
		ActorID:      actorUUID,
		ActorName:    actor.Name,
		Changes:      changes,
	}

	if err := s.donationRepository.UpdateWithAudit(ctx, donation, entry); err != nil {
		return nil, err
	}

	return toDonation(donation), nil
}

// ChangeStatus drives the donation workflow. Terminal states (completed,
// cancelled, rejected) admit no further transition; evidence requirements
// are checked before anything is persisted.
func (s *donationService) ChangeStatus(ctx context.Context, id string, req domain.UpdateDonationStatusRequest, actor domain.Actor) (*domain.Donation, error) {
	unlock := s.locker.Lock(id)
	defer unlock()

	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	newStatus := entities.DonationStatus(req.Status)
	if donation.Status.IsTerminal() {
		return nil, domain.NewInvalidTransitionError(string(donation.Status), string(newStatus))
	}
	if newStatus == donation.Status {
		return nil, domain.NewValidationError("status", "donation is already in status "+string(donation.Status))
	}
	if newStatus == entities.DonationStatusCancelled && req.CancellationReason == "" {
		return nil, domain.NewValidationError("cancellation_reason", "cancellation requires a non-empty reason")
	}

	actorUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	oldStatus := donation.Status
	donation.Status = newStatus
	donation.UpdatedBy = actorUUID
	donation.UpdatedByName = actor.Name

	changes := entities.FieldChanges{
		"status": {Old: string(oldStatus), New: string(newStatus)},
	}

	if newStatus == entities.DonationStatusCompleted {
		images := req.CompletionImages
		if images == nil {
			images = []string{}
		}
		changes["completion_images"] = entities.FieldChange{Old: donation.CompletionImages, New: images}
		donation.CompletionImages = images
	}
	if newStatus == entities.DonationStatusCancelled {
		changes["cancellation_reason"] = entities.FieldChange{Old: donation.CancellationReason, New: req.CancellationReason}
		donation.CancellationReason = req.CancellationReason
	}

	entry := &entities.AuditEntry{
		ResourceType: entities.ResourceTypeDonation,
		ResourceID:   donation.ID,
		ResourceName: donation.DonorName,
		Action:       entities.AuditActionStatusChanged,
		ActorID:      actorUUID,
		ActorName:    actor.Name,
		Changes:      changes,
	}

	if err := s.donationRepository.UpdateWithAudit(ctx, donation, entry); err != nil {
		return nil, err
	}

	return toDonation(donation), nil
}

// ToggleDonationActive detaches a pledge from counting toward its family or
// reattaches it. This is not a status transition and is audited as updated.
func (s *donationService) ToggleDonationActive(ctx context.Context, id string, actor domain.Actor) (*domain.Donation, error) {
	unlock := s.locker.Lock(id)
	defer unlock()

	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	actorUUID, err := uuid.Parse(actor.ID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	wasActive := donation.IsActive
	donation.IsActive = !donation.IsActive
	donation.UpdatedBy = actorUUID
	donation.UpdatedByName = actor.Name

	entry := &entities.AuditEntry{
		ResourceType: entities.ResourceTypeDonation,
		ResourceID:   donation.ID,
		ResourceName: donation.DonorName,
		Action:       entities.AuditActionUpdated,
		ActorID:      actorUUID,
		ActorName:    actor.Name,
		Changes: entities.FieldChanges{
			"is_active": {Old: wasActive, New: donation.IsActive},
		},
	}

	if err := s.donationRepository.UpdateWithAudit(ctx, donation, entry); err != nil {
		return nil, err
	}

	return toDonation(donation), nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (*domain.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return toDonation(donation), nil
}

func (s *donationService) GetDonationsByFamily(ctx context.Context, familyID string, page, limit int) ([]*domain.Donation, int64, error) {
	donations, count, err := s.donationRepository.GetDonationsByFamily(ctx, familyID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]*domain.Donation, 0, len(donations))
	for _, donation := range donations {
		result = append(result, toDonation(donation))
	}
	return result, count, nil
}

func equalDates(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func formatDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}

func toDonation(donation *entities.Donation) *domain.Donation {
	images := donation.CompletionImages
	if images == nil {
		images = []string{}
	}
	return &domain.Donation{
		ID:                 donation.ID.String(),
		FamilyID:           donation.FamilyID.String(),
		DonorName:          donation.DonorName,
		DonorPhone:         donation.DonorPhone,
		DonorEmail:         donation.DonorEmail,
		Amount:             donation.Amount,
		Description:        donation.Description,
		Status:             string(donation.Status),
		DonationDate:       donation.DonationDate,
		DeliveryStatus:     donation.DeliveryStatus,
		CompletionImages:   images,
		CancellationReason: donation.CancellationReason,
		IsActive:           donation.IsActive,
		UpdatedByName:      donation.UpdatedByName,
		CreatedAt:          donation.CreatedAt,
		UpdatedAt:          donation.UpdatedAt,
	}
}
