package donation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ysabouh/hama-togather-sub000/domain"
	"github.com/ysabouh/hama-togather-sub000/entities"
	"github.com/ysabouh/hama-togather-sub000/internal/utils"
	"github.com/ysabouh/hama-togather-sub000/pkg/audit"
	"github.com/ysabouh/hama-togather-sub000/pkg/family"
)

type DonationServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service DonationService

	family *entities.Family
	actor  domain.Actor
}

func TestDonationServiceSuite(t *testing.T) {
	suite.Run(t, new(DonationServiceSuite))
}

func (s *DonationServiceSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	s.Require().NoError(err)

	// a single connection keeps every statement on the same in-memory database
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(db.AutoMigrate(
		&entities.Neighborhood{},
		&entities.FamilyCategory{},
		&entities.IncomeLevel{},
		&entities.NeedAssessment{},
		&entities.Family{},
		&entities.Donation{},
		&entities.AuditEntry{},
	))
	s.db = db

	auditRepository := audit.NewAuditRepository(db)
	familyRepository := family.NewFamilyRepository(db)
	donationRepository := NewDonationRepository(db, auditRepository)
	s.service = NewDonationService(donationRepository, familyRepository, utils.NewResourceLocker())

	s.family = &entities.Family{
		ID:           uuid.New(),
		Name:         "Al-Khatib",
		FamilyNumber: "F-0002",
		IsActive:     true,
	}
	s.Require().NoError(db.Create(s.family).Error)

	s.actor = domain.Actor{ID: uuid.New().String(), Name: "Admin Two"}
}

func (s *DonationServiceSuite) createDonation() *domain.Donation {
	created, err := s.service.CreateDonation(context.Background(), s.family.ID.String(), domain.CreateDonationRequest{
		DonorName:    "Sara H",
		DonorPhone:   "0933000000",
		Amount:       50000,
		Description:  "winter support",
		DonationDate: "2025-01-15",
	}, s.actor)
	s.Require().NoError(err)
	return created
}

func (s *DonationServiceSuite) auditEntries(resourceID string, action entities.AuditAction) []*entities.AuditEntry {
	var entries []*entities.AuditEntry
	query := s.db.Where("resource_id = ?", resourceID)
	if action != "" {
		query = query.Where("action = ?", action)
	}
	s.Require().NoError(query.Find(&entries).Error)
	return entries
}

func (s *DonationServiceSuite) TestCreateDonation() {
	ctx := context.Background()

	s.Run("new donation starts pending with no evidence", func() {
		created := s.createDonation()
		s.Equal(string(entities.DonationStatusPending), created.Status)
		s.Empty(created.CompletionImages)
		s.Empty(created.CancellationReason)
		s.True(created.IsActive)

		entries := s.auditEntries(created.ID, entities.AuditActionCreated)
		s.Require().Len(entries, 1)
		s.Equal("Sara H", entries[0].ResourceName)
		s.Empty(entries[0].Changes)
	})

	s.Run("unknown family is rejected", func() {
		_, err := s.service.CreateDonation(ctx, uuid.New().String(), domain.CreateDonationRequest{
			DonorName: "Sara H",
			Amount:    1000,
		}, s.actor)
		s.ErrorIs(err, domain.ErrFamilyNotFound)
	})

	s.Run("malformed donation date is rejected", func() {
		_, err := s.service.CreateDonation(ctx, s.family.ID.String(), domain.CreateDonationRequest{
			DonorName:    "Sara H",
			Amount:       1000,
			DonationDate: "15/01/2025",
		}, s.actor)
		s.ErrorIs(err, domain.ErrValidation)
	})
}

func (s *DonationServiceSuite) TestChangeStatus() {
	ctx := context.Background()

	s.Run("cancellation requires a reason", func() {
		created := s.createDonation()

		_, err := s.service.ChangeStatus(ctx, created.ID, domain.UpdateDonationStatusRequest{
			Status: "cancelled",
		}, s.actor)
		s.ErrorIs(err, domain.ErrValidation)

		current, err := s.service.GetDonationByID(ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(string(entities.DonationStatusPending), current.Status)
		s.Empty(s.auditEntries(created.ID, entities.AuditActionStatusChanged))
	})

	s.Run("cancellation with a reason records one transition", func() {
		created := s.createDonation()

		cancelled, err := s.service.ChangeStatus(ctx, created.ID, domain.UpdateDonationStatusRequest{
			Status:             "cancelled",
			CancellationReason: "donor withdrew",
		}, s.actor)
		s.Require().NoError(err)
		s.Equal(string(entities.DonationStatusCancelled), cancelled.Status)
		s.Equal("donor withdrew", cancelled.CancellationReason)

		entries := s.auditEntries(created.ID, entities.AuditActionStatusChanged)
		s.Require().Len(entries, 1)
		changes := entries[0].Changes
		s.Equal("pending", changes["status"].Old)
		s.Equal("cancelled", changes["status"].New)
		s.Equal("donor withdrew", changes["cancellation_reason"].New)
	})

	s.Run("terminal states admit no further transition", func() {
		created := s.createDonation()

		_, err := s.service.ChangeStatus(ctx, created.ID, domain.UpdateDonationStatusRequest{
			Status: "rejected",
		}, s.actor)
		s.Require().NoError(err)

		_, err = s.service.ChangeStatus(ctx, created.ID, domain.UpdateDonationStatusRequest{
			Status: "inprogress",
		}, s.actor)
		s.ErrorIs(err, domain.ErrInvalidTransition)

		s.Len(s.auditEntries(created.ID, entities.AuditActionStatusChanged), 1)
	})

	s.Run("transition to the current status is rejected", func() {
		created := s.createDonation()

		_, err := s.service.ChangeStatus(ctx, created.ID, domain.UpdateDonationStatusRequest{
			Status: "inprogress",
		}, s.actor)
		s.Require().NoError(err)

		_, err = s.service.ChangeStatus(ctx, created.ID, domain.UpdateDonationStatusRequest{
			Status: "inprogress",
		}, s.actor)
		s.ErrorIs(err, domain.ErrValidation)
	})

	s.Run("completion stores the evidence images", func() {
		created := s.createDonation()

		completed, err := s.service.ChangeStatus(ctx, created.ID, domain.UpdateDonationStatusRequest{
			Status:           "completed",
			CompletionImages: []string{"https://cdn.example.com/receipt-1.jpg"},
		}, s.actor)
		s.Require().NoError(err)
		s.Equal([]string{"https://cdn.example.com/receipt-1.jpg"}, completed.CompletionImages)

		entries := s.auditEntries(created.ID, entities.AuditActionStatusChanged)
		s.Require().Len(entries, 1)
		s.Contains(entries[0].Changes, "completion_images")
	})

	s.Run("completion without images is accepted", func() {
		created := s.createDonation()

		completed, err := s.service.ChangeStatus(ctx, created.ID, domain.UpdateDonationStatusRequest{
			Status: "completed",
		}, s.actor)
		s.Require().NoError(err)
		s.NotNil(completed.CompletionImages)
		s.Empty(completed.CompletionImages)
	})

	s.Run("unknown id", func() {
		_, err := s.service.ChangeStatus(ctx, uuid.New().String(), domain.UpdateDonationStatusRequest{
			Status: "inprogress",
		}, s.actor)
		s.ErrorIs(err, domain.ErrDonationNotFound)
	})
}

func (s *DonationServiceSuite) TestUpdateDonationDetails() {
	ctx := context.Background()
	created := s.createDonation()

	updateReq := func() domain.UpdateDonationRequest {
		return domain.UpdateDonationRequest{
			DonorName:    created.DonorName,
			DonorPhone:   created.DonorPhone,
			DonorEmail:   created.DonorEmail,
			Amount:       created.Amount,
			Description:  created.Description,
			DonationDate: "2025-01-15",
		}
	}

	s.Run("changed fields are diffed including the date", func() {
		req := updateReq()
		req.Amount = 75000
		req.DonationDate = "2025-02-01"

		updated, err := s.service.UpdateDonationDetails(ctx, created.ID, req, s.actor)
		s.Require().NoError(err)
		s.Equal(75000.0, updated.Amount)

		entries := s.auditEntries(created.ID, entities.AuditActionUpdated)
		s.Require().Len(entries, 1)
		changes := entries[0].Changes
		s.EqualValues(50000, changes["amount"].Old)
		s.EqualValues(75000, changes["amount"].New)
		s.Equal("2025-01-15", changes["donation_date"].Old)
		s.Equal("2025-02-01", changes["donation_date"].New)
		s.NotContains(changes, "donor_name")
	})

	s.Run("no-op update appends nothing", func() {
		req := updateReq()
		req.Amount = 75000
		req.DonationDate = "2025-02-01"

		_, err := s.service.UpdateDonationDetails(ctx, created.ID, req, s.actor)
		s.Require().NoError(err)
		s.Len(s.auditEntries(created.ID, entities.AuditActionUpdated), 1)
	})
}

func (s *DonationServiceSuite) TestToggleDonationActive() {
	ctx := context.Background()
	created := s.createDonation()

	toggled, err := s.service.ToggleDonationActive(ctx, created.ID, s.actor)
	s.Require().NoError(err)
	s.False(toggled.IsActive)
	s.Equal(string(entities.DonationStatusPending), toggled.Status)

	entries := s.auditEntries(created.ID, entities.AuditActionUpdated)
	s.Require().Len(entries, 1)
	s.Equal(true, entries[0].Changes["is_active"].Old)
	s.Equal(false, entries[0].Changes["is_active"].New)
}
