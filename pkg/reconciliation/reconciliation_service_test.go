package reconciliation

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
	"github.com/ysabouh/hama-togather-sub000/pkg/family"
)

type ReconciliationServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service ReconciliationService

	family *entities.Family
}

func TestReconciliationServiceSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceSuite))
}

func (s *ReconciliationServiceSuite) SetupTest() {
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
		&entities.NeedType{},
		&entities.Family{},
		&entities.NeedEntry{},
		&entities.Donation{},
	))
	s.db = db

	s.service = NewReconciliationService(NewReconciliationRepository(db), family.NewFamilyRepository(db))

	s.family = &entities.Family{
		ID:           uuid.New(),
		Name:         "Al-Hamwi",
		FamilyNumber: "F-0003",
		IsActive:     true,
	}
	s.Require().NoError(db.Create(s.family).Error)
}

func (s *ReconciliationServiceSuite) seedNeed(amount float64, active bool) {
	s.Require().NoError(s.db.Create(&entities.NeedEntry{
		ID:              uuid.New(),
		FamilyID:        s.family.ID,
		NeedTypeID:      uuid.New(),
		EstimatedAmount: amount,
		DurationType:    entities.DurationOneTime,
		IsActive:        active,
		CreatedBy:       uuid.New(),
		UpdatedBy:       uuid.New(),
	}).Error)
}

func (s *ReconciliationServiceSuite) seedDonation(amount float64, status entities.DonationStatus, active bool) {
	s.Require().NoError(s.db.Create(&entities.Donation{
		ID:               uuid.New(),
		FamilyID:         s.family.ID,
		DonorName:        "Sara H",
		Amount:           amount,
		Status:           status,
		CompletionImages: []string{},
		IsActive:         active,
		UpdatedBy:        uuid.New(),
	}).Error)
}

func (s *ReconciliationServiceSuite) TestReconcile() {
	ctx := context.Background()

	s.Run("unknown family", func() {
		_, err := s.service.Reconcile(ctx, uuid.New().String())
		s.ErrorIs(err, domain.ErrFamilyNotFound)
	})

	s.Run("no rows at all yields zeros, not errors", func() {
		result, err := s.service.Reconcile(ctx, s.family.ID.String())
		s.Require().NoError(err)
		s.Zero(result.NeedsActiveTotal)
		s.Zero(result.DonationsActive.Completed)
		s.Zero(result.CoveragePercent)
	})

	s.Run("donations without needs still yield zero coverage", func() {
		s.seedDonation(40000, entities.DonationStatusCompleted, true)
		result, err := s.service.Reconcile(ctx, s.family.ID.String())
		s.Require().NoError(err)
		s.Equal(40000.0, result.DonationsActive.Completed)
		s.Zero(result.CoveragePercent)
	})
}

func (s *ReconciliationServiceSuite) TestReconcileCoverage() {
	ctx := context.Background()

	s.seedNeed(60000, true)
	s.seedNeed(40000, true)
	s.seedDonation(40000, entities.DonationStatusCompleted, true)
	s.seedDonation(10000, entities.DonationStatusPending, true)

	result, err := s.service.Reconcile(ctx, s.family.ID.String())
	s.Require().NoError(err)

	s.Equal(100000.0, result.NeedsActiveTotal)
	s.Zero(result.NeedsInactiveTotal)
	s.Equal(40000.0, result.DonationsActive.Completed)
	s.Equal(10000.0, result.DonationsActive.Pending)
	s.Equal(40.0, result.CoveragePercent)
}

func (s *ReconciliationServiceSuite) TestReconcileBuckets() {
	ctx := context.Background()

	s.seedNeed(80000, true)
	s.seedNeed(20000, false)
	s.seedDonation(30000, entities.DonationStatusCompleted, true)
	s.seedDonation(5000, entities.DonationStatusCancelled, true)
	s.seedDonation(7000, entities.DonationStatusCompleted, false)

	result, err := s.service.Reconcile(ctx, s.family.ID.String())
	s.Require().NoError(err)

	s.Equal(80000.0, result.NeedsActiveTotal)
	s.Equal(20000.0, result.NeedsInactiveTotal)
	s.Equal(30000.0, result.DonationsActive.Completed)
	s.Equal(5000.0, result.DonationsActive.Cancelled)
	s.Equal(7000.0, result.DonationsInactive.Completed)
	s.Zero(result.DonationsInactive.Pending)

	// completed active against all recorded needs: 30000 / 100000
	s.Equal(30.0, result.CoveragePercent)
}

func (s *ReconciliationServiceSuite) TestReconcileClampsCoverage() {
	ctx := context.Background()

	s.seedNeed(1000, true)
	s.seedDonation(5000, entities.DonationStatusCompleted, true)

	result, err := s.service.Reconcile(ctx, s.family.ID.String())
	s.Require().NoError(err)
	s.Equal(100.0, result.CoveragePercent)
}

func (s *ReconciliationServiceSuite) TestGetPlatformStats() {
	ctx := context.Background()

	s.seedNeed(1000, true)
	s.seedNeed(2000, false)
	s.seedDonation(500, entities.DonationStatusCompleted, true)
	s.seedDonation(700, entities.DonationStatusCompleted, false) // detached, excluded from the sum
	s.seedDonation(900, entities.DonationStatusPending, true)

	stats, err := s.service.GetPlatformStats(ctx)
	s.Require().NoError(err)
	s.EqualValues(1, stats.Families)
	s.EqualValues(2, stats.NeedEntries)
	s.EqualValues(3, stats.Donations)
	s.Equal(500.0, stats.TotalCompleted)
}
