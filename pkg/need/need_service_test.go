package need

import (
	"context"
	"sync"
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

type NeedServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service NeedService

	family   *entities.Family
	needType *entities.NeedType
	actor    domain.Actor
}

func TestNeedServiceSuite(t *testing.T) {
	suite.Run(t, new(NeedServiceSuite))
}

func (s *NeedServiceSuite) SetupTest() {
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
		&entities.AuditEntry{},
	))
	s.db = db

	auditRepository := audit.NewAuditRepository(db)
	familyRepository := family.NewFamilyRepository(db)
	needRepository := NewNeedRepository(db, auditRepository)
	s.service = NewNeedService(needRepository, familyRepository, auditRepository, utils.NewResourceLocker())

	s.needType = &entities.NeedType{ID: uuid.New(), Name: "Food Basket", IsActive: true}
	s.Require().NoError(db.Create(s.needType).Error)

	s.family = &entities.Family{
		ID:            uuid.New(),
		Name:          "Al-Hamwi",
		FamilyNumber:  "F-0001",
		MembersCount:  6,
		ChildrenCount: 3,
		IsActive:      true,
	}
	s.Require().NoError(db.Create(s.family).Error)

	s.actor = domain.Actor{ID: uuid.New().String(), Name: "Admin One"}
}

func (s *NeedServiceSuite) validRequest() domain.CreateNeedRequest {
	return domain.CreateNeedRequest{
		NeedTypeID:      s.needType.ID.String(),
		Quantity:        "2",
		EstimatedAmount: 150000,
		DurationType:    entities.DurationMonthly,
		Month:           "JAN-2025",
		Notes:           "urgent",
	}
}

func (s *NeedServiceSuite) auditEntries(resourceID string, action entities.AuditAction) []*entities.AuditEntry {
	var entries []*entities.AuditEntry
	query := s.db.Where("resource_id = ?", resourceID)
	if action != "" {
		query = query.Where("action = ?", action)
	}
	s.Require().NoError(query.Find(&entries).Error)
	return entries
}

func (s *NeedServiceSuite) TestCreateNeed() {
	ctx := context.Background()

	s.Run("monthly without month is rejected", func() {
		req := s.validRequest()
		req.Month = ""
		_, err := s.service.CreateNeed(ctx, s.family.ID.String(), req, s.actor)
		s.ErrorIs(err, domain.ErrValidation)
	})

	s.Run("one-time with month is rejected", func() {
		req := s.validRequest()
		req.DurationType = entities.DurationOneTime
		_, err := s.service.CreateNeed(ctx, s.family.ID.String(), req, s.actor)
		s.ErrorIs(err, domain.ErrValidation)
	})

	s.Run("unknown family is rejected", func() {
		_, err := s.service.CreateNeed(ctx, uuid.New().String(), s.validRequest(), s.actor)
		s.ErrorIs(err, domain.ErrFamilyNotFound)
	})

	s.Run("unknown need type is rejected", func() {
		req := s.validRequest()
		req.NeedTypeID = uuid.New().String()
		_, err := s.service.CreateNeed(ctx, s.family.ID.String(), req, s.actor)
		s.ErrorIs(err, domain.ErrValidation)
	})

	s.Run("rejected requests leave no rows behind", func() {
		var needs, entries int64
		s.Require().NoError(s.db.Model(&entities.NeedEntry{}).Count(&needs).Error)
		s.Require().NoError(s.db.Model(&entities.AuditEntry{}).Count(&entries).Error)
		s.Zero(needs)
		s.Zero(entries)
	})

	s.Run("valid request records the creation", func() {
		created, err := s.service.CreateNeed(ctx, s.family.ID.String(), s.validRequest(), s.actor)
		s.Require().NoError(err)
		s.Equal(s.family.ID.String(), created.FamilyID)
		s.Equal("Food Basket", created.NeedType)
		s.True(created.IsActive)

		entries := s.auditEntries(created.ID, entities.AuditActionCreated)
		s.Require().Len(entries, 1)
		s.Equal("Food Basket", entries[0].ResourceName)
		s.Equal(s.actor.Name, entries[0].ActorName)
		s.Empty(entries[0].Changes)
	})
}

func (s *NeedServiceSuite) TestUpdateNeed() {
	ctx := context.Background()

	created, err := s.service.CreateNeed(ctx, s.family.ID.String(), s.validRequest(), s.actor)
	s.Require().NoError(err)

	updateReq := func() domain.UpdateNeedRequest {
		return domain.UpdateNeedRequest{
			NeedTypeID:      created.NeedTypeID,
			Quantity:        created.Quantity,
			EstimatedAmount: created.EstimatedAmount,
			DurationType:    created.DurationType,
			Month:           created.Month,
			Notes:           created.Notes,
		}
	}

	s.Run("changed fields are diffed in the audit entry", func() {
		req := updateReq()
		req.Quantity = "3"
		req.EstimatedAmount = 200000

		updated, err := s.service.UpdateNeed(ctx, created.ID, req, s.actor)
		s.Require().NoError(err)
		s.Equal("3", updated.Quantity)

		entries := s.auditEntries(created.ID, entities.AuditActionUpdated)
		s.Require().Len(entries, 1)
		changes := entries[0].Changes
		s.Equal("2", changes["quantity"].Old)
		s.Equal("3", changes["quantity"].New)
		s.Contains(changes, "estimated_amount")
		s.NotContains(changes, "notes")
		s.NotContains(changes, "month")
	})

	s.Run("no-op update appends nothing", func() {
		req := updateReq()
		req.Quantity = "3"
		req.EstimatedAmount = 200000

		_, err := s.service.UpdateNeed(ctx, created.ID, req, s.actor)
		s.Require().NoError(err)

		entries := s.auditEntries(created.ID, entities.AuditActionUpdated)
		s.Len(entries, 1)
	})

	s.Run("monthly without month is rejected", func() {
		req := updateReq()
		req.Month = ""
		_, err := s.service.UpdateNeed(ctx, created.ID, req, s.actor)
		s.ErrorIs(err, domain.ErrValidation)
	})

	s.Run("unknown id", func() {
		_, err := s.service.UpdateNeed(ctx, uuid.New().String(), updateReq(), s.actor)
		s.ErrorIs(err, domain.ErrNeedNotFound)
	})
}

func (s *NeedServiceSuite) TestToggleNeed() {
	ctx := context.Background()

	created, err := s.service.CreateNeed(ctx, s.family.ID.String(), s.validRequest(), s.actor)
	s.Require().NoError(err)

	s.Run("double toggle records deactivation then activation", func() {
		toggled, err := s.service.ToggleNeed(ctx, created.ID, s.actor)
		s.Require().NoError(err)
		s.False(toggled.IsActive)

		toggled, err = s.service.ToggleNeed(ctx, created.ID, s.actor)
		s.Require().NoError(err)
		s.True(toggled.IsActive)

		deactivated := s.auditEntries(created.ID, entities.AuditActionDeactivated)
		s.Require().Len(deactivated, 1)
		s.Equal(true, deactivated[0].Changes["is_active"].Old)
		s.Equal(false, deactivated[0].Changes["is_active"].New)

		activated := s.auditEntries(created.ID, entities.AuditActionActivated)
		s.Require().Len(activated, 1)
		s.Equal(false, activated[0].Changes["is_active"].Old)
		s.Equal(true, activated[0].Changes["is_active"].New)
	})

	s.Run("unknown id", func() {
		_, err := s.service.ToggleNeed(ctx, uuid.New().String(), s.actor)
		s.ErrorIs(err, domain.ErrNeedNotFound)
	})
}

func (s *NeedServiceSuite) TestToggleNeedConcurrent() {
	ctx := context.Background()

	created, err := s.service.CreateNeed(ctx, s.family.ID.String(), s.validRequest(), s.actor)
	s.Require().NoError(err)

	const toggles = 8
	errs := make(chan error, toggles)
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.ToggleNeed(ctx, created.ID, s.actor)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	// every toggle saw the state its predecessor left behind: starting from
	// active, the recorded old/new pairs must alternate with no stale reads
	deactivated := s.auditEntries(created.ID, entities.AuditActionDeactivated)
	activated := s.auditEntries(created.ID, entities.AuditActionActivated)
	s.Require().Len(deactivated, toggles/2)
	s.Require().Len(activated, toggles/2)
	for _, entry := range deactivated {
		s.Equal(true, entry.Changes["is_active"].Old)
		s.Equal(false, entry.Changes["is_active"].New)
	}
	for _, entry := range activated {
		s.Equal(false, entry.Changes["is_active"].Old)
		s.Equal(true, entry.Changes["is_active"].New)
	}

	var need entities.NeedEntry
	s.Require().NoError(s.db.Where("id = ?", created.ID).First(&need).Error)
	s.True(need.IsActive)
}

func (s *NeedServiceSuite) TestDeleteNeed() {
	ctx := context.Background()

	s.Run("never-deactivated entry is deleted with a full snapshot", func() {
		created, err := s.service.CreateNeed(ctx, s.family.ID.String(), s.validRequest(), s.actor)
		s.Require().NoError(err)

		s.Require().NoError(s.service.DeleteNeed(ctx, created.ID, s.actor))

		var count int64
		s.Require().NoError(s.db.Model(&entities.NeedEntry{}).Where("id = ?", created.ID).Count(&count).Error)
		s.Zero(count)

		entries := s.auditEntries(created.ID, entities.AuditActionDeleted)
		s.Require().Len(entries, 1)
		changes := entries[0].Changes
		s.Equal("2", changes["quantity"].Old)
		s.Nil(changes["quantity"].New)
		s.Equal(true, changes["is_active"].Old)
		s.Nil(changes["is_active"].New)
	})

	s.Run("entry with a recorded deactivation cannot be deleted", func() {
		created, err := s.service.CreateNeed(ctx, s.family.ID.String(), s.validRequest(), s.actor)
		s.Require().NoError(err)

		_, err = s.service.ToggleNeed(ctx, created.ID, s.actor)
		s.Require().NoError(err)

		err = s.service.DeleteNeed(ctx, created.ID, s.actor)
		s.ErrorIs(err, domain.ErrInvalidTransition)

		var count int64
		s.Require().NoError(s.db.Model(&entities.NeedEntry{}).Where("id = ?", created.ID).Count(&count).Error)
		s.EqualValues(1, count)
		s.Empty(s.auditEntries(created.ID, entities.AuditActionDeleted))
	})

	s.Run("reactivation does not restore deletability", func() {
		created, err := s.service.CreateNeed(ctx, s.family.ID.String(), s.validRequest(), s.actor)
		s.Require().NoError(err)

		_, err = s.service.ToggleNeed(ctx, created.ID, s.actor)
		s.Require().NoError(err)
		_, err = s.service.ToggleNeed(ctx, created.ID, s.actor)
		s.Require().NoError(err)

		err = s.service.DeleteNeed(ctx, created.ID, s.actor)
		s.ErrorIs(err, domain.ErrInvalidTransition)
	})

	s.Run("unknown id", func() {
		err := s.service.DeleteNeed(ctx, uuid.New().String(), s.actor)
		s.ErrorIs(err, domain.ErrNeedNotFound)
	})
}
