package reconciliation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ysabouh/hama-togather-sub000/domain"
	"github.com/ysabouh/hama-togather-sub000/entities"
	"github.com/ysabouh/hama-togather-sub000/pkg/family"
)

type (
	// ReconciliationService derives per-family financial rollups from the
	// current need entry and donation rows. Results are computed fresh on
	// every call and never stored.
	ReconciliationService interface {
		Reconcile(ctx context.Context, familyID string) (*domain.Reconciliation, error)
		GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error)
	}

	reconciliationService struct {
		reconciliationRepository ReconciliationRepository
		familyRepository         family.FamilyRepository
	}
)

func NewReconciliationService(
	reconciliationRepository ReconciliationRepository,
	familyRepository family.FamilyRepository,
) ReconciliationService {
	return &reconciliationService{
		reconciliationRepository: reconciliationRepository,
		familyRepository:         familyRepository,
	}
}

func (s *reconciliationService) Reconcile(ctx context.Context, familyID string) (*domain.Reconciliation, error) {
	if _, err := s.familyRepository.GetFamilyByID(ctx, familyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFamilyNotFound
		}
		return nil, err
	}

	needSums, err := s.reconciliationRepository.SumNeedsByActive(ctx, familyID)
	if err != nil {
		return nil, err
	}

	donationSums, err := s.reconciliationRepository.SumDonationsByStatus(ctx, familyID)
	if err != nil {
		return nil, err
	}

	result := &domain.Reconciliation{
		FamilyID:           familyID,
		NeedsActiveTotal:   needSums[true],
		NeedsInactiveTotal: needSums[false],
	}

	for _, row := range donationSums {
		totals := &result.DonationsActive
		if !row.IsActive {
			totals = &result.DonationsInactive
		}
		switch entities.DonationStatus(row.Status) {
		case entities.DonationStatusPending:
			totals.Pending = row.Total
		case entities.DonationStatusInProgress:
			totals.Inprogress = row.Total
		case entities.DonationStatusCompleted:
			totals.Completed = row.Total
		case entities.DonationStatusCancelled:
			totals.Cancelled = row.Total
		case entities.DonationStatusRejected:
			totals.Rejected = row.Total
		}
	}

	result.CoveragePercent = coverage(result.DonationsActive.Completed, result.NeedsActiveTotal+result.NeedsInactiveTotal)
	return result, nil
}

// coverage reports completed active donations as a percentage of total
// recorded needs, clamped to [0, 100]. A family with no needs has zero
// coverage rather than a division error.
func coverage(completed, needsTotal float64) float64 {
	if needsTotal <= 0 {
		return 0
	}
	percent := completed / needsTotal * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func (s *reconciliationService) GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	families, err := s.reconciliationRepository.CountFamilies(ctx)
	if err != nil {
		return nil, err
	}
	needs, err := s.reconciliationRepository.CountNeeds(ctx)
	if err != nil {
		return nil, err
	}
	donations, err := s.reconciliationRepository.CountDonations(ctx)
	if err != nil {
		return nil, err
	}
	totalCompleted, err := s.reconciliationRepository.SumCompletedDonations(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.PlatformStats{
		Families:       families,
		NeedEntries:    needs,
		Donations:      donations,
		TotalCompleted: totalCompleted,
	}, nil
}
