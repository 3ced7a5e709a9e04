package reconciliation

import (
	"context"

	"gorm.io/gorm"

	"github.com/ysabouh/hama-togather-sub000/entities"
)

type (
	ReconciliationRepository interface {
		SumNeedsByActive(ctx context.Context, familyID string) (map[bool]float64, error)
		SumDonationsByStatus(ctx context.Context, familyID string) ([]DonationSum, error)
		CountFamilies(ctx context.Context) (int64, error)
		CountNeeds(ctx context.Context) (int64, error)
		CountDonations(ctx context.Context) (int64, error)
		SumCompletedDonations(ctx context.Context) (float64, error)
	}

	DonationSum struct {
		IsActive bool
		Status   string
		Total    float64
	}

	reconciliationRepository struct {
		db *gorm.DB
	}
)

func NewReconciliationRepository(db *gorm.DB) ReconciliationRepository {
	return &reconciliationRepository{db: db}
}

func (r *reconciliationRepository) SumNeedsByActive(ctx context.Context, familyID string) (map[bool]float64, error) {
	var rows []struct {
		IsActive bool
		Total    float64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.NeedEntry{}).
		Select("is_active, COALESCE(SUM(estimated_amount), 0) as total").
		Where("family_id = ?", familyID).
		Group("is_active").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	sums := make(map[bool]float64, len(rows))
	for _, row := range rows {
		sums[row.IsActive] = row.Total
	}
	return sums, nil
}

func (r *reconciliationRepository) SumDonationsByStatus(ctx context.Context, familyID string) ([]DonationSum, error) {
	var rows []DonationSum
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("is_active, status, COALESCE(SUM(amount), 0) as total").
		Where("family_id = ?", familyID).
		Group("is_active, status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reconciliationRepository) CountFamilies(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Family{}).Count(&count).Error
	return count, err
}

func (r *reconciliationRepository) CountNeeds(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.NeedEntry{}).Count(&count).Error
	return count, err
}

func (r *reconciliationRepository) CountDonations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Donation{}).Count(&count).Error
	return count, err
}

func (r *reconciliationRepository) SumCompletedDonations(ctx context.Context) (float64, error) {
	var result struct {
		Total float64
	}
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("status = ? AND is_active = ?", entities.DonationStatusCompleted, true).
		Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}
