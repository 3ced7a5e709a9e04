package donation

import (
	"context"

	"gorm.io/gorm"

	"github.com/ysabouh/hama-togather-sub000/entities"
	"github.com/ysabouh/hama-togather-sub000/pkg/audit"
)

type (
	// DonationRepository persists donations. Mutating methods commit the new
	// state together with its audit entry in one transaction.
	DonationRepository interface {
		CreateWithAudit(ctx context.Context, donation *entities.Donation, entry *entities.AuditEntry) error
		UpdateWithAudit(ctx context.Context, donation *entities.Donation, entry *entities.AuditEntry) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetDonationsByFamily(ctx context.Context, familyID string, page, limit int) ([]*entities.Donation, int64, error)
	}

	donationRepository struct {
		db              *gorm.DB
		auditRepository audit.AuditRepository
	}
)

func NewDonationRepository(db *gorm.DB, auditRepository audit.AuditRepository) DonationRepository {
	return &donationRepository{db: db, auditRepository: auditRepository}
}

func (r *donationRepository) CreateWithAudit(ctx context.Context, donation *entities.Donation, entry *entities.AuditEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(donation).Error; err != nil {
			return err
		}
		return r.auditRepository.AppendTx(tx, entry)
	})
}

func (r *donationRepository) UpdateWithAudit(ctx context.Context, donation *entities.Donation, entry *entities.AuditEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(donation).Error; err != nil {
			return err
		}
		return r.auditRepository.AppendTx(tx, entry)
	})
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonationsByFamily(ctx context.Context, familyID string, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("family_id = ?", familyID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}
