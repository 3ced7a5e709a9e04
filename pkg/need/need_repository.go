package need

import (
	"context"

	"gorm.io/gorm"

	"github.com/ysabouh/hama-togather-sub000/entities"
	"github.com/ysabouh/hama-togather-sub000/pkg/audit"
)

type (
	// NeedRepository persists need entries. Every mutating method writes the
	// new state and its audit entry in one transaction so neither can be
	// observed without the other.
	NeedRepository interface {
		CreateWithAudit(ctx context.Context, need *entities.NeedEntry, entry *entities.AuditEntry) error
		UpdateWithAudit(ctx context.Context, need *entities.NeedEntry, entry *entities.AuditEntry) error
		DeleteWithAudit(ctx context.Context, need *entities.NeedEntry, entry *entities.AuditEntry) error
		GetNeedByID(ctx context.Context, id string) (*entities.NeedEntry, error)
		GetNeedsByFamily(ctx context.Context, familyID string) ([]*entities.NeedEntry, error)
	}

	needRepository struct {
		db              *gorm.DB
		auditRepository audit.AuditRepository
	}
)

func NewNeedRepository(db *gorm.DB, auditRepository audit.AuditRepository) NeedRepository {
	return &needRepository{db: db, auditRepository: auditRepository}
}

func (r *needRepository) CreateWithAudit(ctx context.Context, need *entities.NeedEntry, entry *entities.AuditEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(need).Error; err != nil {
			return err
		}
		return r.auditRepository.AppendTx(tx, entry)
	})
}

func (r *needRepository) UpdateWithAudit(ctx context.Context, need *entities.NeedEntry, entry *entities.AuditEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(need).Error; err != nil {
			return err
		}
		return r.auditRepository.AppendTx(tx, entry)
	})
}

func (r *needRepository) DeleteWithAudit(ctx context.Context, need *entities.NeedEntry, entry *entities.AuditEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", need.ID).Delete(&entities.NeedEntry{}).Error; err != nil {
			return err
		}
		return r.auditRepository.AppendTx(tx, entry)
	})
}

func (r *needRepository) GetNeedByID(ctx context.Context, id string) (*entities.NeedEntry, error) {
	var need entities.NeedEntry
	if err := r.db.WithContext(ctx).
		Preload("NeedType").
		Where("id = ?", id).
		First(&need).Error; err != nil {
		return nil, err
	}
	return &need, nil
}

func (r *needRepository) GetNeedsByFamily(ctx context.Context, familyID string) ([]*entities.NeedEntry, error) {
	var needs []*entities.NeedEntry
	if err := r.db.WithContext(ctx).
		Preload("NeedType").
		Where("family_id = ?", familyID).
		Order("created_at DESC").
		Find(&needs).Error; err != nil {
		return nil, err
	}
	return needs, nil
}
