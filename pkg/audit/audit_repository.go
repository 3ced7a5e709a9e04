package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ysabouh/hama-togather-sub000/entities"
)

// allowedFields constrains which field names may appear in an audit entry's
// changes map, per resource type. Checked at write time.
var allowedFields = map[string]map[string]bool{
	entities.ResourceTypeNeedEntry: {
		"need_type_id":     true,
		"quantity":         true,
		"estimated_amount": true,
		"duration_type":    true,
		"month":            true,
		"notes":            true,
		"is_active":        true,
	},
	entities.ResourceTypeDonation: {
		"donor_name":          true,
		"donor_phone":         true,
		"donor_email":         true,
		"amount":              true,
		"description":         true,
		"donation_date":       true,
		"delivery_status":     true,
		"status":              true,
		"completion_images":   true,
		"cancellation_reason": true,
		"is_active":           true,
	},
}

type (
	AuditRepository interface {
		Append(ctx context.Context, entry *entities.AuditEntry) error
		// AppendTx writes the entry inside the caller's transaction so a
		// resource mutation and its audit record commit together.
		AppendTx(tx *gorm.DB, entry *entities.AuditEntry) error
		Query(ctx context.Context, q QueryFilter) ([]*entities.AuditEntry, int64, error)
		HasAction(ctx context.Context, resourceType string, resourceID uuid.UUID, action entities.AuditAction) (bool, error)
	}

	QueryFilter struct {
		ResourceType string
		ResourceID   string
		ActionType   string
		Search       string
		Page         int
		PageSize     int
	}

	auditRepository struct {
		db *gorm.DB
	}
)

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func validateEntry(entry *entities.AuditEntry) error {
	fields, ok := allowedFields[entry.ResourceType]
	if !ok {
		return fmt.Errorf("unknown audit resource type %q", entry.ResourceType)
	}
	for name := range entry.Changes {
		if !fields[name] {
			return fmt.Errorf("field %q is not auditable for resource type %q", name, entry.ResourceType)
		}
	}
	return nil
}

func prepare(entry *entities.AuditEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Changes == nil {
		entry.Changes = entities.FieldChanges{}
	}
	return nil
}

func (r *auditRepository) Append(ctx context.Context, entry *entities.AuditEntry) error {
	if err := prepare(entry); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) AppendTx(tx *gorm.DB, entry *entities.AuditEntry) error {
	if err := prepare(entry); err != nil {
		return err
	}
	return tx.Create(entry).Error
}

func (r *auditRepository) Query(ctx context.Context, q QueryFilter) ([]*entities.AuditEntry, int64, error) {
	var entries []*entities.AuditEntry
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.AuditEntry{})

	if q.ResourceType != "" {
		query = query.Where("resource_type = ?", q.ResourceType)
	}
	if q.ResourceID != "" {
		query = query.Where("resource_id = ?", q.ResourceID)
	}
	if q.ActionType != "" {
		query = query.Where("action = ?", q.ActionType)
	}
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where("lower(resource_name) LIKE ? OR lower(actor_name) LIKE ?", pattern, pattern)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	// secondary id ordering keeps pages stable when timestamps tie
	offset := (q.Page - 1) * q.PageSize
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(q.PageSize).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}

func (r *auditRepository) HasAction(ctx context.Context, resourceType string, resourceID uuid.UUID, action entities.AuditAction) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.AuditEntry{}).
		Where("resource_type = ? AND resource_id = ? AND action = ?", resourceType, resourceID, action).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
