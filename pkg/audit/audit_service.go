package audit

import (
	"context"

	"github.com/ysabouh/hama-togather-sub000/domain"
	"github.com/ysabouh/hama-togather-sub000/entities"
)

type (
	AuditService interface {
		QueryLog(ctx context.Context, req domain.AuditQuery) (*domain.AuditLogResult, error)
	}

	auditService struct {
		auditRepository AuditRepository
	}
)

func NewAuditService(auditRepository AuditRepository) AuditService {
	return &auditService{auditRepository: auditRepository}
}

func (s *auditService) QueryLog(ctx context.Context, req domain.AuditQuery) (*domain.AuditLogResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}

	entries, count, err := s.auditRepository.Query(ctx, QueryFilter{
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ActionType:   req.ActionType,
		Search:       req.Search,
		Page:         req.Page,
		PageSize:     req.PageSize,
	})
	if err != nil {
		return nil, err
	}

	result := make([]*domain.AuditEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toAuditEntry(entry))
	}

	totalPages := int((count + int64(req.PageSize) - 1) / int64(req.PageSize))
	return &domain.AuditLogResult{
		Entries: result,
		Pagination: domain.Pagination{
			CurrentPage: req.Page,
			PerPage:     req.PageSize,
			TotalCount:  count,
			TotalPages:  totalPages,
			HasNext:     req.Page < totalPages,
			HasPrev:     req.Page > 1,
		},
	}, nil
}

func toAuditEntry(entry *entities.AuditEntry) *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:           entry.ID.String(),
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID.String(),
		ResourceName: entry.ResourceName,
		Action:       string(entry.Action),
		ActorID:      entry.ActorID.String(),
		ActorName:    entry.ActorName,
		Changes:      entry.Changes,
		CreatedAt:    entry.CreatedAt,
	}
}
