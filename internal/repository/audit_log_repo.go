package repository

import (
	"context"

	"gorm.io/gorm"

	"izmena/internal/model"
)

// AuditLogRepository is the append-only audit_logs interface.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.AuditLog, error)
}

type auditLogRepo struct {
	db *gorm.DB
}

// NewAuditLogRepo creates the gorm-backed AuditLogRepository.
func NewAuditLogRepo(db *gorm.DB) AuditLogRepository {
	return &auditLogRepo{db: db}
}

func (r *auditLogRepo) Create(ctx context.Context, entry *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditLogRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.AuditLog, error) {
	var entries []model.AuditLog
	err := r.db.WithContext(ctx).
		Where("performed_by = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
