package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates all data-access interfaces.
type Repository struct {
	db *gorm.DB

	User          UserRepository
	DailyRecord   DailyRecordRepository
	ShiftOverride ShiftOverrideRepository
	Leave         LeaveRepository
	ExtraHours    ExtraHoursRepository
	AuditLog      AuditLogRepository
}

// NewRepository builds the aggregate over a gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:            db,
		User:          NewUserRepo(db),
		DailyRecord:   NewDailyRecordRepo(db),
		ShiftOverride: NewShiftOverrideRepo(db),
		Leave:         NewLeaveRepo(db),
		ExtraHours:    NewExtraHoursRepo(db),
		AuditLog:      NewAuditLogRepo(db),
	}
}

// BeginTx opens a transaction. Pair with WithTx to run repository calls
// inside it; the caller commits or rolls back.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx returns a Repository whose implementations run against tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
