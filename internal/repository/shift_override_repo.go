package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"izmena/internal/model"
)

// ShiftOverrideRepository is the shift_overrides data-access interface.
type ShiftOverrideRepository interface {
	GetByDate(ctx context.Context, userID string, date time.Time) (*model.ShiftOverride, error)
	// ListByDateRange returns overrides between start and end inclusive,
	// in ascending date order.
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]model.ShiftOverride, error)
	// Upsert inserts the override or, when one already exists for the
	// (user, date) pair, replaces its shift and reason. Last write wins
	// deterministically under the unique constraint.
	Upsert(ctx context.Context, override *model.ShiftOverride) error
}

type shiftOverrideRepo struct {
	db *gorm.DB
}

// NewShiftOverrideRepo creates the gorm-backed ShiftOverrideRepository.
func NewShiftOverrideRepo(db *gorm.DB) ShiftOverrideRepository {
	return &shiftOverrideRepo{db: db}
}

func (r *shiftOverrideRepo) GetByDate(ctx context.Context, userID string, date time.Time) (*model.ShiftOverride, error) {
	var override model.ShiftOverride
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		First(&override).Error
	if err != nil {
		return nil, err
	}
	return &override, nil
}

func (r *shiftOverrideRepo) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]model.ShiftOverride, error) {
	var overrides []model.ShiftOverride
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?",
			userID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date ASC").
		Find(&overrides).Error
	return overrides, err
}

func (r *shiftOverrideRepo) Upsert(ctx context.Context, override *model.ShiftOverride) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"new_shift", "reason", "updated_at"}),
		}).
		Create(override).Error
}
