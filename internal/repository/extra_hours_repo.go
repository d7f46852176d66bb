package repository

import (
	"context"

	"gorm.io/gorm"

	"izmena/internal/model"
)

// ExtraHoursRepository is the extra_hours data-access interface.
type ExtraHoursRepository interface {
	Create(ctx context.Context, entry *model.ExtraHours) error
	GetByID(ctx context.Context, id string) (*model.ExtraHours, error)
	ListByUser(ctx context.Context, userID string) ([]model.ExtraHours, error)
	Update(ctx context.Context, entry *model.ExtraHours) error
	// SumApprovedByType totals approved hours of one entry type.
	SumApprovedByType(ctx context.Context, userID, entryType string) (int, error)
}

type extraHoursRepo struct {
	db *gorm.DB
}

// NewExtraHoursRepo creates the gorm-backed ExtraHoursRepository.
func NewExtraHoursRepo(db *gorm.DB) ExtraHoursRepository {
	return &extraHoursRepo{db: db}
}

func (r *extraHoursRepo) Create(ctx context.Context, entry *model.ExtraHours) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *extraHoursRepo) GetByID(ctx context.Context, id string) (*model.ExtraHours, error) {
	var entry model.ExtraHours
	err := r.db.WithContext(ctx).
		Where("extra_hours_id = ?", id).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *extraHoursRepo) ListByUser(ctx context.Context, userID string) ([]model.ExtraHours, error) {
	var entries []model.ExtraHours
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *extraHoursRepo) Update(ctx context.Context, entry *model.ExtraHours) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *extraHoursRepo) SumApprovedByType(ctx context.Context, userID, entryType string) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.ExtraHours{}).
		Where("user_id = ? AND type = ? AND status = ?", userID, entryType, model.StatusApproved).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&total).Error
	return int(total), err
}
