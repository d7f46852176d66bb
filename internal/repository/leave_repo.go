package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"izmena/internal/model"
)

// LeaveRepository is the leaves data-access interface.
type LeaveRepository interface {
	Create(ctx context.Context, leave *model.Leave) error
	GetByID(ctx context.Context, id string) (*model.Leave, error)
	ListByUser(ctx context.Context, userID string) ([]model.Leave, error)
	// ListByUserAndYear returns leaves falling within the given year.
	ListByUserAndYear(ctx context.Context, userID string, year int) ([]model.Leave, error)
	Update(ctx context.Context, leave *model.Leave) error
}

type leaveRepo struct {
	db *gorm.DB
}

// NewLeaveRepo creates the gorm-backed LeaveRepository.
func NewLeaveRepo(db *gorm.DB) LeaveRepository {
	return &leaveRepo{db: db}
}

func (r *leaveRepo) Create(ctx context.Context, leave *model.Leave) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *leaveRepo) GetByID(ctx context.Context, id string) (*model.Leave, error) {
	var leave model.Leave
	err := r.db.WithContext(ctx).
		Where("leave_id = ?", id).
		First(&leave).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepo) ListByUser(ctx context.Context, userID string) ([]model.Leave, error) {
	var leaves []model.Leave
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepo) ListByUserAndYear(ctx context.Context, userID string, year int) ([]model.Leave, error) {
	var leaves []model.Leave
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND start_date >= ? AND end_date <= ?",
			userID,
			fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year)).
		Order("start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepo) Update(ctx context.Context, leave *model.Leave) error {
	return r.db.WithContext(ctx).Save(leave).Error
}
