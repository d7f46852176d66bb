package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"izmena/internal/model"
)

// DailyRecordRepository is the daily_records data-access interface.
type DailyRecordRepository interface {
	GetByDate(ctx context.Context, userID string, date time.Time) (*model.DailyRecord, error)
	// ListByDateRange returns records between start and end, both
	// endpoints included, in ascending date order.
	ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]model.DailyRecord, error)
	Create(ctx context.Context, record *model.DailyRecord) error
	Update(ctx context.Context, record *model.DailyRecord) error
	// SumOvertimeInRange totals overtime hours within [start, end].
	SumOvertimeInRange(ctx context.Context, userID string, start, end time.Time) (int, error)
	// SumBankedAll totals banked hours over the user's entire history.
	// The bank is a running balance, never reset per month.
	SumBankedAll(ctx context.Context, userID string) (int, error)
}

type dailyRecordRepo struct {
	db *gorm.DB
}

// NewDailyRecordRepo creates the gorm-backed DailyRecordRepository.
func NewDailyRecordRepo(db *gorm.DB) DailyRecordRepository {
	return &dailyRecordRepo{db: db}
}

func (r *dailyRecordRepo) GetByDate(ctx context.Context, userID string, date time.Time) (*model.DailyRecord, error) {
	var record model.DailyRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *dailyRecordRepo) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]model.DailyRecord, error) {
	var records []model.DailyRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?",
			userID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *dailyRecordRepo) Create(ctx context.Context, record *model.DailyRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *dailyRecordRepo) Update(ctx context.Context, record *model.DailyRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *dailyRecordRepo) SumOvertimeInRange(ctx context.Context, userID string, start, end time.Time) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.DailyRecord{}).
		Where("user_id = ? AND date >= ? AND date <= ?",
			userID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Select("COALESCE(SUM(overtime_hours), 0)").
		Scan(&total).Error
	return int(total), err
}

func (r *dailyRecordRepo) SumBankedAll(ctx context.Context, userID string) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.DailyRecord{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(banked_hours), 0)").
		Scan(&total).Error
	return int(total), err
}
