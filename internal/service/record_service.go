package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"izmena/internal/dto"
	"izmena/internal/model"
	"izmena/internal/repository"
	apperrors "izmena/pkg/errors"
)

// ── record module errors ──

var ErrRecordNotFound = errors.New("no record for this date")

// RecordService is the daily-record ledger: partial upserts guarded by
// balance accounting, plus the monthly totals.
type RecordService interface {
	GetRecord(ctx context.Context, userID string, date time.Time) (*dto.DailyRecordResponse, error)
	// UpdateRecord merges the partial fields into the day's record,
	// creating it on first write. Vacation/flex toggles pass through
	// balance accounting first; a rejection persists nothing.
	UpdateRecord(ctx context.Context, userID string, date time.Time, req *dto.UpdateDailyRecordRequest) (*dto.DailyRecordResponse, error)
	MonthlyTotals(ctx context.Context, userID string, month time.Month, year int) (*dto.MonthlyTotalsResponse, error)
}

type recordService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRecordService creates the RecordService.
func NewRecordService(repo *repository.Repository, logger *zap.Logger) RecordService {
	return &recordService{repo: repo, logger: logger}
}

func (s *recordService) GetRecord(ctx context.Context, userID string, date time.Time) (*dto.DailyRecordResponse, error) {
	record, err := s.repo.DailyRecord.GetByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		s.logger.Error("loading daily record failed", zap.Error(err))
		return nil, err
	}
	return toRecordResponse(record), nil
}

// UpdateRecord runs the whole read-check-write sequence inside one
// transaction with the user row locked, so two sessions toggling the
// same balance cannot both pass the remaining-days check.
func (s *recordService) UpdateRecord(ctx context.Context, userID string, date time.Time, req *dto.UpdateDailyRecordRequest) (*dto.DailyRecordResponse, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("opening transaction failed", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	user, err := txRepo.User.GetByIDForUpdate(ctx, userID)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("locking user row failed", zap.Error(err))
		return nil, err
	}

	record, err := txRepo.DailyRecord.GetByDate(ctx, userID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		s.logger.Error("loading daily record failed", zap.Error(err))
		return nil, err
	}
	// record stays nil on first write for the day.

	prevFlags := flagsOf(record)
	nextFlags := resolveFlags(prevFlags, req)

	if err := applyFlagTransition(user, prevFlags, nextFlags); err != nil {
		tx.Rollback()
		return nil, err
	}

	if record == nil {
		record = &model.DailyRecord{
			UserID: userID,
			Date:   date,
		}
	}
	mergeRecordFields(record, req, nextFlags)

	if record.DailyRecordID == "" {
		err = txRepo.DailyRecord.Create(ctx, record)
	} else {
		err = txRepo.DailyRecord.Update(ctx, record)
	}
	if err != nil {
		tx.Rollback()
		s.logger.Error("saving daily record failed", zap.Error(err))
		return nil, err
	}

	if err := txRepo.User.Update(ctx, user); err != nil {
		tx.Rollback()
		s.logger.Error("saving balance counters failed", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("committing record update failed", zap.Error(err))
		// A serialization failure means another session won the row.
		return nil, apperrors.ErrConflict
	}

	return toRecordResponse(record), nil
}

func (s *recordService) MonthlyTotals(ctx context.Context, userID string, month time.Month, year int) (*dto.MonthlyTotalsResponse, error) {
	start, end := monthBounds(month, year)

	overtime, err := s.repo.DailyRecord.SumOvertimeInRange(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("summing overtime failed", zap.Error(err))
		return nil, err
	}

	// The bank spans the whole history on purpose: it is a running
	// balance, not a monthly counter.
	banked, err := s.repo.DailyRecord.SumBankedAll(ctx, userID)
	if err != nil {
		s.logger.Error("summing banked hours failed", zap.Error(err))
		return nil, err
	}

	return &dto.MonthlyTotalsResponse{
		OvertimeTotal: overtime,
		BankedTotal:   banked,
	}, nil
}

// ── helpers ──

// mergeRecordFields applies the non-nil partial fields plus the
// already-resolved flag state.
func mergeRecordFields(record *model.DailyRecord, req *dto.UpdateDailyRecordRequest, flags dayFlags) {
	if req.OvertimeHours != nil {
		record.OvertimeHours = *req.OvertimeHours
	}
	if req.BankedHours != nil {
		record.BankedHours = *req.BankedHours
	}
	if req.WorkedShiftType != nil {
		record.WorkedShiftType = req.WorkedShiftType
	}
	record.IsVacation = flags.Vacation
	record.IsSickLeave = flags.SickLeave
	record.IsFlexTime = flags.FlexTime
	record.IsHoliday = flags.Holiday
}

func toRecordResponse(record *model.DailyRecord) *dto.DailyRecordResponse {
	return &dto.DailyRecordResponse{
		Date:            record.Date.Format("2006-01-02"),
		OvertimeHours:   record.OvertimeHours,
		BankedHours:     record.BankedHours,
		WorkedShiftType: record.WorkedShiftType,
		IsVacation:      record.IsVacation,
		IsSickLeave:     record.IsSickLeave,
		IsFlexTime:      record.IsFlexTime,
		IsHoliday:       record.IsHoliday,
	}
}

// monthBounds returns the first and last day of a calendar month.
func monthBounds(month time.Month, year int) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}
