package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"izmena/internal/dto"
	"izmena/internal/model"
	"izmena/internal/repository"
	"izmena/internal/shift"
)

// ── schedule module errors ──

var (
	ErrInvalidOverrideDate = errors.New("invalid override date")
	ErrOverrideNotFound    = errors.New("no override for this date")
)

// ScheduleService composes the monthly calendar out of the pattern
// resolver, the override layer, the daily-record ledger and the
// holiday calendar, and serves the aggregations over it.
type ScheduleService interface {
	MonthlySchedule(ctx context.Context, userID string, month time.Month, year int) ([]dto.ScheduleEntry, error)
	MonthlyStats(ctx context.Context, userID string, month time.Month, year int) (*dto.MonthlyStatsResponse, error)
	YearlyShiftStats(ctx context.Context, userID string, year int) (*dto.YearlyShiftStatsResponse, error)
	// YearlyTrend buckets overtime hours and sick-leave days by month.
	YearlyTrend(ctx context.Context, userID string, year int) ([]dto.TrendPoint, error)
	NextRest(ctx context.Context, userID string, from time.Time) (*dto.NextRestResponse, error)
	RequestOverride(ctx context.Context, userID string, req *dto.OverrideRequest) (*dto.OverrideResponse, error)
	GetOverride(ctx context.Context, userID string, date time.Time) (*dto.OverrideResponse, error)
	ListOverrides(ctx context.Context, userID string, month time.Month, year int) ([]dto.OverrideResponse, error)
	Holidays(month time.Month, year int, locale shift.Locale) []dto.HolidayResponse
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService creates the ScheduleService.
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func (s *scheduleService) MonthlySchedule(ctx context.Context, userID string, month time.Month, year int) ([]dto.ScheduleEntry, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("loading user failed", zap.Error(err))
		return nil, err
	}

	start, end := monthBounds(month, year)

	overrides, err := s.repo.ShiftOverride.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("loading overrides failed", zap.Error(err))
		return nil, err
	}
	records, err := s.repo.DailyRecord.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("loading daily records failed", zap.Error(err))
		return nil, err
	}

	overrideByDay := make(map[string]*model.ShiftOverride, len(overrides))
	for i := range overrides {
		overrideByDay[overrides[i].Date.Format("2006-01-02")] = &overrides[i]
	}
	recordByDay := make(map[string]*model.DailyRecord, len(records))
	for i := range records {
		recordByDay[records[i].Date.Format("2006-01-02")] = &records[i]
	}

	group := shift.Group(user.ShiftGroup)
	locale := shift.Locale(user.Language)

	entries := make([]dto.ScheduleEntry, 0, end.Day())
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		entry := dto.ScheduleEntry{Date: key}

		// Resolution order: override wins over the pattern.
		if ov := overrideByDay[key]; ov != nil {
			resolved, err := shift.ResolveOverride(day, ov.NewShift)
			if err != nil {
				// A stored value outside the enum means a broken row;
				// fall back to the pattern rather than failing the month.
				s.logger.Warn("ignoring invalid stored override",
					zap.String("date", key), zap.String("new_shift", ov.NewShift))
				entry.Shift = string(shift.Resolve(day, group))
			} else {
				entry.Shift = string(resolved)
				entry.IsOverride = true
				entry.OverrideReason = ov.Reason
			}
		} else {
			entry.Shift = string(shift.Resolve(day, group))
		}

		// Ledger and holiday overlays are independent of the shift.
		if rec := recordByDay[key]; rec != nil {
			entry.OvertimeHours = rec.OvertimeHours
			entry.BankedHours = rec.BankedHours
			entry.WorkedShiftType = rec.WorkedShiftType
			entry.IsVacation = rec.IsVacation
			entry.IsSickLeave = rec.IsSickLeave
			entry.IsFlexTime = rec.IsFlexTime
			entry.IsHoliday = rec.IsHoliday
		}
		if name, ok := shift.HolidayName(day, locale); ok {
			entry.IsHoliday = true
			entry.HolidayName = name
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *scheduleService) MonthlyStats(ctx context.Context, userID string, month time.Month, year int) (*dto.MonthlyStatsResponse, error) {
	entries, err := s.MonthlySchedule(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	stats := &dto.MonthlyStatsResponse{
		ShiftCounts: map[string]int{
			string(shift.Morning):   0,
			string(shift.Afternoon): 0,
			string(shift.Night):     0,
			string(shift.Rest):      0,
		},
	}

	for _, e := range entries {
		// OFF days (override to a forced day off) stay out of the
		// worked counters.
		if e.Shift != string(shift.Off) {
			stats.ShiftCounts[e.Shift]++
		}
		if e.IsVacation {
			stats.VacationDays++
		}
		if e.IsSickLeave {
			stats.SickLeaveDays++
		}
		if e.IsFlexTime {
			stats.FlexTimeDays++
		}
		stats.OvertimeTotal += e.OvertimeHours
		stats.BankedTotal += e.BankedHours
	}

	return stats, nil
}

func (s *scheduleService) YearlyShiftStats(ctx context.Context, userID string, year int) (*dto.YearlyShiftStatsResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	overrides, err := s.repo.ShiftOverride.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("loading overrides failed", zap.Error(err))
		return nil, err
	}
	overrideByDay := make(map[string]*model.ShiftOverride, len(overrides))
	for i := range overrides {
		overrideByDay[overrides[i].Date.Format("2006-01-02")] = &overrides[i]
	}

	group := shift.Group(user.ShiftGroup)
	stats := &dto.YearlyShiftStatsResponse{}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		typ := shift.Resolve(day, group)
		if ov := overrideByDay[day.Format("2006-01-02")]; ov != nil {
			if resolved, err := shift.ResolveOverride(day, ov.NewShift); err == nil {
				typ = resolved
			}
		}
		switch typ {
		case shift.Morning:
			stats.Morning++
		case shift.Afternoon:
			stats.Afternoon++
		case shift.Night:
			stats.Night++
		case shift.Rest:
			stats.Rest++
		}
		// OFF is skipped entirely.
	}

	return stats, nil
}

func (s *scheduleService) YearlyTrend(ctx context.Context, userID string, year int) ([]dto.TrendPoint, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	records, err := s.repo.DailyRecord.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("loading daily records failed", zap.Error(err))
		return nil, err
	}

	trend := make([]dto.TrendPoint, 12)
	for i := range trend {
		trend[i].Month = i + 1
	}

	for i := range records {
		idx := int(records[i].Date.Month()) - 1
		trend[idx].OvertimeHours += records[i].OvertimeHours
		if records[i].IsSickLeave {
			trend[idx].SickLeaveDays++
		}
	}

	return trend, nil
}

func (s *scheduleService) NextRest(ctx context.Context, userID string, from time.Time) (*dto.NextRestResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	days := shift.DaysUntilRest(from, shift.Group(user.ShiftGroup))
	return &dto.NextRestResponse{
		DaysUntilRest: days,
		RestDate:      from.AddDate(0, 0, days).Format("2006-01-02"),
	}, nil
}

func (s *scheduleService) RequestOverride(ctx context.Context, userID string, req *dto.OverrideRequest) (*dto.OverrideResponse, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return nil, ErrInvalidOverrideDate
	}

	override := &model.ShiftOverride{
		UserID:   userID,
		Date:     date,
		NewShift: req.NewShift,
		Reason:   req.Reason,
	}

	if err := s.repo.ShiftOverride.Upsert(ctx, override); err != nil {
		s.logger.Error("saving override failed", zap.Error(err))
		return nil, err
	}

	// Audit is best effort: the override is already stored.
	if err := s.repo.AuditLog.Create(ctx, &model.AuditLog{
		Action:      model.AuditShiftOverride,
		PerformedBy: userID,
		Details:     fmt.Sprintf("date=%s new_shift=%s", req.Date, req.NewShift),
	}); err != nil {
		s.logger.Warn("writing audit entry failed", zap.Error(err))
	}

	return &dto.OverrideResponse{
		Date:     req.Date,
		NewShift: req.NewShift,
		Reason:   req.Reason,
	}, nil
}

func (s *scheduleService) GetOverride(ctx context.Context, userID string, date time.Time) (*dto.OverrideResponse, error) {
	override, err := s.repo.ShiftOverride.GetByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		s.logger.Error("loading override failed", zap.Error(err))
		return nil, err
	}

	return &dto.OverrideResponse{
		Date:     override.Date.Format("2006-01-02"),
		NewShift: override.NewShift,
		Reason:   override.Reason,
	}, nil
}

func (s *scheduleService) ListOverrides(ctx context.Context, userID string, month time.Month, year int) ([]dto.OverrideResponse, error) {
	start, end := monthBounds(month, year)

	overrides, err := s.repo.ShiftOverride.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("loading overrides failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.OverrideResponse, 0, len(overrides))
	for i := range overrides {
		result = append(result, dto.OverrideResponse{
			Date:     overrides[i].Date.Format("2006-01-02"),
			NewShift: overrides[i].NewShift,
			Reason:   overrides[i].Reason,
		})
	}
	return result, nil
}

func (s *scheduleService) Holidays(month time.Month, year int, locale shift.Locale) []dto.HolidayResponse {
	var result []dto.HolidayResponse
	for _, h := range shift.HolidaysInMonth(month) {
		result = append(result, dto.HolidayResponse{
			Date: time.Date(year, h.Month, h.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Name: h.Name(locale),
		})
	}
	return result
}
