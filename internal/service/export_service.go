package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"izmena/internal/dto"
	"izmena/internal/repository"
	"izmena/internal/shift"
)

// ── export module errors ──

var ErrExportGenerateFail = errors.New("generating export failed")

// ExportService renders the composed schedule into portable formats:
// an Excel workbook for a month and an iCalendar feed for a year.
type ExportService interface {
	// ExportMonth returns the workbook bytes and a suggested filename.
	ExportMonth(ctx context.Context, userID string, month time.Month, year int) (*bytes.Buffer, string, error)
	// ExportICS renders a year of shifts as all-day VEVENTs.
	ExportICS(ctx context.Context, userID string, year int) (string, error)
}

type exportService struct {
	repo     *repository.Repository
	schedule ScheduleService
	logger   *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, schedule ScheduleService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, schedule: schedule, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportMonth renders one month of composed schedule as .xlsx.
// ═══════════════════════════════════════════════════════════
//
// Layout:
//   - single sheet named after the month
//   - one row per day: date, shift, override marker, overtime, banked,
//     day flags, holiday name
//   - totals row at the bottom

func (s *exportService) ExportMonth(ctx context.Context, userID string, month time.Month, year int) (*bytes.Buffer, string, error) {
	entries, err := s.schedule.MonthlySchedule(ctx, userID, month, year)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := fmt.Sprintf("%04d-%02d", year, month)
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("creating sheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "E", 10)
	f.SetColWidth(sheetName, "F", "F", 10)
	f.SetColWidth(sheetName, "G", "G", 24)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Date", "Shift", "Overtime", "Banked", "Override", "Absence", "Holiday"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, exportCell(col, 1), h)
		f.SetCellStyle(sheetName, exportCell(col, 1), exportCell(col, 1), headerStyle)
	}

	row := 2
	overtimeTotal, bankedTotal := 0, 0
	for _, e := range entries {
		f.SetCellValue(sheetName, exportCell("A", row), e.Date)
		f.SetCellValue(sheetName, exportCell("B", row), e.Shift)
		f.SetCellValue(sheetName, exportCell("C", row), e.OvertimeHours)
		f.SetCellValue(sheetName, exportCell("D", row), e.BankedHours)
		if e.IsOverride {
			f.SetCellValue(sheetName, exportCell("E", row), "yes")
		}
		f.SetCellValue(sheetName, exportCell("F", row), absenceLabel(&e))
		if e.HolidayName != "" {
			f.SetCellValue(sheetName, exportCell("G", row), e.HolidayName)
		}
		overtimeTotal += e.OvertimeHours
		bankedTotal += e.BankedHours
		row++
	}

	f.SetCellValue(sheetName, exportCell("A", row), "Total")
	f.SetCellValue(sheetName, exportCell("C", row), overtimeTotal)
	f.SetCellValue(sheetName, exportCell("D", row), bankedTotal)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("writing workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("schedule_%04d-%02d.xlsx", year, month)
	return buf, filename, nil
}

// ExportICS renders the whole year, month by month, as a PUBLISH
// calendar of all-day events. REST and OFF days are skipped; calendar
// apps show shifts, not days off.
func (s *exportService) ExportICS(ctx context.Context, userID string, year int) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//izmena//shift schedule//EN")

	now := time.Now().UTC()
	for m := time.January; m <= time.December; m++ {
		entries, err := s.schedule.MonthlySchedule(ctx, userID, m, year)
		if err != nil {
			return "", err
		}
		for _, e := range entries {
			if e.Shift == string(shift.Rest) || e.Shift == string(shift.Off) {
				continue
			}
			day, err := time.ParseInLocation("2006-01-02", e.Date, time.UTC)
			if err != nil {
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%s@izmena", e.Date, userID))
			event.SetDtStampTime(now)
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
			event.SetSummary(shiftSummary(e.Shift))
			if e.IsOverride && e.OverrideReason != "" {
				event.SetDescription(e.OverrideReason)
			}
		}
	}

	return cal.Serialize(), nil
}

// ── helpers ──

func exportCell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func absenceLabel(e *dto.ScheduleEntry) string {
	switch {
	case e.IsVacation:
		return "vacation"
	case e.IsSickLeave:
		return "sick"
	case e.IsFlexTime:
		return "flex"
	default:
		return ""
	}
}

func shiftSummary(shiftType string) string {
	switch shiftType {
	case string(shift.Morning):
		return "Morning shift"
	case string(shift.Afternoon):
		return "Afternoon shift"
	case string(shift.Night):
		return "Night shift"
	default:
		return shiftType
	}
}
