package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"izmena/internal/dto"
)

func setupTestExportService() ExportService {
	repo := newMockRepository()
	seedScheduleUser(repo, "uid-1", "A")
	scheduleSvc := NewScheduleService(repo, zap.NewNop())
	return NewExportService(repo, scheduleSvc, zap.NewNop())
}

func TestExportMonth_ProducesWorkbook(t *testing.T) {
	svc := setupTestExportService()

	buf, filename, err := svc.ExportMonth(context.Background(), "uid-1", time.January, 2024)
	if err != nil {
		t.Fatalf("ExportMonth should succeed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("workbook should not be empty")
	}
	if filename != "schedule_2024-01.xlsx" {
		t.Errorf("unexpected filename %s", filename)
	}
}

func TestExportMonth_UnknownUser(t *testing.T) {
	svc := setupTestExportService()

	_, _, err := svc.ExportMonth(context.Background(), "nonexistent", time.January, 2024)
	if err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestExportICS_ContainsWorkingDaysOnly(t *testing.T) {
	svc := setupTestExportService()

	feed, err := svc.ExportICS(context.Background(), "uid-1", 2024)
	if err != nil {
		t.Fatalf("ExportICS should succeed: %v", err)
	}

	if !strings.Contains(feed, "BEGIN:VCALENDAR") {
		t.Error("feed should be an iCalendar document")
	}
	if !strings.Contains(feed, "SUMMARY:Morning shift") {
		t.Error("feed should contain morning shifts")
	}

	// 2024 is a leap year: 366 days, six of every eight worked.
	events := strings.Count(feed, "BEGIN:VEVENT")
	if events < 270 || events > 280 {
		t.Errorf("implausible event count %d", events)
	}
}

func TestExportICS_OverrideReasonInDescription(t *testing.T) {
	repo := newMockRepository()
	seedScheduleUser(repo, "uid-1", "A")
	scheduleSvc := NewScheduleService(repo, zap.NewNop())
	svc := NewExportService(repo, scheduleSvc, zap.NewNop())

	scheduleSvc.RequestOverride(context.Background(), "uid-1", &dto.OverrideRequest{
		Date: "2024-01-07", NewShift: "B", Reason: "holiday cover",
	})

	feed, err := svc.ExportICS(context.Background(), "uid-1", 2024)
	if err != nil {
		t.Fatalf("ExportICS should succeed: %v", err)
	}
	if !strings.Contains(feed, "DESCRIPTION:holiday cover") {
		t.Error("override reason should surface as event description")
	}
}
