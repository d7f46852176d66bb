package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"izmena/internal/dto"
	"izmena/internal/service"
	"izmena/internal/shift"
	"izmena/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock services
// ═══════════════════════════════════════════════════════════

// ── Mock RecordService ──

type mockRecordService struct {
	getResult    *dto.DailyRecordResponse
	getErr       error
	updateResult *dto.DailyRecordResponse
	updateErr    error
	totalsResult *dto.MonthlyTotalsResponse
	totalsErr    error
}

func (m *mockRecordService) GetRecord(_ context.Context, _ string, _ time.Time) (*dto.DailyRecordResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockRecordService) UpdateRecord(_ context.Context, _ string, _ time.Time, _ *dto.UpdateDailyRecordRequest) (*dto.DailyRecordResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockRecordService) MonthlyTotals(_ context.Context, _ string, _ time.Month, _ int) (*dto.MonthlyTotalsResponse, error) {
	return m.totalsResult, m.totalsErr
}

// ── Mock ScheduleService ──

type mockScheduleService struct {
	scheduleResult []dto.ScheduleEntry
	scheduleErr    error
	statsResult    *dto.MonthlyStatsResponse
	statsErr       error
	yearlyResult   *dto.YearlyShiftStatsResponse
	yearlyErr      error
	trendResult    []dto.TrendPoint
	trendErr       error
	nextRestResult *dto.NextRestResponse
	nextRestErr    error
	overrideResult *dto.OverrideResponse
	overrideErr    error
	getOvResult    *dto.OverrideResponse
	getOvErr       error
	listResult     []dto.OverrideResponse
	listErr        error
}

func (m *mockScheduleService) MonthlySchedule(_ context.Context, _ string, _ time.Month, _ int) ([]dto.ScheduleEntry, error) {
	return m.scheduleResult, m.scheduleErr
}
func (m *mockScheduleService) MonthlyStats(_ context.Context, _ string, _ time.Month, _ int) (*dto.MonthlyStatsResponse, error) {
	return m.statsResult, m.statsErr
}
func (m *mockScheduleService) YearlyShiftStats(_ context.Context, _ string, _ int) (*dto.YearlyShiftStatsResponse, error) {
	return m.yearlyResult, m.yearlyErr
}
func (m *mockScheduleService) YearlyTrend(_ context.Context, _ string, _ int) ([]dto.TrendPoint, error) {
	return m.trendResult, m.trendErr
}
func (m *mockScheduleService) NextRest(_ context.Context, _ string, _ time.Time) (*dto.NextRestResponse, error) {
	return m.nextRestResult, m.nextRestErr
}
func (m *mockScheduleService) RequestOverride(_ context.Context, _ string, _ *dto.OverrideRequest) (*dto.OverrideResponse, error) {
	return m.overrideResult, m.overrideErr
}
func (m *mockScheduleService) GetOverride(_ context.Context, _ string, _ time.Time) (*dto.OverrideResponse, error) {
	return m.getOvResult, m.getOvErr
}
func (m *mockScheduleService) ListOverrides(_ context.Context, _ string, _ time.Month, _ int) ([]dto.OverrideResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockScheduleService) Holidays(month time.Month, year int, _ shift.Locale) []dto.HolidayResponse {
	return nil
}

// ── helpers ──

// perform runs one request through a throwaway engine with user_id
// pre-injected, the way the JWT middleware would.
func perform(method, path string, body interface{}, register func(*gin.RouterGroup)) *httptest.ResponseRecorder {
	r := gin.New()
	group := r.Group("", func(c *gin.Context) {
		c.Set("user_id", "uid-1")
	})
	register(group)

	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var env response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v", err)
	}
	return env
}

// ═══════════════════════════════════════════════════════════
// Record handler
// ═══════════════════════════════════════════════════════════

func TestRecordHandler_UpdateRecord_BalanceExceeded(t *testing.T) {
	h := NewRecordHandler(&mockRecordService{updateErr: service.ErrNoVacationDays})

	vacation := true
	w := perform(http.MethodPut, "/records/2026-03-02",
		dto.UpdateDailyRecordRequest{IsVacation: &vacation},
		func(g *gin.RouterGroup) { g.PUT("/records/:date", h.UpdateRecord) })

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Code != 30001 {
		t.Errorf("expected code 30001, got %d", env.Code)
	}
}

func TestRecordHandler_UpdateRecord_BadDate(t *testing.T) {
	h := NewRecordHandler(&mockRecordService{})

	w := perform(http.MethodPut, "/records/02.03.2026",
		dto.UpdateDailyRecordRequest{},
		func(g *gin.RouterGroup) { g.PUT("/records/:date", h.UpdateRecord) })

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRecordHandler_GetRecord_NotFound(t *testing.T) {
	h := NewRecordHandler(&mockRecordService{getErr: service.ErrRecordNotFound})

	w := perform(http.MethodGet, "/records/2026-03-02", nil,
		func(g *gin.RouterGroup) { g.GET("/records/:date", h.GetRecord) })

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRecordHandler_GetRecord_Success(t *testing.T) {
	h := NewRecordHandler(&mockRecordService{
		getResult: &dto.DailyRecordResponse{Date: "2026-03-02", OvertimeHours: 2},
	})

	w := perform(http.MethodGet, "/records/2026-03-02", nil,
		func(g *gin.RouterGroup) { g.GET("/records/:date", h.GetRecord) })

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Code != 0 {
		t.Errorf("success envelope should carry code 0, got %d", env.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// Schedule handler
// ═══════════════════════════════════════════════════════════

func TestScheduleHandler_GetSchedule_Success(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{
		scheduleResult: []dto.ScheduleEntry{{Date: "2026-03-01", Shift: "MORNING"}},
	})

	w := perform(http.MethodGet, "/schedule?month=3&year=2026", nil,
		func(g *gin.RouterGroup) { g.GET("/schedule", h.GetSchedule) })

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestScheduleHandler_GetSchedule_MissingQuery(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{})

	w := perform(http.MethodGet, "/schedule", nil,
		func(g *gin.RouterGroup) { g.GET("/schedule", h.GetSchedule) })

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestScheduleHandler_GetSchedule_MonthOutOfRange(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{})

	w := perform(http.MethodGet, "/schedule?month=13&year=2026", nil,
		func(g *gin.RouterGroup) { g.GET("/schedule", h.GetSchedule) })

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestScheduleHandler_RequestOverride_Created(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{
		overrideResult: &dto.OverrideResponse{Date: "2026-03-02", NewShift: "B"},
	})

	w := perform(http.MethodPost, "/overrides",
		dto.OverrideRequest{Date: "2026-03-02", NewShift: "B"},
		func(g *gin.RouterGroup) { g.POST("/overrides", h.RequestOverride) })

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestScheduleHandler_RequestOverride_BadShift(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{})

	w := perform(http.MethodPost, "/overrides",
		dto.OverrideRequest{Date: "2026-03-02", NewShift: "X"},
		func(g *gin.RouterGroup) { g.POST("/overrides", h.RequestOverride) })

	if w.Code != http.StatusBadRequest {
		t.Errorf("binding should reject unknown shift codes, got %d", w.Code)
	}
}

func TestScheduleHandler_GetOverride_NotFound(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{getOvErr: service.ErrOverrideNotFound})

	w := perform(http.MethodGet, "/overrides/2026-03-02", nil,
		func(g *gin.RouterGroup) { g.GET("/overrides/:date", h.GetOverride) })

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Code != 16001 {
		t.Errorf("expected code 16001, got %d", env.Code)
	}
}

func TestScheduleHandler_UnauthenticatedContext(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{})

	// No user_id injected: MustGetUserID writes the 401.
	r := gin.New()
	r.GET("/schedule", h.GetSchedule)
	req := httptest.NewRequest(http.MethodGet, "/schedule?month=3&year=2026", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
