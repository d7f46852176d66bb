package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"izmena/internal/dto"
	"izmena/internal/service"
	"izmena/internal/shift"
	"izmena/pkg/response"
)

// ScheduleHandler serves the composed schedule, its aggregations and
// the override endpoints.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates the ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// GetSchedule returns the composed calendar for one month.
// GET /api/v1/schedule?month=&year=
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "invalid month or year")
		return
	}

	result, err := h.scheduleSvc.MonthlySchedule(c.Request.Context(), userID, time.Month(q.Month), q.Year)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// GetMonthlyStats aggregates one month of composed schedule.
// GET /api/v1/schedule/stats?month=&year=
func (h *ScheduleHandler) GetMonthlyStats(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "invalid month or year")
		return
	}

	result, err := h.scheduleSvc.MonthlyStats(c.Request.Context(), userID, time.Month(q.Month), q.Year)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// GetYearlyStats counts shift types over a whole year.
// GET /api/v1/schedule/stats/yearly?year=
func (h *ScheduleHandler) GetYearlyStats(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var q dto.YearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "invalid year")
		return
	}

	result, err := h.scheduleSvc.YearlyShiftStats(c.Request.Context(), userID, q.Year)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// GetYearlyTrend buckets overtime and sick days by month.
// GET /api/v1/schedule/stats/trend?year=
func (h *ScheduleHandler) GetYearlyTrend(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var q dto.YearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "invalid year")
		return
	}

	result, err := h.scheduleSvc.YearlyTrend(c.Request.Context(), userID, q.Year)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// GetNextRest says how far away the next pattern REST day is.
// GET /api/v1/schedule/next-rest
func (h *ScheduleHandler) GetNextRest(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.scheduleSvc.NextRest(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// GetHolidays lists the public holidays within a month.
// GET /api/v1/holidays?month=&year=
func (h *ScheduleHandler) GetHolidays(c *gin.Context) {
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "invalid month or year")
		return
	}

	locale := shift.LocaleEN
	if l := c.Query("locale"); l == string(shift.LocaleSL) {
		locale = shift.LocaleSL
	}

	response.OK(c, h.scheduleSvc.Holidays(time.Month(q.Month), q.Year, locale))
}

// RequestOverride stores a manual shift swap for one day.
// POST /api/v1/overrides
func (h *ScheduleHandler) RequestOverride(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.scheduleSvc.RequestOverride(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOverrideDate) {
			response.BadRequest(c, 10001, "invalid override date")
			return
		}
		h.handleScheduleError(c, err)
		return
	}

	response.Created(c, result)
}

// GetOverride returns the stored override for one date.
// GET /api/v1/overrides/:date
func (h *ScheduleHandler) GetOverride(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	result, err := h.scheduleSvc.GetOverride(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, service.ErrOverrideNotFound) {
			response.NotFound(c, 16001, "no override for this date")
			return
		}
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

// ListOverrides lists the stored overrides for one month.
// GET /api/v1/overrides?month=&year=
func (h *ScheduleHandler) ListOverrides(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "invalid month or year")
		return
	}

	result, err := h.scheduleSvc.ListOverrides(c.Request.Context(), userID, time.Month(q.Month), q.Year)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		response.NotFound(c, 12001, "user not found")
		return
	}
	response.InternalError(c)
}
