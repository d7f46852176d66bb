package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"izmena/internal/dto"
	"izmena/internal/service"
	apperrors "izmena/pkg/errors"
	"izmena/pkg/response"
)

// RecordHandler serves the daily-record ledger endpoints.
type RecordHandler struct {
	recordSvc service.RecordService
}

// NewRecordHandler creates the RecordHandler.
func NewRecordHandler(recordSvc service.RecordService) *RecordHandler {
	return &RecordHandler{recordSvc: recordSvc}
}

// GetRecord returns the stored record for one date.
// GET /api/v1/records/:date
func (h *RecordHandler) GetRecord(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	result, err := h.recordSvc.GetRecord(c.Request.Context(), userID, date)
	if err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			response.NotFound(c, 14001, "no record for this date")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// UpdateRecord merges a partial update into the day's record.
// PUT /api/v1/records/:date
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	var req dto.UpdateDailyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.recordSvc.UpdateRecord(c.Request.Context(), userID, date, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoVacationDays):
			response.Conflict(c, 30001, "no vacation days remaining")
		case errors.Is(err, service.ErrNoFlexDays):
			response.Conflict(c, 30002, "no flex days remaining")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, "user not found")
		case errors.Is(err, apperrors.ErrConflict):
			response.Conflict(c, 30003, "record was modified concurrently, retry")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// GetMonthlyTotals sums the ledger for one month.
// GET /api/v1/records/totals?month=&year=
func (h *RecordHandler) GetMonthlyTotals(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "invalid month or year")
		return
	}

	result, err := h.recordSvc.MonthlyTotals(c.Request.Context(), userID, time.Month(q.Month), q.Year)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// parseDateParam reads the :date path segment as YYYY-MM-DD. On
// failure the 400 response is already written.
func parseDateParam(c *gin.Context) (time.Time, bool) {
	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.UTC)
	if err != nil {
		response.BadRequest(c, 10001, "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}
