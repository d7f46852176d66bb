package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"izmena/internal/dto"
	"izmena/internal/service"
	"izmena/pkg/response"
)

// ExtraHoursHandler serves extra-hours and hour-bank endpoints.
type ExtraHoursHandler struct {
	extraSvc service.ExtraHoursService
}

// NewExtraHoursHandler creates the ExtraHoursHandler.
func NewExtraHoursHandler(extraSvc service.ExtraHoursService) *ExtraHoursHandler {
	return &ExtraHoursHandler{extraSvc: extraSvc}
}

// CreateEntry logs a typed hour entry for approval.
// POST /api/v1/extra-hours
func (h *ExtraHoursHandler) CreateEntry(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ExtraHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.extraSvc.Log(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, 10001, "invalid date")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListEntries lists the caller's extra-hours entries.
// GET /api/v1/extra-hours
func (h *ExtraHoursHandler) ListEntries(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.extraSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DecideEntry approves or rejects a pending entry.
// PUT /api/v1/extra-hours/:id/decision
func (h *ExtraHoursHandler) DecideEntry(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req struct {
		Approve bool `json:"approve"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.extraSvc.Decide(c.Request.Context(), userID, c.Param("id"), req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEntryNotFound):
			response.NotFound(c, 15003, "extra-hours entry not found")
		case errors.Is(err, service.ErrAlreadyDecided):
			response.Conflict(c, 15002, "request has already been decided")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// GetBankBalance returns the hour-bank state.
// GET /api/v1/balances/bank
func (h *ExtraHoursHandler) GetBankBalance(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.extraSvc.BankBalance(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
