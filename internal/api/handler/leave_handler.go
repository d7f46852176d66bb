package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"izmena/internal/dto"
	"izmena/internal/service"
	"izmena/pkg/response"
)

// LeaveHandler serves leave-request endpoints.
type LeaveHandler struct {
	leaveSvc service.LeaveService
}

// NewLeaveHandler creates the LeaveHandler.
func NewLeaveHandler(leaveSvc service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc}
}

// CreateLeave files a multi-day absence request.
// POST /api/v1/leaves
func (h *LeaveHandler) CreateLeave(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.LeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.leaveSvc.Request(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			response.BadRequest(c, 10001, "end date must not precede start date")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListLeaves lists the caller's leave requests, optionally filtered by
// year.
// GET /api/v1/leaves?year=
func (h *LeaveHandler) ListLeaves(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	year := 0
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(c, 10001, "invalid year")
			return
		}
		year = parsed
	}

	result, err := h.leaveSvc.ListMine(c.Request.Context(), userID, year)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DecideLeave approves or rejects a pending request.
// PUT /api/v1/leaves/:id/decision
func (h *LeaveHandler) DecideLeave(c *gin.Context) {
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

	result, err := h.leaveSvc.Decide(c.Request.Context(), userID, c.Param("id"), req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeaveNotFound):
			response.NotFound(c, 15001, "leave request not found")
		case errors.Is(err, service.ErrAlreadyDecided):
			response.Conflict(c, 15002, "request has already been decided")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
