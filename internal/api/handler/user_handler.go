package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"izmena/internal/dto"
	"izmena/internal/service"
	"izmena/pkg/response"
)

// UserHandler serves profile, onboarding and balance endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetCurrentUser returns the caller's profile.
// GET /api/v1/users/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.userSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateCurrentUser applies a partial profile update.
// PUT /api/v1/users/me
func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.userSvc.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, result)
}

// CompleteOnboarding finishes first-login setup.
// POST /api/v1/users/me/onboarding
func (h *UserHandler) CompleteOnboarding(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.userSvc.CompleteOnboarding(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, result)
}

// GetBalances returns the vacation and flex allowances.
// GET /api/v1/balances
func (h *UserHandler) GetBalances(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.userSvc.GetBalances(c.Request.Context(), userID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, result)
}

// GetAuditTrail lists the caller's recent audit entries.
// GET /api/v1/users/me/audit?limit=
func (h *UserHandler) GetAuditTrail(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(c, 10001, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	result, err := h.userSvc.AuditTrail(c.Request.Context(), userID, limit)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		response.NotFound(c, 12001, "user not found")
		return
	}
	response.InternalError(c)
}
