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
)

// ── leave module errors ──

var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrInvalidDateRange = errors.New("end date must not precede start date")
	ErrAlreadyDecided   = errors.New("request has already been decided")
)

// LeaveService handles multi-day absence requests and their approval
// lifecycle.
type LeaveService interface {
	Request(ctx context.Context, userID string, req *dto.LeaveRequest) (*dto.LeaveResponse, error)
	ListMine(ctx context.Context, userID string, year int) ([]dto.LeaveResponse, error)
	// Decide moves a pending request to APPROVED or REJECTED. Decided
	// requests are final.
	Decide(ctx context.Context, userID, leaveID string, approve bool) (*dto.LeaveResponse, error)
}

type leaveService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLeaveService creates the LeaveService.
func NewLeaveService(repo *repository.Repository, logger *zap.Logger) LeaveService {
	return &leaveService{repo: repo, logger: logger}
}

func (s *leaveService) Request(ctx context.Context, userID string, req *dto.LeaveRequest) (*dto.LeaveResponse, error) {
	start, err := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, time.UTC)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	leave := &model.Leave{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Type:      req.Type,
		Status:    model.StatusPending,
		Reason:    req.Reason,
	}

	if err := s.repo.Leave.Create(ctx, leave); err != nil {
		s.logger.Error("creating leave request failed", zap.Error(err))
		return nil, err
	}

	// Audit is best effort: the request itself has already been stored.
	if err := s.repo.AuditLog.Create(ctx, &model.AuditLog{
		Action:      model.AuditLeaveRequest,
		PerformedBy: userID,
		Details:     fmt.Sprintf("type=%s start=%s end=%s", req.Type, req.StartDate, req.EndDate),
	}); err != nil {
		s.logger.Warn("writing audit entry failed", zap.Error(err))
	}

	return toLeaveResponse(leave), nil
}

func (s *leaveService) ListMine(ctx context.Context, userID string, year int) ([]dto.LeaveResponse, error) {
	var (
		leaves []model.Leave
		err    error
	)
	if year > 0 {
		leaves, err = s.repo.Leave.ListByUserAndYear(ctx, userID, year)
	} else {
		leaves, err = s.repo.Leave.ListByUser(ctx, userID)
	}
	if err != nil {
		s.logger.Error("listing leave requests failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		result = append(result, *toLeaveResponse(&leaves[i]))
	}
	return result, nil
}

func (s *leaveService) Decide(ctx context.Context, userID, leaveID string, approve bool) (*dto.LeaveResponse, error) {
	leave, err := s.repo.Leave.GetByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		s.logger.Error("loading leave request failed", zap.Error(err))
		return nil, err
	}
	if leave.UserID != userID {
		return nil, ErrLeaveNotFound
	}
	if leave.Status != model.StatusPending {
		return nil, ErrAlreadyDecided
	}

	if approve {
		leave.Status = model.StatusApproved
	} else {
		leave.Status = model.StatusRejected
	}

	if err := s.repo.Leave.Update(ctx, leave); err != nil {
		s.logger.Error("updating leave request failed", zap.Error(err))
		return nil, err
	}

	return toLeaveResponse(leave), nil
}

func toLeaveResponse(leave *model.Leave) *dto.LeaveResponse {
	return &dto.LeaveResponse{
		ID:        leave.LeaveID,
		StartDate: leave.StartDate.Format("2006-01-02"),
		EndDate:   leave.EndDate.Format("2006-01-02"),
		Days:      leave.Days(),
		Type:      leave.Type,
		Status:    leave.Status,
		Reason:    leave.Reason,
	}
}
