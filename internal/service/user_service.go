package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"izmena/config"
	"izmena/internal/dto"
	"izmena/internal/model"
	"izmena/internal/repository"
	"izmena/internal/shift"
)

// defaultShiftGroup is the placeholder assigned at registration until
// onboarding sets the real one.
const defaultShiftGroup = shift.GroupA

// UserService handles profile, onboarding and balance queries.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	// CompleteOnboarding sets the shift group and the balance snapshot
	// and restarts both usage counters at zero.
	CompleteOnboarding(ctx context.Context, userID string, req *dto.OnboardingRequest) (*dto.UserResponse, error)
	GetBalances(ctx context.Context, userID string) (*dto.BalancesResponse, error)
	// AuditTrail lists the caller's most recent audit entries, newest
	// first. limit <= 0 falls back to the default page size.
	AuditTrail(ctx context.Context, userID string, limit int) ([]dto.AuditLogResponse, error)
}

type userService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{cfg: cfg, repo: repo, logger: logger}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.ShiftGroup != nil {
		user.ShiftGroup = *req.ShiftGroup
	}
	if req.Language != nil {
		user.Language = *req.Language
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating profile failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *userService) CompleteOnboarding(ctx context.Context, userID string, req *dto.OnboardingRequest) (*dto.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.ShiftGroup = req.ShiftGroup
	if req.Language != "" {
		user.Language = req.Language
	}

	// The snapshot is whatever the user reports as their current
	// remaining allowance; config supplies the yearly defaults.
	user.VacationDaysBalance = s.cfg.Balance.VacationDaysPerYear
	if req.VacationDaysBalance != nil {
		user.VacationDaysBalance = *req.VacationDaysBalance
	}
	user.FlexDaysBalance = s.cfg.Balance.FlexDaysPerYear
	if req.FlexDaysBalance != nil {
		user.FlexDaysBalance = *req.FlexDaysBalance
	}
	user.VacationDaysUsed = 0
	user.FlexDaysUsed = 0
	user.Onboarded = true

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("completing onboarding failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	// Audit is best effort: onboarding itself has already committed.
	if err := s.repo.AuditLog.Create(ctx, &model.AuditLog{
		Action:      model.AuditOnboarding,
		PerformedBy: userID,
		Details:     fmt.Sprintf("group=%s vacation=%d flex=%d", user.ShiftGroup, user.VacationDaysBalance, user.FlexDaysBalance),
	}); err != nil {
		s.logger.Warn("writing audit entry failed", zap.Error(err))
	}

	return toUserResponse(user), nil
}

func (s *userService) GetBalances(ctx context.Context, userID string) (*dto.BalancesResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.BalancesResponse{
		Vacation: toBalance(user.VacationDaysBalance, user.VacationDaysUsed),
		FlexTime: toBalance(user.FlexDaysBalance, user.FlexDaysUsed),
	}, nil
}

const defaultAuditTrailLimit = 50

func (s *userService) AuditTrail(ctx context.Context, userID string, limit int) ([]dto.AuditLogResponse, error) {
	if limit <= 0 {
		limit = defaultAuditTrailLimit
	}

	entries, err := s.repo.AuditLog.ListByUser(ctx, userID, limit)
	if err != nil {
		s.logger.Error("listing audit entries failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.AuditLogResponse, 0, len(entries))
	for i := range entries {
		result = append(result, dto.AuditLogResponse{
			Action:    entries[i].Action,
			Details:   entries[i].Details,
			CreatedAt: entries[i].CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

func (s *userService) loadUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("loading user failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ── shared helpers ──

func toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         user.UserID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		ShiftGroup: user.ShiftGroup,
		Language:   user.Language,
		Onboarded:  user.Onboarded,
	}
}

// toBalance floors the displayed remainder at zero; the raw counters
// are kept as stored.
func toBalance(total, used int) dto.BalanceResponse {
	remaining := total - used
	if remaining < 0 {
		remaining = 0
	}
	return dto.BalanceResponse{Total: total, Used: used, Remaining: remaining}
}
