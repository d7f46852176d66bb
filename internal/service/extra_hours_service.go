package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"izmena/internal/dto"
	"izmena/internal/model"
	"izmena/internal/repository"
)

// ── extra hours errors ──

var (
	ErrEntryNotFound = errors.New("extra-hours entry not found")
	ErrInvalidDate   = errors.New("invalid date")
)

// ExtraHoursService handles typed hour entries (overtime payouts and
// bank withdrawals) and the bank balance derived from them.
type ExtraHoursService interface {
	Log(ctx context.Context, userID string, req *dto.ExtraHoursRequest) (*dto.ExtraHoursResponse, error)
	ListMine(ctx context.Context, userID string) ([]dto.ExtraHoursResponse, error)
	Decide(ctx context.Context, userID, entryID string, approve bool) (*dto.ExtraHoursResponse, error)
	// BankBalance is banked hours earned (from the daily ledger) minus
	// approved withdrawals.
	BankBalance(ctx context.Context, userID string) (*dto.BankBalanceResponse, error)
}

type extraHoursService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExtraHoursService creates the ExtraHoursService.
func NewExtraHoursService(repo *repository.Repository, logger *zap.Logger) ExtraHoursService {
	return &extraHoursService{repo: repo, logger: logger}
}

func (s *extraHoursService) Log(ctx context.Context, userID string, req *dto.ExtraHoursRequest) (*dto.ExtraHoursResponse, error) {
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}

	entry := &model.ExtraHours{
		UserID: userID,
		Date:   date,
		Hours:  req.Hours,
		Type:   req.Type,
		Status: model.StatusPending,
		Reason: req.Reason,
	}

	if err := s.repo.ExtraHours.Create(ctx, entry); err != nil {
		s.logger.Error("creating extra-hours entry failed", zap.Error(err))
		return nil, err
	}

	return toExtraHoursResponse(entry), nil
}

func (s *extraHoursService) ListMine(ctx context.Context, userID string) ([]dto.ExtraHoursResponse, error) {
	entries, err := s.repo.ExtraHours.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("listing extra-hours entries failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ExtraHoursResponse, 0, len(entries))
	for i := range entries {
		result = append(result, *toExtraHoursResponse(&entries[i]))
	}
	return result, nil
}

func (s *extraHoursService) Decide(ctx context.Context, userID, entryID string, approve bool) (*dto.ExtraHoursResponse, error) {
	entry, err := s.repo.ExtraHours.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		s.logger.Error("loading extra-hours entry failed", zap.Error(err))
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrEntryNotFound
	}
	if entry.Status != model.StatusPending {
		return nil, ErrAlreadyDecided
	}

	if approve {
		entry.Status = model.StatusApproved
	} else {
		entry.Status = model.StatusRejected
	}

	if err := s.repo.ExtraHours.Update(ctx, entry); err != nil {
		s.logger.Error("updating extra-hours entry failed", zap.Error(err))
		return nil, err
	}

	return toExtraHoursResponse(entry), nil
}

func (s *extraHoursService) BankBalance(ctx context.Context, userID string) (*dto.BankBalanceResponse, error) {
	earned, err := s.repo.DailyRecord.SumBankedAll(ctx, userID)
	if err != nil {
		s.logger.Error("summing banked hours failed", zap.Error(err))
		return nil, err
	}

	withdrawn, err := s.repo.ExtraHours.SumApprovedByType(ctx, userID, model.ExtraHoursBankWithdrawal)
	if err != nil {
		s.logger.Error("summing withdrawals failed", zap.Error(err))
		return nil, err
	}

	return &dto.BankBalanceResponse{
		Earned:    earned,
		Withdrawn: withdrawn,
		Balance:   earned - withdrawn,
	}, nil
}

func toExtraHoursResponse(entry *model.ExtraHours) *dto.ExtraHoursResponse {
	return &dto.ExtraHoursResponse{
		ID:     entry.ExtraHoursID,
		Date:   entry.Date.Format("2006-01-02"),
		Hours:  entry.Hours,
		Type:   entry.Type,
		Status: entry.Status,
		Reason: entry.Reason,
	}
}
