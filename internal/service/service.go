package service

import (
	"go.uber.org/zap"

	"izmena/config"
	"izmena/internal/repository"
	"izmena/pkg/jwt"
	"izmena/pkg/redis"
)

// Service aggregates all business-logic entry points.
type Service struct {
	Auth       AuthService
	User       UserService
	Schedule   ScheduleService
	Record     RecordService
	Leave      LeaveService
	ExtraHours ExtraHoursService
	Export     ExportService
}

// NewService wires the service aggregate. rdb may be nil when Redis is
// unreachable; token revocation then degrades to a no-op.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	scheduleSvc := NewScheduleService(repo, logger)
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:       NewUserService(cfg, repo, logger),
		Schedule:   scheduleSvc,
		Record:     NewRecordService(repo, logger),
		Leave:      NewLeaveService(repo, logger),
		ExtraHours: NewExtraHoursService(repo, logger),
		Export:     NewExportService(repo, scheduleSvc, logger),
	}
}
