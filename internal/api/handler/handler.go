package handler

import "izmena/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Schedule   *ScheduleHandler
	Record     *RecordHandler
	Leave      *LeaveHandler
	ExtraHours *ExtraHoursHandler
	Export     *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Schedule:   NewScheduleHandler(svc.Schedule),
		Record:     NewRecordHandler(svc.Record),
		Leave:      NewLeaveHandler(svc.Leave),
		ExtraHours: NewExtraHoursHandler(svc.ExtraHours),
		Export:     NewExportHandler(svc.Export),
	}
}
