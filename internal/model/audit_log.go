package model

import "time"

// Audit log actions.
const (
	AuditShiftOverride = "SHIFT_OVERRIDE"
	AuditLeaveRequest  = "LEAVE_REQUEST"
	AuditOnboarding    = "ONBOARDING"
)

// AuditLog is an append-only trail of user-initiated changes.
type AuditLog struct {
	AuditLogID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"audit_log_id"`
	Action      string    `gorm:"type:varchar(50);not null"                      json:"action"`
	PerformedBy string    `gorm:"type:uuid;not null"                             json:"performed_by"`
	Details     string    `gorm:"type:text"                                      json:"details,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (AuditLog) TableName() string { return "audit_logs" }
