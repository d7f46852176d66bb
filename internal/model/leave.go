package model

import "time"

// Leave type values.
const (
	LeaveTypeSick      = "SICK"
	LeaveTypeVacation  = "VACATION"
	LeaveTypeBankHours = "BANK_HOURS"
	LeaveTypeOther     = "OTHER"
)

// Shared request status values for leaves and extra hours.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Leave is a multi-day absence request with an approval status.
type Leave struct {
	LeaveID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"leave_id"`
	UserID    string    `gorm:"type:uuid;not null"                             json:"user_id"`
	StartDate time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null"                             json:"end_date"`
	Type      string    `gorm:"type:varchar(20);not null"                      json:"type"`
	Status    string    `gorm:"type:varchar(10);not null;default:'PENDING'"    json:"status"`
	Reason    string    `gorm:"type:varchar(500)"                              json:"reason,omitempty"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

// TableName sets the table name.
func (Leave) TableName() string { return "leaves" }

// Days counts the calendar days the leave spans, both endpoints
// included.
func (l *Leave) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
