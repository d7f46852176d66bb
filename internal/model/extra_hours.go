package model

import "time"

// ExtraHours entry types.
const (
	ExtraHoursOvertimePayout = "OVERTIME_PAYOUT"
	ExtraHoursBankWithdrawal = "BANK_WITHDRAWAL"
)

// ExtraHours is a typed hour entry awaiting approval: either paid-out
// overtime or a withdrawal from the hour bank. Approved BANK_WITHDRAWAL
// entries feed the bank balance.
type ExtraHours struct {
	ExtraHoursID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"extra_hours_id"`
	UserID       string    `gorm:"type:uuid;not null"                             json:"user_id"`
	Date         time.Time `gorm:"type:date;not null"                             json:"date"`
	Hours        int       `gorm:"not null"                                       json:"hours"`
	Type         string    `gorm:"type:varchar(20);not null"                      json:"type"`
	Status       string    `gorm:"type:varchar(10);not null;default:'PENDING'"    json:"status"`
	Reason       string    `gorm:"type:varchar(500)"                              json:"reason,omitempty"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

// TableName sets the table name.
func (ExtraHours) TableName() string { return "extra_hours" }
