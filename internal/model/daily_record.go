package model

import "time"

// DailyRecord is the per-user per-day ledger row: overtime, banked
// hours and the day-state flags. At most one row exists per
// (user_id, date); it is created lazily on first write.
type DailyRecord struct {
	DailyRecordID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"daily_record_id"`
	UserID          string    `gorm:"type:uuid;not null;uniqueIndex:uq_daily_records_user_date" json:"user_id"`
	Date            time.Time `gorm:"type:date;not null;uniqueIndex:uq_daily_records_user_date" json:"date"`
	OvertimeHours   int       `gorm:"not null;default:0"     json:"overtime_hours"`
	BankedHours     int       `gorm:"not null;default:0"     json:"banked_hours"` // may go negative: hours taken from the bank
	WorkedShiftType *string   `gorm:"type:varchar(10)"       json:"worked_shift_type,omitempty"` // MORNING | AFTERNOON | NIGHT
	IsVacation      bool      `gorm:"not null;default:false" json:"is_vacation"`
	IsSickLeave     bool      `gorm:"not null;default:false" json:"is_sick_leave"`
	IsFlexTime      bool      `gorm:"not null;default:false" json:"is_flex_time"`
	IsHoliday       bool      `gorm:"not null;default:false" json:"is_holiday"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

// TableName sets the table name.
func (DailyRecord) TableName() string { return "daily_records" }
