package model

import "time"

// ShiftOverride is a manual per-day shift swap. It replaces the
// computed pattern for display and aggregation but never touches
// balance accounting. One row per (user_id, date), enforced by a
// unique constraint; a repeated request updates the existing row.
type ShiftOverride struct {
	ShiftOverrideID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_override_id"`
	UserID          string    `gorm:"type:uuid;not null;uniqueIndex:uq_shift_overrides_user_date" json:"user_id"`
	Date            time.Time `gorm:"type:date;not null;uniqueIndex:uq_shift_overrides_user_date" json:"date"`
	NewShift        string    `gorm:"type:varchar(3);not null" json:"new_shift"` // A | B | C | D | OFF
	Reason          string    `gorm:"type:varchar(500)"        json:"reason,omitempty"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

// TableName sets the table name.
func (ShiftOverride) TableName() string { return "shift_overrides" }
