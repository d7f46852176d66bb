package model

// User is a tracked account plus its shift-group assignment and the
// vacation/flex balance snapshot. The used counters are mutated only by
// the balance accounting in the record service.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	FirstName    string `gorm:"type:varchar(100);not null;default:''"          json:"first_name"`
	LastName     string `gorm:"type:varchar(100);not null;default:''"          json:"last_name"`
	ShiftGroup   string `gorm:"type:varchar(1);not null;default:'A'"           json:"shift_group"` // A | B | C | D
	Language     string `gorm:"type:varchar(2);not null;default:'en'"          json:"language"`    // en | sl
	Onboarded    bool   `gorm:"not null;default:false"                         json:"onboarded"`

	// Balance snapshot plus usage since the snapshot was taken.
	VacationDaysBalance int `gorm:"not null;default:0" json:"vacation_days_balance"`
	VacationDaysUsed    int `gorm:"not null;default:0" json:"vacation_days_used"`
	FlexDaysBalance     int `gorm:"not null;default:0" json:"flex_days_balance"`
	FlexDaysUsed        int `gorm:"not null;default:0" json:"flex_days_used"`

	BaseModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
