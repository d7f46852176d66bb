package dto

// ── schedule module DTOs ──

// MonthQuery selects a calendar month.
type MonthQuery struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year"  binding:"required,min=2000,max=2100"`
}

// YearQuery selects a calendar year.
type YearQuery struct {
	Year int `form:"year" binding:"required,min=2000,max=2100"`
}

// ScheduleEntry is one composed calendar day: the effective shift
// (override wins over the pattern), the ledger fields and the holiday
// overlay.
type ScheduleEntry struct {
	Date            string  `json:"date"` // YYYY-MM-DD
	Shift           string  `json:"shift"`
	IsOverride      bool    `json:"is_override"`
	OverrideReason  string  `json:"override_reason,omitempty"`
	OvertimeHours   int     `json:"overtime_hours"`
	BankedHours     int     `json:"banked_hours"`
	WorkedShiftType *string `json:"worked_shift_type,omitempty"`
	IsVacation      bool    `json:"is_vacation"`
	IsSickLeave     bool    `json:"is_sick_leave"`
	IsFlexTime      bool    `json:"is_flex_time"`
	IsHoliday       bool    `json:"is_holiday"`
	HolidayName     string  `json:"holiday_name,omitempty"`
}

// MonthlyStatsResponse aggregates one month of composed schedule.
type MonthlyStatsResponse struct {
	ShiftCounts   map[string]int `json:"shift_counts"` // MORNING/AFTERNOON/NIGHT/REST, OFF days skipped
	VacationDays  int            `json:"vacation_days"`
	SickLeaveDays int            `json:"sick_leave_days"`
	FlexTimeDays  int            `json:"flex_time_days"`
	OvertimeTotal int            `json:"overtime_total"`
	BankedTotal   int            `json:"banked_total"`
}

// YearlyShiftStatsResponse counts shift types over a whole year,
// override-aware.
type YearlyShiftStatsResponse struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Night     int `json:"night"`
	Rest      int `json:"rest"`
}

// TrendPoint is one month's bucket in the yearly trend.
type TrendPoint struct {
	Month         int `json:"month"` // 1-12
	OvertimeHours int `json:"overtime_hours"`
	SickLeaveDays int `json:"sick_leave_days"`
}

// NextRestResponse says how far away the next pattern REST day is.
type NextRestResponse struct {
	DaysUntilRest int    `json:"days_until_rest"`
	RestDate      string `json:"rest_date"` // YYYY-MM-DD
}

// HolidayResponse is one public holiday within a queried month.
type HolidayResponse struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}

// ── overrides ──

// OverrideRequest asks for a manual shift swap on one day.
type OverrideRequest struct {
	Date     string `json:"date"      binding:"required,datetime=2006-01-02"`
	NewShift string `json:"new_shift" binding:"required,oneof=A B C D OFF"`
	Reason   string `json:"reason"    binding:"omitempty,max=500"`
}

// OverrideResponse is a stored override.
type OverrideResponse struct {
	Date     string `json:"date"`
	NewShift string `json:"new_shift"`
	Reason   string `json:"reason,omitempty"`
}
