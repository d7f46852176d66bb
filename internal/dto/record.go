package dto

// ── daily record DTOs ──

// UpdateDailyRecordRequest is a partial daily-record write; nil fields
// keep their stored value. Setting one of the vacation/sick/flex flags
// to true clears the other two.
type UpdateDailyRecordRequest struct {
	OvertimeHours   *int    `json:"overtime_hours"    binding:"omitempty,min=0"`
	BankedHours     *int    `json:"banked_hours"`
	WorkedShiftType *string `json:"worked_shift_type" binding:"omitempty,oneof=MORNING AFTERNOON NIGHT"`
	IsVacation      *bool   `json:"is_vacation"`
	IsSickLeave     *bool   `json:"is_sick_leave"`
	IsFlexTime      *bool   `json:"is_flex_time"`
	IsHoliday       *bool   `json:"is_holiday"`
}

// DailyRecordResponse is a stored record for one day.
type DailyRecordResponse struct {
	Date            string  `json:"date"` // YYYY-MM-DD
	OvertimeHours   int     `json:"overtime_hours"`
	BankedHours     int     `json:"banked_hours"`
	WorkedShiftType *string `json:"worked_shift_type,omitempty"`
	IsVacation      bool    `json:"is_vacation"`
	IsSickLeave     bool    `json:"is_sick_leave"`
	IsFlexTime      bool    `json:"is_flex_time"`
	IsHoliday       bool    `json:"is_holiday"`
}

// MonthlyTotalsResponse sums the ledger for one month. BankedTotal
// deliberately spans the user's whole history: the bank is a running
// balance, not a monthly counter.
type MonthlyTotalsResponse struct {
	OvertimeTotal int `json:"overtime_total"`
	BankedTotal   int `json:"banked_total"`
}
