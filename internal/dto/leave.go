package dto

// ── leave module DTOs ──

// LeaveRequest asks for a multi-day absence.
type LeaveRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"required,datetime=2006-01-02"`
	Type      string `json:"type"       binding:"required,oneof=SICK VACATION BANK_HOURS OTHER"`
	Reason    string `json:"reason"     binding:"omitempty,max=500"`
}

// LeaveResponse is a stored leave request.
type LeaveResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

// ── extra hours DTOs ──

// ExtraHoursRequest logs a typed hour entry for approval.
type ExtraHoursRequest struct {
	Date   string `json:"date"   binding:"required,datetime=2006-01-02"`
	Hours  int    `json:"hours"  binding:"required,min=1,max=24"`
	Type   string `json:"type"   binding:"required,oneof=OVERTIME_PAYOUT BANK_WITHDRAWAL"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// ExtraHoursResponse is a stored extra-hours entry.
type ExtraHoursResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Hours  int    `json:"hours"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}
