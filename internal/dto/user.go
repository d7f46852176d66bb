package dto

// ── user module DTOs ──

// UserResponse is the profile as returned to its owner.
type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ShiftGroup string `json:"shift_group"`
	Language   string `json:"language"`
	Onboarded  bool   `json:"onboarded"`
}

// UpdateProfileRequest applies a partial profile update; nil fields are
// left untouched.
type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name"  binding:"omitempty,max=100"`
	LastName   *string `json:"last_name"   binding:"omitempty,max=100"`
	ShiftGroup *string `json:"shift_group" binding:"omitempty,oneof=A B C D"`
	Language   *string `json:"language"    binding:"omitempty,oneof=en sl"`
}

// OnboardingRequest completes first-login setup: the shift group plus
// the current balance snapshot. Usage counters restart at zero.
type OnboardingRequest struct {
	FirstName           string `json:"first_name"            binding:"required,max=100"`
	LastName            string `json:"last_name"             binding:"required,max=100"`
	ShiftGroup          string `json:"shift_group"           binding:"required,oneof=A B C D"`
	Language            string `json:"language"              binding:"omitempty,oneof=en sl"`
	VacationDaysBalance *int   `json:"vacation_days_balance" binding:"omitempty,min=0"`
	FlexDaysBalance     *int   `json:"flex_days_balance"     binding:"omitempty,min=0"`
}

// BalanceResponse is one allowance bucket: snapshot, usage and what is
// left (floored at zero for display).
type BalanceResponse struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// BalancesResponse groups both day allowances.
type BalancesResponse struct {
	Vacation BalanceResponse `json:"vacation"`
	FlexTime BalanceResponse `json:"flex_time"`
}

// BankBalanceResponse is the hour-bank state: earned through the daily
// ledger, withdrawn through approved requests, and the difference.
type BankBalanceResponse struct {
	Earned    int `json:"earned"`
	Withdrawn int `json:"withdrawn"`
	Balance   int `json:"balance"`
}

// AuditLogResponse is one entry of the caller's audit trail, newest
// first.
type AuditLogResponse struct {
	Action    string `json:"action"`
	Details   string `json:"details,omitempty"`
	CreatedAt string `json:"created_at"` // RFC 3339
}
