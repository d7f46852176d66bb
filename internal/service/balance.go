package service

import (
	"errors"

	"izmena/internal/dto"
	"izmena/internal/model"
)

// ── balance accounting errors ──

var (
	ErrNoVacationDays = errors.New("no vacation days remaining")
	ErrNoFlexDays     = errors.New("no flex days remaining")
)

// dayFlags is the resolved day-state after a partial update.
type dayFlags struct {
	Vacation  bool
	SickLeave bool
	FlexTime  bool
	Holiday   bool
}

func flagsOf(record *model.DailyRecord) dayFlags {
	if record == nil {
		return dayFlags{}
	}
	return dayFlags{
		Vacation:  record.IsVacation,
		SickLeave: record.IsSickLeave,
		FlexTime:  record.IsFlexTime,
		Holiday:   record.IsHoliday,
	}
}

// resolveFlags merges the requested partial flags over the previous
// state and enforces that vacation, sick leave and flex time are
// mutually exclusive: newly selecting one clears the other two.
func resolveFlags(prev dayFlags, req *dto.UpdateDailyRecordRequest) dayFlags {
	next := prev
	if req.IsVacation != nil {
		next.Vacation = *req.IsVacation
	}
	if req.IsSickLeave != nil {
		next.SickLeave = *req.IsSickLeave
	}
	if req.IsFlexTime != nil {
		next.FlexTime = *req.IsFlexTime
	}
	if req.IsHoliday != nil {
		next.Holiday = *req.IsHoliday
	}

	// A flag newly turned on in this write claims the day.
	switch {
	case next.Vacation && !prev.Vacation:
		next.SickLeave = false
		next.FlexTime = false
	case next.SickLeave && !prev.SickLeave:
		next.Vacation = false
		next.FlexTime = false
	case next.FlexTime && !prev.FlexTime:
		next.Vacation = false
		next.SickLeave = false
	}

	return next
}

// applyFlagTransition adjusts the user's usage counters for the flag
// transition from prev to next. It either succeeds, mutating user in
// place, or returns the balance error without touching anything. Sick
// leave and holiday carry no balance effect.
func applyFlagTransition(user *model.User, prev, next dayFlags) error {
	// Validate both transitions before mutating either counter, so a
	// rejected write leaves the profile untouched.
	if !prev.Vacation && next.Vacation {
		if user.VacationDaysBalance-user.VacationDaysUsed <= 0 {
			return ErrNoVacationDays
		}
	}
	if !prev.FlexTime && next.FlexTime {
		if user.FlexDaysBalance-user.FlexDaysUsed <= 0 {
			return ErrNoFlexDays
		}
	}

	switch {
	case !prev.Vacation && next.Vacation:
		user.VacationDaysUsed++
	case prev.Vacation && !next.Vacation:
		if user.VacationDaysUsed > 0 {
			user.VacationDaysUsed--
		}
	}

	switch {
	case !prev.FlexTime && next.FlexTime:
		user.FlexDaysUsed++
	case prev.FlexTime && !next.FlexTime:
		if user.FlexDaysUsed > 0 {
			user.FlexDaysUsed--
		}
	}

	return nil
}
