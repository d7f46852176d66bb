package shift

import "time"

// Locale selects the holiday name language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleSL Locale = "sl"
)

// Holiday is a fixed-date Slovenian public holiday. All supported
// holidays recur on the same month and day every year; movable feasts
// (Easter Monday, Whit Sunday) are not modeled.
type Holiday struct {
	Month  time.Month
	Day    int
	NameEN string
	NameSL string
}

// Name returns the holiday name in the requested locale, defaulting to
// English.
func (h Holiday) Name(locale Locale) string {
	if locale == LocaleSL {
		return h.NameSL
	}
	return h.NameEN
}

// holidays is the fixed national holiday table.
// Source: https://www.gov.si/teme/prazniki-in-dela-prosti-dnevi/
var holidays = []Holiday{
	{time.January, 1, "New Year's Day", "Novo leto"},
	{time.January, 2, "New Year's Day (2nd)", "Novo leto"},
	{time.February, 8, "Prešeren Day", "Prešernov dan"},
	{time.May, 1, "Labour Day", "Praznik dela"},
	{time.May, 2, "Labour Day (2nd)", "Praznik dela"},
	{time.June, 25, "Statehood Day", "Dan državnosti"},
	{time.August, 15, "Assumption Day", "Marijino vnebovzetje"},
	{time.October, 31, "Reformation Day", "Dan reformacije"},
	{time.November, 1, "All Saints' Day", "Dan spomina na mrtve"},
	{time.December, 25, "Christmas Day", "Božič"},
	{time.December, 26, "Independence and Unity Day", "Dan samostojnosti in enotnosti"},
}

// IsHoliday reports whether date falls on a public holiday.
func IsHoliday(date time.Time) bool {
	_, ok := lookupHoliday(date)
	return ok
}

// HolidayName returns the localized holiday name for date, or "" and
// false when the date is not a holiday.
func HolidayName(date time.Time, locale Locale) (string, bool) {
	h, ok := lookupHoliday(date)
	if !ok {
		return "", false
	}
	return h.Name(locale), true
}

// HolidaysInMonth returns the holidays falling within a month, in
// day order (the table is already sorted).
func HolidaysInMonth(month time.Month) []Holiday {
	var result []Holiday
	for _, h := range holidays {
		if h.Month == month {
			result = append(result, h)
		}
	}
	return result
}

func lookupHoliday(date time.Time) (Holiday, bool) {
	_, month, day := date.Date()
	for _, h := range holidays {
		if h.Month == month && h.Day == day {
			return h, true
		}
	}
	return Holiday{}, false
}
