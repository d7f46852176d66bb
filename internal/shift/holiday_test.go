package shift

import (
	"testing"
	"time"
)

func TestIsHoliday(t *testing.T) {
	if !IsHoliday(date(2025, time.January, 1)) {
		t.Error("2025-01-01 should be a holiday")
	}
	if IsHoliday(date(2025, time.January, 15)) {
		t.Error("2025-01-15 should not be a holiday")
	}
	// Fixed holidays recur in every year.
	if !IsHoliday(date(1991, time.June, 25)) {
		t.Error("1991-06-25 should be a holiday")
	}
}

func TestHolidayName(t *testing.T) {
	name, ok := HolidayName(date(2025, time.February, 8), LocaleEN)
	if !ok || name != "Prešeren Day" {
		t.Errorf("HolidayName(02-08, en) = %q, %v", name, ok)
	}

	name, ok = HolidayName(date(2025, time.February, 8), LocaleSL)
	if !ok || name != "Prešernov dan" {
		t.Errorf("HolidayName(02-08, sl) = %q, %v", name, ok)
	}

	// Unknown locale falls back to English.
	name, ok = HolidayName(date(2025, time.December, 25), Locale("de"))
	if !ok || name != "Christmas Day" {
		t.Errorf("HolidayName(12-25, de) = %q, %v", name, ok)
	}

	if _, ok := HolidayName(date(2025, time.March, 3), LocaleEN); ok {
		t.Error("HolidayName(03-03) returned a name for a non-holiday")
	}
}

func TestHolidaysInMonth(t *testing.T) {
	dec := HolidaysInMonth(time.December)
	if len(dec) != 2 {
		t.Fatalf("HolidaysInMonth(December) returned %d holidays, want 2", len(dec))
	}
	if dec[0].Day != 25 || dec[1].Day != 26 {
		t.Errorf("December holidays on days %d and %d, want 25 and 26", dec[0].Day, dec[1].Day)
	}

	if got := HolidaysInMonth(time.March); len(got) != 0 {
		t.Errorf("HolidaysInMonth(March) returned %d holidays, want 0", len(got))
	}
}
