// Package shift implements the rotating 4-group shift pattern and the
// public-holiday calendar. Everything in this package is pure: no I/O,
// no clock reads, no storage.
package shift

import (
	"fmt"
	"time"
)

// Group is one of the four rotating shift groups.
type Group string

const (
	GroupA Group = "A"
	GroupB Group = "B"
	GroupC Group = "C"
	GroupD Group = "D"
)

// Valid reports whether g is one of the four known groups.
func (g Group) Valid() bool {
	switch g {
	case GroupA, GroupB, GroupC, GroupD:
		return true
	}
	return false
}

// Type is the shift assigned on a single day.
type Type string

const (
	Morning   Type = "MORNING"
	Afternoon Type = "AFTERNOON"
	Night     Type = "NIGHT"
	Rest      Type = "REST"

	// Off is only produced by overrides: a forced non-working day that
	// is distinct from a pattern REST day.
	Off Type = "OFF"
)

// Working reports whether t is one of the three working shifts.
func (t Type) Working() bool {
	return t == Morning || t == Afternoon || t == Night
}

// The pattern repeats every eight days: two of each working shift
// followed by two rest days. Each group enters the cycle at a fixed
// phase offset, spaced two apart so that no two groups rest together
// and one group is on each working shift at all times.
var (
	cycle = [cycleLength]Type{
		Morning, Morning,
		Afternoon, Afternoon,
		Night, Night,
		Rest, Rest,
	}

	groupOffsets = map[Group]int{
		GroupA: 0,
		GroupB: 2,
		GroupC: 4,
		GroupD: 6,
	}
)

const cycleLength = 8

// epoch anchors the cycle. Group A starts the cycle (MORNING) on this
// day.
var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Resolve returns the base shift for a group on a calendar date. It is
// total: dates before the epoch resolve the same way, with the negative
// distance normalized into the cycle.
func Resolve(date time.Time, group Group) Type {
	days := daysSinceEpoch(date)
	pos := mod(days+groupOffsets[group], cycleLength)
	return cycle[pos]
}

// ResolveOverride maps a stored override value onto a shift type for a
// date. "OFF" forces a non-working day; a group code means working
// whatever that group works on the date.
func ResolveOverride(date time.Time, newShift string) (Type, error) {
	if newShift == string(Off) {
		return Off, nil
	}
	g := Group(newShift)
	if !g.Valid() {
		return "", fmt.Errorf("unknown override shift %q", newShift)
	}
	return Resolve(date, g), nil
}

// DaysUntilRest returns how many days from date until the group's next
// REST day, in 1..8.
func DaysUntilRest(date time.Time, group Group) int {
	days := daysSinceEpoch(date)
	pos := mod(days+groupOffsets[group], cycleLength)
	for i := 1; i <= cycleLength; i++ {
		if cycle[mod(pos+i, cycleLength)] == Rest {
			return i
		}
	}
	return 0 // unreachable: the cycle always contains REST
}

// daysSinceEpoch counts whole calendar days between the epoch and date.
// The date is re-anchored to midnight UTC first so DST shifts and
// wall-clock zones cannot skew the count.
func daysSinceEpoch(date time.Time) int {
	y, m, d := date.Date()
	utc := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(utc.Sub(epoch).Hours() / 24)
}

// mod normalizes x into [0, n) for negative x as well.
func mod(x, n int) int {
	return ((x % n) + n) % n
}
