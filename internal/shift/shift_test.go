package shift

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve_EpochAssignments(t *testing.T) {
	// On the epoch day each group sits at its phase offset.
	epochDay := date(2024, time.January, 1)

	tests := []struct {
		group Group
		want  Type
	}{
		{GroupA, Morning},
		{GroupB, Afternoon},
		{GroupC, Night},
		{GroupD, Rest},
	}

	for _, tt := range tests {
		if got := Resolve(epochDay, tt.group); got != tt.want {
			t.Errorf("Resolve(epoch, %s) = %s, want %s", tt.group, got, tt.want)
		}
	}
}

func TestResolve_GroupBScenario(t *testing.T) {
	// Group B at the epoch is at position 2 (AFTERNOON), two days later
	// at position 4 (NIGHT).
	if got := Resolve(date(2024, time.January, 1), GroupB); got != Afternoon {
		t.Errorf("Resolve(2024-01-01, B) = %s, want AFTERNOON", got)
	}
	if got := Resolve(date(2024, time.January, 3), GroupB); got != Night {
		t.Errorf("Resolve(2024-01-03, B) = %s, want NIGHT", got)
	}
}

func TestResolve_Periodicity(t *testing.T) {
	start := date(2024, time.January, 1)
	for _, g := range []Group{GroupA, GroupB, GroupC, GroupD} {
		for i := 0; i < cycleLength; i++ {
			d := start.AddDate(0, 0, i)
			same := d.AddDate(0, 0, cycleLength)
			if Resolve(d, g) != Resolve(same, g) {
				t.Errorf("group %s not periodic at %s", g, d.Format("2006-01-02"))
			}
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	d := date(2025, time.July, 14)
	first := Resolve(d, GroupC)
	for i := 0; i < 10; i++ {
		if got := Resolve(d, GroupC); got != first {
			t.Fatalf("Resolve not deterministic: %s then %s", first, got)
		}
	}
}

func TestResolve_BeforeEpoch(t *testing.T) {
	// Total for any date: negative distances normalize into the cycle.
	// 2023-12-31 is one day before the epoch, so group A sits at
	// position 7 (REST).
	if got := Resolve(date(2023, time.December, 31), GroupA); got != Rest {
		t.Errorf("Resolve(2023-12-31, A) = %s, want REST", got)
	}
	// Eight days earlier resolves identically.
	if got := Resolve(date(2023, time.December, 23), GroupA); got != Rest {
		t.Errorf("Resolve(2023-12-23, A) = %s, want REST", got)
	}
	// Far past dates must not panic and must stay in range.
	got := Resolve(date(1999, time.March, 7), GroupD)
	switch got {
	case Morning, Afternoon, Night, Rest:
	default:
		t.Errorf("Resolve(1999-03-07, D) = %q, not a cycle value", got)
	}
}

func TestResolve_NoSharedRestDays(t *testing.T) {
	// With offsets spaced two apart, exactly one group rests on any
	// pair of days and the three working shifts are always covered.
	start := date(2024, time.March, 1)
	for i := 0; i < cycleLength; i++ {
		d := start.AddDate(0, 0, i)
		counts := map[Type]int{}
		for _, g := range []Group{GroupA, GroupB, GroupC, GroupD} {
			counts[Resolve(d, g)]++
		}
		for _, typ := range []Type{Morning, Afternoon, Night, Rest} {
			if counts[typ] != 1 {
				t.Errorf("day %s: %s assigned to %d groups, want 1",
					d.Format("2006-01-02"), typ, counts[typ])
			}
		}
	}
}

func TestResolve_IgnoresWallClockZone(t *testing.T) {
	// The same calendar day in any zone resolves identically: only the
	// Y/M/D triple matters.
	zone := time.FixedZone("CEST", 2*60*60)
	local := time.Date(2024, time.June, 10, 23, 30, 0, 0, zone)
	utc := date(2024, time.June, 10)
	if Resolve(local, GroupB) != Resolve(utc, GroupB) {
		t.Error("Resolve differs across zones for the same calendar day")
	}
}

func TestResolveOverride(t *testing.T) {
	d := date(2024, time.January, 1)

	got, err := ResolveOverride(d, "OFF")
	if err != nil || got != Off {
		t.Errorf("ResolveOverride(OFF) = %s, %v; want OFF, nil", got, err)
	}

	// Swapping to group C means working group C's shift that day.
	got, err = ResolveOverride(d, "C")
	if err != nil || got != Night {
		t.Errorf("ResolveOverride(C) = %s, %v; want NIGHT, nil", got, err)
	}

	if _, err := ResolveOverride(d, "X"); err == nil {
		t.Error("ResolveOverride(X) succeeded, want error")
	}
}

func TestDaysUntilRest(t *testing.T) {
	// Group A at the epoch is at position 0; REST starts at position 6.
	if got := DaysUntilRest(date(2024, time.January, 1), GroupA); got != 6 {
		t.Errorf("DaysUntilRest(epoch, A) = %d, want 6", got)
	}
	// Group D rests on the epoch day; its next REST day is tomorrow.
	if got := DaysUntilRest(date(2024, time.January, 1), GroupD); got != 1 {
		t.Errorf("DaysUntilRest(epoch, D) = %d, want 1", got)
	}
}

func TestTypeWorking(t *testing.T) {
	for _, typ := range []Type{Morning, Afternoon, Night} {
		if !typ.Working() {
			t.Errorf("%s.Working() = false, want true", typ)
		}
	}
	for _, typ := range []Type{Rest, Off} {
		if typ.Working() {
			t.Errorf("%s.Working() = true, want false", typ)
		}
	}
}
