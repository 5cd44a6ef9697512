package timeutil

import (
	"testing"
	"time"
)

func TestStartHour(t *testing.T) {
	t.Parallel()

	cases := []struct {
		timeRange string
		want      int
	}{
		{"07:30-15:00", 7},
		{"14:59-22:00", 14},
		{"15:00-23:00", 15},
		{"00:15-08:15", 0},
	}
	for _, c := range cases {
		got, err := StartHour(c.timeRange)
		if err != nil {
			t.Fatalf("start hour of %q: %v", c.timeRange, err)
		}
		if got != c.want {
			t.Fatalf("start hour of %q: want %d, got %d", c.timeRange, c.want, got)
		}
	}
}

func TestStartHour_RejectsMalformedToken(t *testing.T) {
	t.Parallel()

	if _, err := StartHour("late-15:00"); err == nil {
		t.Fatalf("expected error for malformed start token")
	}
	if _, err := StartHour(""); err == nil {
		t.Fatalf("expected error for empty range")
	}
}

func TestEndHour(t *testing.T) {
	t.Parallel()

	cases := []struct {
		timeRange string
		want      int
	}{
		{"07:30-15:00", 15},
		{"15:00-23:45", 23},
		{"23:00-07:00", 7},
	}
	for _, c := range cases {
		got, err := EndHour(c.timeRange)
		if err != nil {
			t.Fatalf("end hour of %q: %v", c.timeRange, err)
		}
		if got != c.want {
			t.Fatalf("end hour of %q: want %d, got %d", c.timeRange, c.want, got)
		}
	}
}

func TestEndHour_RejectsMalformedToken(t *testing.T) {
	t.Parallel()

	if _, err := EndHour("07:00-aften"); err == nil {
		t.Fatalf("expected error for malformed end token")
	}
	if _, err := EndHour("07:00"); err == nil {
		t.Fatalf("expected error for range without an end token")
	}
}

func TestIsWeekend(t *testing.T) {
	t.Parallel()

	saturday := time.Date(2025, 4, 5, 0, 0, 0, 0, time.Local)
	sunday := time.Date(2025, 4, 6, 0, 0, 0, 0, time.Local)
	monday := time.Date(2025, 4, 7, 0, 0, 0, 0, time.Local)

	if !IsWeekend(saturday) || !IsWeekend(sunday) {
		t.Fatalf("expected saturday and sunday to be weekend")
	}
	if IsWeekend(monday) {
		t.Fatalf("expected monday to be a weekday")
	}
}

func TestMinISOWeek(t *testing.T) {
	t.Parallel()

	dates := []time.Time{
		time.Date(2025, 4, 14, 0, 0, 0, 0, time.Local), // week 16
		time.Date(2025, 4, 7, 0, 0, 0, 0, time.Local),  // week 15
		time.Date(2025, 4, 20, 0, 0, 0, 0, time.Local), // week 16
	}
	if got := MinISOWeek(dates); got != 15 {
		t.Fatalf("want week 15, got %d", got)
	}
	if got := MinISOWeek(nil); got != 0 {
		t.Fatalf("want 0 for empty input, got %d", got)
	}
}
