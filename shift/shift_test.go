package shift

import (
	"testing"
	"time"
)

func TestHolidaySetContainsByCalendarDate(t *testing.T) {
	t.Parallel()

	holidays := NewHolidaySet(
		time.Date(2025, 4, 17, 0, 0, 0, 0, time.Local),
		time.Date(2025, 4, 18, 0, 0, 0, 0, time.Local),
	)

	if !holidays.Contains(time.Date(2025, 4, 17, 23, 15, 0, 0, time.Local)) {
		t.Fatalf("time of day must not matter")
	}
	if holidays.Contains(time.Date(2025, 4, 19, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("2025-04-19 is not in the set")
	}
}

func TestDistinctDatesSortsAndDeduplicates(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{Date: time.Date(2025, 4, 9, 0, 0, 0, 0, time.Local)},
		{Date: time.Date(2025, 4, 7, 0, 0, 0, 0, time.Local)},
		{Date: time.Date(2025, 4, 9, 0, 0, 0, 0, time.Local)},
		{Date: time.Date(2025, 4, 8, 0, 0, 0, 0, time.Local)},
	}

	dates := DistinctDates(lines)
	if len(dates) != 3 {
		t.Fatalf("want 3 distinct dates, got %d", len(dates))
	}
	for i, want := range []int{7, 8, 9} {
		if dates[i].Day() != want {
			t.Fatalf("position %d: want day %d, got %d", i, want, dates[i].Day())
		}
	}
}

func TestDistinctDatesEmptyInput(t *testing.T) {
	t.Parallel()

	if dates := DistinctDates(nil); len(dates) != 0 {
		t.Fatalf("want empty slice, got %v", dates)
	}
}
