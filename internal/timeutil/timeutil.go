package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// StartHour extracts the hour from the leading "HH:MM" token of a time-range
// string such as "07:30-15:00".
func StartHour(timeRange string) (int, error) {
	token, _, _ := strings.Cut(timeRange, "-")
	parsed, err := time.Parse("15:04", strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("parse start time %q: %w", token, err)
	}
	return parsed.Hour(), nil
}

// EndHour extracts the hour from the trailing "HH:MM" token of a time-range
// string.
func EndHour(timeRange string) (int, error) {
	_, token, found := strings.Cut(timeRange, "-")
	if !found {
		return 0, fmt.Errorf("time range %q has no end token", timeRange)
	}
	parsed, err := time.Parse("15:04", strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("parse end time %q: %w", token, err)
	}
	return parsed.Hour(), nil
}

func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// MinISOWeek returns the smallest ISO week number among the dates, 0 when
// the slice is empty.
func MinISOWeek(dates []time.Time) int {
	min := 0
	for _, date := range dates {
		_, week := date.ISOWeek()
		if min == 0 || week < min {
			min = week
		}
	}
	return min
}
