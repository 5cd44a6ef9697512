package shift

import (
	"sort"
	"time"
)

// Category is the normalized staff group used for rate lookup.
type Category string

const (
	CategoryUnskilled Category = "unskilled"
	CategoryHelper    Category = "helper"
	CategoryAssistant Category = "assistant"
	CategoryUnknown   Category = "unknown"
)

// Line is the cleaned, billable shift record produced by the normalizer.
type Line struct {
	Date        time.Time
	Employee    string
	TimeRange   string // "HH:MM-HH:MM", derived from the raw start/end times
	Hours       float64
	RawCategory string
	Category    Category
	Bucket      string
	RawLocation string // kept unbucketed for surcharge matching
}

// PricedLine is a Line with the pricing fields attached. It is terminal:
// report writers consume it, nothing mutates it afterwards.
type PricedLine struct {
	Line
	Holiday bool
	Rate    int
	Total   float64
}

// HolidaySet holds the operator-chosen holiday dates for one invoice run.
// Membership is by calendar day.
type HolidaySet map[string]struct{}

func NewHolidaySet(dates ...time.Time) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, date := range dates {
		set[dayKey(date)] = struct{}{}
	}
	return set
}

func (s HolidaySet) Contains(date time.Time) bool {
	_, ok := s[dayKey(date)]
	return ok
}

func dayKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// DistinctDates returns the unique calendar dates among the lines, ascending.
func DistinctDates(lines []Line) []time.Time {
	seen := make(map[string]time.Time, len(lines))
	for _, line := range lines {
		seen[dayKey(line.Date)] = line.Date
	}

	dates := make([]time.Time, 0, len(seen))
	for _, date := range seen {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
