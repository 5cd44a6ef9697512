package importer

import (
	"regexp"
	"sort"
	"strings"

	"vikarfaktura/config"
	"vikarfaktura/internal/timeutil"
	"vikarfaktura/shift"
)

// The schedule export carries these columns; everything else is ignored.
var requiredColumns = []string{
	"Dato",
	"Medarbejder",
	"Starttid",
	"Sluttid",
	"Timer",
	"Personalegruppe",
	"Jobfunktion",
	"Shift status",
}

// assistantWord matches "assistent"/"assistant" as a whole word, so labels
// like "assistent (aften)" still land in the assistant group.
var assistantWord = regexp.MustCompile(`\b(?:assistent|assistant)\b`)

// Result carries the normalized lines plus audit counters for everything
// that was filtered or left unpriceable along the way.
type Result struct {
	RowsRead            int
	VendorRows          int
	ZeroHourRows        int
	UnknownCategoryRows int
	Lines               []shift.Line
}

// Normalize turns a raw schedule sheet into canonical, priceable lines:
// vendor referrals are excluded, non-billable rows dropped, dates and time
// ranges parsed, categories and locations mapped onto the policy tables,
// and the result sorted by (bucket, date, start time). The header is checked
// first, so a sheet with no data rows still fails when a column is missing.
func Normalize(sheet *Sheet, cfg config.Config) (*Result, error) {
	if err := requireColumns(sheet); err != nil {
		return nil, err
	}

	records := sheet.Records
	result := &Result{
		RowsRead: len(records),
		Lines:    make([]shift.Line, 0, len(records)),
	}

	for _, record := range records {
		if isVendorRow(record, cfg.VendorMarkers) {
			result.VendorRows++
			continue
		}

		hours, err := parseHours(record.Get("Timer"))
		if err != nil || hours <= 0 {
			result.ZeroHourRows++
			continue
		}

		timeRange := clipTimeToken(record.Get("Starttid")) + "-" + clipTimeToken(record.Get("Sluttid"))
		if _, err := timeutil.StartHour(timeRange); err != nil {
			return nil, &TimeParseError{Row: record.RowNumber, Value: record.Get("Starttid")}
		}
		if _, err := timeutil.EndHour(timeRange); err != nil {
			return nil, &TimeParseError{Row: record.RowNumber, Value: record.Get("Sluttid")}
		}

		date, err := parseDate(record.Get("Dato"))
		if err != nil {
			return nil, &DateParseError{Row: record.RowNumber, Value: record.Get("Dato")}
		}

		rawCategory := record.Get("Personalegruppe")
		category := normalizeCategory(rawCategory, cfg.Categories)
		if category == shift.CategoryUnknown {
			result.UnknownCategoryRows++
		}

		rawLocation := record.Get("Jobfunktion")
		result.Lines = append(result.Lines, shift.Line{
			Date:        date,
			Employee:    record.Get("Medarbejder"),
			TimeRange:   timeRange,
			Hours:       hours,
			RawCategory: rawCategory,
			Category:    category,
			Bucket:      bucketLocation(rawLocation, cfg.Locations),
			RawLocation: rawLocation,
		})
	}

	sortLines(result.Lines)
	return result, nil
}

func requireColumns(sheet *Sheet) error {
	for _, column := range requiredColumns {
		if !sheet.HasColumn(column) {
			return &MissingColumnError{Column: column}
		}
	}
	return nil
}

// isVendorRow reports whether any field mentions one of the vendor markers.
// The agency must never bill its own subcontracted referrals back to itself.
func isVendorRow(record Record, markers []string) bool {
	for _, value := range record.Values {
		lowered := strings.ToLower(value)
		for _, marker := range markers {
			if marker != "" && strings.Contains(lowered, strings.ToLower(marker)) {
				return true
			}
		}
	}
	return false
}

// normalizeCategory collapses whitespace (including non-breaking spaces),
// lower-cases, and resolves the label through the synonyms table. Labels
// containing "assistent"/"assistant" as a whole word fall back to the
// assistant group; everything else is unknown and will price at 0.
func normalizeCategory(raw string, categories config.Categories) shift.Category {
	cleaned := cleanCategoryText(raw)
	if cleaned == "" {
		return shift.CategoryUnknown
	}

	if canonical, ok := categories.Synonyms[cleaned]; ok {
		switch shift.Category(canonical) {
		case shift.CategoryUnskilled, shift.CategoryHelper, shift.CategoryAssistant:
			return shift.Category(canonical)
		}
	}
	if assistantWord.MatchString(cleaned) {
		return shift.CategoryAssistant
	}
	return shift.CategoryUnknown
}

func cleanCategoryText(raw string) string {
	replaced := strings.ReplaceAll(raw, "\u00a0", " ")
	return strings.ToLower(strings.Join(strings.Fields(replaced), " "))
}

// CleanCategory exposes the label cleanup for callers that display the
// normalized text (it is idempotent).
func CleanCategory(raw string) string {
	return cleanCategoryText(raw)
}

func bucketLocation(raw string, locations config.Locations) string {
	lowered := strings.ToLower(raw)
	for _, rule := range locations.Rules {
		if strings.Contains(lowered, strings.ToLower(rule.Match)) {
			return rule.Bucket
		}
	}
	return locations.Fallback
}

func sortLines(lines []shift.Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Bucket != lines[j].Bucket {
			return lines[i].Bucket < lines[j].Bucket
		}
		if !lines[i].Date.Equal(lines[j].Date) {
			return lines[i].Date.Before(lines[j].Date)
		}
		return lines[i].TimeRange < lines[j].TimeRange
	})
}
