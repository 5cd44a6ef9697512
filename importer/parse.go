package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "02.01.2006"

// parseHours accepts both dot and Danish comma decimals ("7.5", "7,5").
func parseHours(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, fmt.Errorf("empty hours value")
	}
	if strings.Contains(cleaned, ",") {
		if strings.Contains(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	hours, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse hours %q: %w", raw, err)
	}
	return hours, nil
}

func parseDate(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// clipTimeToken keeps the leading "HH:MM" of a time value that may carry
// seconds or more ("07:30:00").
func clipTimeToken(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) <= 5 {
		return trimmed
	}
	return trimmed[:5]
}
