package importer

import (
	"strings"
)

type Record struct {
	RowNumber int
	Values    map[string]string
}

func (r Record) Get(keys ...string) string {
	for _, key := range keys {
		normalized := normalizeHeader(key)
		if value, ok := r.Values[normalized]; ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// newRecord pairs one data row with the header, backfilling cells the row
// is too short to carry.
func newRecord(rowNumber int, headers, cells []string) Record {
	values := make(map[string]string, len(headers))
	for i, header := range headers {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		values[normalizeHeader(header)] = value
	}
	return Record{RowNumber: rowNumber, Values: values}
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}
