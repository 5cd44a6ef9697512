package output

import (
	"fmt"
	"strings"

	"vikarfaktura/shift"
)

// Invoice table columns, in the order the client expects them.
var invoiceHeaders = []string{
	"Dato",
	"Medarbejder",
	"Tidsperiode",
	"Timer",
	"Personalegruppe",
	"Jobfunktion",
	"Helligdag",
	"Takst",
	"Samlet",
}

type Writer interface {
	Write(path string, lines []shift.PricedLine) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

func holidayLabel(holiday bool) string {
	if holiday {
		return "Ja"
	}
	return "Nej"
}

func invoiceRow(line shift.PricedLine) []string {
	return []string{
		line.Date.Format("02.01.2006"),
		line.Employee,
		line.TimeRange,
		fmt.Sprintf("%.1f", line.Hours),
		line.RawCategory,
		line.Bucket,
		holidayLabel(line.Holiday),
		fmt.Sprintf("%d", line.Rate),
		fmt.Sprintf("%.2f", line.Total),
	}
}
