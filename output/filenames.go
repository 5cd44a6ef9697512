package output

import (
	"fmt"
	"time"

	"vikarfaktura/internal/timeutil"
	"vikarfaktura/shift"
)

// BaseName derives the artifact name from the invoice number and the
// earliest ISO week among the billed dates.
func BaseName(invoiceNumber int, lines []shift.PricedLine) string {
	dates := make([]time.Time, 0, len(lines))
	for _, line := range lines {
		dates = append(dates, line.Date)
	}
	week := timeutil.MinISOWeek(dates)
	return fmt.Sprintf("Faktura_%d_Uge_%d", invoiceNumber, week)
}

func ExcelFileName(invoiceNumber int, lines []shift.PricedLine) string {
	return BaseName(invoiceNumber, lines) + ".xlsx"
}

func CSVFileName(invoiceNumber int, lines []shift.PricedLine) string {
	return BaseName(invoiceNumber, lines) + ".csv"
}

func PDFFileName(invoiceNumber int, lines []shift.PricedLine) string {
	return BaseName(invoiceNumber, lines) + ".pdf"
}
