package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"vikarfaktura/shift"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, lines []shift.PricedLine) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(invoiceHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, line := range lines {
		if err := writer.Write(invoiceRow(line)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
