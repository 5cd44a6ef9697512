package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"vikarfaktura/shift"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, lines []shift.PricedLine) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if err := file.SetSheetName(sheet, "Faktura"); err != nil {
		return fmt.Errorf("rename invoice sheet: %w", err)
	}
	sheet = "Faktura"

	for col, header := range invoiceHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, line := range lines {
		row := i + 2
		values := []any{
			line.Date.Format("02.01.2006"),
			line.Employee,
			line.TimeRange,
			line.Hours,
			line.RawCategory,
			line.Bucket,
			holidayLabel(line.Holiday),
			line.Rate,
			line.Total,
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
