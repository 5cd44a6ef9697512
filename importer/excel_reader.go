package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads the weekly schedule export: the first sheet of the
// workbook, one header row followed by shift rows. Blank filler rows are
// skipped; row numbers track the sheet so batch errors point at the cell
// the operator sees.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) (*Sheet, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("schedule file %s has no sheets", path)
	}

	rows, err := file.Rows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read schedule sheet %q: %w", sheetName, err)
	}
	defer rows.Close()

	sheet := &Sheet{}
	var headers []string
	rowNumber := 0
	for rows.Next() {
		rowNumber++
		cells, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("read row %d of schedule sheet %q: %w", rowNumber, sheetName, err)
		}

		if headers == nil {
			headers = cells
			sheet.Columns = cells
			continue
		}
		if blankRow(cells) {
			continue
		}
		sheet.Records = append(sheet.Records, newRecord(rowNumber, headers, cells))
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("iterate schedule sheet %q: %w", sheetName, err)
	}
	if headers == nil {
		return nil, fmt.Errorf("schedule sheet %q in %s has no header row", sheetName, path)
	}

	return sheet, nil
}
