package importer

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVReader reads a comma-separated schedule export with the same header
// contract as the Excel form.
type CSVReader struct{}

func (r *CSVReader) Read(path string) (*Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read schedule file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("schedule file %s has no header row", path)
	}

	headers := rows[0]
	sheet := &Sheet{Columns: headers}
	for i, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		sheet.Records = append(sheet.Records, newRecord(i+2, headers, cells))
	}

	return sheet, nil
}
