package importer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Sheet is one parsed schedule table: the raw header texts in source order
// plus the data records. The header is kept separately so column validation
// works even when the export contains no data rows.
type Sheet struct {
	Columns []string
	Records []Record
}

// HasColumn reports whether the header carries the named column, using the
// same normalization as record lookups.
func (s *Sheet) HasColumn(name string) bool {
	normalized := normalizeHeader(name)
	for _, column := range s.Columns {
		if normalizeHeader(column) == normalized {
			return true
		}
	}
	return false
}

type Reader interface {
	Read(path string) (*Sheet, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch normalizeHeader(format) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

// InferFormat resolves the reader format from an explicit value or, when
// empty, from the file extension.
func InferFormat(path, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}

// blankRow reports whether every cell is empty or whitespace. Schedule
// exports often carry trailing blank rows under the real data.
func blankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
