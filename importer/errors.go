package importer

import "fmt"

// Batch-fatal input errors. Any of these aborts the whole invoice run before
// a single artifact is written.

type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q is missing from the input", e.Column)
}

type DateParseError struct {
	Row   int
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("row %d: date %q does not match format DD.MM.YYYY", e.Row, e.Value)
}

type TimeParseError struct {
	Row   int
	Value string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("row %d: start time %q does not parse as HH:MM", e.Row, e.Value)
}
