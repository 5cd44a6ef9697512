package importer

import (
	"vikarfaktura/config"
)

// ImportFile reads one schedule file and normalizes it in a single run.
// Format is inferred from the file extension when empty.
func ImportFile(path, format string, cfg config.Config) (*Result, error) {
	sourceFormat, err := InferFormat(path, format)
	if err != nil {
		return nil, err
	}

	reader, err := ReaderForFormat(sourceFormat)
	if err != nil {
		return nil, err
	}

	sheet, err := reader.Read(path)
	if err != nil {
		return nil, err
	}

	return Normalize(sheet, cfg)
}
