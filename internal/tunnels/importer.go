package tunnels

import (
	"context"
	"fmt"
	"os"

	"wgdesk/internal/logger"
	"wgdesk/internal/mediatype"
)

// SourceDetector classifies an import source as image or text.
type SourceDetector interface {
	Detect(path string) (mediatype.SourceType, error)
}

// PayloadDecoder extracts the raw text payload from a QR-code image.
type PayloadDecoder interface {
	Decode(ctx context.Context, path string) (string, error)
}

// ImportResult describes a completed import. The configuration content is
// deliberately not part of it; only the destination path is reportable.
type ImportResult struct {
	Name       string
	Path       string
	SourceType mediatype.SourceType
}

// Importer runs the import pipeline: classify the source, extract its text
// (QR decode or direct read), validate the syntax, persist atomically.
type Importer struct {
	Detector SourceDetector
	Decoder  PayloadDecoder
	Store    *Store
}

func (i *Importer) Import(ctx context.Context, sourcePath string, baseName string) (*ImportResult, error) {
	if err := ValidateName(baseName); err != nil {
		return nil, err
	}

	sourceType, err := i.Detector.Detect(sourcePath)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}

	var raw string

	switch sourceType {
	case mediatype.SourceTypeImage:
		raw, err = i.Decoder.Decode(ctx, sourcePath)

		if err != nil {
			return nil, err
		}
	default:
		content, err := os.ReadFile(sourcePath)

		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, err)
		}

		raw = string(content)

		if len(raw) == 0 {
			// Non-fatal: validation will report what is missing.
			logger.Warn("Import source %s is empty, proceeding to validation", sourcePath)
		}
	}

	result := Validate(raw)

	if !result.OK {
		return nil, &SyntaxError{Violations: result.Violations}
	}

	path, err := i.Store.Write(baseName, raw)

	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Name:       baseName,
		Path:       path,
		SourceType: sourceType,
	}, nil
}
