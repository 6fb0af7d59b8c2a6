package mediatype

import (
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type SourceType string

const (
	SourceTypeImage SourceType = "image"
	SourceTypeText  SourceType = "text"
)

type Service struct{}

// Detect classifies the file at path by its content-derived media type.
// Anything under image/* is an image source; everything else is text.
func (s *Service) Detect(path string) (SourceType, error) {
	info, err := os.Stat(path)

	if err != nil {
		return "", err
	}

	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("not a regular file: %s", path)
	}

	mtype, err := mimetype.DetectFile(path)

	if err != nil {
		return "", err
	}

	if strings.HasPrefix(mtype.String(), "image/") {
		return SourceTypeImage, nil
	}

	return SourceTypeText, nil
}
