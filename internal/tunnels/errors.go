package tunnels

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidName    = errors.New("tunnel name must not contain path separators or '..'")
	ErrSourceNotFound = errors.New("import source not found or unreadable")
	ErrEmptySource    = errors.New("import source is empty")
	ErrWriteFailed    = errors.New("failed to persist tunnel configuration")
)

// SyntaxError carries the ordered list of violations reported by Validate.
// Offending line content never appears in the message; it may hold private
// key material.
type SyntaxError struct {
	Violations []string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("configuration syntax invalid: %s", strings.Join(e.Violations, "; "))
}
