package tunnels

import (
	"fmt"
	"strings"
)

// ValidationResult is the outcome of a syntax check: OK with no violations,
// or an ordered list of human-readable violation descriptions.
// InvalidLineNumbers points at the key=value offenders for diagnostics;
// line content itself is never reproduced.
type ValidationResult struct {
	OK                 bool
	Violations         []string
	InvalidLineNumbers []int
}

type numberedLine struct {
	number int
	text   string
}

// isIdentifier reports whether s is a non-empty run of [A-Za-z0-9_].
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}

	return true
}

// isSectionHeader reports whether line is exactly a bracketed identifier,
// e.g. "[Interface]".
func isSectionHeader(line string) bool {
	if len(line) < 3 || line[0] != '[' || line[len(line)-1] != ']' {
		return false
	}

	return isIdentifier(line[1 : len(line)-1])
}

// isKeyValue reports whether line is an identifier, optional whitespace, '=',
// and an arbitrary (possibly empty) value.
func isKeyValue(line string) bool {
	eq := strings.IndexByte(line, '=')
	if eq <= 0 {
		return false
	}

	return isIdentifier(strings.TrimRight(line[:eq], " \t"))
}

// normalize drops blank and comment lines and trims the rest, keeping the
// original one-based line numbers for diagnostics.
func normalize(raw string) []numberedLine {
	var lines []numberedLine

	for i, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		lines = append(lines, numberedLine{number: i + 1, text: trimmed})
	}

	return lines
}

// Validate checks raw tunnel configuration text against the wg-quick line
// grammar. Purely syntactic: keys are not matched against known WireGuard
// directives and values are not interpreted, so unknown future directives
// pass. Checks run in a fixed order to keep diagnostics deterministic.
func Validate(raw string) ValidationResult {
	lines := normalize(raw)

	var violations []string
	var invalidLineNumbers []int

	hasInterface := false
	for _, line := range lines {
		if line.text == "[Interface]" {
			hasInterface = true
			break
		}
	}

	if !hasInterface {
		violations = append(violations, "missing Interface section")
	}

	for _, line := range lines {
		if isSectionHeader(line.text) {
			continue
		}

		if strings.ContainsRune(line.text, '[') {
			violations = append(violations, fmt.Sprintf("malformed section at line %d", line.number))
		}
	}

	for _, line := range lines {
		if isSectionHeader(line.text) {
			continue
		}

		if !isKeyValue(line.text) {
			invalidLineNumbers = append(invalidLineNumbers, line.number)
		}
	}

	if len(invalidLineNumbers) > 0 {
		violations = append(violations, "invalid key=value lines present")
	}

	return ValidationResult{
		OK:                 len(violations) == 0,
		Violations:         violations,
		InvalidLineNumbers: invalidLineNumbers,
	}
}
