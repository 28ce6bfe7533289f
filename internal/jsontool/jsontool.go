// Package jsontool provides the stateless JSON helpers surfaced by the
// clipd json subcommands: validation with position reporting,
// pretty-printing, and minification.
package jsontool

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationResult describes the outcome of validating a JSON document.
type ValidationResult struct {
	Valid        bool
	ErrorMessage string
	Formatted    string
	Line         int // 1-based, 0 when unknown
	Column       int // 1-based, 0 when unknown
}

// Validate parses text as JSON. On success the result carries the
// pretty-printed document; on failure it carries the parse error and,
// when available, the 1-based line and column of the failure.
func Validate(text string) ValidationResult {
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		line, column := errorPosition(text, err)
		return ValidationResult{
			ErrorMessage: fmt.Sprintf("JSON Parse Error: %v", err),
			Line:         line,
			Column:       column,
		}
	}

	formatted, err := Format(text)
	if err != nil {
		// Parsed but could not be re-rendered; fall back to the input.
		formatted = text
	}

	return ValidationResult{
		Valid:     true,
		Formatted: formatted,
	}
}

// Format pretty-prints a JSON document with two-space indentation.
func Format(text string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return buf.String(), nil
}

// Minify compacts a JSON document to its smallest representation.
func Minify(text string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(text)); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return buf.String(), nil
}

// errorPosition converts a decoder error's byte offset into a 1-based
// line and column. Returns zeros when the error carries no offset.
func errorPosition(text string, err error) (int, int) {
	var offset int64
	switch e := err.(type) {
	case *json.SyntaxError:
		offset = e.Offset
	case *json.UnmarshalTypeError:
		offset = e.Offset
	default:
		return 0, 0
	}

	if offset < 1 || offset > int64(len(text)) {
		return 0, 0
	}

	// Offset counts bytes read when the error was detected, so the
	// offending byte sits at offset-1.
	prefix := text[:offset-1]
	line := strings.Count(prefix, "\n") + 1
	column := int(offset-1) - strings.LastIndex(prefix, "\n")
	return line, column
}
