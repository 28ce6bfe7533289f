// Package classify assigns a content type tag to clipboard text.
package classify

import "strings"

// Content type tags stored in the content_type column.
const (
	TypeJSON      = "json"
	TypeURL       = "url"
	TypeMultiline = "multiline"
	TypeText      = "text"
)

// Detect returns the content type tag for the given text. Rules are
// checked in priority order, so multiline JSON still classifies as json.
func Detect(content string) string {
	trimmed := strings.TrimLeft(content, " \t\r\n")
	switch {
	case strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "["):
		return TypeJSON
	case strings.HasPrefix(content, "http://") || strings.HasPrefix(content, "https://"):
		return TypeURL
	case strings.Contains(strings.TrimSuffix(content, "\n"), "\n"):
		// A single trailing newline does not make a second line.
		return TypeMultiline
	default:
		return TypeText
	}
}
