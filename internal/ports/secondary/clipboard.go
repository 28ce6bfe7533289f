package secondary

// ClipboardProvider defines the secondary port for system clipboard
// access. Failures are transient: callers retry on their next cycle
// rather than treating an error as fatal.
type ClipboardProvider interface {
	// Read returns the current clipboard text. An empty clipboard or a
	// clipboard holding non-text data reads as the empty string.
	Read() (string, error)

	// Write replaces the clipboard contents with the given text.
	Write(text string) error
}
