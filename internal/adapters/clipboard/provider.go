// Package clipboard adapts the system clipboard to the
// secondary.ClipboardProvider port.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// Provider reads and writes the system clipboard via
// golang.design/x/clipboard.
type Provider struct{}

// NewProvider initializes clipboard access. Initialization happens once
// per process; a failed init (headless session, missing display) is
// returned to the caller.
func NewProvider() (*Provider, error) {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize clipboard: %w", initErr)
	}
	return &Provider{}, nil
}

// Read returns the current clipboard text. Non-text clipboard data
// reads as the empty string.
func (p *Provider) Read() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

// Write replaces the clipboard contents with the given text.
func (p *Provider) Write(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
