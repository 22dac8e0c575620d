package shared

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard is the system clipboard as seen by the UIs. Tests substitute a fake.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through [clipboard.WriteAll].
type SystemClipboard struct{}

// WriteAll places text on the system clipboard.
//
// Failures wrap [ErrClipboardUnavailable]; they are reported, never fatal.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrClipboardUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}
