package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input errors
	ErrUnsupportedFileType = fmt.Errorf("unsupported file type")
	ErrEmptyTracklist      = fmt.Errorf("no tracks found")
	ErrFileTooLarge        = fmt.Errorf("file too large")
	ErrMissingArgument     = fmt.Errorf("missing required argument")
	ErrInvalidArgument     = fmt.Errorf("invalid argument")

	// Collaborator errors
	ErrClipboardUnavailable = fmt.Errorf("clipboard unavailable")
	ErrSessionNotFound      = fmt.Errorf("session not found")
)
