package tasks

import (
	"fmt"
)

// Update reports one watcher event.
//
// Sent to the CLI or UI layer for display.
type Update struct {
	Phase   Phase  // Watch phase
	Path    string // Export being watched
	Tracks  int    // Tracks in the rendered export
	Output  string // Formatted tracklist
	Written string // File the tracklist was written to, if any
	Message string // Human-readable message for display
	Err     error  // Set when Phase is [Failed]
}

// Watch phase enumeration
type Phase int

const (
	Started Phase = iota
	Rendered
	Removed
	Failed
)

func (p Phase) String() string {
	switch p {
	case Started:
		return "started"
	case Rendered:
		return "rendered"
	case Removed:
		return "removed"
	case Failed:
		return "failed"
	default:
		return ""
	}
}

func startedUpdate(path string) Update {
	return Update{
		Phase:   Started,
		Path:    path,
		Message: fmt.Sprintf("Watching %s...", path),
	}
}

func renderedUpdate(path, output, written string, tracks int) Update {
	msg := fmt.Sprintf("Rendered %d tracks from %s", tracks, path)
	if written != "" {
		msg = fmt.Sprintf("%s → %s", msg, written)
	}
	return Update{
		Phase:   Rendered,
		Path:    path,
		Tracks:  tracks,
		Output:  output,
		Written: written,
		Message: msg,
	}
}

func removedUpdate(path string) Update {
	return Update{
		Phase:   Removed,
		Path:    path,
		Message: fmt.Sprintf("%s was removed; waiting for it to reappear...", path),
	}
}

func failedUpdate(path string, err error) Update {
	return Update{
		Phase:   Failed,
		Path:    path,
		Err:     err,
		Message: fmt.Sprintf("✗ %s: %v", path, err),
	}
}
