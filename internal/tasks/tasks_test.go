package tasks

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/desertthunder/tracklist/internal/shared"
	th "github.com/desertthunder/tracklist/internal/testing"
)

func newTestWatcher(t *testing.T, opts WatcherOptions) *Watcher {
	t.Helper()
	opts.Logger = shared.NewLogger(io.Discard)
	w, err := NewWatcher(opts)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	return w
}

// waitFor drains updates until one matches or the deadline passes.
func waitFor(t *testing.T, updates <-chan Update, match func(Update) bool) Update {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				t.Fatal("updates channel closed")
			}
			if match(u) {
				return u
			}
		case <-deadline:
			t.Fatal("timed out waiting for update")
		}
	}
}

func TestNewWatcher(t *testing.T) {
	t.Run("requires a path", func(t *testing.T) {
		if _, err := NewWatcher(WatcherOptions{}); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("rejects directories", func(t *testing.T) {
		if _, err := NewWatcher(WatcherOptions{Path: t.TempDir()}); !errors.Is(err, shared.ErrUnsupportedFileType) {
			t.Errorf("expected ErrUnsupportedFileType, got %v", err)
		}
	})

	t.Run("rejects missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope", "set.txt")
		if _, err := NewWatcher(WatcherOptions{Path: path}); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("rejects output equal to input", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "set.txt")
		if _, err := NewWatcher(WatcherOptions{Path: path, Output: path}); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("allows a file that does not exist yet", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "later.txt")
		w := newTestWatcher(t, WatcherOptions{Path: path})
		if w.Path() != path {
			t.Errorf("expected path %s, got %s", path, w.Path())
		}
		if w.debounce != defaultDebounce {
			t.Errorf("expected default debounce, got %v", w.debounce)
		}
	})
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	path := th.WriteFixture(t, dir, "set.txt", []byte(th.RekordboxExport(
		th.Track{Artist: "Daft Punk", Title: "One More Time"},
		th.Track{Artist: "Aphex Twin", Title: "Xtal"},
	)))

	t.Run("writes output and reports", func(t *testing.T) {
		out := filepath.Join(dir, "out.txt")
		w := newTestWatcher(t, WatcherOptions{Path: path, Output: out, Numbered: true})

		u := w.Render(context.Background())
		if u.Phase != Rendered || u.Err != nil {
			t.Fatalf("expected rendered update, got %+v", u)
		}
		if u.Tracks != 2 || u.Output != "1. Daft Punk - One More Time\n2. Aphex Twin - Xtal" {
			t.Errorf("unexpected update %+v", u)
		}
		if got := th.MustReadFile(t, out); got != u.Output+"\n" {
			t.Errorf("unexpected output file %q", got)
		}

		select {
		case sent := <-w.Updates():
			if sent.Phase != Rendered {
				t.Errorf("expected rendered update on channel, got %v", sent.Phase)
			}
		default:
			t.Error("expected update on channel")
		}
	})

	t.Run("without numbers or output", func(t *testing.T) {
		w := newTestWatcher(t, WatcherOptions{Path: path})

		u := w.Render(context.Background())
		if u.Written != "" || u.Output != "Daft Punk - One More Time\nAphex Twin - Xtal" {
			t.Errorf("unexpected update %+v", u)
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		w := newTestWatcher(t, WatcherOptions{Path: filepath.Join(dir, "missing.txt")})

		u := w.Render(context.Background())
		if u.Phase != Failed || !errors.Is(u.Err, os.ErrNotExist) {
			t.Errorf("expected failed update, got %+v", u)
		}
	})

	t.Run("rendered updates wait for a reader", func(t *testing.T) {
		w := newTestWatcher(t, WatcherOptions{Path: path})
		for range updateBuffer {
			w.Render(context.Background())
		}

		done := make(chan Update, 1)
		go func() { done <- w.Render(context.Background()) }()

		select {
		case <-done:
			t.Fatal("expected render to wait while the channel is full")
		case <-time.After(50 * time.Millisecond):
		}

		<-w.Updates()
		select {
		case u := <-done:
			if u.Phase != Rendered {
				t.Errorf("expected rendered update, got %v", u.Phase)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("render did not resume after a read")
		}
		if len(w.Updates()) != updateBuffer {
			t.Errorf("expected %d buffered updates, got %d", updateBuffer, len(w.Updates()))
		}
	})

	t.Run("cancelled context releases a full channel", func(t *testing.T) {
		w := newTestWatcher(t, WatcherOptions{Path: path})
		for range updateBuffer {
			w.Render(context.Background())
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		for range 5 {
			w.Render(ctx)
		}
		if len(w.Updates()) != updateBuffer {
			t.Errorf("expected %d buffered updates, got %d", updateBuffer, len(w.Updates()))
		}
	})

	t.Run("other updates are dropped when full", func(t *testing.T) {
		w := newTestWatcher(t, WatcherOptions{Path: path})
		for range updateBuffer + 5 {
			w.send(context.Background(), removedUpdate(path))
		}
		if len(w.Updates()) != updateBuffer {
			t.Errorf("expected %d buffered updates, got %d", updateBuffer, len(w.Updates()))
		}
	})
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := th.WriteFixture(t, dir, "set.txt", []byte(th.RekordboxExport(
		th.Track{Artist: "Daft Punk", Title: "One More Time"},
	)))
	out := filepath.Join(dir, "out.txt")

	w := newTestWatcher(t, WatcherOptions{Path: path, Output: out, Numbered: true, Debounce: 20 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	waitFor(t, w.Updates(), func(u Update) bool { return u.Phase == Started })
	waitFor(t, w.Updates(), func(u Update) bool { return u.Phase == Rendered && u.Tracks == 1 })

	th.WriteFixture(t, dir, "set.txt", []byte(th.RekordboxExport(
		th.Track{Artist: "Daft Punk", Title: "One More Time"},
		th.Track{Artist: "Aphex Twin", Title: "Xtal"},
	)))

	u := waitFor(t, w.Updates(), func(u Update) bool { return u.Phase == Rendered && u.Tracks == 2 })
	if u.Output != "1. Daft Punk - One More Time\n2. Aphex Twin - Xtal" {
		t.Errorf("unexpected output %q", u.Output)
	}
	if got := th.MustReadFile(t, out); got != u.Output+"\n" {
		t.Errorf("unexpected output file %q", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	for range w.Updates() {
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		Started:   "started",
		Rendered:  "rendered",
		Removed:   "removed",
		Failed:    "failed",
		Phase(99): "",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), got, want)
		}
	}
}
