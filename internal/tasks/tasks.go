package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/desertthunder/tracklist/internal/formatter"
	"github.com/desertthunder/tracklist/internal/metrics"
	"github.com/desertthunder/tracklist/internal/shared"
	"github.com/desertthunder/tracklist/internal/tracklist"
)

const (
	defaultDebounce = 250 * time.Millisecond
	updateBuffer    = 16
)

// WatcherOptions configures a [Watcher].
type WatcherOptions struct {
	Path     string        // export to watch
	Output   string        // file to write the tracklist to; empty disables writing
	Numbered bool          // prefix lines with their position
	Debounce time.Duration // quiet period before rendering a change
	Logger   *log.Logger
}

// Watcher re-renders an export whenever it changes on disk.
type Watcher struct {
	path     string
	output   string
	numbered bool
	debounce time.Duration
	logger   *log.Logger
	updates  chan Update
}

// NewWatcher validates opts and creates a [Watcher].
//
// The export itself may not exist yet, but its directory must.
func NewWatcher(opts WatcherOptions) (*Watcher, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("%w: path to watch", shared.ErrMissingArgument)
	}

	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", opts.Path, err)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", shared.ErrUnsupportedFileType, opts.Path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: directory of %s does not exist", shared.ErrInvalidArgument, opts.Path)
	}

	var output string
	if opts.Output != "" {
		if output, err = filepath.Abs(opts.Output); err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", opts.Output, err)
		}
		if output == path {
			return nil, fmt.Errorf("%w: output must differ from the watched file", shared.ErrInvalidArgument)
		}
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Watcher{
		path:     path,
		output:   output,
		numbered: opts.Numbered,
		debounce: debounce,
		logger:   shared.WithLogger(logger, "component", "watch"),
		updates:  make(chan Update, updateBuffer),
	}, nil
}

// Updates returns the channel of watcher updates.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Path returns the absolute path of the watched export.
func (w *Watcher) Path() string {
	return w.path
}

// Run watches the export until ctx is cancelled, then closes the updates channel.
//
// The export is rendered once on start when it exists.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.updates)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.send(ctx, startedUpdate(w.path))
	w.logger.Info("watching export", "path", w.path, "output", w.output)

	if _, err := os.Stat(w.path); err == nil {
		w.Render(ctx)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watcher stopped", "path", w.path)
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			switch {
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				if timer == nil {
					timer = time.NewTimer(w.debounce)
				} else {
					timer.Reset(w.debounce)
				}
				fire = timer.C
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				w.send(ctx, removedUpdate(w.path))
			}

		case <-fire:
			fire = nil
			w.Render(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
			w.send(ctx, failedUpdate(w.path, err))
		}
	}
}

// Render reads, parses and formats the export once, writes the output file if configured,
// and reports the result.
//
// A successful render waits for room on the updates channel until ctx is done.
func (w *Watcher) Render(ctx context.Context) Update {
	u := w.render()
	if u.Err != nil {
		metrics.WatchRenders.WithLabelValues("error").Inc()
		w.logger.Error("render failed", "path", w.path, "error", u.Err)
	} else {
		metrics.WatchRenders.WithLabelValues("ok").Inc()
		w.logger.Info("rendered export", "path", w.path, "tracks", u.Tracks)
	}
	w.send(ctx, u)
	return u
}

func (w *Watcher) render() Update {
	text, err := shared.ReadTextFile(w.path)
	if err != nil {
		return failedUpdate(w.path, err)
	}

	table := tracklist.Parse(text)
	opts := formatter.Options{Numbered: w.numbered}
	output := formatter.Format(table.Tracks, opts.Numbered)

	var written string
	if w.output != "" {
		if written, err = formatter.WriteTextExport(table, w.output, opts); err != nil {
			return failedUpdate(w.path, err)
		}
	}

	if table.Empty() {
		u := renderedUpdate(w.path, output, written, 0)
		u.Message = fmt.Sprintf("No tracks found in %s", w.path)
		return u
	}
	return renderedUpdate(w.path, output, written, table.Len())
}

// send reports an update. Rendered updates block until read or ctx is done; others are
// dropped when the channel is full.
func (w *Watcher) send(ctx context.Context, u Update) {
	if u.Phase == Rendered {
		select {
		case w.updates <- u:
		case <-ctx.Done():
			w.logger.Debug("dropped update", "phase", u.Phase, "error", ctx.Err())
		}
		return
	}

	select {
	case w.updates <- u:
	default:
		w.logger.Debug("dropped update", "phase", u.Phase)
	}
}
