package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/tracklist/internal/tasks"
)

// Watch re-formats an export every time it changes until interrupted.
func (r *Runner) Watch(ctx context.Context, cmd *cli.Command) error {
	output := r.config.Watch.Output
	if cmd.IsSet("output") {
		output = cmd.String("output")
	}

	w, err := tasks.NewWatcher(tasks.WatcherOptions{
		Path:     cmd.StringArg("file"),
		Output:   output,
		Numbered: r.config.Format.Numbered && !cmd.Bool("no-numbers"),
		Debounce: r.config.Debounce(),
		Logger:   r.logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.writePlain("Watching %s (Ctrl+C to stop)\n", w.Path())

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for u := range w.Updates() {
		r.report(u, output == "")
	}

	return <-done
}

// report prints a watcher update. The tracklist itself is printed when it is not written to a file.
func (r *Runner) report(u tasks.Update, printOutput bool) {
	r.writePlain("%s\n", u.Message)
	if u.Phase == tasks.Rendered && printOutput && u.Output != "" {
		r.writePlain("\n%s\n\n", u.Output)
	}
}
