package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/tracklist/internal/shared"
	"github.com/desertthunder/tracklist/internal/web"
)

// Serve runs the browser UI until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := *r.config
	if host := cmd.String("host"); host != "" {
		config.Server.Host = host
	}
	if cmd.IsSet("port") {
		config.Server.Port = int(cmd.Int("port"))
	}
	if err := config.Validate(); err != nil {
		return err
	}

	srv, err := web.NewServer(&config, r.logger)
	if err != nil {
		return err
	}

	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	url := config.URL()
	r.writePlain("Tracklist UI running at %s\n", url)

	if cmd.Bool("open") || config.Server.OpenBrowser {
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warn("failed to open browser", "url", url, "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx, ln)
}
