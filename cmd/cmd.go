// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

const version = "0.1.0"

// app builds the root command.
func (r *Runner) app() *cli.Command {
	return &cli.Command{
		Name:    "tracklist",
		Usage:   "Format Rekordbox playlist exports into shareable tracklists",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before:   r.Before,
		Commands: r.register(),
	}
}

// formatCommand renders an export as "N. Artist - Title" lines
func formatCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "format",
		Aliases:   []string{"fmt"},
		Usage:     "Format a playlist export as a tracklist",
		ArgsUsage: "<file>",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "file"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-numbers",
				Usage: "Omit track numbers",
			},
			&cli.BoolFlag{
				Name:    "markdown",
				Aliases: []string{"md"},
				Usage:   "Render Markdown instead of plain text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the tracklist to a file instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "copy",
				Usage: "Copy the tracklist to the clipboard",
			},
		},
		Action: r.Format,
	}
}

// parseCommand prints the parsed table of an export
func parseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Show the columns and rows parsed from a playlist export",
		ArgsUsage: "<file>",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "file"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Parse,
	}
}

// aliasesCommand lists the localized column names the resolver recognizes
func aliasesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "aliases",
		Usage: "List recognized artist and title column names per language",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "field",
				Usage: "Only list one field (artist or title)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Aliases,
	}
}

// serveCommand starts the browser UI
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the browser UI",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Interface to listen on (overrides config)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the UI in the default browser",
			},
		},
		Action: r.Serve,
	}
}

// tuiCommand launches the terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "tui",
		Usage:     "Interactive terminal UI",
		ArgsUsage: "[file]",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "file"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-numbers",
				Usage: "Start with track numbers hidden",
			},
		},
		Action: r.TUI,
	}
}

// watchCommand regenerates a tracklist whenever the export changes
func watchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Re-format an export every time it changes",
		ArgsUsage: "<file>",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "file"},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "File to write the tracklist to (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "no-numbers",
				Usage: "Omit track numbers",
			},
		},
		Action: r.Watch,
	}
}

// setupCommand handles setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a config.toml populated with the defaults",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}
