package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/tracklist/internal/formatter"
	"github.com/desertthunder/tracklist/internal/models"
	"github.com/desertthunder/tracklist/internal/shared"
	"github.com/desertthunder/tracklist/internal/tracklist"
)

// Format renders an export as a tracklist on stdout, to a file, or to the clipboard.
func (r *Runner) Format(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("file")
	tbl, err := r.load(path)
	if err != nil {
		return err
	}

	opts := formatter.Options{Numbered: r.config.Format.Numbered && !cmd.Bool("no-numbers")}
	markdown := cmd.Bool("markdown")
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if tbl.Empty() {
		r.logger.Warn("no tracks found", "file", path)
	}

	if dest := cmd.String("output"); dest != "" {
		var written string
		if markdown {
			written, err = formatter.WriteMarkdownExport(name, tbl, dest, opts)
		} else {
			written, err = formatter.WriteTextExport(tbl, dest, opts)
		}
		if err != nil {
			return err
		}
		r.logger.Info("wrote tracklist", "path", written, "tracks", tbl.Len())
	} else {
		out := formatter.ExportToText(tbl, opts)
		if markdown {
			out = formatter.ExportToMarkdown(name, tbl, opts)
		}
		if _, err := r.output.Write(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if cmd.Bool("copy") {
		r.copy(formatter.Format(tbl.Tracks, opts.Numbered), tbl.Len())
	}

	return nil
}

// Parse prints the columns and rows of an export.
func (r *Runner) Parse(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("file")
	tbl, err := r.load(path)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(tbl, cmd.Bool("pretty"))
	}

	r.writePlainHeader(fmt.Sprintf("%s (%d tracks, %d columns)", filepath.Base(path), tbl.Len(), len(tbl.Headers)))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tbl.Headers...).
		Rows(tbl.Rows()...)

	return r.writePlain("%s\n", t.Render())
}

// Aliases prints the localized column names recognized for each field.
func (r *Runner) Aliases(ctx context.Context, cmd *cli.Command) error {
	fields := []models.Field{models.FieldArtist, models.FieldTitle}
	if f := cmd.String("field"); f != "" {
		field, err := models.ParseField(f)
		if err != nil {
			return fmt.Errorf("%w: %v", shared.ErrInvalidArgument, err)
		}
		fields = []models.Field{field}
	}

	if cmd.Bool("json") {
		data := make(map[string][]models.Alias, len(fields))
		for _, f := range fields {
			data[f.String()] = tracklist.Aliases(f)
		}
		return r.writeJSON(data, true)
	}

	for _, f := range fields {
		r.writePlainHeader(f.String())

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Language", "Column")
		for _, a := range tracklist.Aliases(f) {
			t.Row(a.Lang, a.Name)
		}

		if err := r.writePlain("%s\n\n", t.Render()); err != nil {
			return err
		}
	}

	return nil
}

// load reads, decodes and parses the export at path.
func (r *Runner) load(path string) (models.Table, error) {
	if path == "" {
		return models.Table{}, fmt.Errorf("%w: path to a playlist export", shared.ErrMissingArgument)
	}
	if !shared.HasTextExtension(path) {
		r.logger.Warn("file does not have a .txt extension", "file", path)
	}

	text, err := shared.ReadTextFile(path)
	if err != nil {
		return models.Table{}, err
	}

	tbl := tracklist.Parse(text)
	r.logger.Debug("parsed export", "file", path, "columns", len(tbl.Headers), "tracks", tbl.Len())
	return tbl, nil
}

// copy puts text on the clipboard. Failures are logged and never fail the command.
func (r *Runner) copy(text string, tracks int) {
	if text == "" {
		r.logger.Warn("nothing to copy", "error", shared.ErrEmptyTracklist)
		return
	}
	if err := r.clipboard.WriteAll(text); err != nil {
		r.logger.Warn("copy failed", "error", err)
		return
	}
	r.logger.Info("copied tracklist to clipboard", "tracks", tracks)
}
