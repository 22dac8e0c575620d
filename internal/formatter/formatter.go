// package formatter renders parsed playlist exports as display tracklists (plain text, Markdown)
package formatter

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/tracklist/internal/models"
	"github.com/desertthunder/tracklist/internal/tracklist"
)

// DefaultTextFile is the file written by [WriteTextExport] when no path is given.
const DefaultTextFile = "tracklist.txt"

// Options controls how tracklist lines are rendered.
type Options struct {
	Numbered bool // Prefix each line with its 1-based position
}

// Lines renders one "artist - title" entry per track, optionally numbered.
func Lines(tracks []models.Record, showNumbers bool) []models.Line {
	lines := make([]models.Line, len(tracks))
	for i, track := range tracks {
		lines[i] = models.Line{
			Artist: tracklist.Artist(track),
			Title:  tracklist.Title(track),
		}
		if showNumbers {
			lines[i].Index = i + 1
		}
	}
	return lines
}

// Format renders tracks as a newline-joined tracklist with no trailing newline.
//
// Empty input yields "".
func Format(tracks []models.Record, showNumbers bool) string {
	lines := Lines(tracks, showNumbers)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}

// ExportToText renders the table as a tracklist terminated by a newline.
func ExportToText(table models.Table, opts Options) []byte {
	if table.Empty() {
		return []byte{}
	}
	return []byte(Format(table.Tracks, opts.Numbered) + "\n")
}

// ExportToMarkdown renders the table under a "# name" heading with a track count.
//
// Numbered output becomes an ordered list, unnumbered output a bullet list.
func ExportToMarkdown(name string, table models.Table, opts Options) []byte {
	var buf bytes.Buffer

	if name == "" {
		name = "Tracklist"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", name))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", table.Len()))

	for _, line := range Lines(table.Tracks, opts.Numbered) {
		if line.Index > 0 {
			buf.WriteString(line.String() + "\n")
		} else {
			buf.WriteString("- " + line.String() + "\n")
		}
	}

	return buf.Bytes()
}

// WriteTextExport writes the text tracklist to path, defaulting to [DefaultTextFile].
func WriteTextExport(table models.Table, path string, opts Options) (string, error) {
	if path == "" {
		path = DefaultTextFile
	}

	if err := os.WriteFile(path, ExportToText(table, opts), 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return path, nil
}

// WriteMarkdownExport writes the Markdown tracklist to path.
func WriteMarkdownExport(name string, table models.Table, path string, opts Options) (string, error) {
	if path == "" {
		path = strings.TrimSuffix(DefaultTextFile, ".txt") + ".md"
	}

	if err := os.WriteFile(path, ExportToMarkdown(name, table, opts), 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return path, nil
}
