package formatter

import (
	"strings"
	"testing"

	"github.com/desertthunder/tracklist/internal/models"
	th "github.com/desertthunder/tracklist/internal/testing"
	"github.com/desertthunder/tracklist/internal/tracklist"
)

func TestFormat(t *testing.T) {
	daftPunk := []models.Record{{"Artist": "Daft Punk", "Track Title": "One More Time"}}

	t.Run("numbered", func(t *testing.T) {
		if got := Format(daftPunk, true); got != "1. Daft Punk - One More Time" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("unnumbered", func(t *testing.T) {
		if got := Format(daftPunk, false); got != "Daft Punk - One More Time" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := Format(nil, true); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
		if got := Format([]models.Record{}, false); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("multiple tracks joined without trailing newline", func(t *testing.T) {
		tracks := []models.Record{
			{"Artist": "Daft Punk", "Track Title": "One More Time"},
			{"Interpret": "Kraftwerk", "Titel": "Computerliebe"},
			{"BPM": "128"},
		}

		want := "1. Daft Punk - One More Time\n" +
			"2. Kraftwerk - Computerliebe\n" +
			"3. Unknown Artist - Unknown Track"
		if got := Format(tracks, true); got != want {
			t.Errorf("expected:\n%s\ngot:\n%s", want, got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		table := tracklist.Parse(th.RekordboxExport(
			th.Track{Artist: "Daft Punk", Title: "Aerodynamic"},
			th.Track{Artist: "Aphex Twin", Title: "Xtal"},
		))

		first := Format(table.Tracks, true)
		second := Format(table.Tracks, true)
		if first != second {
			t.Errorf("expected identical output, got %q and %q", first, second)
		}
		if Format(table.Tracks, false) == first {
			t.Error("expected numbering option to change output")
		}
	})

	t.Run("parsed export", func(t *testing.T) {
		table := tracklist.Parse(th.RekordboxExport(
			th.Track{Artist: "Daft Punk", Title: "Aerodynamic"},
			th.Track{Artist: "Aphex Twin", Title: "Xtal"},
		))

		want := "1. Daft Punk - Aerodynamic\n2. Aphex Twin - Xtal"
		if got := Format(table.Tracks, true); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestLines(t *testing.T) {
	lines := Lines([]models.Record{{"Artist": "A", "Title": "B"}, {"Artist": "C", "Title": "D"}}, true)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1].Index != 2 || lines[1].Artist != "C" || lines[1].Title != "D" {
		t.Errorf("unexpected line %+v", lines[1])
	}

	unnumbered := Lines([]models.Record{{"Artist": "A"}}, false)
	if unnumbered[0].Index != 0 {
		t.Errorf("expected index 0 when numbering is off, got %d", unnumbered[0].Index)
	}
}

func TestExporters(t *testing.T) {
	table := models.Table{
		Headers: []string{"Artist", "Track Title"},
		Tracks: []models.Record{
			{"Artist": "Artist One", "Track Title": "Song One"},
			{"Artist": "Artist Two", "Track Title": "Song Two"},
		},
	}

	t.Run("ExportToText", func(t *testing.T) {
		output := string(ExportToText(table, Options{Numbered: true}))

		if output != "1. Artist One - Song One\n2. Artist Two - Song Two\n" {
			t.Errorf("unexpected text export %q", output)
		}
	})

	t.Run("ExportToText empty", func(t *testing.T) {
		if output := ExportToText(models.NewTable(), Options{Numbered: true}); len(output) != 0 {
			t.Errorf("expected empty export, got %q", output)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		t.Run("numbered", func(t *testing.T) {
			output := string(ExportToMarkdown("Friday Set", table, Options{Numbered: true}))

			if !strings.Contains(output, "# Friday Set") {
				t.Errorf("Markdown missing title")
			}
			if !strings.Contains(output, "**Tracks**: 2") {
				t.Errorf("Markdown missing track count")
			}
			if !strings.Contains(output, "1. Artist One - Song One\n") {
				t.Errorf("Markdown missing track1, got: %s", output)
			}
		})

		t.Run("unnumbered", func(t *testing.T) {
			output := string(ExportToMarkdown("", table, Options{}))

			if !strings.Contains(output, "# Tracklist") {
				t.Errorf("Markdown missing default title")
			}
			if !strings.Contains(output, "- Artist Two - Song Two\n") {
				t.Errorf("Markdown missing bullet track, got: %s", output)
			}
		})
	})
}

func TestWriters(t *testing.T) {
	table := models.Table{
		Headers: []string{"Artist", "Track Title"},
		Tracks:  []models.Record{{"Artist": "Artist One", "Track Title": "Song One"}},
	}

	t.Run("WriteTextExport", func(t *testing.T) {
		t.Run("WithDefaultPath", func(t *testing.T) {
			tempDir := t.TempDir()
			originalDir := th.MustGetwd(t)
			th.MustChdir(t, tempDir)
			defer th.MustChdir(t, originalDir)

			path, err := WriteTextExport(table, "", Options{Numbered: true})
			if err != nil {
				t.Fatalf("WriteTextExport failed: %v", err)
			}
			if path != DefaultTextFile {
				t.Errorf("Expected %s, got '%s'", DefaultTextFile, path)
			}

			th.AssertFileExists(t, path)
			if content := th.MustReadFile(t, path); content != "1. Artist One - Song One\n" {
				t.Errorf("unexpected content %q", content)
			}
		})

		t.Run("WithCustomPath", func(t *testing.T) {
			path := t.TempDir() + "/custom.txt"

			got, err := WriteTextExport(table, path, Options{})
			if err != nil {
				t.Fatalf("WriteTextExport failed: %v", err)
			}
			if content := th.MustReadFile(t, got); content != "Artist One - Song One\n" {
				t.Errorf("unexpected content %q", content)
			}
		})

		t.Run("WithMissingDirectory", func(t *testing.T) {
			_, err := WriteTextExport(table, t.TempDir()+"/missing/out.txt", Options{})
			if err == nil {
				t.Fatal("expected error writing into a missing directory")
			}
			if !strings.Contains(err.Error(), "failed to write text file") {
				t.Errorf("unexpected error %v", err)
			}
		})
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		path := t.TempDir() + "/set.md"

		got, err := WriteMarkdownExport("Set", table, path, Options{Numbered: true})
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}
		if content := th.MustReadFile(t, got); !strings.Contains(content, "# Set") {
			t.Errorf("Markdown missing heading, got %q", content)
		}
	})
}
