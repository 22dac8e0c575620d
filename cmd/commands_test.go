package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/tracklist/internal/models"
	"github.com/desertthunder/tracklist/internal/shared"
	tu "github.com/desertthunder/tracklist/internal/testing"
)

type harness struct {
	runner *Runner
	output *bytes.Buffer
	clip   *tu.Clipboard
	dir    string
}

func newHarness(t *testing.T, env map[string]string) *harness {
	t.Helper()
	h := &harness{output: &bytes.Buffer{}, clip: &tu.Clipboard{}, dir: t.TempDir()}
	h.runner = NewRunner(RunnerOpts{
		Logger:    shared.NewLogger(io.Discard),
		Output:    h.output,
		Clipboard: h.clip,
		LookupEnv: func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		},
	})
	return h
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	argv := append([]string{"tracklist", "--config", filepath.Join(h.dir, "config.toml")}, args...)
	return h.runner.app().Run(context.Background(), argv)
}

func (h *harness) fixture(t *testing.T) string {
	t.Helper()
	return tu.WriteFixture(t, h.dir, "set.txt", []byte(tu.RekordboxExport(
		tu.Track{Artist: "Daft Punk", Title: "One More Time"},
		tu.Track{Artist: "Aphex Twin", Title: "Xtal"},
	)))
}

func TestFormat(t *testing.T) {
	t.Run("prints numbered tracklist", func(t *testing.T) {
		h := newHarness(t, nil)
		if err := h.run(t, "format", h.fixture(t)); err != nil {
			t.Fatalf("format failed: %v", err)
		}

		if got := h.output.String(); got != "1. Daft Punk - One More Time\n2. Aphex Twin - Xtal\n" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("--no-numbers", func(t *testing.T) {
		h := newHarness(t, nil)
		if err := h.run(t, "format", "--no-numbers", h.fixture(t)); err != nil {
			t.Fatalf("format failed: %v", err)
		}

		if got := h.output.String(); got != "Daft Punk - One More Time\nAphex Twin - Xtal\n" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("--markdown", func(t *testing.T) {
		h := newHarness(t, nil)
		if err := h.run(t, "format", "--markdown", h.fixture(t)); err != nil {
			t.Fatalf("format failed: %v", err)
		}

		out := h.output.String()
		if !strings.HasPrefix(out, "# set\n") || !strings.Contains(out, "1. Daft Punk - One More Time") {
			t.Errorf("unexpected markdown %q", out)
		}
	})

	t.Run("--output writes a file", func(t *testing.T) {
		h := newHarness(t, nil)
		dest := filepath.Join(h.dir, "out.txt")
		if err := h.run(t, "format", "-o", dest, h.fixture(t)); err != nil {
			t.Fatalf("format failed: %v", err)
		}

		tu.AssertFileExists(t, dest)
		if got := tu.MustReadFile(t, dest); got != "1. Daft Punk - One More Time\n2. Aphex Twin - Xtal\n" {
			t.Errorf("unexpected file content %q", got)
		}
		if h.output.Len() != 0 {
			t.Errorf("expected nothing on stdout, got %q", h.output.String())
		}
	})

	t.Run("--copy", func(t *testing.T) {
		h := newHarness(t, nil)
		if err := h.run(t, "format", "--copy", h.fixture(t)); err != nil {
			t.Fatalf("format failed: %v", err)
		}

		if h.clip.Text != "1. Daft Punk - One More Time\n2. Aphex Twin - Xtal" {
			t.Errorf("unexpected clipboard text %q", h.clip.Text)
		}
	})

	t.Run("clipboard failure is not fatal", func(t *testing.T) {
		h := newHarness(t, nil)
		h.clip.Err = shared.ErrClipboardUnavailable
		if err := h.run(t, "format", "--copy", h.fixture(t)); err != nil {
			t.Fatalf("expected copy failure to be ignored, got %v", err)
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		h := newHarness(t, nil)
		if err := h.run(t, "format"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("binary file", func(t *testing.T) {
		h := newHarness(t, nil)
		path := tu.WriteFixture(t, h.dir, "cover.png", []byte("\x89PNG\r\n\x1a\n\x00\x00"))
		if err := h.run(t, "format", path); !errors.Is(err, shared.ErrUnsupportedFileType) {
			t.Errorf("expected ErrUnsupportedFileType, got %v", err)
		}
	})

	t.Run("config disables numbering", func(t *testing.T) {
		h := newHarness(t, nil)
		path := h.fixture(t)
		cfg := "[format]\nnumbered = false\n"
		tu.WriteFixture(t, h.dir, "config.toml", []byte(cfg))

		if err := h.run(t, "format", path); err != nil {
			t.Fatalf("format failed: %v", err)
		}
		if got := h.output.String(); got != "Daft Punk - One More Time\nAphex Twin - Xtal\n" {
			t.Errorf("unexpected output %q", got)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("--json", func(t *testing.T) {
		h := newHarness(t, nil)
		if err := h.run(t, "parse", "--json", h.fixture(t)); err != nil {
			t.Fatalf("parse failed: %v", err)
		}

		var tbl models.Table
		if err := json.Unmarshal(h.output.Bytes(), &tbl); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(tbl.Headers) != 9 || len(tbl.Tracks) != 2 {
			t.Errorf("unexpected table %+v", tbl)
		}
		if tbl.Tracks[1]["Artist"] != "Aphex Twin" {
			t.Errorf("unexpected record %v", tbl.Tracks[1])
		}
	})

	t.Run("plain table", func(t *testing.T) {
		h := newHarness(t, nil)
		if err := h.run(t, "parse", h.fixture(t)); err != nil {
			t.Fatalf("parse failed: %v", err)
		}

		out := h.output.String()
		for _, want := range []string{"set.txt (2 tracks, 9 columns)", "Track Title", "Aphex Twin"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})
}

func TestAliases(t *testing.T) {
	t.Run("lists both fields", func(t *testing.T) {
		h := newHarness(t, nil)
		if err := h.run(t, "aliases"); err != nil {
			t.Fatalf("aliases failed: %v", err)
		}

		out := h.output.String()
		for _, want := range []string{"artist", "title", "Interpret", "Track Title", "アーティスト"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("--field --json", func(t *testing.T) {
		h := newHarness(t, nil)
		if err := h.run(t, "aliases", "--field", "title", "--json"); err != nil {
			t.Fatalf("aliases failed: %v", err)
		}

		var data map[string][]models.Alias
		if err := json.Unmarshal(h.output.Bytes(), &data); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if _, ok := data["artist"]; ok {
			t.Error("expected only the title field")
		}
		if len(data["title"]) == 0 || data["title"][0].Name != "Track Title" {
			t.Errorf("unexpected title aliases %v", data["title"])
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		h := newHarness(t, nil)
		if err := h.run(t, "aliases", "--field", "album"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestSetupConfig(t *testing.T) {
	h := newHarness(t, nil)
	path := filepath.Join(h.dir, "config.toml")

	if err := h.run(t, "setup", "config"); err != nil {
		t.Fatalf("setup config failed: %v", err)
	}
	tu.AssertFileExists(t, path)

	if _, err := shared.LoadConfig(path); err != nil {
		t.Errorf("generated config does not load: %v", err)
	}

	if err := h.run(t, "setup", "config"); !errors.Is(err, shared.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for existing file, got %v", err)
	}
	if err := h.run(t, "setup", "config", "--force"); err != nil {
		t.Errorf("expected --force to overwrite, got %v", err)
	}
}

func TestBefore(t *testing.T) {
	t.Run("environment overrides", func(t *testing.T) {
		h := newHarness(t, map[string]string{shared.EnvPort: "8080", shared.EnvLogLevel: "debug"})
		if err := h.run(t, "aliases"); err != nil {
			t.Fatalf("aliases failed: %v", err)
		}

		if h.runner.config.Server.Port != 8080 {
			t.Errorf("expected port 8080, got %d", h.runner.config.Server.Port)
		}
		if h.runner.config.Logging.Level != "debug" {
			t.Errorf("expected debug level, got %s", h.runner.config.Logging.Level)
		}
	})

	t.Run("--log-level wins over env", func(t *testing.T) {
		h := newHarness(t, map[string]string{shared.EnvLogLevel: "debug"})
		if err := h.run(t, "--log-level", "error", "aliases"); err != nil {
			t.Fatalf("aliases failed: %v", err)
		}

		if h.runner.config.Logging.Level != "error" {
			t.Errorf("expected error level, got %s", h.runner.config.Logging.Level)
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		h := newHarness(t, nil)
		if err := h.run(t, "--log-level", "loud", "aliases"); !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("invalid config file", func(t *testing.T) {
		h := newHarness(t, nil)
		tu.WriteFixture(t, h.dir, "config.toml", []byte("[server]\nport = -1\n"))

		if err := h.run(t, "aliases"); !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
