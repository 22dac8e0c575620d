// package testing contains shared testing utilities
package testing

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

// RekordboxHeader is the English single-line header of a Rekordbox .txt export.
const RekordboxHeader = "#\tArtwork\tTrack Title\tArtist\tAlbum\tGenre\tBPM\tKey\tTime"

// Track is an artist/title pair used to build fixture exports.
type Track struct {
	Artist string
	Title  string
}

// RekordboxExport builds a tab-delimited export with [RekordboxHeader] and one numbered row per track.
func RekordboxExport(tracks ...Track) string {
	var b strings.Builder
	b.WriteString(RekordboxHeader + "\n")
	for i, tr := range tracks {
		fmt.Fprintf(&b, "%d\t\t%s\t%s\tAlbum\tHouse\t124.00\t8A\t05:00\n", i+1, tr.Title, tr.Artist)
	}
	return b.String()
}

// EncodeUTF16LE encodes s as UTF-16 little endian with a byte order mark.
func EncodeUTF16LE(t *testing.T, s string) []byte {
	t.Helper()
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	out, err := enc.String(s)
	if err != nil {
		t.Fatalf("Failed to encode UTF-16: %v", err)
	}
	return []byte(out)
}

// WriteFixture writes content to dir/name and returns the path.
func WriteFixture(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
	return path
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// Clipboard records copied text and optionally fails.
type Clipboard struct {
	Text string
	Err  error
}

func (c *Clipboard) WriteAll(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Text = text
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
