// Package session holds the state of one tracklist UI session.
//
// A [Session] owns the columns and rows of the most recently loaded export plus the
// numbering option. Loading a file or resetting replaces that state wholesale; the
// formatted tracklist is recomputed from it on every [Session.Output] call.
//
// A Session is not safe for concurrent use; [Store] serializes access for the web UI.
package session

import (
	"time"

	"github.com/desertthunder/tracklist/internal/formatter"
	"github.com/desertthunder/tracklist/internal/models"
	"github.com/desertthunder/tracklist/internal/shared"
	"github.com/desertthunder/tracklist/internal/tracklist"
)

// Session is the view-model behind the browser and terminal UIs.
type Session struct {
	ID       string
	Filename string
	Table    models.Table
	Numbered bool
	LoadedAt time.Time
	Touched  time.Time
}

// New creates an empty session with a fresh ID.
func New(numbered bool) *Session {
	now := time.Now()
	return &Session{
		ID:       shared.GenerateID(),
		Table:    models.NewTable(),
		Numbered: numbered,
		Touched:  now,
	}
}

// Load parses text and replaces the session's table.
func (s *Session) Load(filename, text string) {
	s.Filename = filename
	s.Table = tracklist.Parse(text)
	s.LoadedAt = time.Now()
	s.Touched = s.LoadedAt
}

// Reset drops the loaded export. The numbering option is kept.
func (s *Session) Reset() {
	s.Filename = ""
	s.Table = models.NewTable()
	s.LoadedAt = time.Time{}
	s.Touched = time.Now()
}

// SetNumbered sets the numbering option.
func (s *Session) SetNumbered(numbered bool) {
	s.Numbered = numbered
	s.Touched = time.Now()
}

// Toggle flips the numbering option and returns the new value.
func (s *Session) Toggle() bool {
	s.SetNumbered(!s.Numbered)
	return s.Numbered
}

// Output renders the current tracklist.
func (s *Session) Output() string {
	return formatter.Format(s.Table.Tracks, s.Numbered)
}

// Empty reports whether no tracks are loaded.
func (s *Session) Empty() bool {
	return s.Table.Empty()
}

// Headers returns the loaded column names.
func (s *Session) Headers() []string {
	return s.Table.Headers
}

// Rows returns the loaded records as cells in header order.
func (s *Session) Rows() [][]string {
	return s.Table.Rows()
}

// Clone returns a copy that shares no slices with s.
func (s *Session) Clone() *Session {
	c := *s
	c.Table = models.Table{
		Headers: append([]string{}, s.Table.Headers...),
		Tracks:  make([]models.Record, len(s.Table.Tracks)),
	}
	for i, rec := range s.Table.Tracks {
		cp := make(models.Record, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		c.Table.Tracks[i] = cp
	}
	return &c
}

// Instructions are the Rekordbox export steps shown while a session is empty.
var Instructions = []string{
	"Open Rekordbox and select your playlist",
	"Right-click and choose Export Playlist",
	"Select Export as .txt file",
	"Find the exported file in your chosen destination",
}
