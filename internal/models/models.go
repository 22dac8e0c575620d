// package models defines the data model for the tracklist generator
package models

import (
	"fmt"
	"strconv"
)

// Record maps a column name to the cell value of one data line.
//
// A header with no matching cell is absent from the map.
type Record map[string]string

// Get returns the cell stored under name and whether it was present in the line.
func (r Record) Get(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

// Cells returns the record's values in the order of headers.
func (r Record) Cells(headers []string) []string {
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = r[h]
	}
	return cells
}

// Table is the structured form of an export: column names plus records in file order.
type Table struct {
	Headers []string `json:"headers"`
	Tracks  []Record `json:"tracks"`
}

// NewTable returns an empty table with non-nil slices.
func NewTable() Table {
	return Table{Headers: []string{}, Tracks: []Record{}}
}

// Len reports the number of tracks.
func (t Table) Len() int { return len(t.Tracks) }

// Empty reports whether the table holds no tracks.
func (t Table) Empty() bool { return len(t.Tracks) == 0 }

// Rows returns every record as cells ordered by [Table.Headers].
func (t Table) Rows() [][]string {
	rows := make([][]string, len(t.Tracks))
	for i, rec := range t.Tracks {
		rows[i] = rec.Cells(t.Headers)
	}
	return rows
}

// Field is a canonical column meaning, independent of the export's locale.
type Field string

const (
	FieldArtist Field = "artist"
	FieldTitle  Field = "title"
)

func (f Field) String() string { return string(f) }

// ParseField converts user input ("artist", "title") to a [Field].
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldArtist, FieldTitle:
		return Field(s), nil
	default:
		return "", fmt.Errorf("unknown field %q", s)
	}
}

// Alias is one localized header spelling registered for a [Field].
type Alias struct {
	Lang string `json:"lang"` // BCP 47 language tag, e.g. "de" or "zh-Hant"
	Name string `json:"name"` // Header text as written by the export
}

// Line is one rendered tracklist entry.
type Line struct {
	Index  int // 1-based position; 0 hides the number
	Artist string
	Title  string
}

func (l Line) String() string {
	if l.Index > 0 {
		return strconv.Itoa(l.Index) + ". " + l.Artist + " - " + l.Title
	}
	return l.Artist + " - " + l.Title
}
