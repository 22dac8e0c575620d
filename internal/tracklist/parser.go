package tracklist

import (
	"strings"

	"github.com/desertthunder/tracklist/internal/models"
)

const (
	cellSeparator = "\t"
	firstRowIndex = "1"
)

// SplitLines splits text on newlines and drops lines that are blank after trimming.
//
// A single trailing carriage return is removed from each line.
func SplitLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// HeaderSpan returns the number of leading lines that make up the header.
//
// The header ends right before the first line whose first cell is "1". When no such
// line exists, or it is the first line, the span is 1. An empty input has a span of 0.
func HeaderSpan(lines []string) int {
	if len(lines) == 0 {
		return 0
	}
	for i, line := range lines {
		first, _, _ := strings.Cut(line, cellSeparator)
		if first == firstRowIndex {
			if i == 0 {
				break
			}
			return i
		}
	}
	return 1
}

// Parse builds a [models.Table] from raw export text.
func Parse(text string) models.Table {
	table := models.NewTable()

	lines := SplitLines(text)
	span := HeaderSpan(lines)
	if span == 0 {
		return table
	}

	table.Headers = strings.Split(strings.Join(lines[:span], ""), cellSeparator)

	for _, line := range lines[span:] {
		table.Tracks = append(table.Tracks, zip(table.Headers, strings.Split(line, cellSeparator)))
	}

	return table
}

// zip pairs headers with cells by position.
//
// Later duplicate headers overwrite earlier ones, including with "no cell".
func zip(headers, cells []string) models.Record {
	rec := make(models.Record, len(headers))
	for i, h := range headers {
		if i >= len(cells) {
			delete(rec, h)
			continue
		}
		rec[h] = cells[i]
	}
	return rec
}
