package tracklist

import "github.com/desertthunder/tracklist/internal/models"

// Resolve returns the value of field in track under the first registered spelling that
// holds a non-empty value.
//
// Unmatched artists and titles resolve to [UnknownArtist] and [UnknownTrack]; any other
// field resolves to "".
func Resolve(track models.Record, field models.Field) string {
	for _, alias := range aliasesFor(field) {
		if v, ok := track.Get(alias.Name); ok && v != "" {
			return v
		}
	}
	return fallbacks[field]
}

// Artist is shorthand for Resolve(track, models.FieldArtist).
func Artist(track models.Record) string { return Resolve(track, models.FieldArtist) }

// Title is shorthand for Resolve(track, models.FieldTitle).
func Title(track models.Record) string { return Resolve(track, models.FieldTitle) }
