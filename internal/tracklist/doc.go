// Package tracklist parses tab-delimited playlist exports and resolves localized column names.
//
// # Parsing
//
// [Parse] turns raw export text into a [models.Table]. The header may be wrapped over
// several physical lines: every line before the first row whose leading cell is "1" is
// part of the header, and those lines are joined verbatim before being split on tabs.
// Without such a row the first line is the header.
//
// Parsing never fails. Short rows leave trailing headers absent from the record and
// surplus cells are dropped.
//
// # Field resolution
//
// [Resolve] finds the artist or title of a record under whatever header spelling the
// export locale used. Spellings are tried in registration order and the first present,
// non-empty value wins. Records with no match resolve to [UnknownArtist] or
// [UnknownTrack].
package tracklist
