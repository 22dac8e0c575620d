// Package models defines the data types shared by the tracklist parser, formatter and UIs.
//
// The package contains three groups of types:
//
// 1. Parsed data
//   - [Record] : one data line of an export, keyed by column name
//   - [Table] : the column list plus the ordered records of one export
//
// 2. Field lookup
//   - [Field] : a canonical column meaning (artist, title)
//   - [Alias] : one localized header spelling of a [Field]
//
// 3. Display
//   - [Line] : one rendered tracklist entry
//
// Nothing here is persisted. Every value is rebuilt from scratch on each upload.
package models
