// Package tasks runs long-lived background work with real-time progress reporting.
//
// # Watcher
//
// [Watcher] follows a single playlist export on disk. It watches the export's directory with
// fsnotify so editors that replace files atomically are still seen, then for every change to
// the export:
//
//  1. Waits for writes to settle (debounce)
//  2. Reads and decodes the file
//  3. Parses the table and formats the tracklist
//  4. Writes the tracklist to the output file, when one is configured
//
// # Progress Reporting
//
// Every step is reported as an [Update] on the channel returned by [Watcher.Updates].
// Rendered updates wait for the consumer until the context is cancelled, so every change
// reaches the reader. Started, Removed and Failed updates use select with default and are
// dropped when the channel is full. The channel is closed when [Watcher.Run] returns.
package tasks
