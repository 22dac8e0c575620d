// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI mirrors the browser flow:
//  1. [PickerView] : Rekordbox export instructions and a file picker limited to .txt files
//  2. [PreviewView] : Table of the export's columns and rows with the formatted tracklist beneath
//  3. [AliasView] : The column names recognized for artist and title, per language
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern. Files are read
// and decoded in commands so the UI never blocks; the resulting messages load a [session.Session].
//
// Keyboard bindings (n, c, r, a, esc, ?, q) are displayed via charmbracelet/bubbles/help. Clipboard
// failures surface as a notice and never change the session.
package ui
