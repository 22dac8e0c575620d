package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/desertthunder/tracklist/internal/session"
	"github.com/desertthunder/tracklist/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PickerView ViewState = iota
	PreviewView
	AliasView
)

const (
	maxColumnWidth = 32
	chromeHeight   = 12
)

// Options configures a [Model].
type Options struct {
	Path      string           // export to open on start; the picker is shown when empty
	Dir       string           // starting directory of the picker
	Numbered  bool             // initial numbering option
	Clipboard shared.Clipboard // defaults to [shared.SystemClipboard]
	Logger    *log.Logger
}

// Model represents the TUI application state.
type Model struct {
	view      ViewState
	previous  ViewState
	path      string
	session   *session.Session
	picker    filepicker.Model
	table     table.Model
	aliases   list.Model
	clipboard shared.Clipboard
	logger    *log.Logger
	width     int
	height    int
	notice    notice
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model.
func NewModel(opts Options) *Model {
	picker := filepicker.New()
	picker.AllowedTypes = []string{shared.TextExtension}
	picker.AutoHeight = true
	if opts.Dir != "" {
		picker.CurrentDirectory = opts.Dir
	}

	clip := opts.Clipboard
	if clip == nil {
		clip = shared.SystemClipboard{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	aliases := list.New(aliasItems(), list.NewDefaultDelegate(), 0, 0)
	aliases.Title = "Recognized column names"

	return &Model{
		view:      PickerView,
		path:      opts.Path,
		session:   session.New(opts.Numbered),
		picker:    picker,
		table:     table.New(table.WithFocused(true)),
		aliases:   aliases,
		clipboard: clip,
		logger:    logger,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Session returns the model's session.
func (m *Model) Session() *session.Session { return m.session }

// ViewState returns the current view.
func (m *Model) ViewState() ViewState { return m.view }

// Init starts the file picker and loads the initial export, if any.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.picker.Init()}
	if m.path != "" {
		cmds = append(cmds, m.loadFile(m.path))
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.aliases.SetSize(msg.Width-4, msg.Height-4)
		m.resizeTable()
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case fileLoadedMsg:
		return m.handleFileLoaded(msg)

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("copy failed", "error", msg.err)
			m.notice = errNotice(fmt.Sprintf("Copy failed: %v", msg.err))
			return m, nil
		}
		m.notice = okNotice(fmt.Sprintf("Copied %d tracks to clipboard", msg.tracks))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) && !(m.view == AliasView && m.aliases.SettingFilter()) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.help) && m.view != AliasView {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.view {
		case PickerView:
			return m.handlePickerKeys(msg)
		case PreviewView:
			return m.handlePreviewKeys(msg)
		case AliasView:
			return m.handleAliasKeys(msg)
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case PreviewView:
		body = m.renderPreview()
	case AliasView:
		return m.aliases.View()
	default:
		body = m.renderPicker()
	}

	parts := []string{body}
	if m.notice.kind != noticeNone {
		parts = append(parts, styles.Notice(m.notice))
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n\n")
}

func (m *Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.aliases) {
		m.openAliases()
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, m.loadFile(path))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.notice = warnNotice(fmt.Sprintf("%s is not a .txt export", filepath.Base(path)))
	}
	return m, cmd
}

func (m *Model) handlePreviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.numbers):
		if m.session.Toggle() {
			m.notice = okNotice("Numbering on")
		} else {
			m.notice = okNotice("Numbering off")
		}
		return m, nil
	case key.Matches(msg, m.keys.copy):
		return m, m.copyOutput()
	case key.Matches(msg, m.keys.reset):
		m.session.Reset()
		m.table.SetRows(nil)
		m.table.SetColumns(nil)
		m.view = PickerView
		m.notice = notice{}
		return m, nil
	case key.Matches(msg, m.keys.aliases):
		m.openAliases()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) handleAliasKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.aliases.SettingFilter() && (key.Matches(msg, m.keys.back) || key.Matches(msg, m.keys.aliases)) {
		m.view = m.previous
		return m, nil
	}

	var cmd tea.Cmd
	m.aliases, cmd = m.aliases.Update(msg)
	return m, cmd
}

func (m *Model) handleFileLoaded(msg fileLoadedMsg) (tea.Model, tea.Cmd) {
	name := filepath.Base(msg.path)
	if msg.err != nil {
		m.logger.Error("failed to load export", "path", msg.path, "error", msg.err)
		m.notice = errNotice(fmt.Sprintf("Could not load %s: %v", name, msg.err))
		return m, nil
	}

	m.session.Load(name, msg.text)
	m.buildTable()
	m.view = PreviewView

	count := len(m.session.Table.Tracks)
	m.logger.Info("loaded export", "path", msg.path, "tracks", count)

	switch {
	case count == 0:
		m.notice = warnNotice(fmt.Sprintf("No tracks found in %s", name))
	case !shared.HasTextExtension(name):
		m.notice = warnNotice(fmt.Sprintf("Loaded %d tracks from %s (not a .txt file)", count, name))
	default:
		m.notice = okNotice(fmt.Sprintf("Loaded %d tracks from %s", count, name))
	}
	return m, nil
}

func (m *Model) openAliases() {
	m.previous = m.view
	m.view = AliasView
}

// buildTable rebuilds the preview table from the session's columns and rows.
func (m *Model) buildTable() {
	headers := m.session.Headers()
	rows := m.session.Rows()

	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		width := lipgloss.Width(h)
		for _, row := range rows {
			width = max(width, lipgloss.Width(row[i]))
		}
		columns[i] = table.Column{Title: h, Width: min(max(width, 1), maxColumnWidth)}
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(tableRows)
	m.table.GotoTop()
	m.resizeTable()
}

func (m *Model) resizeTable() {
	lines := strings.Count(m.session.Output(), "\n") + 1
	height := m.height - chromeHeight - lines
	m.table.SetHeight(max(height, 5))
	if m.width > 0 {
		m.table.SetWidth(m.width - 2)
	}
}

func (m *Model) renderPicker() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Tracklist Formatter"))
	b.WriteString("\n")
	b.WriteString("Export a playlist from Rekordbox:\n")
	for i, step := range session.Instructions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	b.WriteString("\n")
	b.WriteString(styles.help.Render("Select a .txt export in " + m.picker.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	return b.String()
}

func (m *Model) renderPreview() string {
	title := styles.title.Render(fmt.Sprintf("%s (%d tracks)", m.session.Filename, len(m.session.Table.Tracks)))

	numbering := "off"
	if m.session.Numbered {
		numbering = "on"
	}

	output := m.session.Output()
	if output == "" {
		output = styles.help.Render("no tracks")
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n%s",
		title,
		m.table.View(),
		styles.help.Render("Numbering: "+numbering),
		styles.output.Render(output),
	)
}

func (m *Model) loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		text, err := shared.ReadTextFile(path)
		return fileLoadedMsg{path: path, text: text, err: err}
	}
}

func (m *Model) copyOutput() tea.Cmd {
	out := m.session.Output()
	tracks := len(m.session.Table.Tracks)
	clip := m.clipboard

	return func() tea.Msg {
		if out == "" {
			return copiedMsg{err: shared.ErrEmptyTracklist}
		}
		return copiedMsg{tracks: tracks, err: clip.WriteAll(out)}
	}
}
