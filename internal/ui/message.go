package ui

// fileLoadedMsg carries the decoded text of an export read from disk.
type fileLoadedMsg struct {
	path string
	text string
	err  error
}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	tracks int
	err    error
}

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeOK
	noticeWarn
	noticeErr
)

// notice is the one-line status shown under the current view.
type notice struct {
	kind noticeKind
	text string
}

func okNotice(text string) notice   { return notice{kind: noticeOK, text: text} }
func warnNotice(text string) notice { return notice{kind: noticeWarn, text: text} }
func errNotice(text string) notice  { return notice{kind: noticeErr, text: text} }
