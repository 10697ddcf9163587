package cmdline

import "github.com/vifm-go/vifm/internal/modes"

// Session is one open command-line prompt: its buffer, history ring,
// wildmenu completion state, and the kind of prompt it is (spec.md §4.5).
// internal/app owns one Session per CmdLineKind and opens/closes it as the
// Mode Manager enters/leaves CommandLine mode.
type Session struct {
	Kind   modes.CmdLineKind
	Buffer Buffer
	Hist   *History
	Wild   *Wildmenu

	Complete Completer

	// OnChange fires after every edit while Kind is one of the search
	// sub-kinds, driving incremental highlighting; nil for Ex/Prompt.
	OnChange func(text string)
}

// NewSession opens a prompt of the given kind with a fresh buffer.
func NewSession(kind modes.CmdLineKind, hist *History) *Session {
	return &Session{Kind: kind, Hist: hist, Wild: NewWildmenu()}
}

// Open resets editing state for a freshly-entered prompt.
func (s *Session) Open() {
	s.Buffer.Clear()
	if s.Hist != nil {
		s.Hist.Reset()
	}
	s.Wild.Reset()
}

func (s *Session) isSearch() bool {
	switch s.Kind {
	case modes.SearchFwd, modes.SearchBwd, modes.MenuSearchFwd, modes.MenuSearchBwd,
		modes.VisualSearchFwd, modes.VisualSearchBwd:
		return true
	default:
		return false
	}
}

func (s *Session) notify() {
	if s.isSearch() && s.OnChange != nil {
		s.OnChange(s.Buffer.Text())
	}
}

// Insert, Backspace and the other editing primitives mirror Buffer's, but
// also fire OnChange for the search sub-kinds and drop any in-progress
// wildmenu cycle (an edit always invalidates it).
func (s *Session) Insert(r rune) {
	s.Wild.Reset()
	s.Buffer.InsertRune(r)
	s.notify()
}

func (s *Session) Backspace() {
	s.Wild.Reset()
	s.Buffer.Backspace()
	s.notify()
}

func (s *Session) DeleteUnderCursor() {
	s.Wild.Reset()
	s.Buffer.DeleteUnderCursor()
	s.notify()
}

func (s *Session) DeleteToStart() {
	s.Wild.Reset()
	s.Buffer.DeleteToStart()
	s.notify()
}

func (s *Session) DeleteToEnd() {
	s.Wild.Reset()
	s.Buffer.DeleteToEnd()
	s.notify()
}

func (s *Session) DeleteWordLeft() {
	s.Wild.Reset()
	s.Buffer.DeleteWordLeft()
	s.notify()
}

func (s *Session) DeleteWordRight() {
	s.Wild.Reset()
	s.Buffer.DeleteWordRight()
	s.notify()
}

// HistoryPrev/HistoryNext implement Ctrl-P/Ctrl-N (spec.md §4.5's fixed-
// prefix walk, see history.go).
func (s *Session) HistoryPrev() {
	if s.Hist == nil {
		return
	}
	if text, ok := s.Hist.Prev(s.Buffer.Text()); ok {
		s.Buffer.SetText(text)
		s.notify()
	}
}

func (s *Session) HistoryNext() {
	if s.Hist == nil {
		return
	}
	if text, ok := s.Hist.Next(); ok {
		s.Buffer.SetText(text)
		s.notify()
	}
}

// CompleteNext/CompletePrev implement Tab/Shift-Tab wildmenu cycling.
func (s *Session) CompleteNext() {
	if s.Complete == nil {
		return
	}
	if text, ok := s.Wild.Cycle(s.Buffer.Text(), false, s.Complete); ok {
		s.Buffer.SetText(text)
	}
}

func (s *Session) CompletePrev() {
	if s.Complete == nil {
		return
	}
	if text, ok := s.Wild.Cycle(s.Buffer.Text(), true, s.Complete); ok {
		s.Buffer.SetText(text)
	}
}

// Submit finalizes the line: the caller is responsible for dispatching
// Buffer.Text() to whatever Kind names (internal/excmd for Ex, the pane's
// search for the search kinds), then tearing the Session down. Submit
// itself only records the line in Hist, when the session has one.
func (s *Session) Submit() string {
	text := s.Buffer.Text()
	if s.Hist != nil {
		s.Hist.Add(text)
	}
	return text
}
