package cmdline

import "strings"

// Completer produces the candidates Tab-completion cycles through for the
// current buffer text; the owner (internal/excmd for Ex commands, the pane
// model for filenames) supplies the concrete source.
type Completer func(text string) []string

// Wildmenu holds the cycling state for one completion session: the common
// prefix the buffer had before Tab was first pressed, and which candidate
// is currently selected.
type Wildmenu struct {
	base       string
	candidates []string
	index      int // -1 when not cycling
}

// NewWildmenu starts empty; Cycle lazily populates it on first use.
func NewWildmenu() *Wildmenu { return &Wildmenu{index: -1} }

// Reset clears cycling state, e.g. after any non-completion edit.
func (w *Wildmenu) Reset() {
	w.base = ""
	w.candidates = nil
	w.index = -1
}

// Active reports whether a cycling session is in progress.
func (w *Wildmenu) Active() bool { return w.index >= 0 }

// Cycle advances to the next (Tab) or previous (Shift-Tab) candidate,
// computing the candidate list from complete(base) the first time it is
// called after a Reset. It returns the text to install in the buffer, and
// false if there are no candidates.
func (w *Wildmenu) Cycle(buffer string, backward bool, complete Completer) (string, bool) {
	if !w.Active() {
		w.base = buffer
		w.candidates = complete(buffer)
		w.index = -1
		if len(w.candidates) == 0 {
			return "", false
		}
	}
	if len(w.candidates) == 0 {
		return "", false
	}
	if backward {
		w.index--
		if w.index < -1 {
			w.index = len(w.candidates) - 1
		}
	} else {
		w.index++
		if w.index >= len(w.candidates) {
			w.index = -1
		}
	}
	if w.index == -1 {
		return w.base, true
	}
	return w.candidates[w.index], true
}

// CommonPrefix returns the longest prefix shared by every candidate, used
// to fill as much as is unambiguous on the very first Tab (Ctrl-_ redraw).
func CommonPrefix(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	prefix := candidates[0]
	for _, c := range candidates[1:] {
		for !strings.HasPrefix(c, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}
