package pane

import (
	"regexp"
	"strings"
)

// ToggleHideDot implements zm/zo/za (hide/show/toggle dot-files).
func (p *Pane) ToggleHideDot() { p.HideDot = !p.HideDot }
func (p *Pane) HideDotFiles()  { p.HideDot = true }
func (p *Pane) ShowDotFiles()  { p.HideDot = false }

// AddNameFilter implements zf: add the selected entries' names to the
// pane's regex filter, as word-bounded alternatives, inverted (entries
// matching are hidden rather than kept).
func (p *Pane) AddNameFilter(names []string) {
	if len(names) == 0 {
		return
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = `\b` + regexp.QuoteMeta(n) + `\b`
	}
	clause := strings.Join(parts, "|")
	if p.FilterRegex == "" {
		p.FilterRegex = clause
	} else {
		p.FilterRegex = p.FilterRegex + "|" + clause
	}
	p.FilterInvert = true
}

// ClearNameFilter implements zO: drop the name filter, keep invert/hide-dot.
func (p *Pane) ClearNameFilter() {
	p.FilterRegex = ""
}

// SaveFilterState snapshots filter+invert before zM replaces them.
func (p *Pane) SaveFilterState() {
	p.savedFilter = p.FilterRegex
	p.savedInvert = p.FilterInvert
}

// RestoreFilterAndHideDots implements zM: restore the previous filter and
// hide dot-files.
func (p *Pane) RestoreFilterAndHideDots() {
	if p.savedFilter != "" {
		p.FilterRegex = p.savedFilter
		p.FilterInvert = p.savedInvert
	}
	p.HideDot = true
}

// ResetFilterShowAll implements zR: clear the filter and show dot-files.
func (p *Pane) ResetFilterShowAll() {
	p.FilterRegex = ""
	p.FilterInvert = false
	p.HideDot = false
}
