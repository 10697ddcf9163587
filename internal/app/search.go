package app

import (
	"regexp"
	"strings"

	"github.com/vifm-go/vifm/internal/pane"
)

// applySearch compiles pattern per the active pane's ignorecase/smartcase
// settings (spec.md §4.6 step 2 reused here for search, not just filter),
// marks every matching entry's Matched bit, and moves the cursor to the
// nearest match after the starting position in the search direction,
// wrapping once; the entry under the cursor counts only as the last
// candidate.
//
// Grounded on internal/pane's FilterRegex/IgnoreCase/SmartCase handling
// (filter.go) — search reuses the same case-folding rule rather than
// inventing a second one.
func applySearch(p *pane.Pane, pattern string, forward bool) (matched bool) {
	for i := range p.Entries {
		p.Entries[i].Matched = false
	}
	if pattern == "" {
		return false
	}

	expr := pattern
	if p.IgnoreCase && !(p.SmartCase && hasUpper(pattern)) {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return false
	}

	n := len(p.Entries)
	if n == 0 {
		return false
	}
	for i := range p.Entries {
		if re.MatchString(p.Entries[i].Name) {
			p.Entries[i].Matched = true
		}
	}

	start := p.ListPos
	for step := 1; step <= n; step++ {
		var idx int
		if forward {
			idx = (start + step) % n
		} else {
			idx = ((start-step)%n + n) % n
		}
		if p.Entries[idx].Matched {
			p.MoveToListPos(idx)
			return true
		}
	}
	// the entry already under the cursor can itself be the only match
	if p.Entries[start].Matched {
		return true
	}
	return false
}

func hasUpper(s string) bool {
	return strings.ToLower(s) != s
}

// clearSearchHighlight drops every Matched bit, used when hl_search is off
// and a search prompt is cancelled (spec.md §9's resolved Open Question).
func clearSearchHighlight(p *pane.Pane) {
	for i := range p.Entries {
		p.Entries[i].Matched = false
	}
}
