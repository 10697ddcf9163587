// Package history implements the process-wide bookmark table (spec.md
// §4.7). Per-pane directory-visit history lives alongside the Pane Model
// itself (internal/pane), since its scope is one pane, not the process.
//
// Grounded on internal/interactive/workflow_manager.go's bounded-list
// pattern, generalized here to a fixed-size table indexed by mark name
// rather than a capacity-bounded FIFO.
package history

import "sort"

// Bookmark is a single-character mark bound to a directory/file pair.
type Bookmark struct {
	Mark      rune
	Dir       string
	File      string
	Timestamp int64 // unix seconds; used only to order letters by recency
}

// Special mark names, auto-updated by the caller rather than by `m`.
const (
	MarkVisualStart = '<'
	MarkVisualEnd   = '>'
	MarkPrevious    = '\''
)

// Table is the fixed-size bookmark store: letters, digits, and specials.
type Table struct {
	marks map[rune]Bookmark
}

// NewTable returns an empty bookmark table.
func NewTable() *Table {
	return &Table{marks: make(map[rune]Bookmark)}
}

// IsValidMarkName reports whether r names a real bookmark slot (spec.md §3).
func IsValidMarkName(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == MarkVisualStart, r == MarkVisualEnd, r == MarkPrevious:
		return true
	default:
		return false
	}
}

// Set stores dir/file under mark, stamped with now (unix seconds).
func (t *Table) Set(mark rune, dir, file string, now int64) bool {
	if !IsValidMarkName(mark) {
		return false
	}
	t.marks[mark] = Bookmark{Mark: mark, Dir: dir, File: file, Timestamp: now}
	return true
}

// Get returns the bookmark for mark, and false if it was never set.
func (t *Table) Get(mark rune) (Bookmark, bool) {
	b, ok := t.marks[mark]
	return b, ok
}

// IsValid reports whether a bookmark's directory still exists, per the
// dirExists probe the caller supplies (keeps this package free of fsops).
func (t *Table) IsValid(mark rune, dirExists func(string) bool) bool {
	b, ok := t.marks[mark]
	if !ok {
		return false
	}
	return dirExists(b.Dir)
}

// Delete removes a user mark (a-z, 0-9, A-Z only; specials are managed by
// the caller's own lifecycle and are not user-deletable).
func (t *Table) Delete(mark rune) bool {
	if mark == MarkVisualStart || mark == MarkVisualEnd || mark == MarkPrevious {
		return false
	}
	if _, ok := t.marks[mark]; !ok {
		return false
	}
	delete(t.marks, mark)
	return true
}

// markClass orders letters before digits before specials, matching
// init_active_bookmarks' "dates ascending for letters, then digits, then
// specials" ordering (spec.md §4.7).
func markClass(r rune) int {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return 0
	case r >= '0' && r <= '9':
		return 1
	default:
		return 2
	}
}

// ActiveIndices returns mark names matching pattern (nil pattern = all set
// marks), ordered per markClass then ascending timestamp within letters.
func (t *Table) ActiveIndices(pattern func(rune) bool) []rune {
	var marks []rune
	for m := range t.marks {
		if pattern == nil || pattern(m) {
			marks = append(marks, m)
		}
	}
	sort.Slice(marks, func(i, j int) bool {
		ci, cj := markClass(marks[i]), markClass(marks[j])
		if ci != cj {
			return ci < cj
		}
		if ci == 0 {
			return t.marks[marks[i]].Timestamp < t.marks[marks[j]].Timestamp
		}
		return marks[i] < marks[j]
	})
	return marks
}
