// Package pane implements the directory-listing half of the two-pane model:
// entries, cursor/scroll invariants, sort, name filtering, and mtime-polled
// reload (spec.md §4.6).
//
// Grounded on config/filesystem.go's FileSystem abstraction (generalized in
// internal/fsops from config files to directory trees) and on
// git/status.go's "parse a raw OS listing into typed records" shape.
package pane

import "github.com/vifm-go/vifm/internal/fsops"

// EntryType classifies one directory entry (spec.md §3).
type EntryType int

// Entry type values.
const (
	TypeRegular EntryType = iota
	TypeDirectory
	TypeLink
	TypeBrokenLink
	TypeFifo
	TypeSocket
	TypeDevice
	TypeExecutable
	TypeUnknown
)

// Entry is one row of a pane's listing.
type Entry struct {
	Name     string
	Type     EntryType
	Size     int64
	MTime    int64
	ATime    int64
	CTime    int64
	UID      int
	GID      int
	Selected bool
	Matched  bool // last search pattern matched this entry's name
}

// SortCriterion is a signed sort-key code; negative means descending.
// |Criterion| selects the comparator, the sign selects direction.
type SortCriterion int

// Sort criteria (unsigned magnitudes); spec.md §4.6 step 4.
const (
	SortByName SortCriterion = iota + 1
	SortByIName
	SortByExtension
	SortBySize
	SortByATime
	SortByMTime
	SortByCTime
	SortByMode
	SortByGroup
	SortByOwner
)

// historyEntry is one ring-buffer slot of the per-pane directory history
// that Pane embeds; internal/history holds only the bookmark table.
type historyEntry struct {
	Dir     string
	File    string
	RelPos  int
}

// Pane is one of the two directory listings (spec.md §3).
type Pane struct {
	FS fsops.FileSystem

	Dir     string
	Entries []Entry

	ListPos    int
	TopLine    int
	WindowRows int

	FilterRegex  string
	FilterInvert bool
	HideDot      bool
	filtered     int // entries dropped by the active filter/hide-dot, this load

	SortKeys []SortCriterion

	DirMTime int64

	ScrollOff int

	// IgnoreCase/SmartCase govern filter regex matching (spec.md §4.6 step 2).
	IgnoreCase bool
	SmartCase  bool

	savedSelection map[string]bool // snapshot for `gs`
	savedFilter    string          // snapshot for zM
	savedInvert    bool

	history    []historyEntry
	historyCap int
	historyPos int
}

// New returns a Pane with vifm's default scroll-off and history capacity.
func New(fs fsops.FileSystem) *Pane {
	return &Pane{
		FS:         fs,
		SortKeys:   []SortCriterion{SortByName},
		ScrollOff:  0,
		historyCap: 15,
		historyPos: -1,
	}
}

// SelectedCount returns how many entries are currently selected.
func (p *Pane) SelectedCount() int {
	n := 0
	for _, e := range p.Entries {
		if e.Selected {
			n++
		}
	}
	return n
}

// Current returns the entry under the cursor, and false if the pane is empty.
func (p *Pane) Current() (Entry, bool) {
	if p.ListPos < 0 || p.ListPos >= len(p.Entries) {
		return Entry{}, false
	}
	return p.Entries[p.ListPos], true
}

// FilteredCount reports how many entries the last load dropped due to the
// name filter or hide-dot setting.
func (p *Pane) FilteredCount() int {
	return p.filtered
}
