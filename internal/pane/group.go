package pane

import (
	"path/filepath"
	"strconv"
	"strings"
)

// GroupKey returns the comparable value entry i shares with its neighbours
// under the pane's primary sort criterion, used by (/) to jump between
// runs of entries that sort together (spec.md §4.3).
func (p *Pane) GroupKey(i int) string {
	if i < 0 || i >= len(p.Entries) || len(p.SortKeys) == 0 {
		return ""
	}
	e := p.Entries[i]
	mag := p.SortKeys[0]
	if mag < 0 {
		mag = -mag
	}
	switch mag {
	case SortByExtension:
		return strings.ToLower(filepath.Ext(e.Name))
	case SortBySize:
		return strconv.FormatInt(e.Size, 10)
	case SortByATime:
		return strconv.FormatInt(e.ATime, 10)
	case SortByMTime:
		return strconv.FormatInt(e.MTime, 10)
	case SortByCTime:
		return strconv.FormatInt(e.CTime, 10)
	case SortByMode:
		return strconv.Itoa(int(e.Type))
	case SortByGroup:
		return strconv.Itoa(e.GID)
	case SortByOwner:
		return strconv.Itoa(e.UID)
	case SortByIName:
		return strings.ToLower(e.Name)
	default:
		return e.Name
	}
}

// PrevGroupIndex returns the index of the first entry in the group before
// the cursor's, or -1 if the cursor is already in the first group.
func (p *Pane) PrevGroupIndex() int {
	if len(p.Entries) == 0 {
		return -1
	}
	curKey := p.GroupKey(p.ListPos)
	i := p.ListPos
	for i > 0 && p.GroupKey(i-1) == curKey {
		i--
	}
	i--
	if i < 0 {
		return -1
	}
	prevKey := p.GroupKey(i)
	for i > 0 && p.GroupKey(i-1) == prevKey {
		i--
	}
	return i
}

// NextGroupIndex returns the index of the first entry in the group after
// the cursor's, or -1 if the cursor is already in the last group.
func (p *Pane) NextGroupIndex() int {
	n := len(p.Entries)
	if n == 0 {
		return -1
	}
	curKey := p.GroupKey(p.ListPos)
	i := p.ListPos
	for i < n-1 && p.GroupKey(i+1) == curKey {
		i++
	}
	i++
	if i >= n {
		return -1
	}
	return i
}
