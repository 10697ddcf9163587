package pane

import (
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/vifm-go/vifm/internal/fsops"
	"github.com/vifm-go/vifm/internal/vifmerr"
)

// Load (re)reads Dir, applying the filter/hide-dot settings, classifying
// and sorting entries, and — when reload is true — preserving selection and
// cursor by name (spec.md §4.6 steps 1-5).
func (p *Pane) Load(dir string, reload bool) error {
	if _, err := p.FS.Stat(dir); err != nil {
		return vifmerr.New("load_dir", vifmerr.TransientIOError, err)
	}

	var prevSelected map[string]bool
	var prevCursorName string
	if reload {
		prevSelected = make(map[string]bool)
		for _, e := range p.Entries {
			if e.Selected {
				prevSelected[e.Name] = true
			}
		}
		if cur, ok := p.Current(); ok {
			prevCursorName = cur.Name
		}
	}

	raw, err := p.FS.ReadDir(dir)
	if err != nil {
		return vifmerr.New("load_dir", vifmerr.TransientIOError, err)
	}

	var re *regexp.Regexp
	if p.FilterRegex != "" {
		pattern := p.FilterRegex
		if p.IgnoreCase && !(p.SmartCase && hasUpper(pattern)) {
			pattern = "(?i)" + pattern
		}
		re, err = regexp.Compile(pattern)
		if err != nil {
			re = nil
		}
	}

	p.filtered = 0
	entries := make([]Entry, 0, len(raw))
	atRoot := dir == "/" || dir == string(os.PathSeparator)
	for _, de := range raw {
		if de.Name == "." {
			continue
		}
		if de.Name == ".." && atRoot {
			continue
		}
		if p.HideDot && strings.HasPrefix(de.Name, ".") && de.Name != ".." {
			p.filtered++
			continue
		}
		if re != nil && de.Name != ".." {
			matched := re.MatchString(de.Name)
			if p.FilterInvert {
				matched = !matched
			}
			if !matched {
				p.filtered++
				continue
			}
		}

		lst, lerr := p.FS.Lstat(path.Join(dir, de.Name))
		if lerr != nil {
			p.filtered++
			continue
		}
		e := Entry{
			Name:  de.Name,
			Size:  lst.Size,
			MTime: lst.ModTime,
			ATime: lst.ModTime,
			CTime: lst.ModTime,
			Type:  classify(lst),
		}
		if prevSelected != nil && prevSelected[e.Name] && e.Name != ".." {
			e.Selected = true
		}
		entries = append(entries, e)
	}

	sortEntries(entries, p.SortKeys)
	p.Entries = entries
	p.Dir = dir

	if st, err := p.FS.Stat(dir); err == nil {
		p.DirMTime = st.ModTime
	}

	if reload {
		idx := indexOfName(entries, prevCursorName)
		if idx < 0 {
			idx = nearestIndex(entries, p.ListPos)
		}
		p.MoveToListPos(idx)
	} else {
		p.MoveToListPos(0)
	}
	return nil
}

func classify(e fsops.DirEntry) EntryType {
	switch {
	case e.IsLink:
		return TypeLink
	case e.IsDir:
		return TypeDirectory
	case e.Mode&os.ModeNamedPipe != 0:
		return TypeFifo
	case e.Mode&os.ModeSocket != 0:
		return TypeSocket
	case e.Mode&os.ModeDevice != 0:
		return TypeDevice
	case e.Mode&0o111 != 0:
		return TypeExecutable
	default:
		return TypeRegular
	}
}

func hasUpper(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func indexOfName(entries []Entry, name string) int {
	if name == "" {
		return -1
	}
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

func nearestIndex(entries []Entry, want int) int {
	if len(entries) == 0 {
		return 0
	}
	if want >= len(entries) {
		return len(entries) - 1
	}
	if want < 0 {
		return 0
	}
	return want
}

// sortEntries applies SortKeys as a chain of tiebreakers, name always last.
func sortEntries(entries []Entry, keys []SortCriterion) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Name == ".." {
			return true
		}
		if b.Name == ".." {
			return false
		}
		for _, k := range keys {
			c := compareBy(a, b, k)
			if c != 0 {
				return c < 0
			}
		}
		return a.Name < b.Name
	})
}

func compareBy(a, b Entry, key SortCriterion) int {
	mag := key
	desc := false
	if mag < 0 {
		mag = -mag
		desc = true
	}
	c := 0
	switch mag {
	case SortByName:
		c = strings.Compare(a.Name, b.Name)
	case SortByIName:
		c = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortByExtension:
		c = strings.Compare(path.Ext(a.Name), path.Ext(b.Name))
	case SortBySize:
		c = cmpInt64(a.Size, b.Size)
	case SortByATime:
		c = cmpInt64(a.ATime, b.ATime)
	case SortByMTime:
		c = cmpInt64(a.MTime, b.MTime)
	case SortByCTime:
		c = cmpInt64(a.CTime, b.CTime)
	case SortByMode:
		c = int(a.Type) - int(b.Type)
	case SortByGroup:
		c = a.GID - b.GID
	case SortByOwner:
		c = a.UID - b.UID
	}
	if desc {
		c = -c
	}
	return c
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CheckFileListChanged reports whether dir's mtime has moved on since the
// last Load, without itself triggering a reload (spec.md §4.6 step 6).
func (p *Pane) CheckFileListChanged() (bool, error) {
	st, err := p.FS.Stat(p.Dir)
	if err != nil {
		return false, vifmerr.New("check_mtime", vifmerr.TransientIOError, err)
	}
	return st.ModTime != p.DirMTime, nil
}
