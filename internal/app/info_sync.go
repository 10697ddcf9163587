package app

import (
	"github.com/vifm-go/vifm/internal/config"
	"github.com/vifm-go/vifm/internal/pane"
)

// applyInfo overlays the loaded info file onto the freshly-constructed
// Context: bookmarks, per-pane sort/filter/history, the three command-line
// rings, and the active pane/split layout (spec.md §6's persisted state,
// everything the rc/yaml file does not already cover).
func (c *Context) applyInfo() {
	info := c.Info.Info()

	for _, b := range info.Bookmarks {
		c.Marks.Set(b.Mark, b.Dir, b.File, 0)
	}

	applyPaneInfo(c.Left, info.LeftSort, info.LeftHistory, info.LeftFilter, info.LeftFilterInvert)
	applyPaneInfo(c.Right, info.RightSort, info.RightHistory, info.RightFilter, info.RightFilterInvert)

	for _, line := range info.CmdHistory {
		c.exHistory.Add(line)
	}
	for _, line := range info.SearchHistory {
		c.searchHistory.Add(line)
	}
	for _, line := range info.PromptHistory {
		c.promptHistory.Add(line)
	}

	for _, reg := range info.Registers {
		c.Regs.Set(reg.Reg, []string{reg.Path}, false)
	}

	c.Layout.ActiveLeft = info.ActivePane != 'r'
	if !c.Layout.ActiveLeft {
		c.Normal.Active, c.Normal.Other = c.Right, c.Left
	}
	if info.SplitOrientation == 'h' {
		c.Layout.Vertical = false
	}
}

func applyPaneInfo(p *pane.Pane, sortCodes []int, hist []config.HistoryEntry, filter string, invert bool) {
	if len(sortCodes) > 0 {
		keys := make([]pane.SortCriterion, len(sortCodes))
		for i, n := range sortCodes {
			keys[i] = pane.SortCriterion(n)
		}
		p.SortKeys = keys
	}
	p.FilterRegex = filter
	p.FilterInvert = invert
	for _, h := range hist {
		p.PushHistory(h.Dir, h.File, h.RelPos)
	}
}

// captureInfo snapshots the Context's live state back into the InfoFile
// ahead of Save, mirroring applyInfo's field mapping in reverse.
func (c *Context) captureInfo() {
	info := c.Info.Info()

	info.Bookmarks = info.Bookmarks[:0]
	for _, m := range c.Marks.ActiveIndices(nil) {
		b, _ := c.Marks.Get(m)
		info.Bookmarks = append(info.Bookmarks, config.Bookmark{Mark: b.Mark, Dir: b.Dir, File: b.File})
	}

	info.LeftSort = sortCodes(c.Left.SortKeys)
	info.RightSort = sortCodes(c.Right.SortKeys)
	info.LeftFilter, info.LeftFilterInvert = c.Left.FilterRegex, c.Left.FilterInvert
	info.RightFilter, info.RightFilterInvert = c.Right.FilterRegex, c.Right.FilterInvert

	info.LeftHistory = paneHistory(c.Left)
	info.RightHistory = paneHistory(c.Right)

	info.CmdHistory = c.exHistory.Lines()
	info.SearchHistory = c.searchHistory.Lines()
	info.PromptHistory = c.promptHistory.Lines()

	info.Registers = info.Registers[:0]
	for _, reg := range []rune{'"', '0', '1'} {
		if e, ok := c.Regs.Get(reg); ok {
			for _, p := range e.Paths {
				info.Registers = append(info.Registers, config.Register{Reg: reg, Path: p})
			}
		}
	}

	if c.Layout.ActiveLeft {
		info.ActivePane = 'l'
	} else {
		info.ActivePane = 'r'
	}
	if c.Layout.Vertical {
		info.SplitOrientation = 'v'
	} else {
		info.SplitOrientation = 'h'
	}
}

func sortCodes(keys []pane.SortCriterion) []int {
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = int(k)
	}
	return out
}

func paneHistory(p *pane.Pane) []config.HistoryEntry {
	var out []config.HistoryEntry
	for i := 0; i < p.HistoryLen(); i++ {
		dir, file, relPos, ok := p.HistoryEntryAt(i)
		if !ok {
			continue
		}
		out = append(out, config.HistoryEntry{Dir: dir, File: file, RelPos: relPos})
	}
	return out
}
