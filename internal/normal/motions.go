package normal

import "github.com/vifm-go/vifm/internal/keys"

// Motion handlers move the cursor; they never touch selection or registers.

func (c *Controller) motionDown(info keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.MoveBy(clampCount(info))
	return nil
}

func (c *Controller) motionUp(info keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.MoveBy(-clampCount(info))
	return nil
}

func (c *Controller) motionGG(info keys.KeyInfo, _ *keys.KeysInfo) error {
	if info.Count != keys.NoCount && info.Count > 0 {
		c.Active.MoveToListPos(info.Count - 1)
		return nil
	}
	c.Active.MoveToListPos(0)
	return nil
}

func (c *Controller) motionG(info keys.KeyInfo, _ *keys.KeysInfo) error {
	if info.Count != keys.NoCount && info.Count > 0 {
		c.Active.MoveToListPos(info.Count - 1)
		return nil
	}
	c.Active.MoveToListPos(len(c.Active.Entries) - 1)
	return nil
}

func (c *Controller) motionH(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.Top()
	return nil
}

func (c *Controller) motionM(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.Middle()
	return nil
}

func (c *Controller) motionL(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.Bottom()
	return nil
}

func (c *Controller) motionPercent(info keys.KeyInfo, _ *keys.KeysInfo) error {
	if info.Count == keys.NoCount {
		// bare % with no count is a matching-pair motion elsewhere in vi;
		// in the file list there's nothing to match, so treat as no-op.
		return nil
	}
	c.Active.PercentPosition(info.Count)
	return nil
}

func (c *Controller) scrollCtrlE(info keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.ScrollLines(clampCount(info))
	return nil
}

func (c *Controller) scrollCtrlY(info keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.ScrollLines(-clampCount(info))
	return nil
}

func (c *Controller) scrollCtrlD(info keys.KeyInfo, _ *keys.KeysInfo) error {
	lines := 0
	if info.Count != keys.NoCount && info.Count > 0 {
		lines = info.Count
		c.pendingHalfWindow = lines
	} else {
		lines = c.pendingHalfWindow
	}
	c.Active.ScrollHalfWindow(true, lines)
	return nil
}

func (c *Controller) scrollCtrlU(info keys.KeyInfo, _ *keys.KeysInfo) error {
	lines := 0
	if info.Count != keys.NoCount && info.Count > 0 {
		lines = info.Count
		c.pendingHalfWindow = lines
	} else {
		lines = c.pendingHalfWindow
	}
	c.Active.ScrollHalfWindow(false, lines)
	return nil
}

func (c *Controller) scrollCtrlF(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.ScrollFullWindow(true)
	return nil
}

func (c *Controller) scrollCtrlB(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.ScrollFullWindow(false)
	return nil
}

func (c *Controller) repositionTop(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.RepositionTop()
	return nil
}

func (c *Controller) repositionCenter(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.RepositionCenter()
	return nil
}

func (c *Controller) repositionBottom(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.RepositionBottom()
	return nil
}

// findChar implements f/F: jump the cursor to the count'th entry whose name
// starts with info.Multi, searching forward (f) or backward (F).
func (c *Controller) findChar(forward bool) keys.HandlerFunc {
	return func(info keys.KeyInfo, _ *keys.KeysInfo) error {
		if !info.HasMulti {
			return nil
		}
		c.lastFindChar = info.Multi
		c.lastFindFwd = forward
		c.runFind(info.Multi, forward, clampCount(info))
		return nil
	}
}

func (c *Controller) repeatFind(info keys.KeyInfo, _ *keys.KeysInfo) error {
	if c.lastFindChar == 0 {
		return nil
	}
	c.runFind(c.lastFindChar, c.lastFindFwd, clampCount(info))
	return nil
}

func (c *Controller) repeatFindReverse(info keys.KeyInfo, _ *keys.KeysInfo) error {
	if c.lastFindChar == 0 {
		return nil
	}
	c.runFind(c.lastFindChar, !c.lastFindFwd, clampCount(info))
	return nil
}

func (c *Controller) runFind(target rune, forward bool, count int) {
	if i := c.findIndex(c.Active.ListPos, target, forward, count, true); i >= 0 {
		c.Active.MoveToListPos(i)
	}
}

// findIndex resolves f/F's target entry from pos without moving the cursor,
// so both the cursor-moving motion and the selector variant (spec.md §4.3:
// "wraps in normal mode, does not wrap when acting as selector", confirmed
// against original_source/src/normal.c's ffind/find_goto) share one search.
// Returns -1 if count matches were not found.
func (c *Controller) findIndex(pos int, target rune, forward bool, count int, wrap bool) int {
	n := len(c.Active.Entries)
	if n == 0 {
		return -1
	}
	step := 1
	if !forward {
		step = -1
	}
	found := 0
	i := pos
	for steps := 0; steps < n; steps++ {
		i += step
		if i < 0 || i >= n {
			if !wrap {
				return -1
			}
			if i < 0 {
				i += n
			} else {
				i -= n
			}
		}
		name := c.Active.Entries[i].Name
		if len(name) > 0 && rune(name[0]) == target {
			found++
			if found == count {
				return i
			}
		}
	}
	return -1
}

// motionPrevGroup implements (: jump to the first entry of the group before
// the cursor's, under the pane's primary sort key.
func (c *Controller) motionPrevGroup(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	if i := c.Active.PrevGroupIndex(); i >= 0 {
		c.Active.MoveToListPos(i)
	}
	return nil
}

// motionNextGroup implements ): jump to the first entry of the group after
// the cursor's, under the pane's primary sort key.
func (c *Controller) motionNextGroup(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	if i := c.Active.NextGroupIndex(); i >= 0 {
		c.Active.MoveToListPos(i)
	}
	return nil
}
