package normal

import (
	"fmt"
	"strings"

	"github.com/vifm-go/vifm/internal/keys"
)

// targets resolves which entry names an operator acts on: the selector's
// resolved range if one ran (d{motion}), otherwise the pane's own selection
// (or the cursor entry alone), matching the doubled-operator shortcut (dd).
func (c *Controller) targets(ks *keys.KeysInfo) []string {
	if ks != nil && len(ks.Indices) > 0 {
		names := make([]string, 0, len(ks.Indices))
		for _, i := range ks.Indices {
			if i < 0 || i >= len(c.Active.Entries) {
				continue
			}
			if n := c.Active.Entries[i].Name; n != ".." {
				names = append(names, n)
			}
		}
		return names
	}
	return c.Active.SelectedNames()
}

func clampIdx(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// selectorRange builds a selector HandlerFunc that resolves [lo,hi] around
// the cursor toward delta*count entries, storing the range in ks.Indices.
func (c *Controller) selectorRange(delta int) keys.HandlerFunc {
	return func(info keys.KeyInfo, ks *keys.KeysInfo) error {
		n := 1
		if info.Count != keys.NoCount && info.Count > 0 {
			n = info.Count
		}
		cur := c.Active.ListPos
		target := clampIdx(cur+delta*n, 0, len(c.Active.Entries)-1)
		lo, hi := cur, target
		if lo > hi {
			lo, hi = hi, lo
		}
		ks.Indices = idxRange(lo, hi)
		return nil
	}
}

func (c *Controller) selectorTop(info keys.KeyInfo, ks *keys.KeysInfo) error {
	cur := c.Active.ListPos
	target := 0
	if info.Count != keys.NoCount && info.Count > 0 {
		target = clampIdx(info.Count-1, 0, len(c.Active.Entries)-1)
	}
	lo, hi := target, cur
	if lo > hi {
		lo, hi = hi, lo
	}
	ks.Indices = idxRange(lo, hi)
	return nil
}

func (c *Controller) selectorBottom(info keys.KeyInfo, ks *keys.KeysInfo) error {
	cur := c.Active.ListPos
	target := len(c.Active.Entries) - 1
	if info.Count != keys.NoCount && info.Count > 0 {
		target = clampIdx(info.Count-1, 0, len(c.Active.Entries)-1)
	}
	lo, hi := cur, target
	if lo > hi {
		lo, hi = hi, lo
	}
	ks.Indices = idxRange(lo, hi)
	return nil
}

func idxRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

// selectorToIndex builds the [cursor,target] range a selector resolves to,
// clamped to the pane's bounds.
func (c *Controller) selectorToIndex(target int, ks *keys.KeysInfo) error {
	cur := c.Active.ListPos
	lo, hi := cur, target
	if lo > hi {
		lo, hi = hi, lo
	}
	lo = clampIdx(lo, 0, len(c.Active.Entries)-1)
	hi = clampIdx(hi, 0, len(c.Active.Entries)-1)
	ks.Indices = idxRange(lo, hi)
	return nil
}

func (c *Controller) selectorH(_ keys.KeyInfo, ks *keys.KeysInfo) error {
	return c.selectorToIndex(c.Active.TopIndex(), ks)
}

func (c *Controller) selectorM(_ keys.KeyInfo, ks *keys.KeysInfo) error {
	return c.selectorToIndex(c.Active.MiddleIndex(), ks)
}

func (c *Controller) selectorL(_ keys.KeyInfo, ks *keys.KeysInfo) error {
	return c.selectorToIndex(c.Active.BottomIndex(), ks)
}

func (c *Controller) selectorPercent(info keys.KeyInfo, ks *keys.KeysInfo) error {
	if info.Count == keys.NoCount {
		return nil
	}
	return c.selectorToIndex(c.Active.PercentIndex(info.Count), ks)
}

// selectorFind builds f/F's selector variant: it must not wrap (spec.md
// §4.3), unlike the cursor-moving motion.
func (c *Controller) selectorFind(forward bool) keys.HandlerFunc {
	return func(info keys.KeyInfo, ks *keys.KeysInfo) error {
		if !info.HasMulti {
			return nil
		}
		c.lastFindChar = info.Multi
		c.lastFindFwd = forward
		target := c.findIndex(c.Active.ListPos, info.Multi, forward, clampCount(info), false)
		if target < 0 {
			return nil
		}
		return c.selectorToIndex(target, ks)
	}
}

// selectorMark builds '{mark}'s selector variant, used as e.g. d'a.
func (c *Controller) selectorMark(info keys.KeyInfo, ks *keys.KeysInfo) error {
	if !info.HasMulti {
		return nil
	}
	b, ok := c.Marks.Get(info.Multi)
	if !ok || b.Dir != c.Active.Dir {
		return nil
	}
	i := c.indexOfEntry(b.File)
	if i < 0 {
		return nil
	}
	return c.selectorToIndex(i, ks)
}

// opDelete builds d/dd (toTrash=true) and D (toTrash=false). Permanent
// delete asks for confirmation first when :set confirm is on (spec.md
// §4.3/§7 ConfirmationRequired); the actual removal then runs from
// AskConfirm's callback, which may fire after this handler has already
// returned, so the deletion itself never surfaces as a handler error —
// OnAsyncError reports it instead.
func (c *Controller) opDelete(toTrash bool) keys.HandlerFunc {
	return func(info keys.KeyInfo, ks *keys.KeysInfo) error {
		names := c.targets(ks)
		if len(names) == 0 {
			return nil
		}
		wasVisual := c.visualActive
		leaveVisual := func() {
			if !wasVisual {
				return
			}
			c.visualActive = false
			if c.VisualExit != nil {
				c.VisualExit()
			}
		}
		remove := func() error {
			var paths []string
			for _, name := range names {
				if err := c.FS.Remove(c.Active.Dir, name, toTrash); err != nil {
					return err
				}
				paths = append(paths, c.Active.Dir+"/"+name)
			}
			c.Regs.Set(regOf(info), paths, true)
			return c.Active.Load(c.Active.Dir, true)
		}

		if toTrash || !c.Confirm || c.AskConfirm == nil {
			err := remove()
			leaveVisual()
			return err
		}

		c.AskConfirm(confirmDeleteMessage(names), func(yes bool) {
			if yes {
				if err := remove(); err != nil && c.OnAsyncError != nil {
					c.OnAsyncError(err)
				}
			}
			leaveVisual()
		})
		return nil
	}
}

func confirmDeleteMessage(names []string) string {
	if len(names) == 1 {
		return fmt.Sprintf("Delete %s?", names[0])
	}
	return fmt.Sprintf("Delete %d files?", len(names))
}

func (c *Controller) opYank(info keys.KeyInfo, ks *keys.KeysInfo) error {
	names := c.targets(ks)
	if len(names) == 0 {
		return nil
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = c.Active.Dir + "/" + name
	}
	c.Regs.Set(regOf(info), paths, false)
	return nil
}

// opCase renames targets to all-lower (gu) or all-upper (gU) case.
func (c *Controller) opCase(upper bool) keys.HandlerFunc {
	return func(info keys.KeyInfo, ks *keys.KeysInfo) error {
		names := c.targets(ks)
		for _, name := range names {
			newName := strings.ToLower(name)
			if upper {
				newName = strings.ToUpper(name)
			}
			if newName == name {
				continue
			}
			if err := c.FS.Rename(c.Active.Dir, name, newName); err != nil {
				return err
			}
		}
		return c.Active.Load(c.Active.Dir, true)
	}
}

func regOf(info keys.KeyInfo) rune {
	if info.Reg == keys.NoReg {
		return 0
	}
	return info.Reg
}
