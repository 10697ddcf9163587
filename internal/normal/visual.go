package normal

import (
	"github.com/vifm-go/vifm/internal/history"
	"github.com/vifm-go/vifm/internal/keys"
)

// EnterVisual implements v/V: anchor the range at the cursor and start
// tracking it as the cursor moves. The Mode Manager transition itself is
// internal/app's job (v/V is a Normal-mode builtin there that calls
// Modes.Enter then this).
func (c *Controller) EnterVisual(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.visualAnchor = c.Active.ListPos
	c.visualActive = true
	c.Active.ClearSelection()
	c.Active.SelectRange(c.visualAnchor, c.Active.ListPos, false)
	c.markVisualRange()
	return nil
}

// LeaveVisual implements Esc/v/V from within Visual mode: stop tracking and
// pop back to Normal via VisualExit. The selection the range produced
// persists (spec.md §4.4).
func (c *Controller) LeaveVisual(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.visualActive = false
	if c.VisualExit != nil {
		c.VisualExit()
	}
	return nil
}

// SwapAnchor implements O: exchange which end of the visual range is the
// moving cursor.
func (c *Controller) SwapAnchor(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	if !c.visualActive {
		return nil
	}
	c.visualAnchor, c.Active.ListPos = c.Active.ListPos, c.visualAnchor
	return nil
}

// RestoreLastVisual implements gv: reselect the last visual range recorded
// under the `<`/`>` marks, without re-entering tracking mode (spec.md
// §4.3). A no-op if the marks were never set or point at a different
// directory than the one now active.
func (c *Controller) RestoreLastVisual(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	start, ok := c.Marks.Get(history.MarkVisualStart)
	if !ok || start.Dir != c.Active.Dir {
		return nil
	}
	end, ok := c.Marks.Get(history.MarkVisualEnd)
	if !ok || end.Dir != c.Active.Dir {
		return nil
	}
	lo, hi := c.indexOfEntry(start.File), c.indexOfEntry(end.File)
	if lo < 0 || hi < 0 {
		return nil
	}
	c.Active.ClearSelection()
	c.Active.SelectRange(lo, hi, false)
	return nil
}

// syncVisualRange re-applies the selection after a motion moved the cursor
// while Visual mode tracking is active, and refreshes the `<`/`>` marks to
// match. internal/normal's own motions reach this through trackVisual;
// internal/app calls SyncVisualRange for motions it owns itself (n/N).
func (c *Controller) syncVisualRange() {
	if !c.visualActive {
		return
	}
	c.Active.ClearSelection()
	c.Active.SelectRange(c.visualAnchor, c.Active.ListPos, false)
	c.markVisualRange()
}

// SyncVisualRange is syncVisualRange exported for internal/app's motions
// that track the cursor outside this package's own registrations.
func (c *Controller) SyncVisualRange() {
	c.syncVisualRange()
}

// markVisualRange records the current visual range's endpoints under the
// `<`/`>` marks so gv can restore it later.
func (c *Controller) markVisualRange() {
	lo, hi := c.visualAnchor, c.Active.ListPos
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < 0 || hi >= len(c.Active.Entries) {
		return
	}
	c.Marks.Set(history.MarkVisualStart, c.Active.Dir, c.Active.Entries[lo].Name, c.now())
	c.Marks.Set(history.MarkVisualEnd, c.Active.Dir, c.Active.Entries[hi].Name, c.now())
}

// trackVisual wraps a motion handler so Visual mode's tracked range and
// `<`/`>` marks follow the cursor after the motion runs.
func (c *Controller) trackVisual(fn keys.HandlerFunc) keys.HandlerFunc {
	return func(info keys.KeyInfo, ks *keys.KeysInfo) error {
		if err := fn(info, ks); err != nil {
			return err
		}
		c.syncVisualRange()
		return nil
	}
}

// exitAfterVisualOp wraps an operator so it leaves Visual mode once it has
// acted on the tracked range (spec.md §4.3: "exit visual mode to normal").
// D is excluded from this wrapper since a pending confirmation prompt must
// resolve before the range can be released; opDelete manages that exit
// itself.
func (c *Controller) exitAfterVisualOp(fn keys.HandlerFunc) keys.HandlerFunc {
	return func(info keys.KeyInfo, ks *keys.KeysInfo) error {
		err := fn(info, ks)
		c.visualActive = false
		if c.VisualExit != nil {
			c.VisualExit()
		}
		return err
	}
}
