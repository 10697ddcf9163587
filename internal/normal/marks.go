package normal

import "github.com/vifm-go/vifm/internal/keys"

// markSet implements m<char>: record the cursor's directory/file under the
// given mark name.
func (c *Controller) markSet(info keys.KeyInfo, _ *keys.KeysInfo) error {
	if !info.HasMulti {
		return nil
	}
	cur, ok := c.Active.Current()
	file := ""
	if ok {
		file = cur.Name
	}
	c.Marks.Set(info.Multi, c.Active.Dir, file, c.now())
	return nil
}

// markGoto implements '<char> and `<char>: jump to a mark's directory and
// file. A mark in another directory loads the active pane from b.Dir here;
// the pane's directory history is not updated by this jump.
func (c *Controller) markGoto(info keys.KeyInfo, _ *keys.KeysInfo) error {
	if !info.HasMulti {
		return nil
	}
	b, ok := c.Marks.Get(info.Multi)
	if !ok {
		return nil
	}
	if b.Dir == c.Active.Dir {
		if i := c.indexOfEntry(b.File); i >= 0 {
			c.Active.MoveToListPos(i)
		}
		return nil
	}
	if err := c.Active.Load(b.Dir, false); err != nil {
		return err
	}
	if i := c.indexOfEntry(b.File); i >= 0 {
		c.Active.MoveToListPos(i)
	}
	return nil
}

func (c *Controller) indexOfEntry(name string) int {
	for i, e := range c.Active.Entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}
