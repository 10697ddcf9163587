package normal

import "github.com/vifm-go/vifm/internal/keys"

func (c *Controller) filterHide(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.HideDotFiles()
	return c.Active.Load(c.Active.Dir, true)
}

func (c *Controller) filterShow(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.ShowDotFiles()
	return c.Active.Load(c.Active.Dir, true)
}

func (c *Controller) filterToggle(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.ToggleHideDot()
	return c.Active.Load(c.Active.Dir, true)
}

// filterSelected implements zf: hide the currently selected/cursor entries.
func (c *Controller) filterSelected(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	names := c.Active.SelectedNames()
	c.Active.AddNameFilter(names)
	c.Active.ClearSelection()
	return c.Active.Load(c.Active.Dir, true)
}

func (c *Controller) filterClearName(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.ClearNameFilter()
	return c.Active.Load(c.Active.Dir, true)
}

func (c *Controller) filterSaveAndHide(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.SaveFilterState()
	c.Active.RestoreFilterAndHideDots()
	return c.Active.Load(c.Active.Dir, true)
}

func (c *Controller) filterResetAll(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	c.Active.ResetFilterShowAll()
	return c.Active.Load(c.Active.Dir, true)
}

// Window management (Ctrl-W family) delegates to the layout collaborator;
// the Pane Model itself has no notion of screen geometry.

func (c *Controller) winSwitch(dir rune) keys.HandlerFunc {
	return func(_ keys.KeyInfo, _ *keys.KeysInfo) error {
		if c.Windows != nil {
			c.Windows.Switch(dir)
		}
		return nil
	}
}

func (c *Controller) winSplit(orientation rune) keys.HandlerFunc {
	return func(_ keys.KeyInfo, _ *keys.KeysInfo) error {
		if c.Windows != nil {
			c.Windows.SetSplit(orientation)
		}
		return nil
	}
}

func (c *Controller) winMaximize(_ keys.KeyInfo, _ *keys.KeysInfo) error {
	if c.Windows != nil {
		c.Windows.ToggleMaximize()
	}
	return nil
}

func (c *Controller) winResize(dir rune) keys.HandlerFunc {
	return func(info keys.KeyInfo, _ *keys.KeysInfo) error {
		if c.Windows != nil {
			c.Windows.Resize(dir, clampCount(info))
		}
		return nil
	}
}
