package normal

import (
	"path/filepath"

	"github.com/vifm-go/vifm/internal/keys"
)

// put implements p/P: copy (from a yank) or move (from a delete) every path
// in the addressed register into the active pane's directory. P and p are
// equivalent here since there is no line-oriented "before/after" in a file
// list; both drop the files into the current directory.
func (c *Controller) put(info keys.KeyInfo, _ *keys.KeysInfo) error {
	reg := regOf(info)
	e, ok := c.Regs.Get(reg)
	if !ok || len(e.Paths) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.Paths))
	for _, src := range e.Paths {
		srcDir, name := filepath.Split(src)
		srcDir = filepath.Clean(srcDir)
		var err error
		if e.FromCut {
			err = c.FS.Move(srcDir, name, c.Active.Dir)
		} else {
			err = c.FS.Copy(srcDir, name, c.Active.Dir)
		}
		if err != nil {
			return err
		}
		names = append(names, name)
	}
	if e.FromCut {
		c.Regs.Clear(reg)
	}
	if err := c.Active.Load(c.Active.Dir, true); err != nil {
		return err
	}
	c.Active.SelectByName(names)
	return nil
}
