package app

import (
	"path/filepath"

	"github.com/vifm-go/vifm/internal/pane"
)

// macroContext implements excmd.MacroContext against the Context's active
// and other panes, resolving the %c/%C/%d/%D/%f/%F/%a macros spec.md §4.5
// lists.
type macroContext struct {
	ctx *Context
}

func (m macroContext) CurrentFile() string {
	p := m.ctx.Active()
	if e, ok := p.Current(); ok {
		return filepath.Join(p.Dir, e.Name)
	}
	return ""
}

func (m macroContext) OtherFile() string {
	p := m.ctx.Other()
	if e, ok := p.Current(); ok {
		return filepath.Join(p.Dir, e.Name)
	}
	return ""
}

func (m macroContext) CurrentDir() string { return m.ctx.Active().Dir }
func (m macroContext) OtherDir() string   { return m.ctx.Other().Dir }

func (m macroContext) SelectedFiles() []string {
	return absolutizeSelected(m.ctx.Active())
}

func (m macroContext) OtherSelectedFiles() []string {
	return absolutizeSelected(m.ctx.Other())
}

func (m macroContext) UserArgs() string { return m.ctx.pendingUserArgs }

func absolutizeSelected(p *pane.Pane) []string {
	names := p.SelectedNames()
	if len(names) == 0 {
		if e, ok := p.Current(); ok {
			names = []string{e.Name}
		}
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = filepath.Join(p.Dir, n)
	}
	return out
}
