package app

// lineResolver implements excmd.LineResolver against the active pane's
// cursor/listing and the bookmark table, for `.`, `$`, and `'mark` range
// addresses (spec.md §4.5).
type lineResolver struct {
	ctx *Context
}

func (r lineResolver) CurrentLine() int {
	return r.ctx.Active().ListPos
}

func (r lineResolver) LastLine() int {
	return len(r.ctx.Active().Entries) - 1
}

func (r lineResolver) MarkLine(name rune) (int, bool) {
	b, ok := r.ctx.Marks.Get(name)
	if !ok || b.Dir != r.ctx.Active().Dir {
		return 0, false
	}
	p := r.ctx.Active()
	for i, e := range p.Entries {
		if e.Name == b.File {
			return i, true
		}
	}
	return 0, false
}
