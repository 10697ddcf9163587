package app

// windowsAdapter implements normal.Windows by delegating geometry to
// Layout, and additionally keeps the normal.Controller's Active/Other pane
// pointers in sync with whichever side Layout reports focused — the
// Controller itself only ever operates on the two *pane.Pane values it was
// constructed with, so a Ctrl-W focus change has to repoint them.
type windowsAdapter struct {
	ctx *Context
}

func (w *windowsAdapter) Switch(direction rune) {
	w.ctx.Layout.Switch(direction)
	w.syncActive()
}

func (w *windowsAdapter) SetSplit(orientation rune) { w.ctx.Layout.SetSplit(orientation) }
func (w *windowsAdapter) ToggleMaximize()            { w.ctx.Layout.ToggleMaximize() }
func (w *windowsAdapter) Resize(direction rune, count int) {
	w.ctx.Layout.Resize(direction, count)
}

func (w *windowsAdapter) syncActive() {
	if w.ctx.Layout.ActiveLeft {
		w.ctx.Normal.Active, w.ctx.Normal.Other = w.ctx.Left, w.ctx.Right
	} else {
		w.ctx.Normal.Active, w.ctx.Normal.Other = w.ctx.Right, w.ctx.Left
	}
}
