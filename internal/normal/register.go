package normal

import "github.com/vifm-go/vifm/internal/keys"

// Register installs every Normal/Visual-mode builtin binding this package
// implements onto engine, for the two mode identifiers the caller's mode
// table assigns to Normal and Visual (spec.md §4.3's key table). v/V
// themselves are internal/app's responsibility, since entering Visual mode
// also means a Mode Manager transition this package cannot reach.
func (c *Controller) Register(engine *keys.Engine, normalMode, visualMode keys.Mode) {
	c.registerMotions(engine, normalMode, false)
	c.registerMotions(engine, visualMode, true)
	for _, mode := range []keys.Mode{normalMode, visualMode} {
		c.registerFilters(engine, mode)
		c.registerWindows(engine, mode)
		c.registerMarks(engine, mode)
	}
	c.registerOperators(engine, normalMode)
	c.registerVisualOperators(engine, visualMode)
	c.registerPut(engine, normalMode)
	c.registerVisualOnly(engine, visualMode)
	engine.AddBuiltin(normalMode, []rune("gv"), handler(c.RestoreLastVisual))
}

func handler(fn keys.HandlerFunc) keys.Action {
	return keys.Action{Kind: keys.ActionHandler, Handler: fn}
}

func multiKey(fn keys.HandlerFunc) keys.Action {
	return keys.Action{Kind: keys.ActionHandler, Handler: fn, FollowedBy: keys.FollowMultiKey}
}

func withSelector(fn keys.HandlerFunc) keys.Action {
	return keys.Action{Kind: keys.ActionHandler, Handler: fn, FollowedBy: keys.FollowSelector}
}

// registerMotions installs the motions common to Normal and Visual mode. In
// Visual mode every motion also has to resync the tracked range and its
// `<`/`>` marks, so trackVisual wraps each handler when inVisual is set.
func (c *Controller) registerMotions(e *keys.Engine, mode keys.Mode, inVisual bool) {
	wrap := func(fn keys.HandlerFunc) keys.HandlerFunc {
		if inVisual {
			return c.trackVisual(fn)
		}
		return fn
	}

	e.AddBuiltin(mode, []rune("j"), handler(wrap(c.motionDown)))
	e.AddBuiltin(mode, []rune("k"), handler(wrap(c.motionUp)))
	e.AddBuiltin(mode, []rune("gg"), handler(wrap(c.motionGG)))
	e.AddBuiltin(mode, []rune("G"), handler(wrap(c.motionG)))
	e.AddBuiltin(mode, []rune("H"), handler(wrap(c.motionH)))
	e.AddBuiltin(mode, []rune("M"), handler(wrap(c.motionM)))
	e.AddBuiltin(mode, []rune("L"), handler(wrap(c.motionL)))
	e.AddBuiltin(mode, []rune("%"), handler(wrap(c.motionPercent)))
	e.AddBuiltin(mode, []rune("("), handler(wrap(c.motionPrevGroup)))
	e.AddBuiltin(mode, []rune(")"), handler(wrap(c.motionNextGroup)))

	e.AddBuiltin(mode, []rune("f"), multiKey(wrap(c.findChar(true))))
	e.AddBuiltin(mode, []rune("F"), multiKey(wrap(c.findChar(false))))
	e.AddBuiltin(mode, []rune(";"), handler(wrap(c.repeatFind)))
	e.AddBuiltin(mode, []rune(","), handler(wrap(c.repeatFindReverse)))

	e.AddBuiltin(mode, []rune{0x05}, handler(c.scrollCtrlE)) // Ctrl-E
	e.AddBuiltin(mode, []rune{0x19}, handler(c.scrollCtrlY)) // Ctrl-Y
	e.AddBuiltin(mode, []rune{0x04}, handler(c.scrollCtrlD)) // Ctrl-D
	e.AddBuiltin(mode, []rune{0x15}, handler(c.scrollCtrlU)) // Ctrl-U
	e.AddBuiltin(mode, []rune{0x06}, handler(c.scrollCtrlF)) // Ctrl-F
	e.AddBuiltin(mode, []rune{0x02}, handler(c.scrollCtrlB)) // Ctrl-B

	e.AddBuiltin(mode, []rune("zt"), handler(c.repositionTop))
	e.AddBuiltin(mode, []rune("zz"), handler(c.repositionCenter))
	e.AddBuiltin(mode, []rune("zb"), handler(c.repositionBottom))
}

func (c *Controller) registerOperators(e *keys.Engine, mode keys.Mode) {
	e.AddBuiltin(mode, []rune("d"), withSelector(c.opDelete(true)))
	e.AddBuiltin(mode, []rune("dd"), handler(c.opDelete(true)))
	e.AddBuiltin(mode, []rune("D"), handler(c.opDelete(false)))

	e.AddBuiltin(mode, []rune("y"), withSelector(c.opYank))
	e.AddBuiltin(mode, []rune("yy"), handler(c.opYank))

	e.AddBuiltin(mode, []rune("gu"), withSelector(c.opCase(false)))
	e.AddBuiltin(mode, []rune("guu"), handler(c.opCase(false)))
	e.AddBuiltin(mode, []rune("gU"), withSelector(c.opCase(true)))
	e.AddBuiltin(mode, []rune("gUU"), handler(c.opCase(true)))

	// These motions double as selectors when consumed after an operator
	// (d{motion}, y{motion}, gu{motion}, gU{motion}); the others above
	// (scrolling, (, ), ;, ,) are not selectors.
	e.AddSelector(mode, []rune("j"), keys.Action{Kind: keys.ActionHandler, Handler: c.selectorRange(1)})
	e.AddSelector(mode, []rune("k"), keys.Action{Kind: keys.ActionHandler, Handler: c.selectorRange(-1)})
	e.AddSelector(mode, []rune("gg"), keys.Action{Kind: keys.ActionHandler, Handler: c.selectorTop})
	e.AddSelector(mode, []rune("G"), keys.Action{Kind: keys.ActionHandler, Handler: c.selectorBottom})
	e.AddSelector(mode, []rune("H"), keys.Action{Kind: keys.ActionHandler, Handler: c.selectorH})
	e.AddSelector(mode, []rune("M"), keys.Action{Kind: keys.ActionHandler, Handler: c.selectorM})
	e.AddSelector(mode, []rune("L"), keys.Action{Kind: keys.ActionHandler, Handler: c.selectorL})
	e.AddSelector(mode, []rune("%"), keys.Action{Kind: keys.ActionHandler, Handler: c.selectorPercent})
	e.AddSelector(mode, []rune("f"), keys.Action{Kind: keys.ActionHandler, Handler: c.selectorFind(true), FollowedBy: keys.FollowMultiKey})
	e.AddSelector(mode, []rune("F"), keys.Action{Kind: keys.ActionHandler, Handler: c.selectorFind(false), FollowedBy: keys.FollowMultiKey})
	e.AddSelector(mode, []rune("'"), keys.Action{Kind: keys.ActionHandler, Handler: c.selectorMark, FollowedBy: keys.FollowMultiKey})
}

// registerVisualOperators binds d/y/gu/gU in Visual mode to act immediately
// on the tracked range, rather than awaiting a following motion: the range
// was already resolved by the v/V tracking in visual.go. Each then exits
// Visual mode, except D, which must wait for its own confirmation prompt to
// resolve before the range can be released.
func (c *Controller) registerVisualOperators(e *keys.Engine, mode keys.Mode) {
	e.AddBuiltin(mode, []rune("d"), handler(c.exitAfterVisualOp(c.opDelete(true))))
	e.AddBuiltin(mode, []rune("D"), handler(c.opDelete(false)))
	e.AddBuiltin(mode, []rune("y"), handler(c.exitAfterVisualOp(c.opYank)))
	e.AddBuiltin(mode, []rune("gu"), handler(c.exitAfterVisualOp(c.opCase(false))))
	e.AddBuiltin(mode, []rune("gU"), handler(c.exitAfterVisualOp(c.opCase(true))))
}

func (c *Controller) registerFilters(e *keys.Engine, mode keys.Mode) {
	e.AddBuiltin(mode, []rune("zm"), handler(c.filterHide))
	e.AddBuiltin(mode, []rune("zo"), handler(c.filterShow))
	e.AddBuiltin(mode, []rune("za"), handler(c.filterToggle))
	e.AddBuiltin(mode, []rune("zf"), handler(c.filterSelected))
	e.AddBuiltin(mode, []rune("zO"), handler(c.filterClearName))
	e.AddBuiltin(mode, []rune("zM"), handler(c.filterSaveAndHide))
	e.AddBuiltin(mode, []rune("zR"), handler(c.filterResetAll))
}

func (c *Controller) registerWindows(e *keys.Engine, mode keys.Mode) {
	for _, d := range []rune{'h', 'j', 'k', 'l', 'w'} {
		e.AddBuiltin(mode, []rune{0x17, d}, handler(c.winSwitch(d))) // Ctrl-W <dir>
	}
	e.AddBuiltin(mode, []rune{0x17, 's'}, handler(c.winSplit('s')))
	e.AddBuiltin(mode, []rune{0x17, 'v'}, handler(c.winSplit('v')))
	e.AddBuiltin(mode, []rune{0x17, 'o'}, handler(c.winMaximize))
	for _, d := range []rune{'+', '-', '<', '>'} {
		e.AddBuiltin(mode, []rune{0x17, d}, handler(c.winResize(d)))
	}
}

func (c *Controller) registerMarks(e *keys.Engine, mode keys.Mode) {
	e.AddBuiltin(mode, []rune("m"), multiKey(c.markSet))
	e.AddBuiltin(mode, []rune("'"), multiKey(c.markGoto))
	e.AddBuiltin(mode, []rune("`"), multiKey(c.markGoto))
}

func (c *Controller) registerPut(e *keys.Engine, mode keys.Mode) {
	e.AddBuiltin(mode, []rune("p"), handler(c.put))
	e.AddBuiltin(mode, []rune("P"), handler(c.put))
}

func (c *Controller) registerVisualOnly(e *keys.Engine, mode keys.Mode) {
	e.AddBuiltin(mode, []rune("v"), handler(c.LeaveVisual))
	e.AddBuiltin(mode, []rune("V"), handler(c.LeaveVisual))
	e.AddBuiltin(mode, []rune("O"), handler(c.SwapAnchor))
	e.AddBuiltin(mode, []rune{0x1b}, handler(c.LeaveVisual)) // Esc
}
