package app

import (
	"fmt"

	"github.com/vifm-go/vifm/internal/cmdline"
	"github.com/vifm-go/vifm/internal/keys"
	"github.com/vifm-go/vifm/internal/modes"
	"github.com/vifm-go/vifm/internal/vifmerr"
)

func errNoMatch(pattern string) error {
	return fmt.Errorf("no match for %q", pattern)
}

// registerKeyTables wires internal/normal's motions/operators onto
// Normal/Visual, internal/cmdline's line editor onto every command-line
// sub-kind, and the three keys (`:`, `/`, `?`) that open a command-line
// prompt from Normal mode (spec.md §4.2/§4.4's entry points).
func (c *Context) registerKeyTables() {
	c.Engine.RegisterMode(KeyModeNormal, keys.ModeFlags{UsesCount: true, UsesRegs: true, UsesInput: true})
	c.Engine.RegisterMode(KeyModeVisual, keys.ModeFlags{UsesCount: true, UsesRegs: true, UsesInput: true})
	c.Engine.RegisterMode(KeyModeMenu, keys.ModeFlags{UsesCount: true})

	c.Normal.VisualExit = func() { c.Modes.Leave() }
	c.Normal.OnAsyncError = func(err error) { c.setStatus(err) }
	c.Normal.AskConfirm = func(message string, onResolve func(yes bool)) {
		c.OpenPrompt(message+" [y/n]", func(answer string) {
			onResolve(len(answer) > 0 && (answer[0] == 'y' || answer[0] == 'Y'))
		})
	}

	c.Normal.Register(c.Engine, KeyModeNormal, KeyModeVisual)

	c.Engine.AddBuiltin(KeyModeNormal, []rune("v"), keys.Action{
		Kind: keys.ActionHandler,
		Handler: func(keys.KeyInfo, *keys.KeysInfo) error {
			c.Modes.Enter(modes.Visual, 0)
			return c.Normal.EnterVisual(keys.KeyInfo{}, nil)
		},
	})
	c.Engine.AddBuiltin(KeyModeNormal, []rune("V"), keys.Action{
		Kind: keys.ActionHandler,
		Handler: func(keys.KeyInfo, *keys.KeysInfo) error {
			c.Modes.Enter(modes.Visual, 0)
			return c.Normal.EnterVisual(keys.KeyInfo{}, nil)
		},
	})

	repeatSearch := func(reverse bool) keys.HandlerFunc {
		return func(keys.KeyInfo, *keys.KeysInfo) error {
			if c.lastSearchPattern == "" {
				return nil
			}
			forward := c.lastSearchForward
			if reverse {
				forward = !forward
			}
			if !applySearch(c.Active(), c.lastSearchPattern, forward) {
				c.setStatus(vifmerr.New("search", vifmerr.OperationRefused, errNoMatch(c.lastSearchPattern)))
			}
			c.Normal.SyncVisualRange()
			return nil
		}
	}
	for _, mode := range []keys.Mode{KeyModeNormal, KeyModeVisual} {
		c.Engine.AddBuiltin(mode, []rune("n"), keys.Action{Kind: keys.ActionHandler, Handler: repeatSearch(false)})
		c.Engine.AddBuiltin(mode, []rune("N"), keys.Action{Kind: keys.ActionHandler, Handler: repeatSearch(true)})
	}

	for _, kind := range []modes.CmdLineKind{
		modes.Ex, modes.MenuEx, modes.SearchFwd, modes.SearchBwd,
		modes.MenuSearchFwd, modes.MenuSearchBwd,
		modes.VisualSearchFwd, modes.VisualSearchBwd, modes.Prompt,
	} {
		mode := keyModeFor(modes.CommandLine, kind)
		c.Engine.RegisterMode(mode, keys.ModeFlags{UsesInput: true})
		cmdline.Register(c.Engine, mode, c.activeSessionFor(kind), c.onSubmit(kind), c.onCancel(kind))
	}

	entry := func(r rune, kind modes.CmdLineKind) {
		c.Engine.AddBuiltin(KeyModeNormal, []rune{r}, keys.Action{
			Kind: keys.ActionHandler,
			Handler: func(keys.KeyInfo, *keys.KeysInfo) error {
				c.enterCmdline(kind)
				return nil
			},
		})
	}
	entry(':', modes.Ex)
	entry('/', modes.SearchFwd)
	entry('?', modes.SearchBwd)

	c.Engine.AddBuiltin(KeyModeVisual, []rune{':'}, keys.Action{
		Kind: keys.ActionHandler,
		Handler: func(keys.KeyInfo, *keys.KeysInfo) error {
			c.enterCmdline(modes.Ex)
			return nil
		},
	})
}

func (c *Context) historyFor(kind modes.CmdLineKind) *cmdline.History {
	switch kind {
	case modes.Ex, modes.MenuEx:
		return c.exHistory
	case modes.SearchFwd, modes.SearchBwd, modes.MenuSearchFwd, modes.MenuSearchBwd,
		modes.VisualSearchFwd, modes.VisualSearchBwd:
		return c.searchHistory
	default:
		return c.promptHistory
	}
}

func (c *Context) sessionFor(kind modes.CmdLineKind) *cmdline.Session {
	s, ok := c.cmdSessions[kind]
	if !ok {
		s = cmdline.NewSession(kind, c.historyFor(kind))
		c.cmdSessions[kind] = s
	}
	return s
}

// activeSessionFor returns the cmdline.Active closure for kind: the
// session only reports itself "active" (non-nil) while the Mode Manager's
// current frame is actually that kind, so stray input delivered to the
// wrong prompt's key table (impossible in practice, since the Key Engine
// only dispatches to the mode the Loop asked for) is harmless either way.
func (c *Context) activeSessionFor(kind modes.CmdLineKind) cmdline.Active {
	return func() *cmdline.Session {
		if c.Modes.Current() != modes.CommandLine || c.Modes.CurrentCmdKind() != kind {
			return nil
		}
		return c.sessionFor(kind)
	}
}

func (c *Context) enterCmdline(kind modes.CmdLineKind) {
	c.Modes.Enter(modes.CommandLine, kind)
	s := c.sessionFor(kind)
	s.Open()
	if isSearchKind(kind) {
		c.savedPos[kind] = savedPosition{dir: c.Active().Dir, pos: c.Active().ListPos}
		s.OnChange = func(text string) {
			applySearch(c.Active(), text, isForwardSearch(kind))
		}
	}
}

func isSearchKind(kind modes.CmdLineKind) bool {
	switch kind {
	case modes.SearchFwd, modes.SearchBwd, modes.MenuSearchFwd, modes.MenuSearchBwd,
		modes.VisualSearchFwd, modes.VisualSearchBwd:
		return true
	default:
		return false
	}
}

func isForwardSearch(kind modes.CmdLineKind) bool {
	switch kind {
	case modes.SearchFwd, modes.MenuSearchFwd, modes.VisualSearchFwd:
		return true
	default:
		return false
	}
}

func (c *Context) onSubmit(kind modes.CmdLineKind) func(*cmdline.Session) {
	return func(s *cmdline.Session) {
		text := s.Buffer.Text()
		if h := c.historyFor(kind); h != nil && text != "" {
			h.Add(text)
		}
		c.Modes.Leave()
		switch {
		case kind == modes.Ex || kind == modes.MenuEx:
			if err := c.Dispatcher.Execute(text); err != nil {
				c.setStatus(err)
			}
		case isSearchKind(kind):
			if !applySearch(c.Active(), text, isForwardSearch(kind)) {
				c.setStatus(vifmerr.New("search", vifmerr.OperationRefused, errNoMatch(text)))
			}
			c.lastSearchPattern = text
			c.lastSearchForward = isForwardSearch(kind)
		case kind == modes.Prompt:
			cb := c.promptCallback
			c.promptCallback = nil
			if cb != nil {
				cb(text)
			}
		}
	}
}

func (c *Context) onCancel(kind modes.CmdLineKind) func(*cmdline.Session) {
	return func(s *cmdline.Session) {
		c.Modes.Leave()
		if isSearchKind(kind) {
			if !c.RC.RC().HlSearch {
				clearSearchHighlight(c.Active())
			}
			if pos, ok := c.savedPos[kind]; ok && pos.dir == c.Active().Dir {
				c.Active().MoveToListPos(pos.pos)
			}
		}
		if kind == modes.Prompt {
			cb := c.promptCallback
			c.promptCallback = nil
			if cb != nil {
				cb("")
			}
		}
	}
}

// OpenPrompt opens a one-line free-text prompt labelled label and calls cb
// with whatever the user typed once they press Enter, or "" if they
// cancelled with Esc. normal.Controller.AskConfirm drives D's confirmation
// through this.
func (c *Context) OpenPrompt(label string, cb func(string)) {
	c.promptLabel = label
	c.promptCallback = cb
	c.enterCmdline(modes.Prompt)
}

func (c *Context) setStatus(err error) {
	if err == nil {
		return
	}
	persist := vifmerr.StatusPreserve
	if ve, ok := err.(*vifmerr.Error); ok && ve.Kind == vifmerr.ConfirmationRequired {
		persist = vifmerr.StatusBlocking
	}
	c.status = err.Error()
	c.Modes.SetStatus(c.status, persist)
	if c.Log.Enabled() {
		c.Log.Error("command failed", err)
	}
}
