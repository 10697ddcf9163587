package cmdline

import "github.com/vifm-go/vifm/internal/keys"

// Active resolves whichever Session is open right now; internal/app swaps
// this out per CmdLineKind as the Mode Manager enters/leaves CommandLine.
type Active func() *Session

// Register installs the line-editing key table (spec.md §4.5) onto
// engine for mode. onSubmit/onCancel are called with the finishing
// Session so the caller can dispatch its text and tear the prompt down.
func Register(engine *keys.Engine, mode keys.Mode, active Active, onSubmit, onCancel func(*Session)) {
	bind := func(key []rune, fn func(*Session)) {
		engine.AddBuiltin(mode, key, keys.Action{Kind: keys.ActionHandler, Handler: func(_ keys.KeyInfo, _ *keys.KeysInfo) error {
			if s := active(); s != nil {
				fn(s)
			}
			return nil
		}})
	}

	bind([]rune{0x08}, (*Session).Backspace)  // Ctrl-H
	bind([]rune{0x7f}, (*Session).Backspace)  // Backspace
	bind([]rune{0x04}, (*Session).DeleteUnderCursor) // Ctrl-D
	bind([]rune{0x15}, (*Session).DeleteToStart)     // Ctrl-U
	bind([]rune{0x0b}, (*Session).DeleteToEnd)       // Ctrl-K
	bind([]rune{0x17}, (*Session).DeleteWordLeft)    // Ctrl-W

	bind([]rune{0x01}, func(s *Session) { s.Buffer.MoveToBeginning() }) // Ctrl-A
	bind([]rune{0x05}, func(s *Session) { s.Buffer.MoveToEnd() })      // Ctrl-E
	bind([]rune{0x02}, func(s *Session) { s.Buffer.MoveLeft() })       // Ctrl-B
	bind([]rune{0x06}, func(s *Session) { s.Buffer.MoveRight() })      // Ctrl-F

	bind([]rune{0x1b, 'b'}, func(s *Session) { s.Buffer.MoveWordLeft() })
	bind([]rune{0x1b, 'f'}, func(s *Session) { s.Buffer.MoveWordRight() })
	bind([]rune{0x1b, 'd'}, (*Session).DeleteWordRight)

	bind([]rune{0x09}, (*Session).CompleteNext) // Tab
	bind([]rune{0x1f}, (*Session).CompletePrev) // Ctrl-_ (Shift-Tab surrogate)

	bind([]rune{0x10}, (*Session).HistoryPrev) // Ctrl-P
	bind([]rune{0x0e}, (*Session).HistoryNext) // Ctrl-N

	cancel := func(_ keys.KeyInfo, _ *keys.KeysInfo) error {
		if s := active(); s != nil && onCancel != nil {
			onCancel(s)
		}
		return nil
	}
	engine.AddBuiltin(mode, []rune{0x1b}, keys.Action{Kind: keys.ActionHandler, Handler: cancel}) // Esc
	engine.AddBuiltin(mode, []rune{0x03}, keys.Action{Kind: keys.ActionHandler, Handler: cancel}) // Ctrl-C
	engine.AddBuiltin(mode, []rune{0x07}, keys.Action{Kind: keys.ActionHandler, Handler: cancel}) // Ctrl-G

	submit := func(_ keys.KeyInfo, _ *keys.KeysInfo) error {
		if s := active(); s != nil && onSubmit != nil {
			onSubmit(s)
		}
		return nil
	}
	engine.AddBuiltin(mode, []rune{'\r'}, keys.Action{Kind: keys.ActionHandler, Handler: submit})
	engine.AddBuiltin(mode, []rune{'\n'}, keys.Action{Kind: keys.ActionHandler, Handler: submit})

	engine.SetDefaultHandler(mode, func(r rune) int {
		if s := active(); s != nil {
			s.Insert(r)
		}
		return 1
	})
}
