package keys

import "time"

type trieKind int

const (
	trieUser trieKind = iota
	trieBuiltin
)

// modeTries holds the three parallel tries and capability flags for one mode.
type modeTries struct {
	builtin  *KeyNode
	user     *KeyNode
	selector *KeyNode
	flags    ModeFlags
	def      DefaultHandler
	cmds     map[string]HandlerFunc
}

// pending is the resumable scratchpad for one mode's in-flight key sequence.
// Execute may be called one rune (or a whole buffer) at a time; pending lets
// both styles share the same state machine.
type pending struct {
	// prefix-parse phase
	walking       bool
	collectingReg bool
	regParsed     bool
	countStarted  bool
	info          KeyInfo

	// trie-walk phase
	kind      trieKind
	node      *KeyNode
	collected []rune

	// awaiting exactly one multi-char argument (f/F, m/', etc.)
	awaitingMulti bool
	pendingAction *Action

	// awaiting a selector to complete a pending operator
	awaitingSelector bool
	operatorInfo     KeyInfo
	operatorHandler  HandlerFunc
	selNode          *KeyNode
	selCount         int
	selCountStarted  bool

	// awaiting one multi-char arg to complete a selector action (f/F, '
	// used as a selector, etc.) — mirrors awaitingMulti/pendingAction above,
	// but for the selector trie.
	selAwaitingMulti bool
	selPendingAction *Action
	selInfo          KeyInfo
}

// Engine matches input against the builtin/user/selector tries of
// whichever mode the caller currently has active.
type Engine struct {
	modes      map[Mode]*modeTries
	pend       map[Mode]*pending
	keyCounter uint64
	TimeoutLen time.Duration
}

// NewEngine creates an Engine with vifm's default timeoutlen.
func NewEngine() *Engine {
	return &Engine{
		modes:      make(map[Mode]*modeTries),
		pend:       make(map[Mode]*pending),
		TimeoutLen: DefaultTimeoutLen,
	}
}

// RegisterMode declares a mode's capability flags. Safe to call again to
// update flags; existing tries are preserved.
func (e *Engine) RegisterMode(mode Mode, flags ModeFlags) {
	mt := e.modes[mode]
	if mt == nil {
		mt = &modeTries{builtin: newRoot(), user: newRoot(), selector: newRoot(), cmds: make(map[string]HandlerFunc)}
		e.modes[mode] = mt
	}
	mt.flags = flags
}

func (e *Engine) mustMode(mode Mode) *modeTries {
	mt := e.modes[mode]
	if mt == nil {
		mt = &modeTries{builtin: newRoot(), user: newRoot(), selector: newRoot(), cmds: make(map[string]HandlerFunc)}
		e.modes[mode] = mt
	}
	return mt
}

// AddBuiltin inserts a terminal handler into mode's builtin trie.
func (e *Engine) AddBuiltin(mode Mode, key []rune, action Action) {
	mt := e.mustMode(mode)
	node := addPath(mt.builtin, key)
	act := action
	node.action = &act
}

// AddSelector inserts a terminal handler into mode's selector trie, usable
// as the operand of an operator registered with FollowSelector.
func (e *Engine) AddSelector(mode Mode, key []rune, action Action) {
	mt := e.mustMode(mode)
	node := addPath(mt.selector, key)
	act := action
	node.action = &act
}

// RegisterCmdHandler binds a builtin handler id (used by ActionCmd nodes) to
// a concrete HandlerFunc for the mode.
func (e *Engine) RegisterCmdHandler(mode Mode, id string, fn HandlerFunc) {
	mt := e.mustMode(mode)
	mt.cmds[id] = fn
}

// AddUserMapping inserts/overwrites a user macro. Re-adding the same
// mapping leaves exactly one terminal (addPath reuses existing nodes).
func (e *Engine) AddUserMapping(mode Mode, key, rhs []rune, noRemap bool) {
	mt := e.mustMode(mode)
	node := addPath(mt.user, key)
	node.action = &Action{Kind: ActionMacro, Macro: append([]rune(nil), rhs...), NoRemap: noRemap}
}

// RemoveUserMapping deletes a user mapping and prunes any now-dead chain.
// It is a no-op reporting false when key does not terminate in a macro.
func (e *Engine) RemoveUserMapping(mode Mode, key []rune) bool {
	mt := e.mustMode(mode)
	node, ok := findPath(mt.user, key)
	if !ok || node.action == nil || node.action.Kind != ActionMacro {
		return false
	}
	node.action = nil
	prune(node)
	return true
}

// HasUserMapping reports whether key terminates in a user macro for mode.
func (e *Engine) HasUserMapping(mode Mode, key []rune) bool {
	mt := e.mustMode(mode)
	node, ok := findPath(mt.user, key)
	return ok && node.action != nil && node.action.Kind == ActionMacro
}

// SetDefaultHandler installs the fallback for unmatched input in mode.
func (e *Engine) SetDefaultHandler(mode Mode, fn DefaultHandler) {
	e.mustMode(mode).def = fn
}

// KeyCounter returns the running count of user-initiated characters
// processed (macro-expansion characters are excluded).
func (e *Engine) KeyCounter() uint64 {
	return e.keyCounter
}

func (e *Engine) ensurePending(mode Mode) *pending {
	p := e.pend[mode]
	if p == nil {
		p = &pending{info: KeyInfo{Count: NoCount, Reg: NoReg}}
		e.pend[mode] = p
	}
	return p
}

func (e *Engine) resetPending(mode Mode) {
	e.pend[mode] = &pending{info: KeyInfo{Count: NoCount, Reg: NoReg}}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Execute feeds a buffer of wide characters through the engine for mode,
// advancing (and possibly fully resolving) internal state. It returns the
// status after the last character and any domain error a handler raised.
func (e *Engine) Execute(mode Mode, input []rune) (Result, error) {
	var last Result = ResultOk
	var lastErr error
	for _, r := range input {
		res, err := e.feed(mode, r, true)
		last, lastErr = res, err
		if res == ResultUnknown || res == ResultDefaultHandler {
			mt := e.mustMode(mode)
			if mt.def != nil {
				mt.def(r)
			}
		}
	}
	return last, lastErr
}

// ExecuteTimedOut resolves an ambiguous WaitPoint after timeoutlen elapses
// with no further input, collapsing to the shorter completed action.
func (e *Engine) ExecuteTimedOut(mode Mode) (Result, error) {
	p := e.pend[mode]
	if p == nil {
		return ResultUnknown, nil
	}
	if p.awaitingSelector || p.awaitingMulti {
		e.resetPending(mode)
		return ResultUnknown, nil
	}
	if !p.walking || p.node == nil || p.node.action == nil || p.node.action.Kind == ActionNone {
		e.resetPending(mode)
		return ResultUnknown, nil
	}
	act := p.node.action
	info := p.info
	e.resetPending(mode)
	return e.invoke(mode, act, info, true, true)
}

func (e *Engine) feed(mode Mode, r rune, counted bool) (Result, error) {
	if counted {
		e.keyCounter++
	}
	p := e.ensurePending(mode)
	mt := e.mustMode(mode)

	if p.awaitingSelector {
		return e.feedSelector(mode, r)
	}
	if p.awaitingMulti {
		info := p.info
		info.Multi = r
		info.HasMulti = true
		act := p.pendingAction
		e.resetPending(mode)
		if r == 0x1b || r == 0x03 { // Esc / Ctrl-C cancels the pending multi-key arg
			return ResultOk, nil
		}
		handler := act.Handler
		if act.Kind == ActionCmd {
			handler = e.mustMode(mode).cmds[act.CmdID]
		}
		if handler == nil {
			return ResultOk, nil
		}
		ks := &KeysInfo{}
		err := handler(info, ks)
		return ResultOk, err
	}

	if !p.walking {
		if p.collectingReg {
			if r == 0x1b || r == 0x03 { // Esc / Ctrl-C cancels silently
				e.resetPending(mode)
				return ResultOk, nil
			}
			p.info.Reg = r
			p.collectingReg = false
			return ResultWait, nil
		}
		if mt.flags.UsesRegs && r == '"' && !p.regParsed {
			p.regParsed = true
			p.collectingReg = true
			return ResultWait, nil
		}
		if mt.flags.UsesCount && isDigit(r) && !(r == '0' && !p.countStarted) {
			if !p.countStarted {
				p.info.Count = 0
			}
			p.countStarted = true
			p.info.Count = p.info.Count*10 + int(r-'0')
			return ResultWait, nil
		}
		p.walking = true
	}

	return e.walk(mode, r, counted)
}

func (e *Engine) rootFor(mt *modeTries, kind trieKind) *KeyNode {
	if kind == trieBuiltin {
		return mt.builtin
	}
	return mt.user
}

func (e *Engine) walk(mode Mode, r rune, counted bool) (Result, error) {
	p := e.pend[mode]
	mt := e.mustMode(mode)
	if p.node == nil {
		p.node = e.rootFor(mt, p.kind)
	}
	p.collected = append(p.collected, r)
	child := p.node.findChild(r)
	if child == nil {
		if p.node.action != nil && p.node.action.Kind != ActionNone {
			act := p.node.action
			info := p.info
			e.resetPending(mode)
			_, err := e.invoke(mode, act, info, counted, false)
			// r was only a lookahead character used to notice the node has
			// no further children; the fired action never consumed it, so
			// it must be re-fed against whatever state invoke left behind
			// (e.g. awaiting a selector's count/motion, or a multi-key arg).
			r2, err2 := e.feed(mode, r, false)
			if err == nil {
				err = err2
			}
			return r2, err
		}
		if p.kind == trieUser {
			if node, ok := findPath(mt.builtin, p.collected); ok {
				p.kind = trieBuiltin
				p.node = node
				return e.settle(mode, counted)
			}
		}
		e.resetPending(mode)
		return ResultUnknown, nil
	}
	p.node = child
	return e.settle(mode, counted)
}

func (e *Engine) settle(mode Mode, counted bool) (Result, error) {
	p := e.pend[mode]
	mt := e.mustMode(mode)
	node := p.node
	hasAction := node.action != nil && node.action.Kind != ActionNone
	hasChildren := len(node.children) > 0

	if hasAction && hasChildren {
		if mt.flags.UsesInput {
			return ResultWaitShort, nil
		}
		return e.fire(mode, counted)
	}
	if hasAction {
		return e.fire(mode, counted)
	}
	if hasChildren {
		if mt.flags.UsesInput {
			return ResultWait, nil
		}
		return ResultWaitShort, nil
	}
	e.resetPending(mode)
	return ResultUnknown, nil
}

func (e *Engine) fire(mode Mode, counted bool) (Result, error) {
	p := e.pend[mode]
	act := p.node.action
	info := p.info
	e.resetPending(mode)
	return e.invoke(mode, act, info, counted, false)
}

func (e *Engine) invoke(mode Mode, act *Action, info KeyInfo, counted, afterWait bool) (Result, error) {
	switch act.Kind {
	case ActionHandler, ActionCmd:
		var handler HandlerFunc
		if act.Kind == ActionCmd {
			handler = e.mustMode(mode).cmds[act.CmdID]
		} else {
			handler = act.Handler
		}
		switch act.FollowedBy {
		case FollowMultiKey:
			p := e.ensurePending(mode)
			p.awaitingMulti = true
			p.pendingAction = act
			p.info = info
			return ResultWait, nil
		case FollowSelector:
			p := e.ensurePending(mode)
			p.awaitingSelector = true
			p.operatorInfo = info
			p.operatorHandler = handler
			return ResultWait, nil
		default:
			if handler == nil {
				return ResultOk, nil
			}
			ks := &KeysInfo{AfterWait: afterWait}
			err := handler(info, ks)
			return ResultOk, err
		}
	case ActionMacro:
		if act.enters > 0 {
			return ResultDefaultHandler, nil
		}
		act.enters++
		defer func() { act.enters-- }()
		expansion := buildExpansion(info, act.Macro)
		e.resetPending(mode)
		p := e.ensurePending(mode)
		if act.NoRemap {
			p.kind = trieBuiltin
		}
		var res Result = ResultOk
		var err error
		for _, mr := range expansion {
			res, err = e.feed(mode, mr, false)
			if err != nil {
				break
			}
		}
		return res, err
	default:
		return ResultOk, nil
	}
}

func (e *Engine) feedSelector(mode Mode, r rune) (Result, error) {
	p := e.pend[mode]
	mt := e.mustMode(mode)

	if p.selAwaitingMulti {
		selInfo := p.selInfo
		selInfo.Multi = r
		selInfo.HasMulti = true
		act := p.selPendingAction
		opInfo := p.operatorInfo
		opHandler := p.operatorHandler
		e.resetPending(mode)
		if r == 0x1b || r == 0x03 { // Esc / Ctrl-C cancels the whole operator+selector
			return ResultOk, nil
		}
		ks := &KeysInfo{Selector: true}
		var err error
		if act.Handler != nil {
			err = act.Handler(selInfo, ks)
		}
		if opHandler != nil && err == nil {
			err = opHandler(opInfo, ks)
		}
		return ResultOk, err
	}

	if p.selNode == nil {
		p.selNode = mt.selector
		p.selCount = NoCount
	}
	if isDigit(r) && !(r == '0' && !p.selCountStarted) {
		if !p.selCountStarted {
			p.selCount = 0
		}
		p.selCountStarted = true
		p.selCount = p.selCount*10 + int(r-'0')
		return ResultWait, nil
	}
	child := p.selNode.findChild(r)
	if child == nil {
		e.resetPending(mode)
		return ResultUnknown, nil
	}
	p.selNode = child
	if p.selNode.action != nil && p.selNode.action.Kind != ActionNone {
		act := p.selNode.action
		if act.FollowedBy == FollowMultiKey {
			p.selAwaitingMulti = true
			p.selPendingAction = act
			p.selInfo = KeyInfo{Count: p.selCount, Reg: NoReg}
			return ResultWait, nil
		}
		selInfo := KeyInfo{Count: p.selCount, Reg: NoReg}
		ks := &KeysInfo{Selector: true}
		var err error
		if act.Handler != nil {
			err = act.Handler(selInfo, ks)
		}
		opInfo := p.operatorInfo
		opHandler := p.operatorHandler
		e.resetPending(mode)
		if opHandler != nil && err == nil {
			err = opHandler(opInfo, ks)
		}
		return ResultOk, err
	}
	if len(p.selNode.children) > 0 {
		return ResultWait, nil
	}
	e.resetPending(mode)
	return ResultUnknown, nil
}

// buildExpansion builds the `"N` `N<count>` prefix vifm feeds ahead of a
// user macro's own text, per spec.md §4.1 step 3.
func buildExpansion(info KeyInfo, macro []rune) []rune {
	var out []rune
	if info.Reg != NoReg {
		out = append(out, '"', info.Reg)
	}
	if info.Count != NoCount && info.Count > 0 {
		out = append(out, []rune(itoaRunes(info.Count))...)
	}
	out = append(out, macro...)
	return out
}

func itoaRunes(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
