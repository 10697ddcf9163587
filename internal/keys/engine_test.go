package keys

import "testing"

const (
	modeNormal Mode = iota
	modeInsert
)

func flagsNormal() ModeFlags {
	return ModeFlags{UsesCount: true, UsesRegs: true, UsesInput: true}
}

func TestIdempotentUserMapping(t *testing.T) {
	e := NewEngine()
	e.RegisterMode(modeNormal, flagsNormal())
	hits := 0
	h := func(KeyInfo, *KeysInfo) error { hits++; return nil }
	e.AddUserMapping(modeNormal, []rune("gh"), []rune("gg"), false)
	e.AddUserMapping(modeNormal, []rune("gh"), []rune("gg"), false)
	e.AddBuiltin(modeNormal, []rune("gg"), Action{Kind: ActionHandler, Handler: h})

	if !e.HasUserMapping(modeNormal, []rune("gh")) {
		t.Fatal("expected mapping to exist")
	}
	res, err := e.Execute(modeNormal, []rune("gh"))
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultOk {
		t.Fatalf("want Ok got %v", res)
	}
	if hits != 1 {
		t.Fatalf("want 1 hit got %d", hits)
	}
}

func TestNoRemapShadowsUserTrie(t *testing.T) {
	e := NewEngine()
	e.RegisterMode(modeNormal, flagsNormal())
	var builtinHits, userGHits int
	e.AddBuiltin(modeNormal, []rune("gg"), Action{Kind: ActionHandler, Handler: func(KeyInfo, *KeysInfo) error {
		builtinHits++
		return nil
	}})
	// user remaps g on its own, but gh -> gg is noremap: must dispatch to builtin only.
	e.AddUserMapping(modeNormal, []rune("g"), []rune("x"), false)
	_ = userGHits
	e.AddUserMapping(modeNormal, []rune("gh"), []rune("gg"), true)

	res, err := e.Execute(modeNormal, []rune("gh"))
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultOk {
		t.Fatalf("want Ok got %v", res)
	}
	if builtinHits != 1 {
		t.Fatalf("want builtin gg invoked once, got %d", builtinHits)
	}
}

func TestAmbiguityWaitShortThenTimeout(t *testing.T) {
	e := NewEngine()
	e.RegisterMode(modeNormal, flagsNormal())
	var abHits, abcHits int
	e.AddBuiltin(modeNormal, []rune("ab"), Action{Kind: ActionHandler, Handler: func(KeyInfo, *KeysInfo) error {
		abHits++
		return nil
	}})
	e.AddBuiltin(modeNormal, []rune("abc"), Action{Kind: ActionHandler, Handler: func(KeyInfo, *KeysInfo) error {
		abcHits++
		return nil
	}})

	res, err := e.Execute(modeNormal, []rune("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultWaitShort {
		t.Fatalf("want WaitShort got %v", res)
	}
	res, err = e.ExecuteTimedOut(modeNormal)
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultOk {
		t.Fatalf("want Ok got %v", res)
	}
	if abHits != 1 || abcHits != 0 {
		t.Fatalf("want ab fired once, abc never; got ab=%d abc=%d", abHits, abcHits)
	}
}

func TestAmbiguityContinuesToLongerMatch(t *testing.T) {
	e := NewEngine()
	e.RegisterMode(modeNormal, flagsNormal())
	var abcHits int
	e.AddBuiltin(modeNormal, []rune("ab"), Action{Kind: ActionHandler, Handler: func(KeyInfo, *KeysInfo) error { return nil }})
	e.AddBuiltin(modeNormal, []rune("abc"), Action{Kind: ActionHandler, Handler: func(KeyInfo, *KeysInfo) error {
		abcHits++
		return nil
	}})

	res, err := e.Execute(modeNormal, []rune("abc"))
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultOk {
		t.Fatalf("want Ok got %v", res)
	}
	if abcHits != 1 {
		t.Fatalf("want abc fired once, got %d", abcHits)
	}
}

func TestRemovePrunesDeadChain(t *testing.T) {
	e := NewEngine()
	e.RegisterMode(modeNormal, flagsNormal())
	e.AddUserMapping(modeNormal, []rune("xyz"), []rune("gg"), false)
	if !e.RemoveUserMapping(modeNormal, []rune("xyz")) {
		t.Fatal("expected removal to succeed")
	}
	mt := e.mustMode(modeNormal)
	if _, ok := findPath(mt.user, []rune("xy")); ok {
		t.Fatal("expected xy node to be pruned")
	}
	if _, ok := findPath(mt.user, []rune("x")); ok {
		t.Fatal("expected x node to be pruned")
	}
}

func TestRemoveNonMacroPathFails(t *testing.T) {
	e := NewEngine()
	e.RegisterMode(modeNormal, flagsNormal())
	e.AddBuiltin(modeNormal, []rune("dd"), Action{Kind: ActionHandler, Handler: func(KeyInfo, *KeysInfo) error { return nil }})
	if e.RemoveUserMapping(modeNormal, []rune("dd")) {
		t.Fatal("expected failure removing a non-user, non-macro path")
	}
}

func TestCountAndRegisterParsing(t *testing.T) {
	e := NewEngine()
	e.RegisterMode(modeNormal, flagsNormal())
	var got KeyInfo
	e.AddBuiltin(modeNormal, []rune("dd"), Action{Kind: ActionHandler, Handler: func(info KeyInfo, _ *KeysInfo) error {
		got = info
		return nil
	}})
	res, err := e.Execute(modeNormal, []rune(`"a3dd`))
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultOk {
		t.Fatalf("want Ok got %v", res)
	}
	if got.Reg != 'a' || got.Count != 3 {
		t.Fatalf("want reg=a count=3, got reg=%c count=%d", got.Reg, got.Count)
	}
}

func TestLeadingZeroIsMotionNotCount(t *testing.T) {
	e := NewEngine()
	e.RegisterMode(modeNormal, flagsNormal())
	fired := false
	e.AddBuiltin(modeNormal, []rune("0"), Action{Kind: ActionHandler, Handler: func(info KeyInfo, _ *KeysInfo) error {
		fired = true
		if info.Count != NoCount {
			t.Fatalf("want no count on bare 0, got %d", info.Count)
		}
		return nil
	}})
	if _, err := e.Execute(modeNormal, []rune("0")); err != nil {
		t.Fatal(err)
	}
	if !fired {
		t.Fatal("expected 0 motion to fire")
	}
}

func TestOperatorAwaitingSelector(t *testing.T) {
	e := NewEngine()
	e.RegisterMode(modeNormal, flagsNormal())
	var gotIndices []int
	e.AddSelector(modeNormal, []rune("d"), Action{Kind: ActionHandler, Handler: func(info KeyInfo, ks *KeysInfo) error {
		ks.Indices = []int{0, 1, 2}
		return nil
	}})
	e.AddBuiltin(modeNormal, []rune("d"), Action{Kind: ActionHandler, FollowedBy: FollowSelector, Handler: func(_ KeyInfo, ks *KeysInfo) error {
		gotIndices = ks.Indices
		return nil
	}})

	res, err := e.Execute(modeNormal, []rune("dd"))
	if err != nil {
		t.Fatal(err)
	}
	if res != ResultOk {
		t.Fatalf("want Ok got %v", res)
	}
	if len(gotIndices) != 3 {
		t.Fatalf("want 3 indices got %v", gotIndices)
	}
}

func TestUnknownFallsBackToDefaultHandler(t *testing.T) {
	e := NewEngine()
	e.RegisterMode(modeInsert, ModeFlags{UsesInput: true})
	var inserted []rune
	e.SetDefaultHandler(modeInsert, func(r rune) int {
		inserted = append(inserted, r)
		return 1
	})
	if _, err := e.Execute(modeInsert, []rune("hi")); err != nil {
		t.Fatal(err)
	}
	if string(inserted) != "hi" {
		t.Fatalf("want hi got %q", string(inserted))
	}
}

func TestKeyCounterExcludesMacroExpansion(t *testing.T) {
	e := NewEngine()
	e.RegisterMode(modeNormal, flagsNormal())
	e.AddBuiltin(modeNormal, []rune("gg"), Action{Kind: ActionHandler, Handler: func(KeyInfo, *KeysInfo) error { return nil }})
	e.AddUserMapping(modeNormal, []rune("gh"), []rune("gg"), false)
	if _, err := e.Execute(modeNormal, []rune("gh")); err != nil {
		t.Fatal(err)
	}
	if e.KeyCounter() != 2 {
		t.Fatalf("want counter 2 (g,h) got %d", e.KeyCounter())
	}
}
