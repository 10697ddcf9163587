package cmdline

import (
	"testing"

	"github.com/vifm-go/vifm/internal/keys"
	"github.com/vifm-go/vifm/internal/modes"
)

const modeCmdline keys.Mode = 100

func TestBufferEditing(t *testing.T) {
	var b Buffer
	for _, r := range "hello" {
		b.InsertRune(r)
	}
	if b.Text() != "hello" {
		t.Fatalf("want hello got %q", b.Text())
	}
	b.MoveToBeginning()
	b.MoveWordRight()
	if b.Cursor() != 5 {
		t.Fatalf("want cursor at end of word, got %d", b.Cursor())
	}
	b.Backspace()
	if b.Text() != "hell" {
		t.Fatalf("want hell got %q", b.Text())
	}
}

func TestHistoryPrefixWalkFixedAtFirstNav(t *testing.T) {
	h := NewHistory(10)
	h.Add("set number")
	h.Add("set wrap")
	h.Add("delete")

	text, ok := h.Prev("set")
	if !ok || text != "set wrap" {
		t.Fatalf("want 'set wrap' got %q ok=%v", text, ok)
	}
	// Even though the buffer now reads "set wrap", the prefix stays "set"
	// from the first navigation call.
	text, ok = h.Prev("set wrap")
	if !ok || text != "set number" {
		t.Fatalf("want 'set number' got %q ok=%v", text, ok)
	}
}

func TestHistoryNextReturnsToOriginal(t *testing.T) {
	h := NewHistory(10)
	h.Add("a")
	h.Add("b")
	h.Prev("")
	text, ok := h.Next()
	if !ok || text != "" {
		t.Fatalf("want empty original text got %q ok=%v", text, ok)
	}
}

func TestWildmenuCycle(t *testing.T) {
	w := NewWildmenu()
	complete := func(string) []string { return []string{"alpha", "beta", "gamma"} }
	first, ok := w.Cycle("", false, complete)
	if !ok || first != "alpha" {
		t.Fatalf("want alpha got %q", first)
	}
	second, _ := w.Cycle("", false, complete)
	if second != "beta" {
		t.Fatalf("want beta got %q", second)
	}
	back, _ := w.Cycle("", true, complete)
	if back != "alpha" {
		t.Fatalf("want alpha after shift-tab got %q", back)
	}
}

func TestSessionSubmitRecordsHistory(t *testing.T) {
	hist := NewHistory(10)
	s := NewSession(modes.Ex, hist)
	s.Open()
	for _, r := range "write" {
		s.Insert(r)
	}
	if got := s.Submit(); got != "write" {
		t.Fatalf("want write got %q", got)
	}
	if hist.Len() != 1 {
		t.Fatalf("want 1 history entry got %d", hist.Len())
	}
}

func TestSessionIncrementalSearchNotifiesOnlyForSearchKinds(t *testing.T) {
	var changes []string
	exSession := NewSession(modes.Ex, nil)
	exSession.OnChange = func(text string) { changes = append(changes, text) }
	exSession.Insert('x')
	if len(changes) != 0 {
		t.Fatalf("Ex session must not fire OnChange, got %v", changes)
	}

	searchSession := NewSession(modes.SearchFwd, nil)
	searchSession.OnChange = func(text string) { changes = append(changes, text) }
	searchSession.Insert('x')
	if len(changes) != 1 || changes[0] != "x" {
		t.Fatalf("want one OnChange call with 'x', got %v", changes)
	}
}

func TestRegisterEditingKeys(t *testing.T) {
	e := keys.NewEngine()
	e.RegisterMode(modeCmdline, keys.ModeFlags{UsesInput: true})
	s := NewSession(modes.Ex, NewHistory(5))
	s.Open()
	var submitted string
	var canceled bool
	Register(e, modeCmdline, func() *Session { return s },
		func(sess *Session) { submitted = sess.Submit() },
		func(_ *Session) { canceled = true })

	if _, err := e.Execute(modeCmdline, []rune("write")); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Execute(modeCmdline, []rune{0x08}); err != nil { // Ctrl-H
		t.Fatal(err)
	}
	if s.Buffer.Text() != "writ" {
		t.Fatalf("want 'writ' after backspace got %q", s.Buffer.Text())
	}
	if _, err := e.Execute(modeCmdline, []rune{'\r'}); err != nil {
		t.Fatal(err)
	}
	if submitted != "writ" {
		t.Fatalf("want submitted 'writ' got %q", submitted)
	}
	if canceled {
		t.Fatal("did not expect cancel")
	}
}
