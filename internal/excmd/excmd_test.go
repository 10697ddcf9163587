package excmd

import "testing"

type fakeResolver struct {
	cur, last int
	marks     map[rune]int
}

func (f fakeResolver) CurrentLine() int { return f.cur }
func (f fakeResolver) LastLine() int    { return f.last }
func (f fakeResolver) MarkLine(r rune) (int, bool) {
	n, ok := f.marks[r]
	return n, ok
}

type fakeCtx struct {
	cur, other, curDir, otherDir string
	sel, otherSel                []string
	args                         string
}

func (f fakeCtx) CurrentFile() string          { return f.cur }
func (f fakeCtx) OtherFile() string            { return f.other }
func (f fakeCtx) CurrentDir() string           { return f.curDir }
func (f fakeCtx) OtherDir() string             { return f.otherDir }
func (f fakeCtx) SelectedFiles() []string      { return f.sel }
func (f fakeCtx) OtherSelectedFiles() []string { return f.otherSel }
func (f fakeCtx) UserArgs() string             { return f.args }

func TestParseRangeOmitted(t *testing.T) {
	r := fakeResolver{cur: 3, last: 9}
	begin, end, hasRange, rest, err := ParseRange("write foo", r)
	if err != nil {
		t.Fatal(err)
	}
	if hasRange || begin != 3 || end != 3 || rest != "write foo" {
		t.Fatalf("got begin=%d end=%d hasRange=%v rest=%q", begin, end, hasRange, rest)
	}
}

func TestParseRangePercent(t *testing.T) {
	r := fakeResolver{cur: 3, last: 9}
	begin, end, hasRange, rest, err := ParseRange("%s/a/b/", r)
	if err != nil {
		t.Fatal(err)
	}
	if !hasRange || begin != 1 || end != 9 || rest != "s/a/b/" {
		t.Fatalf("got begin=%d end=%d hasRange=%v rest=%q", begin, end, hasRange, rest)
	}
}

func TestParseRangeOffsets(t *testing.T) {
	r := fakeResolver{cur: 5, last: 10}
	begin, end, hasRange, rest, err := ParseRange("2+3,$-1", r)
	if err != nil {
		t.Fatal(err)
	}
	if !hasRange || begin != 5 || end != 9 || rest != "" {
		t.Fatalf("got begin=%d end=%d hasRange=%v rest=%q", begin, end, hasRange, rest)
	}
}

func TestParseRangeMark(t *testing.T) {
	r := fakeResolver{cur: 1, last: 10, marks: map[rune]int{'a': 4}}
	begin, end, hasRange, _, err := ParseRange("'a", r)
	if err != nil {
		t.Fatal(err)
	}
	if !hasRange || begin != 4 || end != 4 {
		t.Fatalf("got begin=%d end=%d hasRange=%v", begin, end, hasRange)
	}
}

func TestParseRangeUnknownMark(t *testing.T) {
	r := fakeResolver{cur: 1, last: 10, marks: map[rune]int{}}
	if _, _, _, _, err := ParseRange("'z", r); err == nil {
		t.Fatal("expected an error for an unknown mark")
	}
}

func TestTokenizeQuoted(t *testing.T) {
	argv := tokenize(`foo "bar baz" 'q u'`, true)
	want := []string{"foo", "bar baz", "q u"}
	if len(argv) != len(want) {
		t.Fatalf("got %v", argv)
	}
	for i := range want {
		if argv[i] != want[i] {
			t.Fatalf("got %v want %v", argv, want)
		}
	}
}

func TestTokenizeNoQuote(t *testing.T) {
	argv := tokenize(`foo "bar baz"`, false)
	want := []string{"foo", `"bar`, `baz"`}
	if len(argv) != len(want) {
		t.Fatalf("got %v", argv)
	}
	for i := range want {
		if argv[i] != want[i] {
			t.Fatalf("got %v want %v", argv, want)
		}
	}
}

func TestMacroFilenameModifiers(t *testing.T) {
	ctx := fakeCtx{cur: "/home/user/foo.txt"}
	cases := []struct {
		in, want string
	}{
		{"%c:t", "foo.txt"},
		{"%c:r", "/home/user/foo"},
		{"%c:e", "txt"},
		{"%c:h", "/home/user"},
	}
	for _, c := range cases {
		got, _, err := Expand(c.in, ctx)
		if err != nil {
			t.Fatalf("%s: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%s: got %q want %q", c.in, got, c.want)
		}
	}
}

func TestMacroSubstModifier(t *testing.T) {
	ctx := fakeCtx{cur: "/home/user/foo.txt"}
	got, _, err := Expand(`%c:s/\.txt/.md/`, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "/home/user/foo.md" {
		t.Fatalf("got %q", got)
	}
}

func TestMacroSelectedFiles(t *testing.T) {
	ctx := fakeCtx{sel: []string{"/a", "/b"}}
	got, _, err := Expand("%f", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "/a /b" {
		t.Fatalf("got %q", got)
	}
}

func TestMacroDirective(t *testing.T) {
	ctx := fakeCtx{}
	got, dir, err := Expand("%m", ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" || !dir.RunInMenu {
		t.Fatalf("got %q dir=%+v", got, dir)
	}
}

func TestRegistryAmbiguousPrefix(t *testing.T) {
	reg := NewRegistry()
	reg.DefineBuiltin(CommandDef{Name: "delete", Abbr: "d"})
	reg.DefineBuiltin(CommandDef{Name: "display", Abbr: "d"})

	if _, err := reg.Resolve("d"); err != ErrAmbiguousName {
		t.Fatalf("want ambiguous, got %v", err)
	}
	def, err := reg.Resolve("del")
	if err != nil || def.Name != "delete" {
		t.Fatalf("want delete, got %v err=%v", def, err)
	}
}

func TestDispatcherUserCommandRoundTrip(t *testing.T) {
	reg := NewRegistry()
	RegisterUserCommandBuiltins(reg)
	before := len(reg.builtin)

	d := NewDispatcher(reg, fakeResolver{cur: 1, last: 1}, fakeCtx{})
	if err := d.Execute("command foo bar baz"); err != nil {
		t.Fatal(err)
	}
	if !reg.HasUser("foo") {
		t.Fatal("expected user command foo to be defined")
	}
	if err := d.Execute("delcommand foo"); err != nil {
		t.Fatal(err)
	}
	if reg.HasUser("foo") {
		t.Fatal("expected user command foo to be undefined")
	}
	if len(reg.builtin) != before {
		t.Fatalf("builtin table changed: before=%d after=%d", before, len(reg.builtin))
	}
}

func TestDispatcherShellRangeForm(t *testing.T) {
	reg := NewRegistry()
	var gotArgs string
	var gotRange bool
	reg.DefineBuiltin(CommandDef{
		Name:  "!",
		Flags: Flags{AllowRange: true, MaxArgs: -1},
		Handler: func(info *CmdInfo) error {
			gotArgs = info.Args
			gotRange = info.HasRange
			return nil
		},
	})
	d := NewDispatcher(reg, fakeResolver{cur: 1, last: 1}, fakeCtx{})
	if err := d.Execute(".!echo hi"); err != nil {
		t.Fatal(err)
	}
	if !gotRange || gotArgs != "echo hi" {
		t.Fatalf("got args=%q range=%v", gotArgs, gotRange)
	}
}

func TestDispatcherRejectsDisallowedRange(t *testing.T) {
	reg := NewRegistry()
	reg.DefineBuiltin(CommandDef{Name: "quit", Abbr: "q"})
	d := NewDispatcher(reg, fakeResolver{cur: 1, last: 5}, fakeCtx{})
	if err := d.Execute("1,2quit"); err != ErrRangeNotAllowed {
		t.Fatalf("want ErrRangeNotAllowed, got %v", err)
	}
}

func TestDispatcherArgBounds(t *testing.T) {
	reg := NewRegistry()
	reg.DefineBuiltin(CommandDef{Name: "edit", Abbr: "e", Flags: Flags{MinArgs: 1, MaxArgs: 1}})
	d := NewDispatcher(reg, fakeResolver{cur: 1, last: 1}, fakeCtx{})
	if err := d.Execute("edit"); err != ErrTooFewArgs {
		t.Fatalf("want ErrTooFewArgs got %v", err)
	}
	if err := d.Execute("edit a b"); err != ErrTooManyArgs {
		t.Fatalf("want ErrTooManyArgs got %v", err)
	}
}
