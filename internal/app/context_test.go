package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vifm-go/vifm/internal/fsops"
	"github.com/vifm-go/vifm/internal/keys"
	"github.com/vifm-go/vifm/internal/modes"
	"github.com/vifm-go/vifm/internal/term"
	"github.com/vifm-go/vifm/internal/vlog"
)

// newTestContext wires a Context rooted at two freshly-populated temp
// directories, with HOME redirected so rc/info Load/Save never touch a
// developer's real config.
func newTestContext(t *testing.T) (*Context, string, string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	left := t.TempDir()
	right := t.TempDir()
	if err := os.WriteFile(filepath.Join(left, "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(left, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(right, "b.txt"), []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}

	renderer := term.NewFakeRenderer(24, 80)
	ctx := New(left, right, fsops.NewOSFileSystem(), renderer, vlog.Disabled(), false)
	return ctx, left, right
}

func TestContextNewWiresBothPanes(t *testing.T) {
	ctx, left, right := newTestContext(t)

	if ctx.Left.Dir != left {
		t.Fatalf("left pane dir = %q, want %q", ctx.Left.Dir, left)
	}
	if ctx.Right.Dir != right {
		t.Fatalf("right pane dir = %q, want %q", ctx.Right.Dir, right)
	}
	if len(ctx.Left.Entries) == 0 {
		t.Fatal("left pane loaded no entries")
	}
	if ctx.Active() != ctx.Left {
		t.Fatal("Active() should start on the left pane")
	}
	if ctx.Other() != ctx.Right {
		t.Fatal("Other() should start on the right pane")
	}
}

func TestWindowsAdapterSyncsActiveOnSwitch(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	ctx.Normal.Windows.Switch('w')
	if ctx.Active() != ctx.Right {
		t.Fatal("Switch('w') should move focus to the right pane")
	}
	if ctx.Other() != ctx.Left {
		t.Fatal("Other() should report the left pane once the right is active")
	}
	if ctx.Layout.ActiveLeft {
		t.Fatal("Layout.ActiveLeft should be false after switching to the right pane")
	}

	ctx.Normal.Windows.Switch('w')
	if ctx.Active() != ctx.Left {
		t.Fatal("switching back should move focus to the left pane")
	}
}

func TestKeyModeForCoversCommandLineKinds(t *testing.T) {
	cases := []struct {
		mode modes.Mode
		kind modes.CmdLineKind
		want keys.Mode
	}{
		{modes.Normal, 0, KeyModeNormal},
		{modes.Visual, 0, KeyModeVisual},
		{modes.Menu, 0, KeyModeMenu},
		{modes.CommandLine, modes.Ex, KeyModeEx},
		{modes.CommandLine, modes.SearchFwd, KeyModeSearchFwd},
		{modes.CommandLine, modes.SearchBwd, KeyModeSearchBwd},
	}
	for _, c := range cases {
		if got := keyModeFor(c.mode, c.kind); got != c.want {
			t.Errorf("keyModeFor(%v, %v) = %v, want %v", c.mode, c.kind, got, c.want)
		}
	}
}

func TestEnterCmdlineSavesAndRestoresCursor(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	start := ctx.Active().ListPos

	ctx.enterCmdline(modes.SearchFwd)
	if ctx.Modes.Current() != modes.CommandLine {
		t.Fatal("enterCmdline should switch to CommandLine mode")
	}

	cancel := ctx.onCancel(modes.SearchFwd)
	session := ctx.sessionFor(modes.SearchFwd)
	cancel(session)

	if ctx.Modes.Current() != modes.Normal {
		t.Fatal("onCancel should leave CommandLine mode")
	}
	if ctx.Active().ListPos != start {
		t.Fatalf("cursor position = %d, want restored %d", ctx.Active().ListPos, start)
	}
}

func TestBuiltinCdChangesActivePaneDirectory(t *testing.T) {
	ctx, _, right := newTestContext(t)

	if err := ctx.Dispatcher.Execute("cd " + right); err != nil {
		t.Fatalf("cd failed: %v", err)
	}
	if ctx.Active().Dir != right {
		t.Fatalf("active pane dir = %q, want %q", ctx.Active().Dir, right)
	}
}

func TestBuiltinOnlyTogglesMaximized(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	if ctx.Layout.Maximized {
		t.Fatal("layout should not start maximized")
	}
	if err := ctx.Dispatcher.Execute("only"); err != nil {
		t.Fatalf("only failed: %v", err)
	}
	if !ctx.Layout.Maximized {
		t.Fatal(":only should toggle Layout.Maximized on")
	}
}

func TestSaveRoundTripsBookmarksThroughInfoFile(t *testing.T) {
	ctx, left, _ := newTestContext(t)

	ctx.Marks.Set('m', left, "a.txt", 0)
	if err := ctx.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := New(left, ctx.Right.Dir, fsops.NewOSFileSystem(), term.NewFakeRenderer(24, 80), vlog.Disabled(), false)
	if b, ok := reloaded.Marks.Get('m'); !ok || b.File != "a.txt" {
		t.Fatalf("bookmark 'm' did not round-trip through the info file: %+v, ok=%v", b, ok)
	}
}

func TestRunPersistsStateOnQuit(t *testing.T) {
	ctx, left, _ := newTestContext(t)
	ctx.Marks.Set('q', left, "a.txt", 0)

	// Simulate a ":quit" having already stopped the loop, so Run returns
	// immediately instead of blocking on further scripted input.
	ctx.Loop.Stop()
	if err := ctx.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	reloaded := New(left, ctx.Right.Dir, fsops.NewOSFileSystem(), term.NewFakeRenderer(24, 80), vlog.Disabled(), false)
	if _, ok := reloaded.Marks.Get('q'); !ok {
		t.Fatal("Run should have persisted state via Save on the way out")
	}
}
