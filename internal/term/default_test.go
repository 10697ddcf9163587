package term

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vifm-go/vifm/internal/termio"
)

func newTestRenderer(out *bytes.Buffer, in string) *DefaultRenderer {
	return &DefaultRenderer{
		reader: bufio.NewReader(strings.NewReader(in)),
		writer: bufio.NewWriter(out),
	}
}

func TestDefaultRendererDrawTextAndRefresh(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out, "")

	r.DrawText(2, 5, AttrBold, "hi")
	if err := r.Refresh(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "\x1b[3;6H") {
		t.Fatalf("missing cursor move sequence: %q", got)
	}
	if !strings.Contains(got, escBold) || !strings.Contains(got, "hi") || !strings.Contains(got, escReset) {
		t.Fatalf("missing bold/text/reset: %q", got)
	}
}

func TestDefaultRendererDrawTextNoAttrSkipsReset(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out, "")

	r.DrawText(0, 0, AttrNone, "plain")
	_ = r.Refresh()

	got := out.String()
	if strings.Contains(got, escReset) {
		t.Fatalf("unattributed text should not emit a reset: %q", got)
	}
}

func TestDefaultRendererClearRegion(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out, "")

	r.ClearRegion(Rect{Row: 1, Col: 0, Rows: 2, Cols: 3})
	_ = r.Refresh()

	got := out.String()
	if strings.Count(got, "   ") != 2 {
		t.Fatalf("expected two blanked rows of 3 spaces: %q", got)
	}
	if !strings.Contains(got, "\x1b[2;1H") || !strings.Contains(got, "\x1b[3;1H") {
		t.Fatalf("missing per-row cursor moves: %q", got)
	}
}

func TestDefaultRendererSetCursor(t *testing.T) {
	var out bytes.Buffer
	r := newTestRenderer(&out, "")

	r.SetCursor(true, 4, 9)
	_ = r.Refresh()

	got := out.String()
	if !strings.Contains(got, "\x1b[5;10H") || !strings.Contains(got, escShowCursor) {
		t.Fatalf("got %q", got)
	}
}

func TestDefaultRendererReadKeyTimeoutReadsRune(t *testing.T) {
	restore := termio.SetPendingInputFunc(func(uintptr) (int, error) { return 1, nil })
	t.Cleanup(restore)

	var out bytes.Buffer
	r := newTestRenderer(&out, "x")

	ru, ok, err := r.ReadKeyTimeout(time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || ru != 'x' {
		t.Fatalf("got rune=%q ok=%v", ru, ok)
	}
}

func TestDefaultRendererReadKeyTimeoutTimesOut(t *testing.T) {
	restore := termio.SetPendingInputFunc(func(uintptr) (int, error) { return 0, nil })
	t.Cleanup(restore)

	var out bytes.Buffer
	r := newTestRenderer(&out, "")

	_, ok, err := r.ReadKeyTimeout(20 * time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected a timeout")
	}
}
