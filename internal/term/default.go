package term

import (
	"bufio"
	"fmt"
	"os"
	"time"

	xterm "golang.org/x/term"

	"github.com/vifm-go/vifm/internal/termio"
)

// ANSI sequences, grounded verbatim on pkg/ui/terminal.go's escape-code
// constants (clear/cursor show-hide), extended here with cursor
// positioning and SGR attribute codes DrawText/SetCursor need.
const (
	escClearScreen = "\x1b[2J\x1b[H"
	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"
	escReset       = "\x1b[0m"
	escBold        = "\x1b[1m"
	escReverse     = "\x1b[7m"
	escUnderline   = "\x1b[4m"
)

// pollInterval is how often ReadKeyTimeout polls termio.PendingInput while
// waiting for the caller's timeout to elapse.
const pollInterval = 10 * time.Millisecond

// DefaultRenderer is the production Renderer: raw-mode terminal I/O over
// os.Stdin/os.Stdout. Raw-mode switching is exactly
// internal/termio.DefaultTerminal's job (golang.org/x/term.MakeRaw/Restore);
// non-blocking input detection reuses internal/termio.PendingInput so
// ReadKeyTimeout never blocks past its deadline without a background
// reader goroutine.
type DefaultRenderer struct {
	in, out *os.File
	term    termio.Terminal
	state   *xterm.State
	reader  *bufio.Reader
	writer  *bufio.Writer
}

// NewDefaultRenderer returns a Renderer over the process's real stdin and
// stdout.
func NewDefaultRenderer() *DefaultRenderer {
	return &DefaultRenderer{
		in:     os.Stdin,
		out:    os.Stdout,
		term:   termio.DefaultTerminal{},
		reader: bufio.NewReader(os.Stdin),
		writer: bufio.NewWriter(os.Stdout),
	}
}

// EnterRawMode switches the terminal into raw mode, remembering the prior
// state for Restore. Call once before the first RunOnce.
func (r *DefaultRenderer) EnterRawMode() error {
	state, err := r.term.MakeRaw(int(r.in.Fd()))
	if err != nil {
		return err
	}
	r.state = state
	fmt.Fprint(r.writer, escClearScreen+escHideCursor)
	return r.writer.Flush()
}

// Restore returns the terminal to the state it had before EnterRawMode.
func (r *DefaultRenderer) Restore() error {
	fmt.Fprint(r.writer, escReset+escShowCursor)
	_ = r.writer.Flush()
	if r.state == nil {
		return nil
	}
	return r.term.Restore(int(r.in.Fd()), r.state)
}

// Size reports the terminal's current rows/cols, falling back to 24x80
// if the ioctl fails (e.g. output redirected to a file), matching
// pkg/ui/terminal.go's Dimensions fallback.
func (r *DefaultRenderer) Size() (rows, cols int) {
	if w, h, err := xterm.GetSize(int(r.out.Fd())); err == nil && w > 0 && h > 0 {
		return h, w
	}
	return 24, 80
}

// ClearRegion blanks every row of rect with spaces.
func (r *DefaultRenderer) ClearRegion(rect Rect) {
	blank := make([]byte, rect.Cols)
	for i := range blank {
		blank[i] = ' '
	}
	for i := 0; i < rect.Rows; i++ {
		r.moveCursor(rect.Row+i, rect.Col)
		r.writer.Write(blank)
	}
}

// DrawText paints str at (row, col) with attr, resetting SGR state
// afterward so unrelated draws never inherit leftover styling.
func (r *DefaultRenderer) DrawText(row, col int, attr Attr, str string) {
	r.moveCursor(row, col)
	if attr&AttrBold != 0 {
		fmt.Fprint(r.writer, escBold)
	}
	if attr&AttrReverse != 0 {
		fmt.Fprint(r.writer, escReverse)
	}
	if attr&AttrUnderline != 0 {
		fmt.Fprint(r.writer, escUnderline)
	}
	fmt.Fprint(r.writer, str)
	if attr != AttrNone {
		fmt.Fprint(r.writer, escReset)
	}
}

// SetCursor shows or hides the cursor and places it at (row, col).
func (r *DefaultRenderer) SetCursor(visible bool, row, col int) {
	r.moveCursor(row, col)
	if visible {
		fmt.Fprint(r.writer, escShowCursor)
	} else {
		fmt.Fprint(r.writer, escHideCursor)
	}
}

// Refresh flushes every draw call issued since the last Refresh.
func (r *DefaultRenderer) Refresh() error {
	return r.writer.Flush()
}

func (r *DefaultRenderer) moveCursor(row, col int) {
	fmt.Fprintf(r.writer, "\x1b[%d;%dH", row+1, col+1)
}

// ReadKeyTimeout polls termio.PendingInput at pollInterval until input is
// ready or timeout elapses, then decodes exactly one rune. This is the
// cooperative-loop half of spec.md's get_key_with_timeout: no background
// reader goroutine, no signal handler, just a bounded poll the single
// main-loop goroutine drives itself.
func (r *DefaultRenderer) ReadKeyTimeout(timeout time.Duration) (rune, bool, error) {
	deadline := time.Now().Add(timeout)
	for {
		n, err := termio.PendingInput(r.in.Fd())
		if err != nil {
			return 0, false, err
		}
		if n > 0 {
			ru, _, err := r.reader.ReadRune()
			if err != nil {
				return 0, false, err
			}
			return ru, true, nil
		}
		if !time.Now().Before(deadline) {
			return 0, false, nil
		}
		time.Sleep(pollInterval)
	}
}
