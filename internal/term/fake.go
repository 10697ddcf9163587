package term

import "time"

// DrawCall records one FakeRenderer.DrawText invocation, for assertions.
type DrawCall struct {
	Row, Col int
	Attr     Attr
	Text     string
}

// FakeKey is one scripted ReadKeyTimeout response.
type FakeKey struct {
	R   rune
	Ok  bool
	Err error
}

// FakeRenderer is a Renderer test double that records every draw call and
// replays a scripted queue of key events, generalizing git.MockClient's
// func-field mocking style (mock.go) to a collaborator where call *order*
// matters (a sequence of keystrokes) rather than one-shot return values.
type FakeRenderer struct {
	Rows, Cols int

	Draws  []DrawCall
	Clears []Rect

	CursorVisible    bool
	CursorRow, CursorCol int
	RefreshCount     int

	Keys []FakeKey
}

// NewFakeRenderer returns a FakeRenderer reporting the given screen size.
func NewFakeRenderer(rows, cols int) *FakeRenderer {
	return &FakeRenderer{Rows: rows, Cols: cols}
}

// QueueKey appends a delivered keystroke to the input script.
func (f *FakeRenderer) QueueKey(r rune) {
	f.Keys = append(f.Keys, FakeKey{R: r, Ok: true})
}

// QueueTimeout appends a timeout (no key available) to the input script.
func (f *FakeRenderer) QueueTimeout() {
	f.Keys = append(f.Keys, FakeKey{Ok: false})
}

func (f *FakeRenderer) Size() (rows, cols int) { return f.Rows, f.Cols }

func (f *FakeRenderer) ClearRegion(rect Rect) {
	f.Clears = append(f.Clears, rect)
}

func (f *FakeRenderer) DrawText(row, col int, attr Attr, str string) {
	f.Draws = append(f.Draws, DrawCall{Row: row, Col: col, Attr: attr, Text: str})
}

func (f *FakeRenderer) SetCursor(visible bool, row, col int) {
	f.CursorVisible = visible
	f.CursorRow, f.CursorCol = row, col
}

func (f *FakeRenderer) Refresh() error {
	f.RefreshCount++
	return nil
}

// ReadKeyTimeout pops the next scripted key (or timeout) off the queue. An
// empty queue reports a timeout, so a test that doesn't care about input
// can simply never Queue anything and let Loop exit on its own.
func (f *FakeRenderer) ReadKeyTimeout(time.Duration) (rune, bool, error) {
	if len(f.Keys) == 0 {
		return 0, false, nil
	}
	k := f.Keys[0]
	f.Keys = f.Keys[1:]
	return k.R, k.Ok, k.Err
}
