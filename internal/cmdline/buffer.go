// Package cmdline implements the command-line editing ring shared by Ex
// commands, the two search prompts, and generic `:prompt` input (spec.md
// §4.5): a rune buffer with a cursor, Emacs-style editing keys, a
// navigable history ring and simple prefix/wildmenu-style completion.
//
// Grounded on internal/interactive/input_editor.go and input_unicode.go's
// rune-buffer-plus-cursor editing shape, generalized from a single
// command-palette input into a buffer reusable across several prompt
// kinds, and with rendering (the UI's terminal writes) removed entirely:
// this package only mutates state. internal/term's event loop is
// responsible for redrawing after every call.
package cmdline

import (
	"unicode"

	"golang.org/x/text/width"
)

// Buffer is a UTF-8 rune buffer with an editing cursor.
type Buffer struct {
	runes  []rune
	cursor int
}

// Text returns the buffer's full contents.
func (b *Buffer) Text() string { return string(b.runes) }

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int { return len(b.runes) }

// Cursor returns the cursor's rune offset.
func (b *Buffer) Cursor() int { return b.cursor }

// SetText replaces the buffer's contents and moves the cursor to the end,
// as history recall and completion both do.
func (b *Buffer) SetText(s string) {
	b.runes = []rune(s)
	b.cursor = len(b.runes)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.runes = nil
	b.cursor = 0
}

// InsertRune inserts r at the cursor and advances it.
func (b *Buffer) InsertRune(r rune) {
	if b.cursor >= len(b.runes) {
		b.runes = append(b.runes, r)
	} else {
		b.runes = append(b.runes[:b.cursor], append([]rune{r}, b.runes[b.cursor:]...)...)
	}
	b.cursor++
}

// Backspace implements Ctrl-H/Backspace: delete the rune before the cursor.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
}

// DeleteUnderCursor implements Ctrl-D: delete the rune at the cursor.
func (b *Buffer) DeleteUnderCursor() {
	if b.cursor >= len(b.runes) {
		return
	}
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
}

// DeleteToStart implements Ctrl-U: delete from the buffer start to cursor.
func (b *Buffer) DeleteToStart() {
	b.runes = b.runes[b.cursor:]
	b.cursor = 0
}

// DeleteToEnd implements Ctrl-K: delete from cursor to the buffer end.
func (b *Buffer) DeleteToEnd() {
	b.runes = b.runes[:b.cursor]
}

// DeleteWordLeft implements Ctrl-W: delete the word before the cursor.
func (b *Buffer) DeleteWordLeft() {
	if b.cursor == 0 {
		return
	}
	i := b.cursor - 1
	for i >= 0 && unicode.IsSpace(b.runes[i]) {
		i--
	}
	for i >= 0 && !unicode.IsSpace(b.runes[i]) {
		i--
	}
	start := i + 1
	b.runes = append(b.runes[:start], b.runes[b.cursor:]...)
	b.cursor = start
}

// MoveToBeginning implements Ctrl-A.
func (b *Buffer) MoveToBeginning() { b.cursor = 0 }

// MoveToEnd implements Ctrl-E.
func (b *Buffer) MoveToEnd() { b.cursor = len(b.runes) }

// MoveLeft moves the cursor one rune left.
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right.
func (b *Buffer) MoveRight() {
	if b.cursor < len(b.runes) {
		b.cursor++
	}
}

// MoveWordLeft implements Meta-b.
func (b *Buffer) MoveWordLeft() {
	if b.cursor == 0 {
		return
	}
	i := b.cursor - 1
	for i >= 0 && unicode.IsSpace(b.runes[i]) {
		i--
	}
	for i >= 0 && !unicode.IsSpace(b.runes[i]) {
		i--
	}
	b.cursor = i + 1
}

// MoveWordRight implements Meta-f.
func (b *Buffer) MoveWordRight() {
	n := len(b.runes)
	i := b.cursor
	for i < n && !unicode.IsSpace(b.runes[i]) {
		i++
	}
	for i < n && unicode.IsSpace(b.runes[i]) {
		i++
	}
	b.cursor = i
}

// DeleteWordRight implements Meta-d.
func (b *Buffer) DeleteWordRight() {
	n := len(b.runes)
	i := b.cursor
	for i < n && !unicode.IsSpace(b.runes[i]) {
		i++
	}
	b.runes = append(b.runes[:b.cursor], b.runes[i:]...)
}

// RuneWidth returns the terminal column width of r, honoring East Asian
// wide/fullwidth characters (spec.md §4.5's display-column arithmetic).
func RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	default:
		return 1
	}
}

// DisplayWidthToCursor sums RuneWidth over every rune currently in the buffer up to
// (not including) the cursor, the offset a renderer needs to place it.
func (b *Buffer) DisplayWidthToCursor() int {
	cols := 0
	for _, r := range b.runes[:b.cursor] {
		cols += RuneWidth(r)
	}
	return cols
}
