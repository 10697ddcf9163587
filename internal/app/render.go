package app

import (
	"fmt"

	"github.com/vifm-go/vifm/internal/modes"
	"github.com/vifm-go/vifm/internal/pane"
	"github.com/vifm-go/vifm/internal/term"
)

// Redraw paints both panes, the status line, and (while a command-line
// mode is active) the prompt buffer. It is term.Loop's Redraw collaborator
// — called once per frame, after the key has been handled and before
// Refresh (spec.md §5).
func (c *Context) Redraw(r term.Renderer) {
	rows, cols := r.Size()
	if rows < 3 {
		rows = 3
	}
	listRows := rows - 2

	r.ClearRegion(term.Rect{Row: 0, Col: 0, Rows: rows, Cols: cols})

	switch {
	case c.Layout.Maximized:
		c.drawPane(r, c.Active(), c.Layout.ActiveLeft, 0, cols, listRows)
	case c.Layout.Vertical:
		leftCols := cols * c.Layout.RatioTenths / 10
		if leftCols < 1 {
			leftCols = 1
		}
		c.drawPane(r, c.Left, true, 0, leftCols, listRows)
		c.drawPane(r, c.Right, false, leftCols, cols-leftCols, listRows)
	default:
		topRows := listRows * c.Layout.RatioTenths / 10
		if topRows < 1 {
			topRows = 1
		}
		c.drawPaneRows(r, c.Left, true, 0, topRows, cols)
		c.drawPaneRows(r, c.Right, false, topRows, listRows-topRows, cols)
	}

	r.DrawText(rows-2, 0, term.AttrReverse, padTo(c.statusLine(), cols))
	c.drawPrompt(r, rows-1, cols)
}

func (c *Context) statusLine() string {
	if c.status != "" {
		return c.status
	}
	p := c.Active()
	return fmt.Sprintf("%s  %d/%d", p.Dir, p.ListPos+1, len(p.Entries))
}

func (c *Context) drawPane(r term.Renderer, p *pane.Pane, active bool, col, width, rows int) {
	c.drawPaneAt(r, p, active, 0, rows, col, width)
}

func (c *Context) drawPaneRows(r term.Renderer, p *pane.Pane, active bool, row, rows, width int) {
	c.drawPaneAt(r, p, active, row, rows, 0, width)
}

func (c *Context) drawPaneAt(r term.Renderer, p *pane.Pane, active bool, rowOff, rows, col, width int) {
	if width < 1 {
		width = 1
	}
	headerAttr := term.AttrBold
	r.DrawText(rowOff, col, headerAttr, padTo(p.Dir, width))

	for i := 0; i < rows-1 && p.TopLine+i < len(p.Entries); i++ {
		e := p.Entries[p.TopLine+i]
		attr := term.AttrNone
		switch {
		case active && p.TopLine+i == p.ListPos:
			attr = term.AttrReverse
		case e.Selected:
			attr = term.AttrBold
		case e.Matched:
			attr = term.AttrUnderline
		}
		name := e.Name
		if e.Type == pane.TypeDirectory {
			name += "/"
		}
		r.DrawText(rowOff+1+i, col, attr, padTo(name, width))
	}
}

func (c *Context) drawPrompt(r term.Renderer, row, cols int) {
	if c.Modes.Current() != modes.CommandLine {
		r.SetCursor(false, row, 0)
		return
	}
	kind := c.Modes.CurrentCmdKind()
	s := c.sessionFor(kind)
	prefix := promptPrefix(kind)
	if kind == modes.Prompt {
		prefix = c.promptLabel
	}
	line := prefix + s.Buffer.Text()
	r.DrawText(row, 0, term.AttrNone, padTo(line, cols))
	r.SetCursor(true, row, len(prefix)+s.Buffer.Cursor())
}

func promptPrefix(kind modes.CmdLineKind) string {
	switch kind {
	case modes.Ex, modes.MenuEx:
		return ":"
	case modes.SearchFwd, modes.MenuSearchFwd, modes.VisualSearchFwd:
		return "/"
	case modes.SearchBwd, modes.MenuSearchBwd, modes.VisualSearchBwd:
		return "?"
	default:
		return ""
	}
}

func padTo(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	for len(r) < width {
		r = append(r, ' ')
	}
	return string(r)
}
