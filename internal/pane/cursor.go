package pane

// MoveToListPos clamps pos into range and adjusts TopLine to respect
// ScrollOff, per spec.md §4.6.
func (p *Pane) MoveToListPos(pos int) {
	if len(p.Entries) == 0 {
		p.ListPos = 0
		p.TopLine = 0
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(p.Entries) {
		pos = len(p.Entries) - 1
	}
	p.ListPos = pos

	margin := p.ScrollOff
	if p.WindowRows > 0 && margin > (p.WindowRows-1)/2 {
		margin = (p.WindowRows - 1) / 2
	}

	if pos < p.TopLine+margin && p.TopLine > 0 {
		p.TopLine = pos - margin
		if p.TopLine < 0 {
			p.TopLine = 0
		}
	}
	if p.WindowRows > 0 && pos > p.TopLine+p.WindowRows-1-margin {
		p.TopLine = pos - p.WindowRows + 1 + margin
	}
	maxTop := len(p.Entries) - 1
	if p.WindowRows > 0 && maxTop > len(p.Entries)-p.WindowRows {
		maxTop = len(p.Entries) - p.WindowRows
	}
	if maxTop < 0 {
		maxTop = 0
	}
	if p.TopLine > maxTop {
		p.TopLine = maxTop
	}
	if p.TopLine < 0 {
		p.TopLine = 0
	}
}

// MoveBy moves the cursor by delta entries (h/j/k/l style motions feed
// through this after resolving their own delta).
func (p *Pane) MoveBy(delta int) {
	p.MoveToListPos(p.ListPos + delta)
}

// TopIndex, MiddleIndex and BottomIndex compute H/M/L's target without
// moving the cursor, so a selector can resolve the same range a plain
// motion would (spec.md §4.3: "each is a selector when consumed after an
// operator").
func (p *Pane) TopIndex() int    { return p.TopLine }
func (p *Pane) MiddleIndex() int { return p.TopLine + p.WindowRows/2 }
func (p *Pane) BottomIndex() int { return p.TopLine + p.WindowRows - 1 }

// Top, Middle and Bottom implement H/M/L.
func (p *Pane) Top()    { p.MoveToListPos(p.TopIndex()) }
func (p *Pane) Bottom() { p.MoveToListPos(p.BottomIndex()) }
func (p *Pane) Middle() { p.MoveToListPos(p.MiddleIndex()) }

// RepositionTop, RepositionCenter and RepositionBottom implement zt/zz/zb:
// they move the viewport, not the cursor.
func (p *Pane) RepositionTop() {
	p.TopLine = p.ListPos - p.ScrollOff
	if p.TopLine < 0 {
		p.TopLine = 0
	}
}

func (p *Pane) RepositionCenter() {
	p.TopLine = p.ListPos - p.WindowRows/2
	if p.TopLine < 0 {
		p.TopLine = 0
	}
}

func (p *Pane) RepositionBottom() {
	p.TopLine = p.ListPos - p.WindowRows + 1 + p.ScrollOff
	if p.TopLine < 0 {
		p.TopLine = 0
	}
}

// ScrollLines moves the viewport by delta lines (Ctrl-E/Ctrl-Y), dragging
// the cursor along if it would leave the window.
func (p *Pane) ScrollLines(delta int) {
	p.TopLine += delta
	if p.TopLine < 0 {
		p.TopLine = 0
	}
	maxTop := len(p.Entries) - 1
	if p.TopLine > maxTop {
		p.TopLine = maxTop
	}
	if p.ListPos < p.TopLine+p.ScrollOff {
		p.MoveToListPos(p.TopLine + p.ScrollOff)
	}
	if p.WindowRows > 0 && p.ListPos > p.TopLine+p.WindowRows-1-p.ScrollOff {
		p.MoveToListPos(p.TopLine + p.WindowRows - 1 - p.ScrollOff)
	}
}

// ScrollHalfWindow implements Ctrl-D/Ctrl-U; count, if non-zero, is
// remembered by the caller (normal.go) across repeated calls.
func (p *Pane) ScrollHalfWindow(down bool, lines int) {
	if lines <= 0 {
		lines = p.WindowRows / 2
	}
	if lines <= 0 {
		lines = 1
	}
	if down {
		p.ScrollLines(lines)
	} else {
		p.ScrollLines(-lines)
	}
}

// ScrollFullWindow implements Ctrl-F/Ctrl-B.
func (p *Pane) ScrollFullWindow(down bool) {
	lines := p.WindowRows
	if lines <= 0 {
		lines = 1
	}
	if down {
		p.ScrollLines(lines)
	} else {
		p.ScrollLines(-lines)
	}
}

// PercentIndex computes count%'s target index without moving the cursor.
func (p *Pane) PercentIndex(percent int) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return (percent*len(p.Entries) + 99) / 100
}

// PercentPosition implements count% — jump to the entry count percent of
// the way through the list.
func (p *Pane) PercentPosition(percent int) {
	p.MoveToListPos(p.PercentIndex(percent))
}
