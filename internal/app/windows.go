package app

// Layout tracks the two-pane split geometry normal.Windows' Ctrl-W family
// drives: which side is active, the split orientation, whether one side is
// maximized, and a size ratio Ctrl-W +/-/</> nudges. Grounded on
// internal/interactive's small stateful-struct-plus-methods shape (e.g.
// Wildmenu, workflow_manager's ring) rather than any one teacher file,
// since the teacher has no split-window concept of its own.
type Layout struct {
	ActiveLeft  bool // true = left pane active, false = right
	Vertical    bool // true = side-by-side (vsplit), false = stacked (split)
	Maximized   bool
	RatioTenths int // left (or top) pane's share of the split, in tenths (5 = even)
}

// NewLayout returns the default two-pane side-by-side layout, left active.
func NewLayout() *Layout {
	return &Layout{ActiveLeft: true, Vertical: true, RatioTenths: 5}
}

// Switch moves focus per a Ctrl-W direction key (h/j/k/l/w).
func (l *Layout) Switch(direction rune) {
	switch direction {
	case 'w':
		l.ActiveLeft = !l.ActiveLeft
	case 'h', 'k':
		l.ActiveLeft = true
	case 'l', 'j':
		l.ActiveLeft = false
	}
}

// SetSplit changes the split orientation ('s' stacked, 'v' side-by-side).
func (l *Layout) SetSplit(orientation rune) {
	switch orientation {
	case 'v':
		l.Vertical = true
	case 's':
		l.Vertical = false
	}
	l.Maximized = false
}

// ToggleMaximize implements Ctrl-W o: give the active pane the whole screen.
func (l *Layout) ToggleMaximize() {
	l.Maximized = !l.Maximized
}

// Resize nudges the active pane's share of the split by count tenths in
// direction ('+' grow, '-' shrink, '<'/'>' the vertical-split equivalents),
// clamped so neither side collapses to nothing.
func (l *Layout) Resize(direction rune, count int) {
	if count <= 0 {
		count = 1
	}
	delta := count
	switch direction {
	case '-', '<':
		delta = -delta
	case '+', '>':
		// grow, delta already positive
	default:
		return
	}
	if !l.ActiveLeft {
		delta = -delta
	}
	l.RatioTenths += delta
	if l.RatioTenths < 1 {
		l.RatioTenths = 1
	}
	if l.RatioTenths > 9 {
		l.RatioTenths = 9
	}
}
