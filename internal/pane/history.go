package pane

// PushHistory records dir as a newly-entered directory, updating the
// previous top entry's relative cursor position first (spec.md §4.7).
// It is a no-op if dir equals the current top of history.
func (p *Pane) PushHistory(dir, file string, relPos int) {
	if len(p.history) > 0 && p.history[len(p.history)-1].Dir == dir {
		return
	}
	if len(p.history) > 0 {
		p.history[len(p.history)-1].RelPos = relPos
	}
	p.history = append(p.history, historyEntry{Dir: dir, File: file, RelPos: relPos})
	if len(p.history) > p.historyCap {
		p.history = p.history[1:]
	}
	p.historyPos = len(p.history) - 1
}

// HistoryLen reports how many visits are recorded.
func (p *Pane) HistoryLen() int { return len(p.history) }

// HistoryBack implements Ctrl-O: step to the previous (older) visit.
// It returns the directory/file to switch to and whether a step was made.
func (p *Pane) HistoryBack() (dir, file string, ok bool) {
	if p.historyPos <= 0 {
		return "", "", false
	}
	p.historyPos--
	e := p.history[p.historyPos]
	return e.Dir, e.File, true
}

// HistoryForward implements Ctrl-I: step to the next (newer) visit.
func (p *Pane) HistoryForward() (dir, file string, ok bool) {
	if p.historyPos < 0 || p.historyPos >= len(p.history)-1 {
		return "", "", false
	}
	p.historyPos++
	e := p.history[p.historyPos]
	return e.Dir, e.File, true
}

// HistoryEntryAt exposes a ring slot for inspection/tests.
func (p *Pane) HistoryEntryAt(i int) (dir, file string, relPos int, ok bool) {
	if i < 0 || i >= len(p.history) {
		return "", "", 0, false
	}
	e := p.history[i]
	return e.Dir, e.File, e.RelPos, true
}

// SetHistoryCap overrides the ring capacity (config option history-len).
func (p *Pane) SetHistoryCap(n int) {
	if n <= 0 {
		n = 1
	}
	p.historyCap = n
	for len(p.history) > n {
		p.history = p.history[1:]
	}
	if p.historyPos >= len(p.history) {
		p.historyPos = len(p.history) - 1
	}
}
