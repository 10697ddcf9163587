package pane

// Select/Deselect/Toggle maintain the invariant that `../` is never
// selected (spec.md §3 invariants).
func (p *Pane) Select(i int) {
	if i < 0 || i >= len(p.Entries) || p.Entries[i].Name == ".." {
		return
	}
	p.Entries[i].Selected = true
}

func (p *Pane) Deselect(i int) {
	if i < 0 || i >= len(p.Entries) {
		return
	}
	p.Entries[i].Selected = false
}

func (p *Pane) Toggle(i int) {
	if i < 0 || i >= len(p.Entries) || p.Entries[i].Name == ".." {
		return
	}
	p.Entries[i].Selected = !p.Entries[i].Selected
}

// SelectRange selects (or, if invert is true, deselects) entries [from,to]
// inclusive; used by Visual mode's contiguous range.
func (p *Pane) SelectRange(from, to int, invert bool) {
	if from > to {
		from, to = to, from
	}
	for i := from; i <= to && i < len(p.Entries); i++ {
		if i < 0 {
			continue
		}
		if invert {
			p.Toggle(i)
		} else {
			p.Select(i)
		}
	}
}

// ClearSelection deselects every entry.
func (p *Pane) ClearSelection() {
	for i := range p.Entries {
		p.Entries[i].Selected = false
	}
}

// SelectedNames returns the names of every selected entry, cursor entry
// first if nothing is selected (vi single-target convention).
func (p *Pane) SelectedNames() []string {
	var names []string
	for _, e := range p.Entries {
		if e.Selected {
			names = append(names, e.Name)
		}
	}
	if len(names) == 0 {
		if cur, ok := p.Current(); ok && cur.Name != ".." {
			names = append(names, cur.Name)
		}
	}
	return names
}

// SaveSelection snapshots the current selection for `gs` to restore.
func (p *Pane) SaveSelection() {
	p.savedSelection = make(map[string]bool, p.SelectedCount())
	for _, e := range p.Entries {
		if e.Selected {
			p.savedSelection[e.Name] = true
		}
	}
}

// RestoreSelection re-applies the last SaveSelection snapshot by name.
func (p *Pane) RestoreSelection() {
	if p.savedSelection == nil {
		return
	}
	for i, e := range p.Entries {
		p.Entries[i].Selected = p.savedSelection[e.Name]
	}
}

// SelectByName clears the current selection and selects every entry whose
// name appears in names, in whatever order Entries already has (put's
// "select the pasted files" step, spec.md §4.3).
func (p *Pane) SelectByName(names []string) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	for i := range p.Entries {
		p.Entries[i].Selected = want[p.Entries[i].Name]
	}
}
