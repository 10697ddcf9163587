package app

import (
	"github.com/vifm-go/vifm/internal/fsops"
	"github.com/vifm-go/vifm/internal/modes"
	"github.com/vifm-go/vifm/internal/pane"
)

// registerModeHooks installs the per-mode pre/post behaviour spec.md §4.2
// describes: Normal mode polls pane mtimes and clears a clearable status
// message; command-line modes do nothing extra (the prompt itself is
// redrawn every frame regardless of hooks).
func (c *Context) registerModeHooks() {
	c.Modes.RegisterHooks(modes.Normal, modes.Hooks{
		Pre: func(*modes.Manager) {
			c.reloadIfChanged(c.Left)
			c.reloadIfChanged(c.Right)
		},
		Post: func(m *modes.Manager) { m.ClearStatusIfAllowed() },
	})
}

func (c *Context) reloadIfChanged(p *pane.Pane) {
	changed, err := p.CheckFileListChanged()
	if err != nil {
		if c.Log.Enabled() {
			c.Log.Error("pane mtime poll failed", err)
		}
		return
	}
	if changed {
		_ = p.Load(p.Dir, true)
	}
}

// preFrame/postFrame are the term.Loop-level hooks: they run the Mode
// Manager's per-mode hooks, which is the whole of the self-pipe-drained
// main loop spec.md §5 describes beyond reading one key. preFrame also
// drains any queued --remote messages, exactly like the job table below.
func (c *Context) preFrame() {
	c.Modes.Pre()
	if c.Remote != nil {
		for _, argv := range c.Remote.Drain() {
			c.HandleRemoteArgs(argv)
		}
	}
}
func (c *Context) postFrame() { c.Modes.Post() }

func (c *Context) onJobsFinished(jobs []fsops.FinishedJob) {
	for _, j := range jobs {
		if j.Err != nil && c.Log.Enabled() {
			c.Log.Error("background job failed", j.Err)
		}
	}
	c.reloadIfChanged(c.Left)
	c.reloadIfChanged(c.Right)
}
