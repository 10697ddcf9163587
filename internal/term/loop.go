package term

import (
	"context"

	"github.com/vifm-go/vifm/internal/fsops"
	"github.com/vifm-go/vifm/internal/keys"
)

// Loop is the single-threaded cooperative event loop spec.md §5 describes:
// read one key with a timeout, feed the Key Engine, let the resulting
// handler run to completion, run the Mode Manager's pre/post hooks, then
// ask the Renderer to redraw. Every field is an explicit collaborator
// (Design Notes §9: no shared globals) so tests can drive it against a
// FakeRenderer and an in-memory Engine without a real terminal.
type Loop struct {
	Renderer Renderer
	Engine   *keys.Engine

	// CurrentMode reports which keys.Mode is active; supplied by the
	// owner (internal/app) since internal/term has no dependency on
	// internal/modes.
	CurrentMode func() keys.Mode

	// Pre/Post mirror modes.Manager.Pre/Post, run once per frame around
	// the key read.
	Pre, Post func()

	// Redraw paints the current application state; called once per frame
	// before Refresh. Left nil in tests that only exercise key handling.
	Redraw func(Renderer)

	// Jobs, if set, is drained once per frame (the pre-hook's self-pipe
	// read, spec.md §5/§9) instead of reaping children from a signal
	// handler.
	Jobs           *fsops.JobTable
	OnJobsFinished func([]fsops.FinishedJob)

	stopped bool
}

// NewLoop wires a Loop's required collaborators.
func NewLoop(r Renderer, e *keys.Engine, currentMode func() keys.Mode) *Loop {
	return &Loop{Renderer: r, Engine: e, CurrentMode: currentMode}
}

// Stop asks the loop to end after the current frame.
func (l *Loop) Stop() { l.stopped = true }

// Stopped reports whether Stop has been called.
func (l *Loop) Stopped() bool { return l.stopped }

// RunOnce executes exactly one frame and reports whether the loop should
// continue. The handler error (if any) is returned but does not itself
// stop the loop — per spec.md §7, most domain errors are reported on the
// status line by the caller's Post hook, not fatal to the session.
func (l *Loop) RunOnce() (bool, error) {
	if l.stopped {
		return false, nil
	}

	if l.Jobs != nil {
		if finished := l.Jobs.Drain(); len(finished) > 0 && l.OnJobsFinished != nil {
			l.OnJobsFinished(finished)
		}
	}
	if l.Pre != nil {
		l.Pre()
	}

	mode := l.CurrentMode()
	r, ok, err := l.Renderer.ReadKeyTimeout(l.Engine.TimeoutLen)
	if err != nil {
		return false, err
	}

	var handlerErr error
	if ok {
		_, handlerErr = l.Engine.Execute(mode, []rune{r})
	} else {
		_, handlerErr = l.Engine.ExecuteTimedOut(mode)
	}

	if l.Post != nil {
		l.Post()
	}
	if l.Redraw != nil {
		l.Redraw(l.Renderer)
	}
	if err := l.Renderer.Refresh(); err != nil {
		return false, err
	}
	return !l.stopped, handlerErr
}

// Run drives RunOnce until it reports done, ctx is cancelled, or a frame
// returns a non-handler (I/O) error.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		cont, err := l.RunOnce()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
