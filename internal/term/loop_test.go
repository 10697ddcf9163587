package term

import (
	"context"
	"testing"
	"time"

	"github.com/vifm-go/vifm/internal/fsops"
	"github.com/vifm-go/vifm/internal/keys"
)

const testMode keys.Mode = 0

func newTestEngine(t *testing.T, handled *[]rune) *keys.Engine {
	t.Helper()
	e := keys.NewEngine()
	e.RegisterMode(testMode, keys.ModeFlags{})
	e.AddBuiltin(testMode, []rune("q"), keys.Action{
		Kind: keys.ActionHandler,
		Handler: func(info keys.KeyInfo, ks *keys.KeysInfo) error {
			*handled = append(*handled, 'q')
			return nil
		},
	})
	return e
}

func TestLoopRunOnceFeedsKeyToEngine(t *testing.T) {
	var handled []rune
	e := newTestEngine(t, &handled)
	r := NewFakeRenderer(24, 80)
	r.QueueKey('q')

	redraws := 0
	l := NewLoop(r, e, func() keys.Mode { return testMode })
	l.Redraw = func(Renderer) { redraws++ }

	cont, err := l.RunOnce()
	if err != nil {
		t.Fatal(err)
	}
	if !cont {
		t.Fatal("expected the loop to keep running")
	}
	if len(handled) != 1 || handled[0] != 'q' {
		t.Fatalf("got %v", handled)
	}
	if redraws != 1 || r.RefreshCount != 1 {
		t.Fatalf("redraws=%d refreshes=%d", redraws, r.RefreshCount)
	}
}

func TestLoopRunOnceTimeoutCallsExecuteTimedOut(t *testing.T) {
	var handled []rune
	e := newTestEngine(t, &handled)
	r := NewFakeRenderer(24, 80)
	r.QueueTimeout()

	l := NewLoop(r, e, func() keys.Mode { return testMode })
	if _, err := l.RunOnce(); err != nil {
		t.Fatal(err)
	}
	if len(handled) != 0 {
		t.Fatalf("a bare timeout with no pending sequence should not fire a handler: %v", handled)
	}
}

func TestLoopPrePostHooksRunEveryFrame(t *testing.T) {
	var handled []rune
	e := newTestEngine(t, &handled)
	r := NewFakeRenderer(24, 80)
	r.QueueKey('q')
	r.QueueTimeout()

	var pre, post int
	l := NewLoop(r, e, func() keys.Mode { return testMode })
	l.Pre = func() { pre++ }
	l.Post = func() { post++ }

	if _, err := l.RunOnce(); err != nil {
		t.Fatal(err)
	}
	if _, err := l.RunOnce(); err != nil {
		t.Fatal(err)
	}
	if pre != 2 || post != 2 {
		t.Fatalf("pre=%d post=%d", pre, post)
	}
}

func TestLoopStopEndsRun(t *testing.T) {
	var handled []rune
	e := newTestEngine(t, &handled)
	r := NewFakeRenderer(24, 80)
	for i := 0; i < 5; i++ {
		r.QueueTimeout()
	}

	l := NewLoop(r, e, func() keys.Mode { return testMode })
	frames := 0
	l.Post = func() {
		frames++
		if frames == 3 {
			l.Stop()
		}
	}

	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if frames != 3 {
		t.Fatalf("got %d frames, want 3", frames)
	}
	if !l.Stopped() {
		t.Fatal("expected the loop to report stopped")
	}
}

func TestLoopDrainsJobTableOncePerFrame(t *testing.T) {
	var handled []rune
	e := newTestEngine(t, &handled)

	runner := fsops.NewProcessRunner()
	job, err := runner.Spawn("true", fsops.SpawnOpts{Background: true})
	if err != nil {
		t.Fatal(err)
	}
	table := fsops.NewJobTable()
	table.Track(runner, job)

	var finished []fsops.FinishedJob
	l := NewLoop(NewFakeRenderer(24, 80), e, func() keys.Mode { return testMode })
	l.Jobs = table
	l.OnJobsFinished = func(f []fsops.FinishedJob) { finished = append(finished, f...) }

	// The background job finishing is asynchronous; retry frames (each a
	// queued timeout) until the job table has delivered it.
	for i := 0; i < 200 && len(finished) == 0; i++ {
		l.Renderer.(*FakeRenderer).QueueTimeout()
		if _, err := l.RunOnce(); err != nil {
			t.Fatal(err)
		}
		time.Sleep(5 * time.Millisecond)
	}
	if len(finished) != 1 || finished[0].Err != nil {
		t.Fatalf("got %+v", finished)
	}
}
