package fsops

import "sync"

// JobTable is the finished-jobs list spec.md §5 asks the event loop to
// drain once per pre-hook frame instead of reaping children from a SIGCHLD
// handler (Design Notes §9: self-pipe/event replaces the signal). Track
// registers a background Job; a goroutine waits on it and appends the
// result here rather than delivering it through a signal context, so
// nothing allocates inside async-signal-unsafe code — there is no signal
// context at all.
type JobTable struct {
	mu       sync.Mutex
	finished []FinishedJob
}

// FinishedJob is one reaped background job's outcome.
type FinishedJob struct {
	Job *Job
	Err error
}

// NewJobTable returns an empty table.
func NewJobTable() *JobTable {
	return &JobTable{}
}

// Track waits for j in the background and records its outcome, exactly as
// Spawn's own Background-mode goroutine does, but for a shared table a
// caller can later drain from its main loop rather than per-job Wait.
func (t *JobTable) Track(runner *ProcessRunner, j *Job) {
	go func() {
		err := runner.Wait(j)
		t.mu.Lock()
		t.finished = append(t.finished, FinishedJob{Job: j, Err: err})
		t.mu.Unlock()
	}()
}

// Drain returns every job that has finished since the last Drain and
// clears the list, mirroring a self-pipe read: called once per frame, it
// never blocks.
func (t *JobTable) Drain() []FinishedJob {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.finished) == 0 {
		return nil
	}
	out := t.finished
	t.finished = nil
	return out
}
