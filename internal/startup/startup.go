// Package startup runs a one-shot job shortly after the process starts.
package startup

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// State is the job lifecycle: Idle -> Scheduled -> Fired -> Done.
type State int

const (
	Idle State = iota
	Scheduled
	Fired
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scheduled:
		return "scheduled"
	case Fired:
		return "fired"
	case Done:
		return "done"
	}
	return "unknown"
}

// Step is one named unit of the job.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// StepResult records the outcome of a step.
type StepResult struct {
	Name     string        `json:"name"`
	OK       bool          `json:"ok"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Job fires its steps once, Delay after Schedule. Steps run in order and
// each is isolated: an error or panic in one does not stop the next.
// Nothing is persisted; a job that never fires is simply lost.
type Job struct {
	Delay       time.Duration
	StepTimeout time.Duration

	steps []Step
	log   *slog.Logger

	armOnce  sync.Once
	fireOnce sync.Once
	done     chan struct{}

	mu      sync.RWMutex
	state   State
	results []StepResult
}

func New(delay time.Duration, log *slog.Logger, steps ...Step) *Job {
	if delay < 0 {
		delay = 0
	}
	if log == nil {
		log = slog.Default()
	}
	return &Job{Delay: delay, StepTimeout: 2 * time.Minute, steps: steps, log: log, done: make(chan struct{})}
}

// Schedule arms the timer. Only the first call has an effect. If ctx ends
// before the delay elapses the job never fires.
func (j *Job) Schedule(ctx context.Context) {
	j.armOnce.Do(func() {
		j.mu.Lock()
		if j.state != Idle {
			j.mu.Unlock()
			return
		}
		j.state = Scheduled
		j.mu.Unlock()
		j.log.Info("startup job scheduled", "delay", j.Delay, "steps", len(j.steps))
		go func() {
			t := time.NewTimer(j.Delay)
			defer t.Stop()
			select {
			case <-ctx.Done():
				j.log.Warn("startup job dropped before firing", "error", ctx.Err())
			case <-t.C:
				j.Fire(ctx)
			}
		}()
	})
}

// Fire runs the steps now. It runs at most once per Job; later calls return
// immediately.
func (j *Job) Fire(ctx context.Context) {
	j.fireOnce.Do(func() {
		j.setState(Fired)
		results := make([]StepResult, 0, len(j.steps))
		for _, s := range j.steps {
			res := j.runStep(ctx, s)
			results = append(results, res)
			if res.OK {
				j.log.Info("startup step done", "step", res.Name, "duration", res.Duration)
			} else {
				j.log.Error("startup step failed", "step", res.Name, "duration", res.Duration, "error", res.Error)
			}
		}
		j.mu.Lock()
		j.results = results
		j.state = Done
		j.mu.Unlock()
		close(j.done)
	})
}

func (j *Job) runStep(ctx context.Context, s Step) (res StepResult) {
	res.Name = s.Name
	start := time.Now()
	if j.StepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.StepTimeout)
		defer cancel()
	}
	defer func() {
		if rec := recover(); rec != nil {
			res.OK = false
			res.Error = fmt.Sprintf("panic: %v", rec)
		}
		res.Duration = time.Since(start)
	}()
	if s.Run == nil {
		res.Error = "step has no action"
		return res
	}
	if err := s.Run(ctx); err != nil {
		res.Error = err.Error()
		return res
	}
	res.OK = true
	return res
}

func (j *Job) setState(s State) {
	j.mu.Lock()
	j.state = s
	j.mu.Unlock()
}

func (j *Job) State() State {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.state
}

// Results returns a copy of the step results; empty until the job is done.
func (j *Job) Results() []StepResult {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]StepResult, len(j.results))
	copy(out, j.results)
	return out
}

// Done is closed once every step has run.
func (j *Job) Done() <-chan struct{} { return j.done }
