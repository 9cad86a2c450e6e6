// Package scheduler runs named recurring jobs, each on its own cadence and timer.
// A job never overlaps with itself, failures and panics of one job never affect the others.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/onepick/pkg/domain"
)

//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// Status is the result class of a job run
type Status string

// run statuses
const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailure Status = "failure"
)

// Outcome reports a single job run
type Outcome struct {
	Status   Status
	Err      error
	Details  string
	Started  time.Time
	Duration time.Duration
}

// Success makes a successful outcome
func Success(format string, args ...any) Outcome {
	return Outcome{Status: StatusSuccess, Details: fmt.Sprintf(format, args...)}
}

// Partial makes an outcome of a run that did part of its work
func Partial(err error, format string, args ...any) Outcome {
	return Outcome{Status: StatusPartial, Err: err, Details: fmt.Sprintf(format, args...)}
}

// Failure makes a failed outcome
func Failure(err error) Outcome {
	return Outcome{Status: StatusFailure, Err: err}
}

// Job is a named unit of recurring work
type Job struct {
	Name       string
	Schedule   Schedule
	Run        func(ctx context.Context) Outcome
	RunOnStart bool // run once right after Start, then follow the schedule
}

// Recorder receives the result of every run
type Recorder interface {
	JobFinished(name, status string, d time.Duration)
}

// JobInfo describes a registered job
type JobInfo struct {
	Name     string
	Schedule string
	Running  bool
	NextRun  time.Time
	Last     *Outcome
}

type entry struct {
	job     Job
	running atomic.Bool

	mu   sync.Mutex
	next time.Time
	last *Outcome
}

// Params defines scheduler dependencies
type Params struct {
	Jobs     []Job
	Recorder Recorder // optional
}

// Scheduler owns the job loops
type Scheduler struct {
	entries  map[string]*entry
	recorder Recorder
	now      func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler makes a scheduler for the given jobs. Job names must be unique.
func NewScheduler(params Params) (*Scheduler, error) {
	s := &Scheduler{entries: make(map[string]*entry, len(params.Jobs)), recorder: params.Recorder, now: time.Now}
	for _, j := range params.Jobs {
		if j.Name == "" || j.Run == nil || j.Schedule == nil {
			return nil, fmt.Errorf("job %q is incomplete", j.Name)
		}
		if d, ok := j.Schedule.(every); ok && d <= 0 {
			return nil, fmt.Errorf("job %q interval must be positive, got %v", j.Name, time.Duration(d))
		}
		if _, ok := s.entries[j.Name]; ok {
			return nil, fmt.Errorf("duplicate job %q", j.Name)
		}
		s.entries[j.Name] = &entry{job: j}
	}
	return s, nil
}

// Start launches one loop per job. Loops stop on ctx cancellation or Stop.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	for _, e := range s.entries {
		s.wg.Add(1)
		go s.loop(ctx, e)
	}
	lgr.Printf("[INFO] scheduler started with %d jobs", len(s.entries))
}

// Stop cancels all loops and waits for in-flight runs to return
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// RunJob runs the named job now. Returns ErrUnknownJob for an unregistered name and
// ErrJobRunning if the job is already in flight, from its timer or another manual run.
// Job failures are reported in the outcome, not as the error.
func (s *Scheduler) RunJob(ctx context.Context, name string) (Outcome, error) {
	e, ok := s.entries[name]
	if !ok {
		return Outcome{}, fmt.Errorf("run %q: %w", name, domain.ErrUnknownJob)
	}
	return s.execute(ctx, e)
}

// Jobs lists registered jobs sorted by name
func (s *Scheduler) Jobs() []JobInfo {
	res := make([]JobInfo, 0, len(s.entries))
	for _, e := range s.entries {
		e.mu.Lock()
		info := JobInfo{Name: e.job.Name, Schedule: e.job.Schedule.String(), Running: e.running.Load(), NextRun: e.next}
		if e.last != nil {
			last := *e.last
			info.Last = &last
		}
		e.mu.Unlock()
		res = append(res, info)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

func (s *Scheduler) loop(ctx context.Context, e *entry) {
	defer s.wg.Done()

	if e.job.RunOnStart {
		s.tick(ctx, e)
	}

	for {
		next := e.job.Schedule.Next(s.now())
		if next.IsZero() {
			lgr.Printf("[WARN] job %s has no next run, loop stopped", e.job.Name)
			return
		}
		e.mu.Lock()
		e.next = next
		e.mu.Unlock()

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.tick(ctx, e)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, e *entry) {
	if _, err := s.execute(ctx, e); errors.Is(err, domain.ErrJobRunning) {
		lgr.Printf("[INFO] job %s skipped, previous run still in progress", e.job.Name)
	}
}

// execute runs the job under its overlap guard, converting panics into failures
func (s *Scheduler) execute(ctx context.Context, e *entry) (Outcome, error) {
	name := e.job.Name
	if !e.running.CompareAndSwap(false, true) {
		return Outcome{}, fmt.Errorf("run %q: %w", name, domain.ErrJobRunning)
	}
	defer e.running.Store(false)

	started := s.now()
	lgr.Printf("[DEBUG] job %s started", name)
	out := s.safeRun(ctx, e.job)
	out.Started = started
	out.Duration = s.now().Sub(started)

	if out.Status == "" {
		out.Status = StatusSuccess
		if out.Err != nil {
			out.Status = StatusFailure
		}
	}
	if out.Err != nil {
		var jerr *domain.JobError
		if !errors.As(out.Err, &jerr) {
			out.Err = &domain.JobError{Job: name, Err: out.Err}
		}
	}

	switch out.Status {
	case StatusSuccess:
		lgr.Printf("[INFO] job %s completed in %v: %s", name, out.Duration.Round(time.Millisecond), out.Details)
	case StatusPartial:
		lgr.Printf("[WARN] job %s partially completed in %v: %s, %v", name, out.Duration.Round(time.Millisecond), out.Details, out.Err)
	default:
		lgr.Printf("[ERROR] job %s failed in %v: %v", name, out.Duration.Round(time.Millisecond), out.Err)
	}

	e.mu.Lock()
	last := out
	e.last = &last
	e.mu.Unlock()

	if s.recorder != nil {
		s.recorder.JobFinished(name, string(out.Status), out.Duration)
	}
	return out, nil
}

func (s *Scheduler) safeRun(ctx context.Context, job Job) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] job %s panicked: %v\n%s", job.Name, r, debug.Stack())
			out = Outcome{Status: StatusFailure, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return job.Run(ctx)
}
