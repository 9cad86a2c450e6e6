package domain

import (
	"errors"
	"fmt"
)

// sentinel errors shared by all components
var (
	ErrNoCandidates         = errors.New("no candidates left after filtering")
	ErrExpiredSession       = errors.New("session expired")
	ErrInvalidInput         = errors.New("input not valid for session state")
	ErrDuplicateFeedback    = errors.New("feedback already recorded for recommendation")
	ErrConcurrentEvaluation = errors.New("post evaluation already in progress")
	ErrJobRunning           = errors.New("job already running")
	ErrUnknownJob           = errors.New("unknown job")
	ErrUpstreamSync         = errors.New("upstream sync failed")
	ErrAmbiguousTime        = errors.New("timestamp without explicit offset")
	ErrNotFound             = errors.New("not found")
)

// JobError wraps a failure of a scheduled job with the job name
type JobError struct {
	Job string
	Err error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %s: %v", e.Job, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}
