// Package session tracks progress and timing for one drill run.
package session

import (
	"errors"
	"math"
	"time"
)

// ErrNotFinished is returned when elapsed time is queried mid-session.
var ErrNotFinished = errors.New("session not finished")

// Tracker counts problems shown and solved and measures wall-clock duration.
// Invariant: 0 <= solved <= displayed <= problems.
type Tracker struct {
	problems  int
	displayed int
	solved    int

	startedAt time.Time
	endedAt   time.Time
	finished  bool

	now func() time.Time
}

// New returns a Tracker for a run of the given number of problems.
func New(problems int) *Tracker {
	return &Tracker{problems: problems, now: time.Now}
}

// Begin resets the counters and stamps the start time.
func (t *Tracker) Begin() {
	t.displayed = 0
	t.solved = 0
	t.finished = false
	t.startedAt = t.now()
	t.endedAt = time.Time{}
}

// Finish stamps the end time.
func (t *Tracker) Finish() {
	t.endedAt = t.now()
	t.finished = true
}

// MarkDisplayed records one more problem shown, capped at the configured total.
func (t *Tracker) MarkDisplayed() {
	if t.displayed < t.problems {
		t.displayed++
	}
}

// MarkSolved records one more correct answer, capped at the displayed count.
func (t *Tracker) MarkSolved() {
	if t.solved < t.displayed {
		t.solved++
	}
}

// Problems returns the configured number of problems.
func (t *Tracker) Problems() int { return t.problems }

// Displayed returns the number of problems shown so far.
func (t *Tracker) Displayed() int { return t.displayed }

// Solved returns the number of problems answered correctly.
func (t *Tracker) Solved() int { return t.solved }

// Done reports whether every configured problem has been shown.
func (t *Tracker) Done() bool { return t.displayed == t.problems }

// ElapsedSeconds returns the session duration rounded to one decimal place.
// It fails with ErrNotFinished until Finish has been called, so callers can
// never observe a stale duration.
func (t *Tracker) ElapsedSeconds() (float64, error) {
	if !t.finished {
		return 0, ErrNotFinished
	}
	seconds := t.endedAt.Sub(t.startedAt).Seconds()
	return math.Round(seconds*10) / 10, nil
}
