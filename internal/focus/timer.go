// Package focus implements the Pomodoro timer. Timer is a pure state
// machine: callers advance it with Tick and persist the sessions Rate
// returns.
package focus

import (
	"errors"
	"fmt"
	"time"

	"github.com/smarted/studykit/internal/progress"
)

// Phase is the current stage of a Pomodoro cycle.
type Phase int

const (
	PhaseSetup  Phase = iota // Choosing durations
	PhaseWork                // Work countdown
	PhaseRating              // Work finished, waiting for a focus rating
	PhaseBreak               // Break countdown
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseWork:
		return "work"
	case PhaseRating:
		return "rating"
	case PhaseBreak:
		return "break"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Config is a work/break length pair in minutes.
type Config struct {
	WorkMinutes  int
	BreakMinutes int
}

// DefaultConfig returns the classic 25/5 cycle.
func DefaultConfig() Config {
	return Config{WorkMinutes: 25, BreakMinutes: 5}
}

// Presets are the cycles offered on the setup screen.
var Presets = []Config{
	{WorkMinutes: 25, BreakMinutes: 5},
	{WorkMinutes: 50, BreakMinutes: 10},
}

// Validate reports whether both lengths are positive.
func (c Config) Validate() error {
	if c.WorkMinutes <= 0 {
		return fmt.Errorf("work minutes must be positive, got %d", c.WorkMinutes)
	}
	if c.BreakMinutes <= 0 {
		return fmt.Errorf("break minutes must be positive, got %d", c.BreakMinutes)
	}
	return nil
}

// ErrWrongPhase is returned when an action is not valid in the current phase.
var ErrWrongPhase = errors.New("action not allowed in this phase")

// Timer tracks one Pomodoro run.
type Timer struct {
	cfg       Config
	phase     Phase
	remaining time.Duration
	running   bool
	// ratedWork is the work length of the block awaiting a rating.
	ratedWork int
	completed int
}

// NewTimer creates a timer in the setup phase.
func NewTimer(cfg Config) (*Timer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Timer{cfg: cfg, phase: PhaseSetup}, nil
}

// Config returns the current cycle lengths.
func (t *Timer) Config() Config { return t.cfg }

// Phase returns the current phase.
func (t *Timer) Phase() Phase { return t.phase }

// Remaining returns the time left in the current countdown.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// Running reports whether the countdown is advancing.
func (t *Timer) Running() bool { return t.running }

// Completed returns how many work blocks have been rated.
func (t *Timer) Completed() int { return t.completed }

// Total returns the full length of the current countdown.
func (t *Timer) Total() time.Duration {
	switch t.phase {
	case PhaseWork:
		return minutes(t.cfg.WorkMinutes)
	case PhaseBreak:
		return minutes(t.cfg.BreakMinutes)
	}
	return 0
}

// Fraction returns the share of the current countdown still left, in [0, 1].
func (t *Timer) Fraction() float64 {
	total := t.Total()
	if total <= 0 {
		return 0
	}
	return float64(t.remaining) / float64(total)
}

// SetConfig changes the cycle lengths. Only allowed during setup.
func (t *Timer) SetConfig(cfg Config) error {
	if t.phase != PhaseSetup {
		return ErrWrongPhase
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	t.cfg = cfg
	return nil
}

// Start begins a work block from setup.
func (t *Timer) Start() error {
	if t.phase != PhaseSetup {
		return ErrWrongPhase
	}
	t.startWork()
	return nil
}

// Toggle pauses or resumes a running countdown.
func (t *Timer) Toggle() {
	if t.phase == PhaseWork || t.phase == PhaseBreak {
		t.running = !t.running
	}
}

// Reset stops the countdown and rewinds to the start of a work block.
func (t *Timer) Reset() {
	if t.phase == PhaseSetup || t.phase == PhaseRating {
		return
	}
	t.phase = PhaseWork
	t.remaining = minutes(t.cfg.WorkMinutes)
	t.running = false
}

// Stop abandons the current block and returns to setup. An unrated block
// is discarded.
func (t *Timer) Stop() {
	t.phase = PhaseSetup
	t.remaining = 0
	t.running = false
	t.ratedWork = 0
}

// Tick advances a running countdown by d and reports whether the phase
// changed. A finished work block waits for a rating; a finished break starts
// the next work block.
func (t *Timer) Tick(d time.Duration) bool {
	if !t.running || d <= 0 {
		return false
	}
	t.remaining -= d
	if t.remaining > 0 {
		return false
	}

	switch t.phase {
	case PhaseWork:
		t.phase = PhaseRating
		t.remaining = 0
		t.running = false
		t.ratedWork = t.cfg.WorkMinutes
	case PhaseBreak:
		t.startWork()
	}
	return true
}

// Rate records the focus quality of the finished work block, starts the
// break and returns the session dated today.
func (t *Timer) Rate(r progress.Rating, today time.Time) (progress.StudySession, error) {
	if t.phase != PhaseRating {
		return progress.StudySession{}, ErrWrongPhase
	}
	s := progress.StudySession{
		Date:    today.Format(progress.DateLayout),
		Minutes: t.ratedWork,
		Rating:  r,
	}
	if err := progress.ValidateStudySession(s); err != nil {
		return progress.StudySession{}, err
	}

	t.completed++
	t.ratedWork = 0
	t.phase = PhaseBreak
	t.remaining = minutes(t.cfg.BreakMinutes)
	t.running = true
	return s, nil
}

func (t *Timer) startWork() {
	t.phase = PhaseWork
	t.remaining = minutes(t.cfg.WorkMinutes)
	t.running = true
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

// FormatClock renders d as MM:SS, rounding partial seconds up.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
