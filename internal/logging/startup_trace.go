package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace records lifecycle milestones from process launch until the
// window is on screen. Milestones are logged at debug level as they happen and
// summarized once by Finish.
type StartupTrace struct {
	mu         sync.Mutex
	now        func() time.Time
	t0         time.Time
	milestones []Milestone
	logger     *zerolog.Logger
	finished   bool
}

// Milestone represents a timing checkpoint during startup.
type Milestone struct {
	Name    string
	Elapsed time.Duration // time since t0
	Delta   time.Duration // time since previous milestone
}

// NewStartupTrace starts a trace at the current time. A nil logger disables output
// but milestones are still recorded.
func NewStartupTrace(logger *zerolog.Logger) *StartupTrace {
	return newStartupTrace(logger, time.Now)
}

func newStartupTrace(logger *zerolog.Logger, now func() time.Time) *StartupTrace {
	return &StartupTrace{
		now:        now,
		t0:         now(),
		milestones: make([]Milestone, 0, 8),
		logger:     logger,
	}
}

// Mark records a milestone. Marks after Finish are ignored.
func (st *StartupTrace) Mark(name string) {
	if st == nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}

	elapsed := st.now().Sub(st.t0)
	var delta time.Duration
	if n := len(st.milestones); n > 0 {
		delta = elapsed - st.milestones[n-1].Elapsed
	}

	m := Milestone{Name: name, Elapsed: elapsed, Delta: delta}
	st.milestones = append(st.milestones, m)
	st.emitMilestone(m)
}

// emitMilestone logs a single milestone. Caller must hold mutex.
func (st *StartupTrace) emitMilestone(m Milestone) {
	if st.logger == nil {
		return
	}

	elapsedMs := m.Elapsed.Milliseconds()
	event := st.logger.Debug().
		Str("milestone", m.Name).
		Int64("t_ms", elapsedMs)

	if m.Delta > 0 {
		event.Int64("delta_ms", m.Delta.Milliseconds()).
			Msgf("startup_trace: %s (T+%dms, +%dms)", m.Name, elapsedMs, m.Delta.Milliseconds())
		return
	}
	event.Msgf("startup_trace: %s (T+%dms)", m.Name, elapsedMs)
}

// Finish closes the trace and logs a one-line summary. Only the first call counts.
func (st *StartupTrace) Finish() {
	if st == nil {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}
	st.finished = true

	if st.logger == nil {
		return
	}

	st.logger.Info().
		Int64("total_ms", st.now().Sub(st.t0).Milliseconds()).
		Str("milestones", st.summary()).
		Msg("startup_trace: pane wall ready")
}

func (st *StartupTrace) summary() string {
	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}
	return strings.Join(parts, ",")
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Milestone(nil), st.milestones...)
}
