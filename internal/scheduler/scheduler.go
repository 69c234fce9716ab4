package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/config"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/logging"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/queue"
)

// Enqueuer accepts fetch jobs; satisfied by *queue.Pool.
type Enqueuer interface {
	Enqueue(job queue.Job)
}

type slotState int

const (
	stateIdle slotState = iota
	stateEnqueued
)

// slot tracks one league+mode fetch cadence.
type slot struct {
	league   string
	mode     domain.Mode
	interval time.Duration
	state    slotState
	// lastResult is when the previous job reached a terminal outcome,
	// success or failure. Failures also reset the timer so an unhealthy
	// endpoint is retried on its interval instead of hot-looped.
	lastResult time.Time
}

// Scheduler decides when each league+mode is due for a fetch and enqueues
// jobs. It is driven by an external Tick, so tests run on simulated time.
// A league+mode already enqueued is never enqueued again until its result
// is observed.
type Scheduler struct {
	mu     sync.Mutex
	slots  []*slot
	enq    Enqueuer
	logger *slog.Logger
}

// New builds a scheduler covering every enabled mode of every enabled league.
func New(leagues []config.LeagueConfig, enq Enqueuer, logger *slog.Logger) *Scheduler {
	var slots []*slot
	for _, l := range leagues {
		if !l.Enabled {
			continue
		}
		for _, mode := range domain.Modes() {
			if !l.ModeEnabled(mode) {
				continue
			}
			slots = append(slots, &slot{
				league:   l.Key,
				mode:     mode,
				interval: l.Interval(mode),
			})
		}
	}
	return &Scheduler{slots: slots, enq: enq, logger: logger}
}

// Tick enqueues a job for every slot whose interval has elapsed. On the first
// tick every slot is due, warming all leagues on boot.
func (s *Scheduler) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sl := range s.slots {
		if sl.state != stateIdle {
			continue
		}
		if !sl.lastResult.IsZero() && now.Sub(sl.lastResult) < sl.interval {
			continue
		}

		sl.state = stateEnqueued
		s.enq.Enqueue(queue.Job{
			League:     sl.league,
			Mode:       sl.mode,
			Priority:   queue.PriorityForMode(sl.mode),
			EnqueuedAt: now,
		})
		logging.Info(s.logger, "fetch scheduled",
			logging.FieldLeague, sl.league,
			logging.FieldMode, string(sl.mode),
		)
	}
}

// Complete returns the league+mode slot to idle after its job's terminal
// result was observed, starting the next interval from `at`. Callers must
// pass a time from the same clock that drives Tick.
func (s *Scheduler) Complete(league string, mode domain.Mode, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sl := range s.slots {
		if sl.league == league && sl.mode == mode {
			sl.state = stateIdle
			sl.lastResult = at
			return
		}
	}
}

// Pending returns how many slots are waiting on a job result.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sl := range s.slots {
		if sl.state == stateEnqueued {
			n++
		}
	}
	return n
}
