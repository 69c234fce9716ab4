package metrics

import (
	"sync"
	"time"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
)

type leagueStats struct {
	attempts        int
	errors          int
	retries         int
	staleMarks      int
	lastCallLatency time.Duration
	lastSuccess     time.Time
}

// Recorder captures lightweight, in-memory metrics about fetch activity.
// All methods are nil-safe so components can run without telemetry wired.
type Recorder struct {
	mu         sync.Mutex
	stats      map[string]*leagueStats
	queueDepth int
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*leagueStats),
		otel:  otel,
	}
}

// RecordFetchAttempt counts one provider call and stores its latency.
func (r *Recorder) RecordFetchAttempt(league string, mode domain.Mode, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(league)
	stats.attempts++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(league, mode, duration, err)
	}
}

// RecordRetry counts a retry of a fetch job.
func (r *Recorder) RecordRetry(league string, mode domain.Mode) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureStats(league).retries++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRetry(league, mode)
	}
}

// RecordStale counts a league snapshot being marked stale.
func (r *Recorder) RecordStale(league string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureStats(league).staleMarks++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStale(league)
	}
}

// RecordSuccess stamps the last successful fetch for the league.
func (r *Recorder) RecordSuccess(league string, at time.Time) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureStats(league).lastSuccess = at
	r.mu.Unlock()
}

// SetQueueDepth records the current number of pending fetch jobs.
func (r *Recorder) SetQueueDepth(depth int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.queueDepth = depth
	r.mu.Unlock()
}

// QueueDepth returns the last recorded queue depth.
func (r *Recorder) QueueDepth() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queueDepth
}

// Snapshot is a copy of the current stats for one league.
type Snapshot struct {
	Attempts        int
	Errors          int
	Retries         int
	StaleMarks      int
	LastCallLatency time.Duration
	LastSuccess     time.Time
}

// LeagueSnapshot returns a copy of the stats for the league.
func (r *Recorder) LeagueSnapshot(league string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[league]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Attempts:        stats.attempts,
		Errors:          stats.errors,
		Retries:         stats.retries,
		StaleMarks:      stats.staleMarks,
		LastCallLatency: stats.lastCallLatency,
		LastSuccess:     stats.lastSuccess,
	}
}

// caller must hold r.mu.
func (r *Recorder) ensureStats(league string) *leagueStats {
	stats, ok := r.stats[league]
	if !ok {
		stats = &leagueStats{}
		r.stats[league] = stats
	}
	return stats
}
