package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/config"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/logging"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/metrics"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/providers"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/queue"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/rotation"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/scheduler"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/store"
)

// Scoreboard is the host-facing facade: it owns the fetch pipeline and the
// display rotation. The host calls Start once, Tick every frame, and reads
// DisplayState to render. Fetch errors never surface here; they only degrade
// a league's freshness.
type Scoreboard struct {
	cfg      config.Config
	logger   *slog.Logger
	metrics  *metrics.Recorder
	pool     *queue.Pool
	store    *store.SnapshotStore
	sched    *scheduler.Scheduler
	rotation *rotation.Controller

	cancel   context.CancelFunc
	writerWG sync.WaitGroup
	startMu  sync.Mutex
	started  bool
	stopOnce sync.Once
}

// New wires a scoreboard from configuration and a score provider.
func New(cfg config.Config, provider providers.ScoreProvider, logger *slog.Logger, recorder *metrics.Recorder) *Scoreboard {
	snapStore := store.NewSnapshotStore(cfg.Leagues)
	pool := queue.NewPool(provider, logger, recorder, queue.Options{
		Workers:        cfg.Background.Workers,
		MaxAttempts:    cfg.Background.MaxRetries,
		InitialBackoff: cfg.Background.InitialBackoff(),
		MaxBackoff:     cfg.Background.MaxBackoff(),
	})

	return &Scoreboard{
		cfg:      cfg,
		logger:   logger,
		metrics:  recorder,
		pool:     pool,
		store:    snapStore,
		sched:    scheduler.New(cfg.Leagues, pool, logger),
		rotation: rotation.New(cfg.Leagues, snapStore, cfg.DisplayDuration(), cfg.ShowRecords, cfg.ShowRanking),
	}
}

// Start launches the worker pool and the snapshot writer. Calling Start twice
// is a no-op.
func (s *Scoreboard) Start(ctx context.Context) {
	s.startMu.Lock()
	defer s.startMu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	s.pool.Start(ctx)

	s.writerWG.Add(1)
	go func() {
		defer s.writerWG.Done()
		s.consumeResults(ctx)
	}()

	logging.Info(s.logger, "scoreboard started",
		logging.FieldCount, len(s.cfg.EnabledLeagues()),
	)
}

// Stop shuts down the fetch pipeline. In-flight jobs finish or are abandoned;
// the snapshot store is never corrupted because writes are whole-list swaps.
func (s *Scoreboard) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		s.pool.Close()
		s.writerWG.Wait()
		logging.Info(s.logger, "scoreboard stopped")
	})
	return nil
}

// Tick advances scheduling and rotation. The host calls this once per
// frame/update cycle; it never blocks on network I/O.
func (s *Scoreboard) Tick(now time.Time) {
	s.sched.Tick(now)
	s.rotation.Advance(now)
}

// DisplayState returns what the renderer should draw, if anything.
func (s *Scoreboard) DisplayState() (domain.DisplayState, bool) {
	return s.rotation.Current()
}

// Snapshots exposes copies of every league snapshot for introspection.
func (s *Scoreboard) Snapshots() []domain.Snapshot {
	return s.store.Snapshots()
}

// consumeResults applies terminal job outcomes to the store and releases the
// scheduler slot. A late result for a superseded job is still applied: jobs
// replace whole lists, so the write is safe, merely possibly stale, and the
// next scheduled fetch supersedes it within one interval.
func (s *Scoreboard) consumeResults(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case res, ok := <-s.pool.Results():
			if !ok {
				return
			}
			s.applyResult(res)
		}
	}
}

func (s *Scoreboard) applyResult(res queue.Result) {
	if res.Err != nil {
		s.store.MarkStale(res.Job.League)
		s.metrics.RecordStale(res.Job.League)
		logging.Error(s.logger, "league snapshot marked stale", res.Err,
			logging.FieldLeague, res.Job.League,
			logging.FieldMode, string(res.Job.Mode),
			logging.FieldAttempt, res.Job.Attempts,
		)
	} else {
		s.store.Put(res.Job.League, res.Job.Mode, res.Games, res.CompletedAt)
		s.metrics.RecordSuccess(res.Job.League, res.CompletedAt)
		logging.Info(s.logger, "league snapshot updated",
			logging.FieldLeague, res.Job.League,
			logging.FieldMode, string(res.Job.Mode),
			logging.FieldCount, len(res.Games),
		)
	}
	// The scheduler runs on the host tick clock, so the next interval is
	// anchored on the job's enqueue time rather than the wall-clock
	// completion stamp.
	s.sched.Complete(res.Job.League, res.Job.Mode, res.Job.EnqueuedAt)
}

// Status summarizes the scoreboard for operators.
type Status struct {
	EnabledLeagues []string             `json:"enabledLeagues"`
	Snapshots      []domain.Snapshot    `json:"snapshots"`
	PendingFetches int                  `json:"pendingFetches"`
	QueueDepth     int                  `json:"queueDepth"`
	RotationSize   int                  `json:"rotationSize"`
	Current        *domain.DisplayState `json:"current,omitempty"`
}

// Status reports the current pipeline state.
func (s *Scoreboard) Status() Status {
	st := Status{
		Snapshots:      s.store.Snapshots(),
		PendingFetches: s.sched.Pending(),
		QueueDepth:     s.pool.Depth(),
		RotationSize:   s.rotation.Len(),
	}
	for _, l := range s.cfg.EnabledLeagues() {
		st.EnabledLeagues = append(st.EnabledLeagues, l.Key)
	}
	if current, ok := s.rotation.Current(); ok {
		st.Current = &current
	}
	return st
}

// Ready reports whether at least one league has a fresh snapshot.
func (s *Scoreboard) Ready() bool {
	for _, snap := range s.store.Snapshots() {
		if !snap.UpdatedAt.IsZero() && !snap.Stale {
			return true
		}
	}
	return false
}
