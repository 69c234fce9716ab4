package queue

import (
	"container/heap"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/logging"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/metrics"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/providers"
)

const (
	defaultWorkers      = 2
	defaultMaxAttempts  = 3
	defaultInitialDelay = 500 * time.Millisecond
	defaultMaxDelay     = 5 * time.Second
	defaultResultBuffer = 16
	wakeBuffer          = 1024
)

// Options tunes the worker pool.
type Options struct {
	Workers        int
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	ResultBuffer   int
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = defaultWorkers
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultMaxAttempts
	}
	if o.InitialBackoff <= 0 {
		o.InitialBackoff = defaultInitialDelay
	}
	if o.MaxBackoff < o.InitialBackoff {
		o.MaxBackoff = defaultMaxDelay
	}
	if o.ResultBuffer <= 0 {
		o.ResultBuffer = defaultResultBuffer
	}
	return o
}

// Pool executes fetch jobs with a bounded number of workers, retrying
// transient failures with exponential backoff. Jobs are drawn in priority
// order, FIFO within a level, so a stalled league cannot starve others beyond
// its own bounded attempts.
type Pool struct {
	provider providers.ScoreProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	opts     Options

	mu      sync.Mutex
	pending jobHeap
	seq     uint64

	wake    chan struct{}
	results chan Result

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	startMu   sync.Mutex
	started   bool
	closeOnce sync.Once
}

// NewPool constructs a pool with sane defaults.
func NewPool(provider providers.ScoreProvider, logger *slog.Logger, recorder *metrics.Recorder, opts Options) *Pool {
	opts = opts.withDefaults()
	return &Pool{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
		opts:     opts,
		wake:     make(chan struct{}, wakeBuffer),
		results:  make(chan Result, opts.ResultBuffer),
	}
}

// Start launches the workers. Calling Start twice is a no-op.
func (p *Pool) Start(ctx context.Context) {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.started {
		return
	}
	p.started = true

	ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.opts.Workers; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			p.runWorker(ctx, id)
		}(i + 1)
	}
	logging.Info(p.logger, "fetch pool started", logging.FieldCount, p.opts.Workers)
}

// Enqueue adds a job to the pending heap.
func (p *Pool) Enqueue(job Job) {
	p.mu.Lock()
	p.seq++
	job.seq = p.seq
	heap.Push(&p.pending, &job)
	depth := p.pending.Len()
	p.mu.Unlock()

	p.metrics.SetQueueDepth(depth)
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Results delivers one terminal Result per job, success or failure.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Depth returns the number of jobs waiting to be picked up.
func (p *Pool) Depth() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending.Len()
}

// Close stops the workers and waits for them to finish, then closes the
// results channel. In-flight jobs are abandoned mid-attempt; the snapshot
// store is never left partially written because results apply whole lists.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
		p.wg.Wait()
		close(p.results)
		logging.Info(p.logger, "fetch pool stopped")
	})
}

func (p *Pool) runWorker(ctx context.Context, id int) {
	for {
		job, ok := p.pop()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-p.wake:
				continue
			}
		}
		p.runJob(ctx, job)
	}
}

func (p *Pool) pop() (*Job, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending.Len() == 0 {
		return nil, false
	}
	job := heap.Pop(&p.pending).(*Job)
	p.metrics.SetQueueDepth(p.pending.Len())
	return job, true
}

// runJob executes the fetch with bounded retries. Only transient failures
// (timeouts, network errors) are retried; backoff delays between attempts are
// non-decreasing.
func (p *Pool) runJob(ctx context.Context, job *Job) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.opts.InitialBackoff
	bo.MaxInterval = p.opts.MaxBackoff
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0

	var lastErr error
	for attempt := 1; attempt <= p.opts.MaxAttempts; attempt++ {
		job.Attempts = attempt

		start := time.Now()
		games, err := p.provider.FetchGames(ctx, job.League, job.Mode)
		p.metrics.RecordFetchAttempt(job.League, job.Mode, time.Since(start), err)
		if err == nil {
			p.deliver(ctx, Result{Job: *job, Games: games, CompletedAt: time.Now()})
			return
		}
		lastErr = err

		if !providers.Retryable(err) || attempt == p.opts.MaxAttempts {
			break
		}

		p.metrics.RecordRetry(job.League, job.Mode)
		logging.Warn(p.logger, "fetch retry",
			logging.FieldLeague, job.League,
			logging.FieldMode, string(job.Mode),
			logging.FieldAttempt, attempt,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(bo.NextBackOff()):
		}
	}

	logging.Warn(p.logger, "fetch failed",
		logging.FieldLeague, job.League,
		logging.FieldMode, string(job.Mode),
		logging.FieldAttempt, job.Attempts,
		"error", lastErr,
	)
	p.deliver(ctx, Result{Job: *job, Err: lastErr, CompletedAt: time.Now()})
}

func (p *Pool) deliver(ctx context.Context, res Result) {
	select {
	case p.results <- res:
	case <-ctx.Done():
	}
}
