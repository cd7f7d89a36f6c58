package cpu

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// CPUGenerator implements the Generator interface using CPU-based goroutines.
// It coordinates a fixed pool of workers: every event they produce is
// consumed by the Run goroutine, which is the only writer of the run state.
type CPUGenerator struct {
	cfg      generator.Config
	deriver  generator.KeyDeriver
	matcher  *generator.Matcher
	sink     generator.ResultSink
	log      zerolog.Logger
	network  string
	newSeeds func(workerID int) generator.SeedSource
	progress chan generator.Progress
	now      func() time.Time
}

var _ generator.Generator = (*CPUGenerator)(nil)

// Option configures a CPUGenerator.
type Option func(*CPUGenerator)

// WithSink sets where accepted results are persisted.
func WithSink(sink generator.ResultSink) Option {
	return func(g *CPUGenerator) { g.sink = sink }
}

// WithLogger sets the logger used for run lifecycle messages.
func WithLogger(log zerolog.Logger) Option {
	return func(g *CPUGenerator) { g.log = log }
}

// WithNetworkName sets the network name reported to the sink.
func WithNetworkName(name string) Option {
	return func(g *CPUGenerator) { g.network = name }
}

// WithSeedSource sets the factory that gives each worker its own seed source.
func WithSeedSource(newSeeds func(workerID int) generator.SeedSource) Option {
	return func(g *CPUGenerator) { g.newSeeds = newSeeds }
}

// NewCPUGenerator creates a new CPU-based generator. The configuration is
// normalized first and rejected if invalid.
func NewCPUGenerator(cfg generator.Config, deriver generator.KeyDeriver, opts ...Option) (*CPUGenerator, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	if deriver == nil {
		return nil, errors.New("a key deriver is required")
	}

	g := &CPUGenerator{
		cfg:     cfg,
		deriver: deriver,
		matcher: generator.NewMatcher(cfg.Terms, cfg.CaseSensitive),
		sink:    discardSink{},
		log:     zerolog.Nop(),
		newSeeds: func(int) generator.SeedSource {
			return generator.NewRandomSeedSource()
		},
		progress: make(chan generator.Progress, 1),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Name returns the implementation name.
func (g *CPUGenerator) Name() string {
	return "CPU"
}

// Config returns the normalized configuration.
func (g *CPUGenerator) Config() generator.Config {
	return g.cfg
}

// Progress returns the channel progress updates are published on. Only the
// newest update is kept; the channel is closed when Run returns.
func (g *CPUGenerator) Progress() <-chan generator.Progress {
	return g.progress
}

// runState is owned by the Run goroutine.
type runState struct {
	attempts uint64
	results  []generator.ResultRecord
	rates    *generator.RateWindow
	rolling  float64
	start    time.Time
	running  bool
	active   int
	failures []generator.WorkerFailedEvent
	reason   generator.StopReason
}

func (g *CPUGenerator) newRunState() *runState {
	return &runState{
		rates:   generator.NewRateWindow(generator.RateWindowSize),
		start:   g.now(),
		running: true,
		active:  g.cfg.Workers,
	}
}

// Run starts the workers and consumes their events until the result limit
// is reached, ctx is cancelled, the configured timeout expires or no worker
// is left. It returns once every worker has stopped or the shutdown grace
// period has elapsed. Run must only be called once.
func (g *CPUGenerator) Run(ctx context.Context) (*generator.Summary, error) {
	defer close(g.progress)

	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, g.cfg.Timeout, generator.ErrTimeout)
		defer cancel()
	}

	st := g.newRunState()
	if err := g.sink.Begin(generator.RunInfo{
		Network:       g.network,
		Terms:         g.cfg.Terms,
		CaseSensitive: g.cfg.CaseSensitive,
		StartTime:     st.start,
	}); err != nil {
		g.log.Warn().Err(err).Msg("Couldn't initialise result output")
	}

	events := make(chan generator.Event, g.cfg.Workers*2)

	// Closing done is the shutdown broadcast; workers see it between batches.
	done := make(chan struct{})
	var closeOnce sync.Once
	var wg sync.WaitGroup

	for i := 0; i < g.cfg.Workers; i++ {
		w := &worker{
			id:        i,
			batchSize: g.cfg.BatchSize,
			exact:     g.cfg.ExactAttempts,
			seeds:     g.newSeeds(i),
			deriver:   g.deriver,
			matcher:   g.matcher,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(ctx, events, done)
		}()
	}

	g.log.Info().
		Strs("terms", g.cfg.Terms).
		Int("workers", g.cfg.Workers).
		Int("batch", g.cfg.BatchSize).
		Int("limit", g.cfg.MaxResults).
		Msg("Search started")

	for st.running {
		select {
		case ev := <-events:
			g.handle(st, ev)
		case <-ctx.Done():
			st.running = false
			st.reason = generator.StopCancelled
			if errors.Is(context.Cause(ctx), generator.ErrTimeout) {
				st.reason = generator.StopTimeout
			}
		}
	}

	// Shutdown wait is not search time; keep it out of the average rate.
	stopped := g.now()
	closeOnce.Do(func() { close(done) })
	g.awaitWorkers(&wg)

	summary := g.summarize(st, stopped)
	if err := g.sink.Finish(summary.Snapshot()); err != nil {
		g.log.Warn().Err(err).Msg("Couldn't write final stats")
	}

	g.log.Info().
		Stringer("reason", summary.Reason).
		Int("found", summary.Found()).
		Uint64("attempts", summary.Attempts).
		Dur("elapsed", summary.Elapsed).
		Msg("Search stopped")

	if summary.Reason == generator.StopWorkersFailed {
		return summary, generator.ErrAllWorkersFailed
	}
	return summary, nil
}

func (g *CPUGenerator) handle(st *runState, ev generator.Event) {
	switch ev := ev.(type) {
	case generator.MatchEvent:
		g.handleMatch(st, ev)
	case generator.ProgressEvent:
		g.handleProgress(st, ev)
	case generator.WorkerFailedEvent:
		g.handleFailure(st, ev)
	}
}

// limitReached reports whether no further result may be recorded.
func (g *CPUGenerator) limitReached(st *runState) bool {
	return !g.cfg.Unbounded() && len(st.results) >= g.cfg.MaxResults
}

func (g *CPUGenerator) handleMatch(st *runState, ev generator.MatchEvent) {
	// Several workers can hit the limit at once; late matches are dropped.
	if g.limitReached(st) {
		return
	}

	now := g.now()
	rec := generator.ResultRecord{
		ID:         len(st.results) + 1,
		Address:    ev.Address,
		PrivateKey: ev.PrivateKey,
		Term:       ev.Term,
		Quality:    g.matcher.Score(ev.Address),
		Timestamp:  now,
		Attempts:   st.attempts,
	}
	st.results = append(st.results, rec)

	g.log.Debug().
		Int("id", rec.ID).
		Int("worker", ev.WorkerID).
		Str("address", rec.Address).
		Str("term", rec.Term).
		Int("quality", rec.Quality).
		Msg("Match recorded")

	if err := g.sink.Record(rec, st.snapshot(now)); err != nil {
		g.log.Warn().Err(err).Int("id", rec.ID).Msg("Couldn't persist result")
	}

	if g.limitReached(st) {
		st.running = false
		st.reason = generator.StopLimit
	}
}

func (g *CPUGenerator) handleProgress(st *runState, ev generator.ProgressEvent) {
	st.attempts += ev.Attempts

	elapsed := g.now().Sub(st.start)
	st.rates.Push(generator.RatePerSecond(st.attempts, elapsed))
	st.rolling = st.rates.Average()

	g.publish(generator.Progress{
		Attempts:      st.attempts,
		RollingRate:   st.rolling,
		Found:         len(st.results),
		Elapsed:       elapsed,
		ActiveWorkers: st.active,
	})
}

func (g *CPUGenerator) handleFailure(st *runState, ev generator.WorkerFailedEvent) {
	st.active--
	st.failures = append(st.failures, ev)

	// Failed workers are not respawned: a broken entropy source would
	// only fail again.
	g.log.Error().
		Err(ev.Err).
		Int("worker", ev.WorkerID).
		Int("active", st.active).
		Msg("Worker failed")

	if st.active <= 0 {
		st.running = false
		st.reason = generator.StopWorkersFailed
	}
}

// publish hands a progress update to the display without ever blocking.
// A stale update still waiting in the channel is replaced.
func (g *CPUGenerator) publish(p generator.Progress) {
	select {
	case g.progress <- p:
		return
	default:
	}
	select {
	case <-g.progress:
	default:
	}
	select {
	case g.progress <- p:
	default:
	}
}

// awaitWorkers waits for all workers to acknowledge shutdown, giving up
// after the grace period.
func (g *CPUGenerator) awaitWorkers(wg *sync.WaitGroup) {
	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	timer := time.NewTimer(g.cfg.ShutdownGrace)
	defer timer.Stop()

	select {
	case <-finished:
	case <-timer.C:
		g.log.Warn().Dur("grace", g.cfg.ShutdownGrace).Msg("Workers still running after shutdown grace period")
	}
}

func (st *runState) snapshot(now time.Time) generator.Snapshot {
	return generator.Snapshot{
		Found:    len(st.results),
		Attempts: st.attempts,
		Rate:     generator.RatePerSecond(st.attempts, now.Sub(st.start)),
	}
}

func (g *CPUGenerator) summarize(st *runState, stopped time.Time) *generator.Summary {
	elapsed := stopped.Sub(st.start)
	results := make([]generator.ResultRecord, len(st.results))
	copy(results, st.results)

	return &generator.Summary{
		Results:     results,
		Attempts:    st.attempts,
		Elapsed:     elapsed,
		AverageRate: generator.RatePerSecond(st.attempts, elapsed),
		RollingRate: st.rolling,
		Reason:      st.reason,
		Failures:    st.failures,
	}
}

// discardSink is used when no sink is configured.
type discardSink struct{}

func (discardSink) Begin(generator.RunInfo) error                           { return nil }
func (discardSink) Record(generator.ResultRecord, generator.Snapshot) error { return nil }
func (discardSink) Finish(generator.Snapshot) error                         { return nil }
