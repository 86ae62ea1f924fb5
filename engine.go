package sysloggen

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-log/log"
)

// Engine runs a DispatchPlan with one goroutine per worker.
type Engine struct {
	Pools   *ContentPools
	Sender  *Sender
	Limiter Limiter  // optional, shared by all workers
	Metrics *Metrics // optional
	// Strategy selects source addresses from the source pool, "random" or "round".
	Strategy string
	// Seed is the base seed of the per-worker random generators, 0 picks random seeds.
	Seed int64

	counters runCounters
}

type runCounters struct {
	attempted int64
	sent      int64
	skipped   int64
	failed    int64
}

func (c *runCounters) reset() {
	atomic.StoreInt64(&c.attempted, 0)
	atomic.StoreInt64(&c.sent, 0)
	atomic.StoreInt64(&c.skipped, 0)
	atomic.StoreInt64(&c.failed, 0)
}

func (c *runCounters) load(r *RunResult) {
	r.Attempted = atomic.LoadInt64(&c.attempted)
	r.Sent = atomic.LoadInt64(&c.sent)
	r.Skipped = atomic.LoadInt64(&c.skipped)
	r.Failed = atomic.LoadInt64(&c.failed)
}

// Progress returns the counters of the current or last run.
// It is safe to call while Run is in progress.
func (e *Engine) Progress() RunResult {
	var r RunResult
	e.counters.load(&r)
	return r
}

// Run sends the whole plan and blocks until every worker is done.
// Per-send faults never stop a worker; they are counted in the result.
// Cancelling ctx stops the workers before their next send.
func (e *Engine) Run(ctx context.Context, plan *DispatchPlan) (RunResult, error) {
	if plan == nil {
		return RunResult{}, ErrInvalidPlan
	}
	if err := plan.Validate(); err != nil {
		return RunResult{}, err
	}
	if e.Sender == nil {
		e.Sender = &Sender{}
	}

	log.Logf("[engine] sending %d messages to %s with %d workers",
		plan.TotalMessages, plan.Destination, plan.WorkerCount)

	counters := &e.counters
	counters.reset()

	var wg sync.WaitGroup
	start := time.Now()
	for i, quota := range plan.PerWorkerQuota {
		w := e.newWorker(i, plan)
		wg.Add(1)
		go func(quota int64) {
			defer wg.Done()
			w.run(ctx, quota, counters)
		}(quota)
	}
	wg.Wait()
	elapsed := time.Since(start)

	result := Summarize(atomic.LoadInt64(&counters.attempted), elapsed)
	counters.load(&result)
	result.TotalMessages = plan.TotalMessages

	if result.Attempted < result.TotalMessages {
		log.Logf("[engine] interrupted after %d of %d messages: %s",
			result.Attempted, result.TotalMessages, ctx.Err())
	}
	return result, nil
}

func (e *Engine) newWorker(id int, plan *DispatchPlan) *worker {
	seed := e.Seed + int64(id)
	if e.Seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))
	strategy := e.Strategy
	if strategy == "" {
		strategy = DefaultStrategy
	}
	return &worker{
		id:      id,
		engine:  e,
		plan:    plan,
		synth:   NewSynthesizer(e.Pools, rng),
		sources: NewSelector(strategy, rng),
	}
}

type worker struct {
	id      int
	engine  *Engine
	plan    *DispatchPlan
	synth   *Synthesizer
	sources Selector

	warnedSkip bool
	warnedFail bool
}

func (w *worker) run(ctx context.Context, quota int64, c *runCounters) {
	for i := int64(0); i < quota; i++ {
		if ctx.Err() != nil {
			return
		}
		if lim := w.engine.Limiter; lim != nil {
			if err := lim.Wait(ctx); err != nil {
				return
			}
		}

		atomic.AddInt64(&c.attempted, 1)
		rec := w.synth.Synthesize()
		n, err := w.engine.Sender.Send(ctx, rec, w.plan.Destination, w.source())
		w.account(n, err, c)

		if d := w.plan.InterSendDelay; d > 0 && i+1 < quota {
			if !sleep(ctx, d) {
				return
			}
		}
	}
}

// source returns the source address of the next send.
// A non-empty source pool takes precedence over the fixed address.
func (w *worker) source() string {
	if pool := w.engine.Pools.Sources(); len(pool) > 0 {
		return w.sources.Select(pool)
	}
	return w.plan.SourceAddress
}

func (w *worker) account(n int, err error, c *runCounters) {
	m := w.engine.Metrics
	switch {
	case err == nil:
		atomic.AddInt64(&c.sent, 1)
		m.RecordSent(n)
		return
	case errors.Is(err, ErrTransmit):
		atomic.AddInt64(&c.failed, 1)
		m.RecordFailed()
		if w.warnedFail && !Debug {
			return
		}
		w.warnedFail = true
	default:
		atomic.AddInt64(&c.skipped, 1)
		m.RecordSkipped()
		if w.warnedSkip && !Debug {
			return
		}
		w.warnedSkip = true
	}
	log.Logf("[engine] worker #%d: %s", w.id, err)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
