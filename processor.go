package cardkit

import (
	"context"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the corpus worker pool when the caller does not.
const DefaultWorkers = 4

// CardFunc is one operation applied to one corpus entry.
type CardFunc func(ctx context.Context, entry Entry) error

// ProcessFailure records one card the operation failed on.
type ProcessFailure struct {
	ID   string
	Path string
	Err  error
}

// RunResult summarizes a corpus run.
type RunResult struct {
	Processed int
	Failed    int
	Failures  []ProcessFailure
}

// Processor applies an operation to every card in a corpus with a
// bounded worker pool. Cards are independent, so the pool needs no
// coordination beyond the failure list; a per-card failure is collected
// and never aborts the run. Cancelling the context stops scheduling new
// cards.
type Processor struct {
	Workers int
	Log     *zap.Logger

	processed atomic.Int64
	failed    atomic.Int64
}

// NewProcessor creates a Processor with the default pool size.
func NewProcessor(log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{Workers: DefaultWorkers, Log: log}
}

// Run applies fn to every entry in the corpus. Load failures recorded on
// the corpus are carried into the result so callers report them
// alongside operation failures.
func (p *Processor) Run(ctx context.Context, corpus *Corpus, fn CardFunc) *RunResult {
	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}

	p.processed.Store(0)
	p.failed.Store(0)

	result := &RunResult{}
	for _, f := range corpus.Failures {
		result.Failures = append(result.Failures, ProcessFailure{ID: f.ID, Path: f.Path, Err: f.Err})
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, entry := range corpus.Entries {
		entry := entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, entry); err != nil {
				p.failed.Inc()
				log.Warn("card failed",
					zap.String("character", entry.ID),
					zap.String("path", entry.Path),
					zap.Error(err))
				mu.Lock()
				result.Failures = append(result.Failures, ProcessFailure{ID: entry.ID, Path: entry.Path, Err: err})
				mu.Unlock()
				return nil
			}
			p.processed.Inc()
			log.Debug("card processed", zap.String("character", entry.ID))
			return nil
		})
	}

	// The only error errgroup can surface here is context cancellation.
	_ = g.Wait()

	result.Processed = int(p.processed.Load())
	result.Failed = len(result.Failures)
	return result
}
