package scheduler

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"healthwatch/internal/domain"
	"healthwatch/internal/probe"
)

// Runner executes one probing cycle over a URL list.
type Runner struct {
	Checker     probe.Checker
	Timeout     time.Duration
	Concurrency int // max in-flight probes; 0 means unbounded
}

func NewRunner(checker probe.Checker, timeout time.Duration, concurrency int) *Runner {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if concurrency < 0 {
		concurrency = 0
	}
	return &Runner{Checker: checker, Timeout: timeout, Concurrency: concurrency}
}

// Run probes every URL concurrently and returns one result per URL, in
// input order regardless of completion order. Each probe gets its own
// deadline, so a hanging target only costs its own slot and the cycle as a
// whole finishes within Timeout plus scheduling overhead. An empty list
// yields an empty slice.
func (r *Runner) Run(ctx context.Context, urls []string) []domain.CheckResult {
	results := make([]domain.CheckResult, len(urls))

	g := new(errgroup.Group)
	if r.Concurrency > 0 {
		g.SetLimit(r.Concurrency)
	}
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, r.Timeout)
			defer cancel()
			// Each goroutine owns exactly one slot, so no lock is needed.
			results[i] = r.Checker.Check(cctx, url)
			return nil
		})
	}
	_ = g.Wait() // probes never error; Wait is only the join point
	return results
}
