package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"healthwatch/internal/domain"
)

// Sink receives each completed cycle. A failing sink is reported and the
// loop keeps probing; monitoring is never interrupted by a transient
// output problem.
type Sink interface {
	Publish(cycle domain.Cycle) error
}

// Loop drives cycles either once or repeatedly. The pause is measured from
// the end of one cycle to the start of the next, so a slow cycle delays but
// never skips the following run.
type Loop struct {
	Logger   *zap.Logger
	Runner   *Runner
	URLs     []string
	Interval time.Duration
	Once     bool
	Sinks    []Sink
}

func NewLoop(
	logger *zap.Logger,
	runner *Runner,
	urls []string,
	interval time.Duration,
	once bool,
	sinks ...Sink,
) *Loop {
	return &Loop{
		Logger:   logger,
		Runner:   runner,
		URLs:     urls,
		Interval: interval,
		Once:     once,
		Sinks:    sinks,
	}
}

// Run blocks until the single cycle is done (once mode) or ctx is
// cancelled. Cancellation is observed only between cycles: probes already
// in flight finish, each bounded by its own timeout.
func (l *Loop) Run(ctx context.Context) error {
	for {
		cycle := l.runCycle(ctx)
		l.emit(cycle)

		if l.Once {
			return nil
		}
		select {
		case <-ctx.Done():
			l.Logger.Info("loop_stopped")
			return ctx.Err()
		case <-time.After(l.Interval):
		}
	}
}

func (l *Loop) runCycle(ctx context.Context) domain.Cycle {
	id := uuid.NewString()
	started := domain.Now()
	l.Logger.Info("cycle_start",
		zap.String("cycle_id", id),
		zap.Int("urls", len(l.URLs)),
	)

	// A shutdown signal must not tear down probes half-sent, so the cycle
	// itself runs detached from the loop's cancellation.
	results := l.Runner.Run(context.WithoutCancel(ctx), l.URLs)

	up := 0
	for _, r := range results {
		if r.Up() {
			up++
		}
	}
	l.Logger.Info("cycle_done",
		zap.String("cycle_id", id),
		zap.Int("up", up),
		zap.Int("down", len(results)-up),
	)

	return domain.Cycle{ID: id, StartedAt: started, Results: results}
}

func (l *Loop) emit(cycle domain.Cycle) {
	for _, s := range l.Sinks {
		if err := s.Publish(cycle); err != nil {
			l.Logger.Warn("sink_publish_error",
				zap.String("cycle_id", cycle.ID),
				zap.Error(err),
			)
		}
	}
}
