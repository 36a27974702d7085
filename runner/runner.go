// Package runner drives a search engine at a paced interval and
// publishes the terminal Summary to a status sink.
//
// Pacing affects animation smoothness only: the engine's visit order and
// outcome are identical whether the runner ticks every 200ms or steps in
// a tight loop. An interval of zero (the default) runs unpaced, which is
// what tests and the CLI's non-interactive mode use.
package runner

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/quentik/pathviz/search"
)

// Pacing bounds for paced runs, matching the visualizer's speed buttons.
const (
	MinInterval = 1 * time.Millisecond
	MaxInterval = 200 * time.Millisecond
)

// Sink receives the status payload of every terminal signal.
type Sink interface {
	Publish(sum search.Summary)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(sum search.Summary)

// Publish calls f(sum).
func (f SinkFunc) Publish(sum search.Summary) { f(sum) }

// Option configures a Runner.
type Option func(*Runner)

// WithInterval paces the run: one engine step per tick of d. Non-zero
// values are clamped to [MinInterval, MaxInterval]; zero disables pacing
// entirely.
func WithInterval(d time.Duration) Option {
	return func(r *Runner) {
		if d <= 0 {
			r.interval = 0

			return
		}
		if d < MinInterval {
			d = MinInterval
		}
		if d > MaxInterval {
			d = MaxInterval
		}
		r.interval = d
	}
}

// WithSink registers a status sink for the terminal Summary.
func WithSink(s Sink) Option {
	return func(r *Runner) {
		if s != nil {
			r.sink = s
		}
	}
}

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// Runner owns the tick loop around one engine. It is the only component
// that ever sleeps; the engine itself never does.
type Runner struct {
	engine   *search.Engine
	interval time.Duration
	sink     Sink
	log      *slog.Logger
}

// New builds a Runner around engine with the given options.
func New(engine *search.Engine, opts ...Option) *Runner {
	r := &Runner{
		engine: engine,
		sink:   SinkFunc(func(search.Summary) {}),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run starts the engine if it is Idle and steps it to a terminal signal,
// one step per tick when paced. The Summary is published to the sink
// before returning. Cancelling ctx aborts between steps and resets the
// engine, leaving no partial run behind.
func (r *Runner) Run(ctx context.Context) (search.Summary, error) {
	if r.engine.State() == search.Idle {
		if err := r.engine.Start(); err != nil {
			return search.Summary{}, err
		}
	}
	r.log.Info("run started",
		"algorithm", r.engine.Algorithm().String(),
		"interval", r.interval.String(),
	)

	var tick *time.Ticker
	if r.interval > 0 {
		tick = time.NewTicker(r.interval)
		defer tick.Stop()
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				r.engine.Reset()

				return search.Summary{}, ctx.Err()
			case <-tick.C:
			}
		} else {
			select {
			case <-ctx.Done():
				r.engine.Reset()

				return search.Summary{}, ctx.Err()
			default:
			}
		}

		p, err := r.engine.Step()
		if err != nil {
			return search.Summary{}, err
		}
		if p == search.Advanced {
			continue
		}

		sum, _ := r.engine.Summary()
		r.log.Info("run finished",
			"algorithm", sum.Algorithm.String(),
			"found", sum.Found,
			"steps", sum.Steps,
			"visited", sum.Visited,
			"path_len", sum.PathLen,
		)
		r.sink.Publish(sum)

		return sum, nil
	}
}
