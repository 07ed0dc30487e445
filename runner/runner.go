// Package runner executes the jobs of a config.File concurrently and
// reports one Outcome per job.
//
// Every search owns its own frontier and tables, so jobs share nothing but
// the logger and the metrics recorder.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/instrument"
)

// Outcome is the result of one job.
type Outcome struct {
	Job     string
	Kind    config.Kind
	Value   int
	Legs    []int // journey jobs only
	Err     error
	Elapsed time.Duration
}

// Runner executes jobs with a bounded number of workers.
type Runner struct {
	logger  *slog.Logger
	metrics *instrument.Recorder
	workers int
}

// New creates a Runner. A nil metrics recorder gets a private one.
func New(logger *slog.Logger, metrics *instrument.Recorder, workers int) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = instrument.New()
	}
	if workers < 1 {
		workers = 1
	}

	return &Runner{logger: logger, metrics: metrics, workers: workers}
}

// Metrics returns the recorder the runner reports to.
func (r *Runner) Metrics() *instrument.Recorder {
	return r.metrics
}

// Run executes every job of f. Outcomes are returned in job order. The
// error joins the failures of individual jobs; a cancelled ctx stops
// pending jobs and is reported as well.
func (r *Runner) Run(ctx context.Context, f *config.File) ([]Outcome, error) {
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)
	logger.Info("run started", "jobs", len(f.Jobs), "workers", r.workers)
	start := time.Now()

	outcomes := make([]Outcome, len(f.Jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, job := range f.Jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i] = Outcome{Job: job.Name, Kind: job.Kind, Err: err}
				return err
			}
			outcomes[i] = r.runJob(gctx, logger, f, job)
			return nil
		})
	}
	groupErr := g.Wait()

	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("job %q: %w", o.Job, o.Err))
		}
	}
	if groupErr != nil && len(errs) == 0 {
		errs = append(errs, groupErr)
	}
	err := errors.Join(errs...)

	logger.Info("run finished", "elapsed", time.Since(start), "failed", len(errs))
	return outcomes, err
}

// runJob executes one job and records its metrics.
func (r *Runner) runJob(ctx context.Context, logger *slog.Logger, f *config.File, job config.Job) Outcome {
	done := r.metrics.Track()
	defer done()

	logger = logger.With("job", job.Name, "kind", string(job.Kind))
	logger.Debug("job started")

	start := time.Now()
	out := Outcome{Job: job.Name, Kind: job.Kind}
	var expansions int

	lines, err := f.Input(job)
	if err == nil {
		switch job.Kind {
		case config.KindDistances:
			out.Value, expansions, err = distances(job, lines)
		case config.KindNearest:
			out.Value, expansions, err = nearest(job, lines)
		case config.KindJourney:
			out.Value, out.Legs, expansions, err = journey(job, lines)
		case config.KindRelease:
			out.Value, expansions, err = release(job, lines)
		case config.KindSurface:
			out.Value, expansions, err = surface(ctx, job, lines)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownKind, job.Kind)
		}
	}
	out.Err = err
	out.Elapsed = time.Since(start)

	r.metrics.Observe(engineOf(job.Kind), resultOf(err), expansions, out.Elapsed)
	switch {
	case err == nil:
		logger.Info("job finished", "value", out.Value, "expansions", expansions, "elapsed", out.Elapsed)
	case errors.Is(err, dijkstra.ErrUnreachable), errors.Is(err, astar.ErrUnreachable):
		logger.Warn("goal unreachable", "error", err, "expansions", expansions)
	default:
		logger.Error("job failed", "error", err)
	}

	return out
}

// engineOf maps a job kind to the metrics engine label.
func engineOf(k config.Kind) string {
	switch k {
	case config.KindDistances, config.KindNearest:
		return "dijkstra"
	case config.KindJourney:
		return "astar"
	case config.KindRelease:
		return "release"
	case config.KindSurface:
		return "bfs"
	}

	return "unknown"
}

// resultOf maps a job error to the metrics result label.
func resultOf(err error) string {
	switch {
	case err == nil:
		return instrument.ResultFound
	case errors.Is(err, dijkstra.ErrUnreachable), errors.Is(err, astar.ErrUnreachable):
		return instrument.ResultUnreachable
	}

	return instrument.ResultError
}
