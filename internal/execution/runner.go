package execution

import (
	"context"
	"fmt"
	"time"

	"hellodock/internal/checks"
	"hellodock/internal/domain"
)

var _ Executor = (*Runner)(nil)

// Runner executes checks one after another
type Runner struct {
	reporter Reporter
}

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{reporter: NopReporter{}}
}

// SetReporter sets the reporter for the runner
func (r *Runner) SetReporter(reporter Reporter) {
	if reporter == nil {
		reporter = NopReporter{}
	}
	r.reporter = reporter
}

// Run executes the checks in order. A failing check does not stop the run;
// a panicking check or a cancelled context does, and is returned as an error
// together with the results collected so far.
func (r *Runner) Run(ctx context.Context, list []checks.Check) ([]domain.CheckResult, time.Duration, error) {
	startTime := time.Now()
	results := make([]domain.CheckResult, 0, len(list))

	for _, c := range list {
		if err := ctx.Err(); err != nil {
			return results, time.Since(startTime), fmt.Errorf("check run interrupted before %s: %w", c.Name(), err)
		}

		r.reporter.CheckStarted(c.Name(), c.Title())
		result, err := runCheck(ctx, c)
		if err != nil {
			return results, time.Since(startTime), err
		}
		if err := ctx.Err(); err != nil {
			return results, time.Since(startTime), fmt.Errorf("check run interrupted during %s: %w", c.Name(), err)
		}
		results = append(results, result)
		r.reporter.CheckFinished(result)
	}

	return results, time.Since(startTime), nil
}

func runCheck(ctx context.Context, c checks.Check) (result domain.CheckResult, err error) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("check %s panicked: %v", c.Name(), rec)
		}
	}()

	result = c.Run(ctx)
	result.Name = c.Name()
	result.Title = c.Title()
	result.Duration = time.Since(start)
	if result.Status == "" {
		result.Status = domain.StatusFailed
		result.Message = "check returned no status"
	}
	return result, nil
}
