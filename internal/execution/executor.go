package execution

import (
	"context"
	"time"

	"hellodock/internal/checks"
	"hellodock/internal/domain"
)

// Executor runs checks and returns their results
type Executor interface {
	Run(ctx context.Context, list []checks.Check) ([]domain.CheckResult, time.Duration, error)
	SetReporter(reporter Reporter)
}

// Reporter is told about each check as the run progresses
type Reporter interface {
	CheckStarted(name, title string)
	CheckFinished(result domain.CheckResult)
}

// NopReporter discards progress events
type NopReporter struct{}

func (NopReporter) CheckStarted(string, string)       {}
func (NopReporter) CheckFinished(domain.CheckResult) {}
