// Package checks holds the smoke checks run by `hellodock check`.
package checks

import (
	"context"

	"hellodock/internal/config"
	"hellodock/internal/domain"
)

// Check is a single smoke check. Run never returns an error: every expected
// failure is reported through the result status.
type Check interface {
	// Name is the short identifier used by --filter, e.g. "files".
	Name() string
	// Title is the human readable label, e.g. "Application files".
	Title() string
	Run(ctx context.Context) domain.CheckResult
}

// Default returns the checks in the order they run: environment variables,
// dependency load, required files, live HTTP probe and, when enabled, the
// database connection.
func Default(cfg *config.Config, load Loader) []Check {
	list := []Check{
		NewEnvCheck(cfg),
		NewDependencyCheck(load),
		NewFilesCheck(cfg),
		NewProbeCheck(cfg),
	}
	if cfg.Database.Enabled {
		list = append(list, NewDatabaseCheck(cfg))
	}
	return list
}
