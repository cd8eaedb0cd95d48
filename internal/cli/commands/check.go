package commands

import (
	"fmt"

	"hellodock/internal/checks"
	"hellodock/internal/config"
	"hellodock/internal/domain"
	"hellodock/internal/execution"
	"hellodock/internal/logging"
	"hellodock/internal/storage"
	"hellodock/internal/ui"

	"github.com/fatih/color"
	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config  *config.Config
	runner  execution.Executor
	filter  *checks.Filter
	storage storage.Storage
	log     *logrus.Logger
	loader  func(*config.Config) checks.Loader
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(
	cfg *config.Config,
	runner execution.Executor,
	filter *checks.Filter,
	st storage.Storage,
	log *logrus.Logger,
) *CheckCommand {
	return &CheckCommand{
		config:  cfg,
		runner:  runner,
		filter:  filter,
		storage: st,
		log:     log,
		loader:  checks.RouterLoader,
	}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	list := checks.Default(cc.config, cc.loader(cc.config))
	list = cc.filter.FilterByName(list, cc.config.Flags.Filter)
	if len(list) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No checks to run")
		return nil
	}

	if cc.config.Database.Enabled {
		_ = mysql.SetLogger(cc.log.WithField(logging.FieldCheck, "database"))
	}

	var progress *ui.ProgressBar
	if cc.config.Flags.Quiet {
		progress = ui.NewProgressBar(cmd.ErrOrStderr(), len(list))
		cc.runner.SetReporter(progress)
	} else {
		color.New(color.FgCyan).Fprintln(out, "\n🚀 Running all tests...")
		fmt.Fprintln(out)
		cc.runner.SetReporter(ui.NewConsoleReporter(out))
	}

	results, duration, err := cc.runner.Run(cmd.Context(), list)
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return fmt.Errorf("check run aborted: %w", err)
	}

	if cc.config.Flags.RequireServer {
		results = domain.FailSkipped(results)
	}

	if err := cc.storage.Save(results, duration); err != nil {
		cc.log.WithError(err).Warn("failed to save check results")
	}

	ui.NewFormatter(out).PrintResults(results)

	if !domain.AllPassed(results) {
		return ErrChecksFailed
	}
	return nil
}
