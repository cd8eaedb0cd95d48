package commands

import (
	"errors"
	"fmt"

	"hellodock/internal/checks"
	"hellodock/internal/cli"
	"hellodock/internal/config"
	"hellodock/internal/execution"
	"hellodock/internal/logging"
	"hellodock/internal/storage"
	"hellodock/internal/ui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrChecksFailed is returned by the check command when at least one check
// failed. main turns it into exit code 1 without logging it.
var ErrChecksFailed = errors.New("one or more checks failed")

// Commands holds all CLI commands
type Commands struct {
	Serve  *ServeCommand
	Check  *CheckCommand
	List   *ListCommand
	Report *ReportCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, log *logrus.Logger) *Commands {
	// Initialize dependencies
	filter := checks.NewFilter()
	runner := execution.NewRunner()
	jsonStorage := storage.NewJSONStorage(cfg)
	viewer := ui.NewResultsViewer()

	return &Commands{
		Serve:  NewServeCommand(cfg, log),
		Check:  NewCheckCommand(cfg, runner, filter, jsonStorage, log),
		List:   NewListCommand(cfg, filter),
		Report: NewReportCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, log *logrus.Logger) {
	rootCmd.PersistentFlags().StringVarP(&flags.ProjectPath, "project-path", "C", config.DefaultProjectPath, "Project directory holding .env, hellodock.yaml and the required files")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a YAML config file (default hellodock.yaml in the project path)")

	// Update config with flags after parsing
	loadConfig := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ProjectPath, flags.ToConfigFlags())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		*cfg = *loaded
		logging.Configure(log, cfg.Log.Level, cfg.Log.Format, cfg.EnvironmentName())
		return nil
	}

	// Serve command
	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Start the hello web server",
		Long:    "Serve the greeting page on GET / at the port given by PORT (default 3000)",
		Args:    cobra.NoArgs,
		RunE:    c.Serve.Execute,
		PreRunE: loadConfig,
	}
	rootCmd.AddCommand(serveCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:     "check",
		Short:   "Run the smoke checks",
		Long:    "Check environment variables, the web framework, required files and a live GET / against a running server. Exits 1 if any check fails.",
		Args:    cobra.NoArgs,
		RunE:    c.Check.Execute,
		PreRunE: loadConfig,
	}
	checkCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Run only checks matching a name pattern (supports wildcards and comma separated alternatives, e.g. 'env,http')")
	checkCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Show a progress bar instead of per-check output")
	checkCmd.Flags().BoolVar(&flags.WithDB, "with-db", false, "Also check the MySQL connection described by DB_* variables")
	checkCmd.Flags().BoolVar(&flags.RequireServer, "require-server", false, "Treat skipped checks (no server, probe timeout) as failures, for container healthchecks")
	rootCmd.AddCommand(checkCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the smoke checks",
		Long:    "Print the checks that check would run, in order, without running them",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: loadConfig,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter checks by name pattern")
	listCmd.Flags().BoolVar(&flags.WithDB, "with-db", false, "Include the database check")
	rootCmd.AddCommand(listCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:     "report",
		Short:   "Show the results of the last check run",
		Long:    "Display the check results stored by the last run, optionally in an interactive viewer",
		Args:    cobra.NoArgs,
		RunE:    c.Report.Execute,
		PreRunE: loadConfig,
	}
	reportCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Browse the results in an interactive viewer")
	rootCmd.AddCommand(reportCmd)
}
