package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"hellodock/internal/cli"
	"hellodock/internal/cli/commands"
	"hellodock/internal/config"
	"hellodock/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code. Failed checks exit
// 1 without a log line; any other error is logged before exiting 1.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Only serve picks a gin mode from the environment.
	gin.SetMode(gin.ReleaseMode)

	// Create root command
	rootCmd := &cobra.Command{
		Use:           "hellodock",
		Short:         "Hello-world web server with built-in smoke checks",
		Long:          `A minimal greeting web server for learning container packaging, plus a check command that verifies the environment, the web framework, the required files and a live response before the image ships.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Create initial config with defaults
	cfg := config.New()
	log := logging.New(stderr, config.DefaultLogLevel, "", cfg.EnvironmentName())

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, log)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg, log)

	// Execute root command
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if !errors.Is(err, commands.ErrChecksFailed) {
		log.WithError(err).Error("hellodock failed")
	}
	return 1
}
