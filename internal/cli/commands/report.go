package commands

import (
	"hellodock/internal/config"
	"hellodock/internal/storage"
	"hellodock/internal/ui"

	"github.com/spf13/cobra"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *ReportCommand {
	return &ReportCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := rc.storage.Load()
	if err != nil {
		return err
	}

	if rc.config.Flags.Interactive {
		return rc.viewer.View(output)
	}
	ui.NewFormatter(cmd.OutOrStdout()).PrintMetaStats(output)
	return nil
}
