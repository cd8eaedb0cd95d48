package commands

import (
	"hellodock/internal/checks"
	"hellodock/internal/config"
	"hellodock/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	filter *checks.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, filter *checks.Filter) *ListCommand {
	return &ListCommand{
		config: cfg,
		filter: filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	list := checks.Default(lc.config, checks.RouterLoader(lc.config))
	list = lc.filter.FilterByName(list, lc.config.Flags.Filter)

	if len(list) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No checks found")
		return nil
	}

	ui.NewFormatter(cmd.OutOrStdout()).PrintCheckList(list)
	return nil
}
