package commands

import (
	"hellodock/internal/config"
	"hellodock/internal/responder"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	config *config.Config
	log    *logrus.Logger
}

// NewServeCommand creates a new ServeCommand
func NewServeCommand(cfg *config.Config, log *logrus.Logger) *ServeCommand {
	return &ServeCommand{config: cfg, log: log}
}

// Execute runs the command
func (sc *ServeCommand) Execute(cmd *cobra.Command, args []string) error {
	gin.SetMode(responder.GinMode(sc.config.EnvironmentName()))
	srv, err := responder.NewServer(sc.config, sc.log)
	if err != nil {
		return err
	}
	return srv.Run(cmd.Context())
}
