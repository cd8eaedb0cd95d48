package checks

import (
	"context"
	"fmt"

	"hellodock/internal/config"
	"hellodock/internal/domain"
)

// EnvCheck verifies the environment name and port resolve to usable values.
type EnvCheck struct {
	config *config.Config
}

// NewEnvCheck creates a new EnvCheck
func NewEnvCheck(cfg *config.Config) *EnvCheck {
	return &EnvCheck{config: cfg}
}

func (c *EnvCheck) Name() string  { return "env" }
func (c *EnvCheck) Title() string { return "Environment variables" }

func (c *EnvCheck) Run(ctx context.Context) domain.CheckResult {
	env := c.config.EnvironmentName()
	port := c.config.PortValue()
	details := []domain.Detail{
		{Text: fmt.Sprintf("%s: %s", config.EnvEnvironment, env)},
		{Text: fmt.Sprintf("%s: %s", config.EnvPort, port)},
	}

	if env == "" {
		return domain.Failed(config.EnvEnvironment+" is empty", details...)
	}
	if _, err := c.config.ListenPort(); err != nil {
		return domain.Failed(err.Error(), details...)
	}
	return domain.Passed("", details...)
}
