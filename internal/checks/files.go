package checks

import (
	"context"
	"fmt"
	"os"

	"hellodock/internal/config"
	"hellodock/internal/domain"
)

// FilesCheck verifies every required file exists in the project.
type FilesCheck struct {
	config *config.Config
}

// NewFilesCheck creates a new FilesCheck
func NewFilesCheck(cfg *config.Config) *FilesCheck {
	return &FilesCheck{config: cfg}
}

func (c *FilesCheck) Name() string  { return "files" }
func (c *FilesCheck) Title() string { return "Application files" }

func (c *FilesCheck) Run(ctx context.Context) domain.CheckResult {
	names := c.config.RequiredFiles
	paths := c.config.RequiredFilePaths()
	if len(names) == 0 {
		return domain.Passed("no required files configured")
	}

	details := make([]domain.Detail, 0, len(names))
	var missing int
	for i, name := range names {
		info, err := os.Stat(paths[i])
		if err == nil && !info.IsDir() {
			details = append(details, domain.Detail{Text: name + " exists", Status: domain.StatusPassed})
			continue
		}
		missing++
		details = append(details, domain.Detail{Text: name + " missing", Status: domain.StatusFailed})
	}

	if missing > 0 {
		return domain.Failed(fmt.Sprintf("%d of %d required files missing", missing, len(names)), details...)
	}
	return domain.Passed("", details...)
}
