package checks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"hellodock/internal/config"
	"hellodock/internal/domain"
	"hellodock/internal/responder"

	"github.com/sirupsen/logrus"
)

// FrameworkModule is the web framework the responder is built on.
const FrameworkModule = "github.com/gin-gonic/gin"

// Loader builds the web framework handler the responder serves.
type Loader func() (http.Handler, error)

// RouterLoader loads the responder's gin router for cfg with its request
// logging discarded.
func RouterLoader(cfg *config.Config) Loader {
	return func() (http.Handler, error) {
		log := logrus.New()
		log.SetOutput(io.Discard)
		return responder.NewRouter(cfg, log), nil
	}
}

// DependencyCheck verifies the web framework loads into a usable handler.
type DependencyCheck struct {
	module    string
	load      Loader
	buildInfo func() (*debug.BuildInfo, bool)
}

// NewDependencyCheck creates a new DependencyCheck
func NewDependencyCheck(load Loader) *DependencyCheck {
	return &DependencyCheck{
		module:    FrameworkModule,
		load:      load,
		buildInfo: debug.ReadBuildInfo,
	}
}

func (c *DependencyCheck) Name() string  { return "dependency" }
func (c *DependencyCheck) Title() string { return "Module loading" }

func (c *DependencyCheck) Run(ctx context.Context) domain.CheckResult {
	details := []domain.Detail{{Text: "module: " + c.moduleVersion()}}

	h, err := c.safeLoad()
	if err != nil {
		return domain.Failed(fmt.Sprintf("module loading error: %v", err), details...)
	}
	if h == nil {
		return domain.Failed(c.module+" did not produce an HTTP handler", details...)
	}
	return domain.Passed(c.module+" loaded successfully", details...)
}

// safeLoad downgrades a panicking loader to an error.
func (c *DependencyCheck) safeLoad() (h http.Handler, err error) {
	if c.load == nil {
		return nil, fmt.Errorf("no loader configured")
	}
	defer func() {
		if r := recover(); r != nil {
			h, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return c.load()
}

func (c *DependencyCheck) moduleVersion() string {
	if c.buildInfo == nil {
		return c.module
	}
	info, ok := c.buildInfo()
	if !ok || info == nil {
		return c.module + " (version unknown)"
	}
	for _, dep := range info.Deps {
		if dep.Path != c.module {
			continue
		}
		if dep.Replace != nil {
			dep = dep.Replace
		}
		return c.module + " " + dep.Version
	}
	return c.module + " (version unknown)"
}
