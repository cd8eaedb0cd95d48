package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Responder settings
	Environment     string
	Port            string
	ShowEnvironment bool

	// Check settings
	RequiredFiles []string
	Probe         ProbeConfig
	Database      DatabaseConfig

	Log LogConfig

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// ProbeConfig controls the live HTTP probe.
type ProbeConfig struct {
	Host    string
	Path    string
	Timeout time.Duration
}

// DatabaseConfig controls the optional database check.
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Timeout  time.Duration
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string
	Format string
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile  string
	Filter      string
	Quiet       bool
	WithDB      bool
	// RequireServer turns skipped checks into failures (container healthcheck).
	RequireServer bool
	Interactive   bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:     DefaultProjectPath,
		Environment:     DefaultEnvironment,
		Port:            DefaultPort,
		ShowEnvironment: true,
		Probe: ProbeConfig{
			Host:    DefaultProbeHost,
			Path:    DefaultProbePath,
			Timeout: DefaultProbeTimeout,
		},
		Database: DatabaseConfig{
			Host:    DefaultDatabaseHost,
			Port:    DefaultDatabasePort,
			User:    DefaultDatabaseUser,
			Timeout: DefaultDatabaseTimeout,
		},
		Log:            LogConfig{Level: DefaultLogLevel},
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.RequiredFiles = make([]string, len(DefaultRequiredFiles))
	copy(cfg.RequiredFiles, DefaultRequiredFiles)
	return cfg
}

// Load builds a config for the project at projectPath. Values are layered as
// defaults, YAML file, .env file, process environment and finally flags.
func Load(projectPath string, flags Flags) (*Config, error) {
	cfg := New()
	if projectPath != "" {
		cfg.ProjectPath = projectPath
	}
	cfg.Flags = flags

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	// .env might not exist, that's okay - use environment variables.
	// godotenv never overrides variables already set in the process.
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, DefaultEnvFile))

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.applyFlags()
	return cfg, nil
}

// configFilePath returns the YAML path to read and whether it was asked for
// explicitly (an explicit file must exist).
func (c *Config) configFilePath() (string, bool) {
	p := c.Flags.ConfigFile
	if p == "" {
		p = os.Getenv(EnvConfigFile)
	}
	if p == "" {
		return filepath.Join(c.ProjectPath, DefaultConfigFile), false
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.ProjectPath, p)
	}
	return p, true
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvPort); ok {
		c.Port = v
	}
	if v, ok := get(EnvEnvironment); ok {
		c.Environment = v
	}
	if v, ok := get(EnvShowEnvironment); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvShowEnvironment, v, err)
		}
		c.ShowEnvironment = b
	}
	if v, ok := get(EnvRequiredFiles); ok {
		c.RequiredFiles = splitList(v)
	}
	if v, ok := get(EnvProbeHost); ok {
		c.Probe.Host = v
	}
	if v, ok := get(EnvProbePath); ok {
		c.Probe.Path = v
	}
	if v, ok := get(EnvProbeTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvProbeTimeout, v, err)
		}
		c.Probe.Timeout = d
	}
	if v, ok := get(EnvCheckDatabase); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvCheckDatabase, v, err)
		}
		c.Database.Enabled = b
	}
	if v, ok := get(EnvDBHost); ok {
		c.Database.Host = v
	}
	if v, ok := get(EnvDBPort); ok {
		c.Database.Port = v
	}
	if v, ok := get(EnvDBUser); ok {
		c.Database.User = v
	}
	if v, ok := lookup(EnvDBPassword); ok {
		c.Database.Password = v
	}
	if v, ok := get(EnvDBName); ok {
		c.Database.Name = v
	}
	if v, ok := get(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := get(EnvLogFormat); ok {
		c.Log.Format = v
	}
	return nil
}

func (c *Config) applyFlags() {
	if c.Flags.WithDB {
		c.Database.Enabled = true
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// EnvironmentName returns the active environment name, never empty.
func (c *Config) EnvironmentName() string {
	if c.Environment == "" {
		return DefaultEnvironment
	}
	return c.Environment
}

// PortValue returns the configured port text, never empty.
func (c *Config) PortValue() string {
	if c.Port == "" {
		return DefaultPort
	}
	return c.Port
}

// ListenPort parses the configured port.
func (c *Config) ListenPort() (int, error) {
	p, err := strconv.Atoi(c.PortValue())
	if err != nil || p < 1 || p > 65535 {
		return 0, fmt.Errorf("%s must be an integer between 1 and 65535, got %q", EnvPort, c.PortValue())
	}
	return p, nil
}

// ListenAddr returns the address the responder binds to.
func (c *Config) ListenAddr() (string, error) {
	p, err := c.ListenPort()
	if err != nil {
		return "", err
	}
	return ":" + strconv.Itoa(p), nil
}

// ProbeURL returns the URL the live HTTP probe requests.
func (c *Config) ProbeURL() string {
	path := c.Probe.Path
	if path == "" {
		path = DefaultProbePath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	host := c.Probe.Host
	if host == "" {
		host = DefaultProbeHost
	}
	return "http://" + net.JoinHostPort(host, c.PortValue()) + path
}

// RequiredFilePaths resolves the required files against the project path.
func (c *Config) RequiredFilePaths() []string {
	out := make([]string, 0, len(c.RequiredFiles))
	for _, f := range c.RequiredFiles {
		if filepath.IsAbs(f) {
			out = append(out, f)
			continue
		}
		out = append(out, filepath.Join(c.ProjectPath, f))
	}
	return out
}

// GetOutputPath returns the full path to the check results file.
// Resolves to an absolute path so check and report always use the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
