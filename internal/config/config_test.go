package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv unsets every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		EnvPort, EnvEnvironment, EnvShowEnvironment, EnvConfigFile, EnvRequiredFiles,
		EnvProbeHost, EnvProbePath, EnvProbeTimeout, EnvCheckDatabase,
		EnvDBHost, EnvDBPort, EnvDBUser, EnvDBPassword, EnvDBName,
		EnvLogLevel, EnvLogFormat,
	}
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected Port %s, got %s", DefaultPort, cfg.Port)
	}

	if cfg.Environment != DefaultEnvironment {
		t.Errorf("expected Environment %s, got %s", DefaultEnvironment, cfg.Environment)
	}

	if cfg.Probe.Timeout != DefaultProbeTimeout {
		t.Errorf("expected probe timeout %s, got %s", DefaultProbeTimeout, cfg.Probe.Timeout)
	}

	if len(cfg.RequiredFiles) != len(DefaultRequiredFiles) {
		t.Errorf("expected %d required files, got %d", len(DefaultRequiredFiles), len(cfg.RequiredFiles))
	}

	cfg.RequiredFiles[0] = "changed"
	if DefaultRequiredFiles[0] == "changed" {
		t.Error("New must copy DefaultRequiredFiles")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(dir, Flags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EnvironmentName() != "development" {
		t.Errorf("expected development, got %s", cfg.EnvironmentName())
	}
	port, err := cfg.ListenPort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port != 3000 {
		t.Errorf("expected 3000, got %d", port)
	}
	if cfg.Database.Enabled {
		t.Error("database check should be disabled by default")
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvEnvironment, "production")
	t.Setenv(EnvShowEnvironment, "false")
	t.Setenv(EnvRequiredFiles, "main.go, go.mod ,,Dockerfile")
	t.Setenv(EnvProbeTimeout, "250ms")

	cfg, err := Load(dir, Flags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PortValue() != "8081" {
		t.Errorf("expected 8081, got %s", cfg.PortValue())
	}
	if cfg.EnvironmentName() != "production" {
		t.Errorf("expected production, got %s", cfg.EnvironmentName())
	}
	if cfg.ShowEnvironment {
		t.Error("expected ShowEnvironment to be false")
	}
	if len(cfg.RequiredFiles) != 3 || cfg.RequiredFiles[1] != "go.mod" {
		t.Errorf("unexpected required files: %v", cfg.RequiredFiles)
	}
	if cfg.Probe.Timeout != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", cfg.Probe.Timeout)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("invalid port loads but fails ListenPort", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvPort, "http")
		cfg, err := Load(t.TempDir(), Flags{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := cfg.ListenPort(); err == nil {
			t.Error("expected error for non-numeric port")
		}
	})

	t.Run("out of range port", func(t *testing.T) {
		cfg := New()
		cfg.Port = "70000"
		if _, err := cfg.ListenPort(); err == nil {
			t.Error("expected error for out of range port")
		}
	})

	t.Run("invalid probe timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvProbeTimeout, "soon")
		if _, err := Load(t.TempDir(), Flags{}); err == nil {
			t.Error("expected error for invalid probe timeout")
		}
	})
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=4000\nAPP_ENV=staging\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv(EnvPort)
		os.Unsetenv(EnvEnvironment)
	})

	cfg, err := Load(dir, Flags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PortValue() != "4000" {
		t.Errorf("expected 4000, got %s", cfg.PortValue())
	}
	if cfg.EnvironmentName() != "staging" {
		t.Errorf("expected staging, got %s", cfg.EnvironmentName())
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	yml := `
environment: test
port: "5000"
required_files:
  - go.mod
probe:
  host: 127.0.0.1
  path: healthz
  timeout: 2s
database:
  enabled: true
  name: hello
output:
  dir: out
`
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(yml), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(EnvPort, "5001")

	cfg, err := Load(dir, Flags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.EnvironmentName() != "test" {
		t.Errorf("expected test, got %s", cfg.EnvironmentName())
	}
	// environment wins over the file
	if cfg.PortValue() != "5001" {
		t.Errorf("expected 5001, got %s", cfg.PortValue())
	}
	if len(cfg.RequiredFiles) != 1 {
		t.Errorf("expected 1 required file, got %v", cfg.RequiredFiles)
	}
	if cfg.ProbeURL() != "http://127.0.0.1:5001/healthz" {
		t.Errorf("unexpected probe URL %s", cfg.ProbeURL())
	}
	if cfg.Probe.Timeout != 2*time.Second {
		t.Errorf("expected 2s, got %s", cfg.Probe.Timeout)
	}
	if !cfg.Database.Enabled || cfg.Database.Name != "hello" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if filepath.Base(filepath.Dir(cfg.GetOutputPath())) != "out" {
		t.Errorf("unexpected output path %s", cfg.GetOutputPath())
	}
}

func TestLoad_ExplicitConfigFileMustExist(t *testing.T) {
	clearEnv(t)
	if _, err := Load(t.TempDir(), Flags{ConfigFile: "missing.yaml"}); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_WithDBFlag(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(t.TempDir(), Flags{WithDB: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Database.Enabled {
		t.Error("expected --with-db to enable the database check")
	}
}

func TestConfig_RequiredFilePaths(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected []string
	}{
		{
			name:     "relative files",
			config:   &Config{ProjectPath: "/project", RequiredFiles: []string{"go.mod", "cmd/hellodock/main.go"}},
			expected: []string{"/project/go.mod", "/project/cmd/hellodock/main.go"},
		},
		{
			name:     "absolute file",
			config:   &Config{ProjectPath: "/project", RequiredFiles: []string{"/etc/hosts"}},
			expected: []string{"/etc/hosts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.RequiredFilePaths()
			if len(result) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, result)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("expected %s, got %s", tt.expected[i], result[i])
				}
			}
		})
	}
}

func TestConfig_ProbeURL(t *testing.T) {
	cfg := New()
	if got := cfg.ProbeURL(); got != "http://localhost:3000/" {
		t.Errorf("expected http://localhost:3000/, got %s", got)
	}
	cfg.Probe.Host = "::1"
	cfg.Port = "8080"
	if got := cfg.ProbeURL(); got != "http://[::1]:8080/" {
		t.Errorf("expected http://[::1]:8080/, got %s", got)
	}
}
