package config

import "time"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultPort is used when PORT is unset
	DefaultPort = "3000"
	// DefaultEnvironment is used when APP_ENV is unset
	DefaultEnvironment = "development"
	// DefaultConfigFile is the optional YAML file looked up in the project path
	DefaultConfigFile = "hellodock.yaml"
	// DefaultEnvFile is the optional dotenv file looked up in the project path
	DefaultEnvFile = ".env"
	// DefaultOutputJSONFile is the default check results file name
	DefaultOutputJSONFile = "check-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".hellodock"

	DefaultProbeHost    = "localhost"
	DefaultProbePath    = "/"
	DefaultProbeTimeout = 5 * time.Second

	DefaultDatabaseHost    = "127.0.0.1"
	DefaultDatabasePort    = "3306"
	DefaultDatabaseUser    = "root"
	DefaultDatabaseTimeout = 5 * time.Second

	DefaultLogLevel = "info"
)

// Environment variable keys
const (
	EnvPort            = "PORT"
	EnvEnvironment     = "APP_ENV"
	EnvShowEnvironment = "SHOW_ENVIRONMENT"
	EnvConfigFile      = "HELLODOCK_CONFIG"
	EnvRequiredFiles   = "REQUIRED_FILES"
	EnvProbeHost       = "PROBE_HOST"
	EnvProbePath       = "PROBE_PATH"
	EnvProbeTimeout    = "PROBE_TIMEOUT"
	EnvCheckDatabase   = "CHECK_DATABASE"
	EnvDBHost          = "DB_HOST"
	EnvDBPort          = "DB_PORT"
	EnvDBUser          = "DB_USERNAME"
	EnvDBPassword      = "DB_PASSWORD"
	EnvDBName          = "DB_DATABASE"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
)

// DefaultRequiredFiles are the files the smoke check expects in the project:
// the main server file, the module manifest and the container build file.
var DefaultRequiredFiles = []string{
	"cmd/hellodock/main.go",
	"go.mod",
	"Dockerfile",
}
