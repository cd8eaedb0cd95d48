package logging

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Field names shared by the responder and the CLI.
const (
	FieldPort        = "port"
	FieldEnvironment = "environment"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatus      = "status"
	FieldLatency     = "latency"
	FieldClientIP    = "client_ip"
	FieldCheck       = "check"
)

// New returns a logrus logger writing to out, configured by Configure.
func New(out io.Writer, level, format, environment string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	Configure(log, level, format, environment)
	return log
}

// Configure applies level and format to log. An unknown level falls back to
// info. format "json" selects the JSON formatter, anything else the text one;
// an empty format means JSON in production and text elsewhere.
func Configure(log *logrus.Logger, level, format, environment string) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if format == "" && environment == "production" {
		format = "json"
	}
	if strings.EqualFold(format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}
}
