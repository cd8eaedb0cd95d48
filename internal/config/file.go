package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors hellodock.yaml. Every key is optional.
type fileConfig struct {
	Environment     string   `yaml:"environment"`
	Port            string   `yaml:"port"`
	ShowEnvironment *bool    `yaml:"show_environment"`
	RequiredFiles   []string `yaml:"required_files"`
	Probe           *struct {
		Host    string `yaml:"host"`
		Path    string `yaml:"path"`
		Timeout string `yaml:"timeout"`
	} `yaml:"probe"`
	Database *struct {
		Enabled bool   `yaml:"enabled"`
		Host    string `yaml:"host"`
		Port    string `yaml:"port"`
		User    string `yaml:"user"`
		Name    string `yaml:"name"`
		Timeout string `yaml:"timeout"`
	} `yaml:"database"`
	Log *struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Output *struct {
		Dir  string `yaml:"dir"`
		File string `yaml:"file"`
	} `yaml:"output"`
}

func (c *Config) loadFile() error {
	path, explicit := c.configFilePath()
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := c.applyFile(&fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyFile(fc *fileConfig) error {
	if fc.Environment != "" {
		c.Environment = fc.Environment
	}
	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.ShowEnvironment != nil {
		c.ShowEnvironment = *fc.ShowEnvironment
	}
	if len(fc.RequiredFiles) > 0 {
		c.RequiredFiles = nil
		for _, f := range fc.RequiredFiles {
			if f = strings.TrimSpace(f); f != "" {
				c.RequiredFiles = append(c.RequiredFiles, f)
			}
		}
	}
	if p := fc.Probe; p != nil {
		if p.Host != "" {
			c.Probe.Host = p.Host
		}
		if p.Path != "" {
			c.Probe.Path = p.Path
		}
		if p.Timeout != "" {
			d, err := time.ParseDuration(p.Timeout)
			if err != nil {
				return fmt.Errorf("invalid probe.timeout %q: %w", p.Timeout, err)
			}
			c.Probe.Timeout = d
		}
	}
	if db := fc.Database; db != nil {
		c.Database.Enabled = db.Enabled
		if db.Host != "" {
			c.Database.Host = db.Host
		}
		if db.Port != "" {
			c.Database.Port = db.Port
		}
		if db.User != "" {
			c.Database.User = db.User
		}
		if db.Name != "" {
			c.Database.Name = db.Name
		}
		if db.Timeout != "" {
			d, err := time.ParseDuration(db.Timeout)
			if err != nil {
				return fmt.Errorf("invalid database.timeout %q: %w", db.Timeout, err)
			}
			c.Database.Timeout = d
		}
	}
	if l := fc.Log; l != nil {
		if l.Level != "" {
			c.Log.Level = l.Level
		}
		if l.Format != "" {
			c.Log.Format = l.Format
		}
	}
	if o := fc.Output; o != nil {
		if o.Dir != "" {
			c.OutputJSONDir = o.Dir
		}
		if o.File != "" {
			c.OutputJSONFile = o.File
		}
	}
	return nil
}
