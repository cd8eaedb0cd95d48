package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hellodock/internal/domain"
)

// Save writes the check results to the configured JSON output file.
func (s *JSONStorage) Save(results []domain.CheckResult, duration time.Duration) error {
	passed, failed, skipped := domain.Summarize(results)

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalChecks:     len(results),
			PassedChecks:    passed,
			FailedChecks:    failed,
			SkippedChecks:   skipped,
			Environment:     s.cfg.EnvironmentName(),
			Port:            s.cfg.PortValue(),
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Results: results,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last check results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}
