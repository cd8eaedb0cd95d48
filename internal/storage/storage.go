package storage

import (
	"time"

	"hellodock/internal/config"
	"hellodock/internal/domain"
)

// Storage persists and loads check run results (e.g. for the report command).
type Storage interface {
	Save(results []domain.CheckResult, duration time.Duration) error
	Load() (*domain.RunOutput, error)
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
