package ui

import "hellodock/internal/domain"

// Viewer displays stored check results
type Viewer interface {
	View(output *domain.RunOutput) error
}
