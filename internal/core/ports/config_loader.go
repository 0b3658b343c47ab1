package ports

import "go.trai.ch/seek/internal/core/domain"

// ConfigLoader defines the interface for loading search settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path and returns fully expanded settings.
	Load(path string) (*domain.Settings, error)
}
