// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/prototypes/internal/domain/entities"
)

// DatasetSource is a mock implementation of ports.DatasetSource.
type DatasetSource struct {
	Catalog *entities.Catalog
	Err     error

	// Call tracking
	LoadCallCount int
}

// Load returns the configured catalog or error.
func (m *DatasetSource) Load(ctx context.Context) (*entities.Catalog, error) {
	m.LoadCallCount++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Catalog == nil {
		return &entities.Catalog{}, nil
	}
	return m.Catalog, nil
}
