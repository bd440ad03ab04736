// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/prototypes/internal/domain/entities"
)

// DatasetSource loads the dataset catalog the prompts run against.
// Implementations return a fresh catalog on every call, so callers may not
// observe each other's changes.
type DatasetSource interface {
	// Load reads every dataset.
	Load(ctx context.Context) (*entities.Catalog, error)
}
