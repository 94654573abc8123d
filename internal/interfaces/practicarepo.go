package interfaces

import (
	"context"

	"github.com/labfi/labfi-api/internal/models"
)

// PracticaRepository defines the contract for storing and retrieving Practica data.
// Implementations return (nil, nil) from GetByID when the id does not resolve,
// including when the id is not a valid identifier for the backend.
type PracticaRepository interface {
	Add(ctx context.Context, practica models.Practica) (string, error)
	GetByID(ctx context.Context, id string) (*models.Practica, error)
	// GetAll returns every practica ordered by fecha descending.
	GetAll(ctx context.Context) ([]models.Practica, error)
	// GetSummariesByIDs resolves the given ids to their summary projection.
	// Ids that do not resolve are silently skipped.
	GetSummariesByIDs(ctx context.Context, ids []string) ([]models.PracticaSummary, error)
	// SetEstado overwrites the estado flag. Returns the modified count.
	SetEstado(ctx context.Context, id string, estado bool) (int64, error)
	// Delete removes the practica. Returns the deleted count.
	Delete(ctx context.Context, id string) (int64, error)
	EnsureIndices(ctx context.Context) error
	Close(ctx context.Context) error
}
