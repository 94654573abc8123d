package interfaces

import (
	"context"

	"github.com/labfi/labfi-api/internal/models"
)

// UserRepository defines the contract for storing and retrieving User data.
// This interface remains the same as it's database-agnostic.
type UserRepository interface {
	AddUser(ctx context.Context, user models.User) (string, error)
	// GetUserByUsername returns (nil, nil) when no user has the given username.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	EnsureIndices(ctx context.Context) error
	Close(ctx context.Context) error
}
