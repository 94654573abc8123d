package interfaces

import (
	"context"

	"github.com/labfi/labfi-api/internal/models"
)

type UserService interface {
	RegisterUser(ctx context.Context, username, password, name, rol string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.UserWithPracticas, error)
}
