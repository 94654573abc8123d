package interfaces

import (
	"context"

	"github.com/labfi/labfi-api/internal/models"
)

type PracticaService interface {
	List(ctx context.Context) ([]models.Practica, error)
	Get(ctx context.Context, id string) (*models.Practica, error)
	Create(ctx context.Context, practica models.Practica) (*models.Practica, error)
	Delete(ctx context.Context, id string) error
	ToggleEstado(ctx context.Context, id string) (*models.Practica, error)
}
