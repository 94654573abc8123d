package practicaservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/labfi/labfi-api/internal/interfaces"
	"github.com/labfi/labfi-api/internal/models"
	"github.com/labfi/labfi-api/pkg/helper"
)

// ErrPracticaNotFound marks ids that do not resolve to a stored practica,
// including malformed ids.
var ErrPracticaNotFound = errors.New("practica not found")

type PracticaService struct {
	PracticaRepo interfaces.PracticaRepository
	Logger       interfaces.Logger
}

// NewPracticaService creates a new PracticaService instance.
func NewPracticaService(repo interfaces.PracticaRepository, logger interfaces.Logger) *PracticaService {
	return &PracticaService{
		PracticaRepo: repo,
		Logger:       logger,
	}
}

// List returns every practica, most recent fecha first.
func (s *PracticaService) List(ctx context.Context) ([]models.Practica, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName)
	practicas, err := s.PracticaRepo.GetAll(ctx)
	if err != nil {
		s.Logger.Error(ErrFailedToListPracticas, "func", funcName, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToListPracticas, err)
	}
	return practicas, nil
}

// Get returns the practica with the given id or ErrPracticaNotFound.
func (s *PracticaService) Get(ctx context.Context, id string) (*models.Practica, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "id", id)
	practica, err := s.PracticaRepo.GetByID(ctx, id)
	if err != nil {
		s.Logger.Error(ErrFailedToGetPractica, "func", funcName, "id", id, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToGetPractica, err)
	}
	if practica == nil {
		return nil, ErrPracticaNotFound
	}
	return practica, nil
}

// Create persists a new practica and returns it with its generated identity.
// Estado always starts out false; field validation happens at the route
// boundary before this is called.
func (s *PracticaService) Create(ctx context.Context, practica models.Practica) (*models.Practica, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "nombre", practica.NombrePractica)

	practica.ID = ""
	practica.Estado = false

	id, err := s.PracticaRepo.Add(ctx, practica)
	if err != nil {
		s.Logger.Error(ErrFailedToCreatePractica, "func", funcName, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToCreatePractica, err)
	}

	practica.ID = id
	s.Logger.Info("Practica created", "func", funcName, "id", id, "nombre", practica.NombrePractica)
	return &practica, nil
}

// Delete removes the practica with the given id or returns ErrPracticaNotFound.
// References held by users are left in place; there is no cascade.
func (s *PracticaService) Delete(ctx context.Context, id string) error {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "id", id)

	count, err := s.PracticaRepo.Delete(ctx, id)
	if err != nil {
		s.Logger.Error(ErrFailedToDeletePractica, "func", funcName, "id", id, "error", err)
		return fmt.Errorf("%s: %w", ErrFailedToDeletePractica, err)
	}
	if count == 0 {
		return ErrPracticaNotFound
	}

	s.Logger.Info("Practica deleted", "func", funcName, "id", id)
	return nil
}

// ToggleEstado flips the estado flag of the practica with the given id and
// returns the updated record, or ErrPracticaNotFound.
func (s *PracticaService) ToggleEstado(ctx context.Context, id string) (*models.Practica, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "id", id)

	practica, err := s.PracticaRepo.GetByID(ctx, id)
	if err != nil {
		s.Logger.Error(ErrFailedToTogglePractica, "func", funcName, "id", id, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToTogglePractica, err)
	}
	if practica == nil {
		return nil, ErrPracticaNotFound
	}

	practica.Estado = !practica.Estado
	count, err := s.PracticaRepo.SetEstado(ctx, id, practica.Estado)
	if err != nil {
		s.Logger.Error(ErrFailedToTogglePractica, "func", funcName, "id", id, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToTogglePractica, err)
	}
	if count == 0 {
		// deleted between read and update
		return nil, ErrPracticaNotFound
	}

	s.Logger.Info("Practica estado toggled", "func", funcName, "id", id, "estado", practica.Estado)
	return practica, nil
}
