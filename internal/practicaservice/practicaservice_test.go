package practicaservice

import (
	"context"
	"testing"
	"time"

	"github.com/labfi/labfi-api/internal/interfaces/mocks"
	"github.com/labfi/labfi-api/internal/models"
	"github.com/labfi/labfi-api/pkg/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*PracticaService, *mocks.MockPracticaRepository) {
	repo := mocks.NewMockPracticaRepository(t)
	return NewPracticaService(repo, zerolog.NewZerologLogger("test")), repo
}

func TestPracticaService_Create_EstadoStartsFalse(t *testing.T) {
	service, repo := newTestService(t)

	var stored models.Practica
	repo.On("Add", mock.Anything, mock.AnythingOfType("models.Practica")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(models.Practica)
		}).
		Return("665f1a2b3c4d5e6f7a8b9c0d", nil)

	created, err := service.Create(context.Background(), models.Practica{
		NombrePractica: "Medición",
		Estado:         true, // must be ignored
	})
	require.NoError(t, err)

	assert.False(t, stored.Estado)
	assert.False(t, created.Estado)
	assert.Equal(t, "665f1a2b3c4d5e6f7a8b9c0d", created.ID)
}

func TestPracticaService_Get_NotFound(t *testing.T) {
	service, repo := newTestService(t)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	_, err := service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPracticaNotFound)
}

func TestPracticaService_Delete_NotFound(t *testing.T) {
	service, repo := newTestService(t)
	repo.On("Delete", mock.Anything, "missing").Return(int64(0), nil)

	err := service.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPracticaNotFound)
}

func TestPracticaService_ToggleEstado(t *testing.T) {
	service, repo := newTestService(t)

	// stateful fake: estado persists across calls so we can toggle twice
	estado := false
	repo.On("GetByID", mock.Anything, "abc").Return(func(ctx context.Context, id string) *models.Practica {
		return &models.Practica{ID: "abc", NombrePractica: "Medición", Estado: estado}
	}, nil)
	repo.On("SetEstado", mock.Anything, "abc", mock.AnythingOfType("bool")).
		Run(func(args mock.Arguments) {
			estado = args.Get(2).(bool)
		}).
		Return(int64(1), nil)

	first, err := service.ToggleEstado(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, first.Estado)

	// toggling twice returns the practica to its original estado
	second, err := service.ToggleEstado(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, second.Estado)
}

func TestPracticaService_ToggleEstado_NotFound(t *testing.T) {
	service, repo := newTestService(t)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	_, err := service.ToggleEstado(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPracticaNotFound)
}

func TestPracticaService_List_PassesThroughRepositoryOrder(t *testing.T) {
	service, repo := newTestService(t)

	newest := models.Practica{ID: "a", Fecha: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	oldest := models.Practica{ID: "b", Fecha: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	repo.On("GetAll", mock.Anything).Return([]models.Practica{newest, oldest}, nil)

	practicas, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, practicas, 2)
	assert.True(t, !practicas[0].Fecha.Before(practicas[1].Fecha))
}
