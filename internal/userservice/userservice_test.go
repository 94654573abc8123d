package userservice

import (
	"context"
	"fmt"
	"testing"

	"github.com/labfi/labfi-api/internal/interfaces/mocks"
	"github.com/labfi/labfi-api/internal/models"
	"github.com/labfi/labfi-api/pkg/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*UserService, *mocks.MockUserRepository, *mocks.MockPracticaRepository) {
	userRepo := mocks.NewMockUserRepository(t)
	practicaRepo := mocks.NewMockPracticaRepository(t)
	service := NewUserService(userRepo, practicaRepo, zerolog.NewZerologLogger("test"))
	return service, userRepo, practicaRepo
}

func TestUserService_RegisterUser_HashesPassword(t *testing.T) {
	service, userRepo, _ := newTestService(t)

	userRepo.On("GetUserByUsername", mock.Anything, "eccahua").Return(nil, nil)

	var stored models.User
	userRepo.On("AddUser", mock.Anything, mock.AnythingOfType("models.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(models.User)
		}).
		Return("665f1a2b3c4d5e6f7a8b9c0d", nil)

	user, err := service.RegisterUser(context.Background(), "eccahua", "secreta", "Eduardo Ccahua", "docente")
	require.NoError(t, err)

	// the plaintext never reaches the repository
	assert.NotEqual(t, "secreta", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta")))

	cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, BcryptCost, cost)

	assert.Equal(t, "665f1a2b3c4d5e6f7a8b9c0d", user.ID)
}

func TestUserService_RegisterUser_DuplicateUsername(t *testing.T) {
	service, userRepo, _ := newTestService(t)

	userRepo.On("GetUserByUsername", mock.Anything, "eccahua").
		Return(&models.User{Username: "eccahua"}, nil)

	_, err := service.RegisterUser(context.Background(), "eccahua", "secreta", "Eduardo", "docente")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_RegisterUser_DuplicateLostRace(t *testing.T) {
	service, userRepo, _ := newTestService(t)

	// the pre-check passes but the unique index catches the insert
	userRepo.On("GetUserByUsername", mock.Anything, "eccahua").Return(nil, nil)
	userRepo.On("AddUser", mock.Anything, mock.AnythingOfType("models.User")).
		Return("", fmt.Errorf("username 'eccahua' already exists"))

	_, err := service.RegisterUser(context.Background(), "eccahua", "secreta", "Eduardo", "docente")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_ListUsers_ExpandsPracticas(t *testing.T) {
	service, userRepo, practicaRepo := newTestService(t)

	userRepo.On("GetAllUsers", mock.Anything).Return([]models.User{
		{ID: "u1", Username: "eccahua", Practicas: []string{"p1", "p2"}},
		{ID: "u2", Username: "vacia"},
	}, nil)

	practicaRepo.On("GetSummariesByIDs", mock.Anything, []string{"p1", "p2"}).
		Return([]models.PracticaSummary{
			{NombrePractica: "Medición"},
			{NombrePractica: "Óptica"},
		}, nil)
	practicaRepo.On("GetSummariesByIDs", mock.Anything, []string(nil)).
		Return([]models.PracticaSummary{}, nil)

	users, err := service.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Len(t, users[0].Practicas, 2)
	assert.Equal(t, "Medición", users[0].Practicas[0].NombrePractica)
	assert.Empty(t, users[1].Practicas)
}
