package userservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/labfi/labfi-api/internal/interfaces"
	"github.com/labfi/labfi-api/internal/models"
	"github.com/labfi/labfi-api/pkg/helper"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the bcrypt work factor applied to passwords at registration.
const BcryptCost = 10

// ErrUsernameTaken marks registrations whose username already exists.
var ErrUsernameTaken = errors.New("username already exists")

type UserService struct {
	UserRepo     interfaces.UserRepository
	PracticaRepo interfaces.PracticaRepository
	Logger       interfaces.Logger
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo interfaces.UserRepository, practicaRepo interfaces.PracticaRepository, logger interfaces.Logger) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		PracticaRepo: practicaRepo,
		Logger:       logger,
	}
}

// RegisterUser hashes the password and adds the user via the repository.
// The username pre-check and the insert are separate operations; the unique
// index at the store is what actually guarantees uniqueness under races,
// and a duplicate key failure from the insert is mapped to ErrUsernameTaken
// just like a pre-check hit.
func (s *UserService) RegisterUser(ctx context.Context, username, password, name, rol string) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)
	s.Logger.Info("Registering user", "func", funcName, "user", username)

	existing, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		s.Logger.Error(ErrRetrievingUser, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrRetrievingUser, err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		s.Logger.Error(ErrFailedToHashPassword, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToHashPassword, err)
	}

	user := models.NewUser(username, string(hashedPassword), name, rol)

	userID, err := s.UserRepo.AddUser(ctx, *user)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			// lost the race; the unique index caught it
			return nil, ErrUsernameTaken
		}
		s.Logger.Error(ErrFailedToRegisterUser, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToRegisterUser, err)
	}

	user.ID = userID
	s.Logger.Info("User registered successfully", "func", funcName, "user", username, "ID", userID)
	return user, nil
}

// ListUsers returns every user with its practica references expanded to the
// summary projection. Dangling references are skipped; a deleted practica
// does not break the listing.
func (s *UserService) ListUsers(ctx context.Context) ([]models.UserWithPracticas, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName)

	users, err := s.UserRepo.GetAllUsers(ctx)
	if err != nil {
		s.Logger.Error(ErrFailedToListUsers, "func", funcName, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToListUsers, err)
	}

	expanded := make([]models.UserWithPracticas, 0, len(users))
	for _, user := range users {
		summaries, err := s.PracticaRepo.GetSummariesByIDs(ctx, user.Practicas)
		if err != nil {
			s.Logger.Error(ErrExpandingPracticas, "func", funcName, "user", user.Username, "error", err)
			return nil, fmt.Errorf("%s: %w", ErrExpandingPracticas, err)
		}
		expanded = append(expanded, models.UserWithPracticas{
			User:      user,
			Practicas: summaries,
		})
	}

	return expanded, nil
}
