package dto

import "github.com/labfi/labfi-api/internal/models"

// SignupRequestDTO is the request body for registering a user. Password
// travels in plaintext only inside this transient struct; it is hashed
// before anything is persisted.
type SignupRequestDTO struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=3"`
	Name     string `json:"name" validate:"required"`
	Rol      string `json:"rol" validate:"required"`
}

// UserResponseDTO is the external representation of a user. There is no
// field for the credential hash, so it can never leak regardless of caller.
type UserResponseDTO struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Name      string   `json:"name"`
	Rol       string   `json:"rol"`
	Practicas []string `json:"practicas"`
}

// UserWithPracticasDTO is the user listing form: the practicas references
// are expanded to their summary projection.
type UserWithPracticasDTO struct {
	ID        string               `json:"id"`
	Username  string               `json:"username"`
	Name      string               `json:"name"`
	Rol       string               `json:"rol"`
	Practicas []PracticaSummaryDTO `json:"practicas"`
}

// NewUserResponse builds the external form of a user, ids unexpanded.
func NewUserResponse(u *models.User) *UserResponseDTO {
	practicas := u.Practicas
	if practicas == nil {
		practicas = []string{}
	}
	return &UserResponseDTO{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Rol:       u.Rol,
		Practicas: practicas,
	}
}

// NewUserWithPracticasResponse builds the expanded listing form of a user.
func NewUserWithPracticasResponse(u models.UserWithPracticas) *UserWithPracticasDTO {
	summaries := make([]PracticaSummaryDTO, 0, len(u.Practicas))
	for _, s := range u.Practicas {
		summaries = append(summaries, NewPracticaSummary(s))
	}
	return &UserWithPracticasDTO{
		ID:        u.User.ID,
		Username:  u.User.Username,
		Name:      u.User.Name,
		Rol:       u.User.Rol,
		Practicas: summaries,
	}
}
