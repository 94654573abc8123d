package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labfi/labfi-api/internal/models/dto"
	"github.com/labfi/labfi-api/internal/userservice"

	structValidator "github.com/go-playground/validator/v10"
)

// ListUsers handles GET /api/users. Each user's practica references are
// expanded to the {nombrePractica, fecha, estado} projection.
func (r *Route) ListUsers(w http.ResponseWriter, req *http.Request) {
	r.incCounter(UserListRequestsTotal)

	users, err := r.UserService.ListUsers(req.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToListUsers)
		return
	}

	responses := make([]*dto.UserWithPracticasDTO, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserWithPracticasResponse(user))
	}

	r.writeJSON(w, http.StatusOK, responses)
}

// Signup handles POST /api/users: validates the payload, hashes the
// password and persists the user. The response never carries the hash.
func (r *Route) Signup(w http.ResponseWriter, req *http.Request) {
	r.incCounter(SignupRequestsTotal)

	if req.Header.Get(ContentType) != ContentTypeJson {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf(ErrInvalidContentTypeFmt, req.Header.Get(ContentType)), ErrInvalidContentType)
		r.incCounter(SignupErrorsTotal)
		return
	}

	signupRequest := &dto.SignupRequestDTO{}
	if err := json.NewDecoder(req.Body).Decode(signupRequest); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, err, ErrInvalidRequestBody)
		r.incCounter(SignupErrorsTotal)
		return
	}

	if err := r.validator.Struct(signupRequest); err != nil {
		validationErrors := err.(structValidator.ValidationErrors)
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf("invalid signup data: %s", validationErrors), signupValidationMessage(validationErrors))
		r.incCounter(SignupErrorsTotal)
		return
	}

	startTime := time.Now()

	user, err := r.UserService.RegisterUser(req.Context(),
		signupRequest.Username, signupRequest.Password, signupRequest.Name, signupRequest.Rol)
	if err != nil {
		if errors.Is(err, userservice.ErrUsernameTaken) {
			w.WriteHeader(http.StatusBadRequest)
			r.errorResponse(w, err, ErrUsernameExistsMsg)
			r.incCounter(SignupErrorsTotal)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToRegisterUser)
		r.incCounter(SignupErrorsTotal)
		return
	}

	r.incCounter(SignupSuccessTotal)
	r.observeDuration(SignupDurationSeconds, startTime)
	r.writeJSON(w, http.StatusCreated, dto.NewUserResponse(user))
}

// signupValidationMessage picks the client-facing message for the first
// failing signup field.
func signupValidationMessage(validationErrors structValidator.ValidationErrors) string {
	for _, fieldError := range validationErrors {
		if fieldError.Field() == "Password" && fieldError.Tag() == "min" {
			return ErrPasswordTooShortMsg
		}
		if fieldError.Field() == "Username" && fieldError.Tag() == "min" {
			return "Username is too short. Please enter a username of at least 3 letters"
		}
	}
	return ErrAllFieldsRequiredMsg
}
