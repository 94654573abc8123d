package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labfi/labfi-api/internal/interfaces/mocks"
	"github.com/labfi/labfi-api/internal/models"
	"github.com/labfi/labfi-api/internal/practicaservice"
	"github.com/labfi/labfi-api/internal/userservice"
	"github.com/labfi/labfi-api/pkg/metrics"
	"github.com/labfi/labfi-api/pkg/zerolog"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRoute(t *testing.T) (*Route, *mocks.MockPracticaRepository, *mocks.MockUserRepository) {
	practicaRepo := mocks.NewMockPracticaRepository(t)
	userRepo := mocks.NewMockUserRepository(t)
	logger := zerolog.NewZerologLogger("test")

	r := NewRoute(
		metrics.NewMetrics("test"),
		practicaservice.NewPracticaService(practicaRepo, logger),
		userservice.NewUserService(userRepo, practicaRepo, logger),
		logger,
		structValidator.New(),
	)
	return r, practicaRepo, userRepo
}

func TestRoute_CreatePractica(t *testing.T) {
	validBody := `{
		"nombrePractica": "Medición",
		"asignatura": "Física I",
		"grupo": "B1",
		"escuela": "Ing. Sistemas",
		"fecha": "2024-05-10",
		"horaInicio": "7am",
		"horaFin": "9am",
		"ambiente": "1E-103",
		"docente": "E. Ccahua",
		"materiales": [{"descripcion": "Micrómetro", "cantidad": 2}]
	}`

	tests := []struct {
		name           string
		contentType    string
		body           string
		wantStatusCode int
	}{
		{
			name:           "valid create request",
			contentType:    "application/json",
			body:           validBody,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing required field",
			contentType:    "application/json",
			body:           `{"nombrePractica": "Medición"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "empty required field",
			contentType:    "application/json",
			body:           `{"nombrePractica": "", "asignatura": "Física I", "grupo": "B1", "escuela": "x", "fecha": "2024-05-10", "horaInicio": "7am", "horaFin": "9am", "ambiente": "1E-103", "docente": "y"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON body",
			contentType:    "application/json",
			body:           `{"nombrePractica": "Medición"`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing content type",
			contentType:    "",
			body:           validBody,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unparseable fecha",
			contentType:    "application/json",
			body:           `{"nombrePractica": "m", "asignatura": "a", "grupo": "g", "escuela": "e", "fecha": "not-a-date", "horaInicio": "7am", "horaFin": "9am", "ambiente": "x", "docente": "d"}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, practicaRepo, _ := newTestRoute(t)
			practicaRepo.On("Add", mock.Anything, mock.AnythingOfType("models.Practica")).
				Return("665f1a2b3c4d5e6f7a8b9c0d", nil).Maybe()

			req := httptest.NewRequest(http.MethodPost, "/api/practicas", bytes.NewBufferString(tt.body))
			if tt.contentType != "" {
				req.Header.Set(ContentType, tt.contentType)
			}
			rr := httptest.NewRecorder()

			r.CreatePractica(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)
		})
	}
}

func TestRoute_CreatePractica_ResponseShape(t *testing.T) {
	r, practicaRepo, _ := newTestRoute(t)

	var stored models.Practica
	practicaRepo.On("Add", mock.Anything, mock.AnythingOfType("models.Practica")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(models.Practica)
		}).
		Return("665f1a2b3c4d5e6f7a8b9c0d", nil)

	body := `{
		"nombrePractica": "Medición",
		"asignatura": "Física I",
		"grupo": "B1",
		"escuela": "Ing. Sistemas",
		"fecha": "2024-05-10",
		"horaInicio": "7am",
		"horaFin": "9am",
		"ambiente": "1E-103",
		"docente": "E. Ccahua",
		"materiales": [
			{"descripcion": "Micrómetro", "cantidad": 2},
			{"descripcion": "Vernier", "cantidad": 1}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/practicas", bytes.NewBufferString(body))
	req.Header.Set(ContentType, ContentTypeJson)
	rr := httptest.NewRecorder()

	r.CreatePractica(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))

	assert.Equal(t, "665f1a2b3c4d5e6f7a8b9c0d", decoded["id"])
	assert.Equal(t, false, decoded["estado"])
	assert.Equal(t, "10/05/24", decoded["fechaFormateada"])
	assert.NotContains(t, decoded, "_id")

	// stored materiales keep the request order
	require.Len(t, stored.Materiales, 2)
	assert.Equal(t, "Micrómetro", stored.Materiales[0].Descripcion)
	assert.Equal(t, "Vernier", stored.Materiales[1].Descripcion)
}

func TestRoute_GetPractica(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		practica       *models.Practica
		wantStatusCode int
	}{
		{
			name:           "existing practica",
			id:             "665f1a2b3c4d5e6f7a8b9c0d",
			practica:       &models.Practica{ID: "665f1a2b3c4d5e6f7a8b9c0d", NombrePractica: "Medición"},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "unknown id",
			id:             "665f1a2b3c4d5e6f7a8b9c0e",
			practica:       nil,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			id:             "not-an-object-id",
			practica:       nil,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, practicaRepo, _ := newTestRoute(t)
			practicaRepo.On("GetByID", mock.Anything, tt.id).Return(tt.practica, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/practicas/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()

			r.GetPractica(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)
		})
	}
}

func TestRoute_DeletePractica(t *testing.T) {
	t.Run("existing practica returns 204 with empty body", func(t *testing.T) {
		r, practicaRepo, _ := newTestRoute(t)
		practicaRepo.On("Delete", mock.Anything, "abc").Return(int64(1), nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/practicas/abc", nil)
		req.SetPathValue("id", "abc")
		rr := httptest.NewRecorder()

		r.DeletePractica(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("unknown id returns 404 with error message", func(t *testing.T) {
		r, practicaRepo, _ := newTestRoute(t)
		practicaRepo.On("Delete", mock.Anything, "missing").Return(int64(0), nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/practicas/missing", nil)
		req.SetPathValue("id", "missing")
		rr := httptest.NewRecorder()

		r.DeletePractica(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
		assert.NotEmpty(t, decoded["error"])
	})
}

func TestRoute_TogglePractica(t *testing.T) {
	r, practicaRepo, _ := newTestRoute(t)

	practicaRepo.On("GetByID", mock.Anything, "abc").
		Return(&models.Practica{ID: "abc", Estado: false}, nil)
	practicaRepo.On("SetEstado", mock.Anything, "abc", true).Return(int64(1), nil)

	req := httptest.NewRequest(http.MethodPut, "/api/practicas/abc", nil)
	req.SetPathValue("id", "abc")
	rr := httptest.NewRecorder()

	r.TogglePractica(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	assert.Equal(t, true, decoded["estado"])
}

func TestRoute_ListPracticas(t *testing.T) {
	r, practicaRepo, _ := newTestRoute(t)

	newest := models.Practica{ID: "a", NombrePractica: "nueva", Fecha: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}
	oldest := models.Practica{ID: "b", NombrePractica: "vieja", Fecha: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	practicaRepo.On("GetAll", mock.Anything).Return([]models.Practica{newest, oldest}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/practicas", nil)
	rr := httptest.NewRecorder()

	r.ListPracticas(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "a", decoded[0]["id"])
	assert.Equal(t, "b", decoded[1]["id"])
}

func TestRoute_Signup(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		existing       *models.User
		wantStatusCode int
	}{
		{
			name:           "valid signup",
			body:           `{"username":"eccahua","password":"abc","name":"Eduardo","rol":"docente"}`,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "password of length 2 is rejected",
			body:           `{"username":"eccahua","password":"ab","name":"Eduardo","rol":"docente"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing fields",
			body:           `{"username":"eccahua"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "duplicate username",
			body:           `{"username":"eccahua","password":"abc","name":"Eduardo","rol":"docente"}`,
			existing:       &models.User{Username: "eccahua"},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, userRepo := newTestRoute(t)
			userRepo.On("GetUserByUsername", mock.Anything, "eccahua").Return(tt.existing, nil).Maybe()
			userRepo.On("AddUser", mock.Anything, mock.AnythingOfType("models.User")).
				Return("665f1a2b3c4d5e6f7a8b9c0d", nil).Maybe()

			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
			req.Header.Set(ContentType, ContentTypeJson)
			rr := httptest.NewRecorder()

			r.Signup(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)
			if tt.wantStatusCode == http.StatusCreated {
				var decoded map[string]interface{}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
				assert.Equal(t, "665f1a2b3c4d5e6f7a8b9c0d", decoded["id"])
				assert.NotContains(t, decoded, "passwordHash")
			}
		})
	}
}

func TestRoute_ListUsers_ProjectionShape(t *testing.T) {
	r, practicaRepo, userRepo := newTestRoute(t)

	userRepo.On("GetAllUsers", mock.Anything).Return([]models.User{
		{ID: "u1", Username: "eccahua", PasswordHash: "$2a$10$secret", Practicas: []string{"p1"}},
	}, nil)
	practicaRepo.On("GetSummariesByIDs", mock.Anything, []string{"p1"}).
		Return([]models.PracticaSummary{
			{NombrePractica: "Medición", Fecha: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), Estado: false},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()

	r.ListUsers(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	assert.NotContains(t, decoded[0], "passwordHash")

	practicas, ok := decoded[0]["practicas"].([]interface{})
	require.True(t, ok)
	require.Len(t, practicas, 1)

	summary, ok := practicas[0].(map[string]interface{})
	require.True(t, ok)
	// projection carries exactly nombrePractica, fecha and estado
	assert.Len(t, summary, 3)
	assert.Contains(t, summary, "nombrePractica")
	assert.Contains(t, summary, "fecha")
	assert.Contains(t, summary, "estado")
}
