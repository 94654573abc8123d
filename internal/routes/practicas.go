package routes

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labfi/labfi-api/internal/models"
	"github.com/labfi/labfi-api/internal/models/dto"
	"github.com/labfi/labfi-api/internal/practicaservice"

	"encoding/json"

	structValidator "github.com/go-playground/validator/v10"
)

// ListPracticas handles GET /api/practicas, most recent fecha first.
func (r *Route) ListPracticas(w http.ResponseWriter, req *http.Request) {
	r.incCounter(PracticaRequestsTotal)
	startTime := time.Now()

	practicas, err := r.PracticaService.List(req.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToListPracticas)
		r.incCounter(PracticaErrorsTotal)
		return
	}

	r.observeDuration(PracticaDurationSeconds, startTime)
	r.writeJSON(w, http.StatusOK, dto.NewPracticaResponseList(practicas))
}

// GetPractica handles GET /api/practicas/{id}.
func (r *Route) GetPractica(w http.ResponseWriter, req *http.Request) {
	r.incCounter(PracticaRequestsTotal)

	practica, err := r.PracticaService.Get(req.Context(), req.PathValue("id"))
	if err != nil {
		if errors.Is(err, practicaservice.ErrPracticaNotFound) {
			w.WriteHeader(http.StatusNotFound)
			r.errorResponse(w, err, ErrPracticaNotFoundMsg)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToListPracticas)
		r.incCounter(PracticaErrorsTotal)
		return
	}

	r.writeJSON(w, http.StatusOK, dto.NewPracticaResponse(practica))
}

// CreatePractica handles POST /api/practicas. Every required field must be
// present and non-empty before anything is persisted.
func (r *Route) CreatePractica(w http.ResponseWriter, req *http.Request) {
	r.incCounter(PracticaRequestsTotal)

	if req.Header.Get(ContentType) != ContentTypeJson {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf(ErrInvalidContentTypeFmt, req.Header.Get(ContentType)), ErrInvalidContentType)
		r.incCounter(PracticaErrorsTotal)
		return
	}

	createRequest := &dto.CreatePracticaRequestDTO{}
	if err := json.NewDecoder(req.Body).Decode(createRequest); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, err, ErrInvalidRequestBody)
		r.incCounter(PracticaErrorsTotal)
		return
	}

	if err := r.validator.Struct(createRequest); err != nil {
		errors := err.(structValidator.ValidationErrors)
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, fmt.Errorf("invalid practica data: %s", errors), ErrMissingFieldsMsg)
		r.incCounter(PracticaErrorsTotal)
		return
	}

	fecha, err := parseFecha(createRequest.Fecha)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		r.errorResponse(w, err, ErrInvalidFechaMsg)
		r.incCounter(PracticaErrorsTotal)
		return
	}

	materiales := make([]models.Material, 0, len(createRequest.Materiales))
	for _, m := range createRequest.Materiales {
		materiales = append(materiales, models.Material{
			Descripcion: m.Descripcion,
			Cantidad:    m.Cantidad,
		})
	}

	startTime := time.Now()

	practica, err := r.PracticaService.Create(req.Context(), models.Practica{
		NombrePractica: createRequest.NombrePractica,
		Asignatura:     createRequest.Asignatura,
		Grupo:          createRequest.Grupo,
		Escuela:        createRequest.Escuela,
		Fecha:          fecha,
		HoraInicio:     createRequest.HoraInicio,
		HoraFin:        createRequest.HoraFin,
		Ambiente:       createRequest.Ambiente,
		Docente:        createRequest.Docente,
		Materiales:     materiales,
		Observaciones:  createRequest.Observaciones,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToCreatePractica)
		r.incCounter(PracticaErrorsTotal)
		return
	}

	r.incCounter(PracticaCreatedTotal)
	r.observeDuration(PracticaDurationSeconds, startTime)
	r.writeJSON(w, http.StatusCreated, dto.NewPracticaResponse(practica))
}

// DeletePractica handles DELETE /api/practicas/{id}.
func (r *Route) DeletePractica(w http.ResponseWriter, req *http.Request) {
	r.incCounter(PracticaRequestsTotal)

	err := r.PracticaService.Delete(req.Context(), req.PathValue("id"))
	if err != nil {
		if errors.Is(err, practicaservice.ErrPracticaNotFound) {
			w.WriteHeader(http.StatusNotFound)
			r.errorResponse(w, err, ErrPracticaNotFoundMsg)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToDeletePractica)
		r.incCounter(PracticaErrorsTotal)
		return
	}

	r.incCounter(PracticaDeletedTotal)
	w.WriteHeader(http.StatusNoContent)
}

// TogglePractica handles PUT /api/practicas/{id}: flips estado between
// pending and completed and returns the updated record.
func (r *Route) TogglePractica(w http.ResponseWriter, req *http.Request) {
	r.incCounter(PracticaRequestsTotal)

	practica, err := r.PracticaService.ToggleEstado(req.Context(), req.PathValue("id"))
	if err != nil {
		if errors.Is(err, practicaservice.ErrPracticaNotFound) {
			w.WriteHeader(http.StatusNotFound)
			r.errorResponse(w, err, ErrPracticaNotFoundMsg)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		r.errorResponse(w, err, ErrFailedToTogglePractica)
		r.incCounter(PracticaErrorsTotal)
		return
	}

	r.incCounter(PracticaToggledTotal)
	r.writeJSON(w, http.StatusOK, dto.NewPracticaResponse(practica))
}
