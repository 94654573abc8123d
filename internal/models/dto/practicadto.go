package dto

import (
	"time"

	"github.com/labfi/labfi-api/internal/models"
)

// MaterialDTO mirrors a material line item on the wire. Cantidad is required,
// so a line item with a zero quantity is rejected.
type MaterialDTO struct {
	Descripcion string `json:"descripcion" validate:"required"`
	Cantidad    int    `json:"cantidad" validate:"required"`
}

// CreatePracticaRequestDTO is the request body for registering a practica.
// Fecha is an ISO date string (YYYY-MM-DD or RFC3339); materiales and
// observaciones are optional.
type CreatePracticaRequestDTO struct {
	NombrePractica string        `json:"nombrePractica" validate:"required"`
	Asignatura     string        `json:"asignatura" validate:"required"`
	Grupo          string        `json:"grupo" validate:"required"`
	Escuela        string        `json:"escuela" validate:"required"`
	Fecha          string        `json:"fecha" validate:"required"`
	HoraInicio     string        `json:"horaInicio" validate:"required"`
	HoraFin        string        `json:"horaFin" validate:"required"`
	Ambiente       string        `json:"ambiente" validate:"required"`
	Docente        string        `json:"docente" validate:"required"`
	Materiales     []MaterialDTO `json:"materiales" validate:"omitempty,dive"`
	Observaciones  string        `json:"observaciones"`
}

// PracticaResponseDTO is the external representation of a practica. The
// internal identity is exposed as the plain "id" string and fechaFormateada
// is derived from fecha on the way out; no version metadata is carried.
type PracticaResponseDTO struct {
	ID              string        `json:"id"`
	NombrePractica  string        `json:"nombrePractica"`
	Asignatura      string        `json:"asignatura"`
	Grupo           string        `json:"grupo"`
	Escuela         string        `json:"escuela"`
	Fecha           time.Time     `json:"fecha"`
	FechaFormateada string        `json:"fechaFormateada"`
	HoraInicio      string        `json:"horaInicio"`
	HoraFin         string        `json:"horaFin"`
	Ambiente        string        `json:"ambiente"`
	Docente         string        `json:"docente"`
	Materiales      []MaterialDTO `json:"materiales"`
	Observaciones   string        `json:"observaciones"`
	Estado          bool          `json:"estado"`
}

// PracticaSummaryDTO is the projected form of a practica embedded in the
// user listing: nombrePractica, fecha and estado only.
type PracticaSummaryDTO struct {
	NombrePractica string    `json:"nombrePractica"`
	Fecha          time.Time `json:"fecha"`
	Estado         bool      `json:"estado"`
}

// NewPracticaResponse builds the external form of a practica. Materiales is
// always a non-nil slice so the JSON form carries [] rather than null, with
// the stored insertion order preserved.
func NewPracticaResponse(p *models.Practica) *PracticaResponseDTO {
	materiales := make([]MaterialDTO, 0, len(p.Materiales))
	for _, m := range p.Materiales {
		materiales = append(materiales, MaterialDTO{
			Descripcion: m.Descripcion,
			Cantidad:    m.Cantidad,
		})
	}

	return &PracticaResponseDTO{
		ID:              p.ID,
		NombrePractica:  p.NombrePractica,
		Asignatura:      p.Asignatura,
		Grupo:           p.Grupo,
		Escuela:         p.Escuela,
		Fecha:           p.Fecha,
		FechaFormateada: p.FechaFormateada(),
		HoraInicio:      p.HoraInicio,
		HoraFin:         p.HoraFin,
		Ambiente:        p.Ambiente,
		Docente:         p.Docente,
		Materiales:      materiales,
		Observaciones:   p.Observaciones,
		Estado:          p.Estado,
	}
}

// NewPracticaResponseList maps a slice of practicas preserving order.
func NewPracticaResponseList(practicas []models.Practica) []*PracticaResponseDTO {
	responses := make([]*PracticaResponseDTO, 0, len(practicas))
	for i := range practicas {
		responses = append(responses, NewPracticaResponse(&practicas[i]))
	}
	return responses
}

// NewPracticaSummary maps the internal projection to its wire form.
func NewPracticaSummary(s models.PracticaSummary) PracticaSummaryDTO {
	return PracticaSummaryDTO{
		NombrePractica: s.NombrePractica,
		Fecha:          s.Fecha,
		Estado:         s.Estado,
	}
}
