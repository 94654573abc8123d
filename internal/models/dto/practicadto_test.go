package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/labfi/labfi-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPracticaResponse(t *testing.T) {
	fecha := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	practica := &models.Practica{
		ID:             "665f1a2b3c4d5e6f7a8b9c0d",
		NombrePractica: "Medición y Cálculo de Errores",
		Asignatura:     "Física I",
		Grupo:          "B1",
		Escuela:        "Ingeniería de Sistemas",
		Fecha:          fecha,
		HoraInicio:     "7am",
		HoraFin:        "9am",
		Ambiente:       "1E-103",
		Docente:        "Eduardo Ccahua Benites",
		Materiales: []models.Material{
			{Descripcion: "Micrómetro", Cantidad: 2},
			{Descripcion: "Vernier", Cantidad: 5},
			{Descripcion: "Balanza", Cantidad: 1},
		},
	}

	resp := NewPracticaResponse(practica)

	assert.Equal(t, "665f1a2b3c4d5e6f7a8b9c0d", resp.ID)
	assert.Equal(t, "10/05/24", resp.FechaFormateada)
	assert.False(t, resp.Estado)

	// materiales order must match insertion order exactly
	require.Len(t, resp.Materiales, 3)
	assert.Equal(t, "Micrómetro", resp.Materiales[0].Descripcion)
	assert.Equal(t, "Vernier", resp.Materiales[1].Descripcion)
	assert.Equal(t, "Balanza", resp.Materiales[2].Descripcion)
}

func TestNewPracticaResponse_NilMaterialesSerializesAsEmptyArray(t *testing.T) {
	resp := NewPracticaResponse(&models.Practica{ID: "abc"})

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	materiales, ok := decoded["materiales"].([]interface{})
	require.True(t, ok, "materiales should be a JSON array, got %T", decoded["materiales"])
	assert.Empty(t, materiales)
}

func TestPracticaResponse_SerializedFormCarriesOnlyExternalIdentity(t *testing.T) {
	resp := NewPracticaResponse(&models.Practica{
		ID:    "665f1a2b3c4d5e6f7a8b9c0d",
		Fecha: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	})

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Contains(t, decoded, "id")
	assert.NotContains(t, decoded, "_id")
	assert.NotContains(t, decoded, "__v")
}

func TestNewPracticaSummary(t *testing.T) {
	fecha := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	summary := NewPracticaSummary(models.PracticaSummary{
		NombrePractica: "Medición",
		Fecha:          fecha,
		Estado:         true,
	})

	body, err := json.Marshal(summary)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	// the projection exposes exactly nombrePractica, fecha and estado
	assert.Len(t, decoded, 3)
	assert.Contains(t, decoded, "nombrePractica")
	assert.Contains(t, decoded, "fecha")
	assert.Contains(t, decoded, "estado")
}
