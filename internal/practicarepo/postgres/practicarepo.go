package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/labfi/labfi-api/internal/interfaces"
	"github.com/labfi/labfi-api/internal/models"
	"github.com/labfi/labfi-api/internal/practicarepo/constants"

	pgClient "github.com/labfi/labfi-api/pkg/databases/postgres"
)

const practicasSchema = `
CREATE TABLE IF NOT EXISTS practicas (
	id TEXT PRIMARY KEY,
	nombre_practica TEXT NOT NULL,
	asignatura TEXT NOT NULL,
	grupo TEXT NOT NULL,
	escuela TEXT NOT NULL,
	fecha TIMESTAMPTZ NOT NULL,
	hora_inicio TEXT NOT NULL,
	hora_fin TEXT NOT NULL,
	ambiente TEXT NOT NULL,
	docente TEXT NOT NULL,
	materiales JSONB NOT NULL DEFAULT '[]',
	observaciones TEXT NOT NULL DEFAULT '',
	estado BOOLEAN NOT NULL DEFAULT FALSE
)`

// PostgresPracticaRepository implements PracticaRepository on PostgreSQL.
// Materiales is stored as a jsonb array so the line-item insertion order
// survives the round trip.
type PostgresPracticaRepository struct {
	dbClient interfaces.DBClient
}

// NewPostgresPracticaRepository creates a new PostgreSQL repository instance.
func NewPostgresPracticaRepository(dbClient interfaces.DBClient) (interfaces.PracticaRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	if _, ok := dbClient.(*pgClient.PostgresDatabaseClient); !ok {
		return nil, fmt.Errorf("dbClient must be a PostgreSQL client")
	}
	return &PostgresPracticaRepository{dbClient: dbClient}, nil
}

// Add saves a new practica and returns the generated UUID.
func (r *PostgresPracticaRepository) Add(ctx context.Context, practica models.Practica) (string, error) {
	materiales := practica.Materiales
	if materiales == nil {
		materiales = []models.Material{}
	}
	materialesJSON, err := json.Marshal(materiales)
	if err != nil {
		return "", fmt.Errorf("failed to encode materiales: %w", err)
	}

	row := map[string]interface{}{
		"nombre_practica": practica.NombrePractica,
		"asignatura":      practica.Asignatura,
		"grupo":           practica.Grupo,
		"escuela":         practica.Escuela,
		"fecha":           practica.Fecha,
		"hora_inicio":     practica.HoraInicio,
		"hora_fin":        practica.HoraFin,
		"ambiente":        practica.Ambiente,
		"docente":         practica.Docente,
		"materiales":      materialesJSON,
		"observaciones":   practica.Observaciones,
		"estado":          practica.Estado,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.PracticasTable, row)
	if err != nil {
		return "", fmt.Errorf("failed to add practica to PostgreSQL: %w", err)
	}

	return pgClient.StringValue(insertedID), nil
}

// GetByID retrieves a practica by id. An unknown id resolves to (nil, nil).
func (r *PostgresPracticaRepository) GetByID(ctx context.Context, id string) (*models.Practica, error) {
	var row map[string]interface{}
	err := r.dbClient.FindOne(ctx, constants.PracticasTable, map[string]interface{}{"id": id}, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get practica from PostgreSQL: %w", err)
	}

	practica, err := rowToPractica(row)
	if err != nil {
		return nil, err
	}
	return practica, nil
}

// GetAll returns every practica ordered by fecha descending.
func (r *PostgresPracticaRepository) GetAll(ctx context.Context) ([]models.Practica, error) {
	rows, err := r.dbClient.FindMany(ctx, constants.PracticasTable, map[string]interface{}{},
		&interfaces.FindOptions{Sort: map[string]int{"fecha": -1}})
	if err != nil {
		return nil, fmt.Errorf("failed to list practicas from PostgreSQL: %w", err)
	}

	practicas := make([]models.Practica, 0, len(rows))
	for _, doc := range rows {
		row, ok := doc.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected row type %T", doc)
		}
		practica, err := rowToPractica(row)
		if err != nil {
			return nil, err
		}
		practicas = append(practicas, *practica)
	}

	return practicas, nil
}

// GetSummariesByIDs resolves practica references to their summary projection.
func (r *PostgresPracticaRepository) GetSummariesByIDs(ctx context.Context, ids []string) ([]models.PracticaSummary, error) {
	summaries := make([]models.PracticaSummary, 0, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	rows, err := r.dbClient.FindMany(ctx, constants.PracticasTable,
		map[string]interface{}{"id": ids},
		&interfaces.FindOptions{Projection: []string{"nombre_practica", "fecha", "estado"}})
	if err != nil {
		return nil, fmt.Errorf("failed to load practica summaries from PostgreSQL: %w", err)
	}

	for _, doc := range rows {
		row, ok := doc.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected row type %T", doc)
		}
		summaries = append(summaries, models.PracticaSummary{
			NombrePractica: pgClient.StringValue(row["nombre_practica"]),
			Fecha:          pgClient.TimeValue(row["fecha"]),
			Estado:         pgClient.BoolValue(row["estado"]),
		})
	}

	return summaries, nil
}

// SetEstado overwrites the estado flag. Returns the affected count.
func (r *PostgresPracticaRepository) SetEstado(ctx context.Context, id string, estado bool) (int64, error) {
	count, err := r.dbClient.UpdateOne(ctx, constants.PracticasTable,
		map[string]interface{}{"id": id}, map[string]interface{}{"estado": estado})
	if err != nil {
		return 0, fmt.Errorf("failed to update practica estado in PostgreSQL: %w", err)
	}
	return count, nil
}

// Delete removes the practica. Returns the deleted count.
func (r *PostgresPracticaRepository) Delete(ctx context.Context, id string) (int64, error) {
	count, err := r.dbClient.DeleteOne(ctx, constants.PracticasTable, map[string]interface{}{"id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete practica from PostgreSQL: %w", err)
	}
	return count, nil
}

// EnsureIndices creates the practicas table when missing.
func (r *PostgresPracticaRepository) EnsureIndices(ctx context.Context) error {
	return r.dbClient.EnsureSchema(ctx, constants.PracticasTable, practicasSchema)
}

// Close disconnects the PostgreSQL client.
func (r *PostgresPracticaRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

func rowToPractica(row map[string]interface{}) (*models.Practica, error) {
	var materiales []models.Material
	if raw := pgClient.BytesValue(row["materiales"]); raw != nil {
		if err := json.Unmarshal(raw, &materiales); err != nil {
			return nil, fmt.Errorf("failed to decode materiales: %w", err)
		}
	}

	return &models.Practica{
		ID:             pgClient.StringValue(row["id"]),
		NombrePractica: pgClient.StringValue(row["nombre_practica"]),
		Asignatura:     pgClient.StringValue(row["asignatura"]),
		Grupo:          pgClient.StringValue(row["grupo"]),
		Escuela:        pgClient.StringValue(row["escuela"]),
		Fecha:          pgClient.TimeValue(row["fecha"]),
		HoraInicio:     pgClient.StringValue(row["hora_inicio"]),
		HoraFin:        pgClient.StringValue(row["hora_fin"]),
		Ambiente:       pgClient.StringValue(row["ambiente"]),
		Docente:        pgClient.StringValue(row["docente"]),
		Materiales:     materiales,
		Observaciones:  pgClient.StringValue(row["observaciones"]),
		Estado:         pgClient.BoolValue(row["estado"]),
	}, nil
}
