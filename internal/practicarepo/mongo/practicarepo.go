package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/labfi/labfi-api/internal/interfaces"
	"github.com/labfi/labfi-api/internal/models"
	"github.com/labfi/labfi-api/internal/practicarepo/constants"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mongoClient "github.com/labfi/labfi-api/pkg/databases/mongo"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
)

// MongoPracticaRepository implements PracticaRepository using the generic DBClient.
type MongoPracticaRepository struct {
	dbClient interfaces.DBClient
}

// NewMongoPracticaRepository creates a new MongoDB repository instance.
func NewMongoPracticaRepository(dbClient interfaces.DBClient) (interfaces.PracticaRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	if _, ok := dbClient.(*mongoClient.MongoDBClient); !ok {
		return nil, fmt.Errorf("dbClient must be a MongoDB client")
	}
	return &MongoPracticaRepository{dbClient: dbClient}, nil
}

// Add saves a new practica and returns the generated identity as a hex string.
func (r *MongoPracticaRepository) Add(ctx context.Context, practica models.Practica) (string, error) {
	materiales := practica.Materiales
	if materiales == nil {
		materiales = []models.Material{}
	}

	doc := bson.M{
		"nombrePractica": practica.NombrePractica,
		"asignatura":     practica.Asignatura,
		"grupo":          practica.Grupo,
		"escuela":        practica.Escuela,
		"fecha":          practica.Fecha,
		"horaInicio":     practica.HoraInicio,
		"horaFin":        practica.HoraFin,
		"ambiente":       practica.Ambiente,
		"docente":        practica.Docente,
		"materiales":     materiales,
		"observaciones":  practica.Observaciones,
		"estado":         practica.Estado,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.PracticasCollection, doc)
	if err != nil {
		return "", fmt.Errorf("failed to add practica to MongoDB: %w", err)
	}

	objID, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to assert inserted ID to ObjectID")
	}
	return objID.Hex(), nil
}

// GetByID retrieves a practica by its hex id. A malformed or unknown id
// resolves to (nil, nil).
func (r *MongoPracticaRepository) GetByID(ctx context.Context, id string) (*models.Practica, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc struct {
		ID       primitive.ObjectID `bson:"_id"`
		Practica models.Practica    `bson:",inline"`
	}

	err = r.dbClient.FindOne(ctx, constants.PracticasCollection, bson.M{"_id": oid}, &doc)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get practica from MongoDB: %w", err)
	}

	practica := doc.Practica
	practica.ID = doc.ID.Hex()
	return &practica, nil
}

// GetAll returns every practica ordered by fecha descending.
func (r *MongoPracticaRepository) GetAll(ctx context.Context) ([]models.Practica, error) {
	docs, err := r.dbClient.FindMany(ctx, constants.PracticasCollection, bson.M{},
		&interfaces.FindOptions{Sort: map[string]int{"fecha": -1}})
	if err != nil {
		return nil, fmt.Errorf("failed to list practicas from MongoDB: %w", err)
	}

	practicas := make([]models.Practica, 0, len(docs))
	for _, doc := range docs {
		var practica models.Practica
		if err := mongoClient.Decode(doc, &practica); err != nil {
			return nil, fmt.Errorf("failed to decode practica: %w", err)
		}
		if docMap, ok := doc.(map[string]interface{}); ok {
			if oid, ok := docMap["_id"].(primitive.ObjectID); ok {
				practica.ID = oid.Hex()
			}
		}
		practicas = append(practicas, practica)
	}

	return practicas, nil
}

// GetSummariesByIDs resolves practica references to their summary projection,
// skipping ids that are malformed or no longer resolve.
func (r *MongoPracticaRepository) GetSummariesByIDs(ctx context.Context, ids []string) ([]models.PracticaSummary, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	summaries := make([]models.PracticaSummary, 0, len(oids))
	if len(oids) == 0 {
		return summaries, nil
	}

	docs, err := r.dbClient.FindMany(ctx, constants.PracticasCollection,
		bson.M{"_id": bson.M{"$in": oids}},
		&interfaces.FindOptions{Projection: []string{"nombrePractica", "fecha", "estado"}})
	if err != nil {
		return nil, fmt.Errorf("failed to load practica summaries from MongoDB: %w", err)
	}

	for _, doc := range docs {
		var summary models.PracticaSummary
		if err := mongoClient.Decode(doc, &summary); err != nil {
			return nil, fmt.Errorf("failed to decode practica summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// SetEstado overwrites the estado flag. Returns the matched count, zero when
// the id is malformed or unknown.
func (r *MongoPracticaRepository) SetEstado(ctx context.Context, id string, estado bool) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	count, err := r.dbClient.UpdateOne(ctx, constants.PracticasCollection,
		bson.M{"_id": oid}, bson.M{"estado": estado})
	if err != nil {
		return 0, fmt.Errorf("failed to update practica estado in MongoDB: %w", err)
	}
	return count, nil
}

// Delete removes the practica. Returns the deleted count, zero when the id
// is malformed or unknown.
func (r *MongoPracticaRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	count, err := r.dbClient.DeleteOne(ctx, constants.PracticasCollection, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete practica from MongoDB: %w", err)
	}
	return count, nil
}

// EnsureIndices creates the fecha index backing the sorted listing.
func (r *MongoPracticaRepository) EnsureIndices(ctx context.Context) error {
	indexModel := mongosdk.IndexModel{
		Keys: bson.M{"fecha": -1},
	}
	return r.dbClient.EnsureSchema(ctx, constants.PracticasCollection, indexModel)
}

// Close disconnects the MongoDB client.
func (r *MongoPracticaRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}
