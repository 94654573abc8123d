package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/labfi/labfi-api/internal/interfaces"
	"github.com/labfi/labfi-api/internal/models"
	"github.com/labfi/labfi-api/internal/userrepo/constants"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mongoClient "github.com/labfi/labfi-api/pkg/databases/mongo"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	MAXLENGTH_USERNAME = 64 // Maximum length for username
)

// MongoUserRepository implements UserRepository using the generic DBClient.
type MongoUserRepository struct {
	dbClient interfaces.DBClient
}

// NewMongoUserRepository creates a new MongoDB repository instance.
func NewMongoUserRepository(dbClient interfaces.DBClient) (interfaces.UserRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	if _, ok := dbClient.(*mongoClient.MongoDBClient); !ok {
		return nil, fmt.Errorf("dbClient must be a MongoDB client")
	}
	return &MongoUserRepository{dbClient: dbClient}, nil
}

// AddUser saves a new user to MongoDB via DBClient. The unique index on
// username turns concurrent duplicate registrations into a duplicate key
// error, which is reported as an already-exists failure.
func (r *MongoUserRepository) AddUser(ctx context.Context, user models.User) (string, error) {
	practicas := user.Practicas
	if practicas == nil {
		practicas = []string{}
	}

	doc := bson.M{
		"username":     user.Username,
		"passwordHash": user.PasswordHash,
		"name":         user.Name,
		"rol":          user.Rol,
		"practicas":    practicas,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.UsersCollection, doc)
	if err != nil {
		if strings.Contains(err.Error(), "E11000 duplicate key error") { // MongoDB specific duplicate key error check
			return "", fmt.Errorf("username '%s' already exists", user.Username)
		}
		return "", fmt.Errorf("failed to add user to MongoDB: %w", err)
	}

	objID, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to assert inserted ID to ObjectID")
	}
	return objID.Hex(), nil
}

// GetUserByUsername retrieves a user from MongoDB via DBClient.
// Returns (nil, nil) when the username does not resolve.
func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if len(username) == 0 || len(username) > MAXLENGTH_USERNAME {
		return nil, fmt.Errorf("invalid username: must be between 1 and %d characters", MAXLENGTH_USERNAME)
	}

	var doc struct {
		ID   primitive.ObjectID `bson:"_id"`
		User models.User        `bson:",inline"`
	}

	err := r.dbClient.FindOne(ctx, constants.UsersCollection, bson.M{"username": username}, &doc)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username from MongoDB: %w", err)
	}

	user := doc.User
	user.ID = doc.ID.Hex()
	return &user, nil
}

// GetAllUsers returns every user.
func (r *MongoUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	docs, err := r.dbClient.FindMany(ctx, constants.UsersCollection, bson.M{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list users from MongoDB: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		var user models.User
		if err := mongoClient.Decode(doc, &user); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		if docMap, ok := doc.(map[string]interface{}); ok {
			if oid, ok := docMap["_id"].(primitive.ObjectID); ok {
				user.ID = oid.Hex()
			}
		}
		users = append(users, user)
	}

	return users, nil
}

// EnsureIndices creates the unique username index. Uniqueness is enforced
// here at the store rather than by the registration pre-check alone.
func (r *MongoUserRepository) EnsureIndices(ctx context.Context) error {
	indexModel := mongosdk.IndexModel{
		Keys:    bson.M{"username": 1},
		Options: options.Index().SetUnique(true),
	}
	return r.dbClient.EnsureSchema(ctx, constants.UsersCollection, indexModel)
}

// Close disconnects the MongoDB client.
func (r *MongoUserRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}
