package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/labfi/labfi-api/internal/interfaces"
	"github.com/labfi/labfi-api/internal/models"
	"github.com/labfi/labfi-api/internal/userrepo/constants"

	pgClient "github.com/labfi/labfi-api/pkg/databases/postgres"
	"github.com/lib/pq"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	rol TEXT NOT NULL DEFAULT '',
	practicas JSONB NOT NULL DEFAULT '[]'
)`

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = pq.ErrorCode("23505")

// PostgresUserRepository implements UserRepository on PostgreSQL.
type PostgresUserRepository struct {
	dbClient interfaces.DBClient
}

// NewPostgresUserRepository creates a new PostgreSQL repository instance.
func NewPostgresUserRepository(dbClient interfaces.DBClient) (interfaces.UserRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	if _, ok := dbClient.(*pgClient.PostgresDatabaseClient); !ok {
		return nil, fmt.Errorf("dbClient must be a PostgreSQL client")
	}
	return &PostgresUserRepository{dbClient: dbClient}, nil
}

// AddUser saves a new user. The UNIQUE constraint on username turns
// concurrent duplicate registrations into a unique violation, which is
// reported as an already-exists failure.
func (r *PostgresUserRepository) AddUser(ctx context.Context, user models.User) (string, error) {
	practicas := user.Practicas
	if practicas == nil {
		practicas = []string{}
	}
	practicasJSON, err := json.Marshal(practicas)
	if err != nil {
		return "", fmt.Errorf("failed to encode practicas: %w", err)
	}

	row := map[string]interface{}{
		"username":      user.Username,
		"password_hash": user.PasswordHash,
		"name":          user.Name,
		"rol":           user.Rol,
		"practicas":     practicasJSON,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, constants.UsersTable, row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return "", fmt.Errorf("username '%s' already exists", user.Username)
		}
		return "", fmt.Errorf("failed to add user to PostgreSQL: %w", err)
	}

	return pgClient.StringValue(insertedID), nil
}

// GetUserByUsername retrieves a user by username.
// Returns (nil, nil) when the username does not resolve.
func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	var row map[string]interface{}
	err := r.dbClient.FindOne(ctx, constants.UsersTable, map[string]interface{}{"username": username}, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username from PostgreSQL: %w", err)
	}

	return rowToUser(row)
}

// GetAllUsers returns every user.
func (r *PostgresUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.dbClient.FindMany(ctx, constants.UsersTable, map[string]interface{}{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list users from PostgreSQL: %w", err)
	}

	users := make([]models.User, 0, len(rows))
	for _, doc := range rows {
		row, ok := doc.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected row type %T", doc)
		}
		user, err := rowToUser(row)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	return users, nil
}

// EnsureIndices creates the users table when missing; the username UNIQUE
// constraint rides along with the table definition.
func (r *PostgresUserRepository) EnsureIndices(ctx context.Context) error {
	return r.dbClient.EnsureSchema(ctx, constants.UsersTable, usersSchema)
}

// Close disconnects the PostgreSQL client.
func (r *PostgresUserRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

func rowToUser(row map[string]interface{}) (*models.User, error) {
	var practicas []string
	if raw := pgClient.BytesValue(row["practicas"]); raw != nil {
		if err := json.Unmarshal(raw, &practicas); err != nil {
			return nil, fmt.Errorf("failed to decode practicas: %w", err)
		}
	}

	return &models.User{
		ID:           pgClient.StringValue(row["id"]),
		Username:     pgClient.StringValue(row["username"]),
		PasswordHash: pgClient.StringValue(row["password_hash"]),
		Name:         pgClient.StringValue(row["name"]),
		Rol:          pgClient.StringValue(row["rol"]),
		Practicas:    practicas,
	}, nil
}
