package interfaces

import "context"

// Document is a generic interface to represent data that can be stored
// and retrieved from the database. It could be a struct, a map[string]interface{},
// or any type that can be marshaled/unmarshaled by the specific database driver.
type Document interface{}

// FindOptions carries optional query modifiers for FindMany.
// Sort maps field names to 1 (ascending) or -1 (descending).
// Projection lists the fields to include in the returned documents;
// an empty projection returns every field.
type FindOptions struct {
	Sort       map[string]int
	Projection []string
}

// DBClient defines the interface for a generic database client.
// It abstracts common database operations across different database types (e.g., MongoDB, SQL).
type DBClient interface {
	// Connect establishes a connection to the database.
	// It takes a context for cancellation and timeouts, and a DSN (Data Source Name) string.
	Connect(ctx context.Context, dsn string) error

	// Disconnect closes the database connection.
	Disconnect(ctx context.Context) error

	// InsertOne inserts a single document into the specified collection/table.
	// Returns the ID of the inserted document (e.g., MongoDB ObjectID, SQL primary key) and an error.
	InsertOne(ctx context.Context, collectionName string, document Document) (interface{}, error)

	// FindOne retrieves a single document matching the filter and decodes it into 'result'.
	FindOne(ctx context.Context, collectionName string, filter Document, result Document) error

	// FindMany retrieves all documents matching the filter, honoring the
	// sort order and projection in 'opts' when non-nil.
	FindMany(ctx context.Context, collectionName string, filter Document, opts *FindOptions) ([]Document, error)

	// UpdateOne applies the given field updates to a single document matching the filter.
	// 'update' is a plain field-to-value map; the implementation translates it to
	// the backend's update syntax ($set for MongoDB, SET for SQL).
	// Returns the count of modified documents.
	UpdateOne(ctx context.Context, collectionName string, filter Document, update Document) (int64, error)

	// DeleteOne deletes a single document matching the filter.
	// Returns the count of deleted documents.
	DeleteOne(ctx context.Context, collectionName string, filter Document) (int64, error)

	// EnsureSchema creates backend-specific schema for the collection/table:
	// an index model for MongoDB, a DDL statement for SQL.
	EnsureSchema(ctx context.Context, collectionName string, schema Document) error

	// Ping checks the health of the database connection.
	Ping(ctx context.Context) error
}
