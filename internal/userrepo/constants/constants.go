package constants

const (
	// UsersCollection is the MongoDB collection holding user documents.
	UsersCollection = "users"
	// UsersTable is the PostgreSQL table holding user rows.
	UsersTable = "users"
)
