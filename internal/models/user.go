package models

// User represents an internal user model for the application/database.
// PasswordHash holds the bcrypt hash of the password, never the plaintext,
// and is stripped from every external representation.
type User struct {
	ID           string   `bson:"-" mapstructure:"-" db:"id"`
	Username     string   `bson:"username" mapstructure:"username" db:"username"`
	PasswordHash string   `bson:"passwordHash" mapstructure:"passwordHash" db:"password_hash"`
	Name         string   `bson:"name" mapstructure:"name" db:"name"`
	Rol          string   `bson:"rol" mapstructure:"rol" db:"rol"`
	Practicas    []string `bson:"practicas" mapstructure:"practicas" db:"practicas"`
}

// NewUser creates a new User instance with the given fields.
// Note: No validation is performed here.
func NewUser(username, passwordHash, name, rol string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Name:         name,
		Rol:          rol,
	}
}

// UserWithPracticas pairs a user with the summary projection of the
// practicas referenced by its Practicas ids.
type UserWithPracticas struct {
	User      User
	Practicas []PracticaSummary
}
