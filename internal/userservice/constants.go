package userservice

const (
	// Error messages for user service operations
	ErrFailedToHashPassword = "failed to hash password" // #nosec G101
	ErrFailedToRegisterUser = "failed to register user"
	ErrRetrievingUser       = "error retrieving user"
	ErrFailedToListUsers    = "failed to list users"
	ErrExpandingPracticas   = "failed to expand user practicas"
)
