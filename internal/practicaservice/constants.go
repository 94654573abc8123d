package practicaservice

const (
	// Error messages for practica service operations
	ErrFailedToListPracticas  = "failed to list practicas"
	ErrFailedToGetPractica    = "failed to get practica"
	ErrFailedToCreatePractica = "failed to create practica"
	ErrFailedToDeletePractica = "failed to delete practica"
	ErrFailedToTogglePractica = "failed to toggle practica estado"
)
