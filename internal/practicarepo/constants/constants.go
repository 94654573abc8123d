package constants

const (
	// PracticasCollection is the MongoDB collection holding practica documents.
	PracticasCollection = "practicas"
	// PracticasTable is the PostgreSQL table holding practica rows.
	PracticasTable = "practicas"
)
