package models

import "time"

// DateLayout is the external format of the derived fecha string: zero-padded
// day and month, two-digit year.
const DateLayout = "02/01/06"

// Material is a single requested material line item within a practica.
type Material struct {
	Descripcion string `bson:"descripcion" mapstructure:"descripcion" db:"descripcion" json:"descripcion"`
	Cantidad    int    `bson:"cantidad" mapstructure:"cantidad" db:"cantidad" json:"cantidad"`
}

// Practica represents a laboratory practice-session material request.
// Estado is false while the practica is pending and true once completed.
type Practica struct {
	ID             string     `bson:"-" mapstructure:"-" db:"id"`
	NombrePractica string     `bson:"nombrePractica" mapstructure:"nombrePractica" db:"nombre_practica"`
	Asignatura     string     `bson:"asignatura" mapstructure:"asignatura" db:"asignatura"`
	Grupo          string     `bson:"grupo" mapstructure:"grupo" db:"grupo"`
	Escuela        string     `bson:"escuela" mapstructure:"escuela" db:"escuela"`
	Fecha          time.Time  `bson:"fecha" mapstructure:"fecha" db:"fecha"`
	HoraInicio     string     `bson:"horaInicio" mapstructure:"horaInicio" db:"hora_inicio"`
	HoraFin        string     `bson:"horaFin" mapstructure:"horaFin" db:"hora_fin"`
	Ambiente       string     `bson:"ambiente" mapstructure:"ambiente" db:"ambiente"`
	Docente        string     `bson:"docente" mapstructure:"docente" db:"docente"`
	Materiales     []Material `bson:"materiales" mapstructure:"materiales" db:"materiales"`
	Observaciones  string     `bson:"observaciones" mapstructure:"observaciones" db:"observaciones"`
	Estado         bool       `bson:"estado" mapstructure:"estado" db:"estado"`
}

// FechaFormateada returns the scheduled date as DD/MM/YY, or an empty
// string when no date is set.
func (p *Practica) FechaFormateada() string {
	if p.Fecha.IsZero() {
		return ""
	}
	return p.Fecha.Format(DateLayout)
}

// PracticaSummary is the projection of a practica exposed when expanding a
// user's registered practicas: name, date and completion flag only.
type PracticaSummary struct {
	NombrePractica string    `bson:"nombrePractica" mapstructure:"nombrePractica" db:"nombre_practica"`
	Fecha          time.Time `bson:"fecha" mapstructure:"fecha" db:"fecha"`
	Estado         bool      `bson:"estado" mapstructure:"estado" db:"estado"`
}
