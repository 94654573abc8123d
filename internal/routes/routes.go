package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labfi/labfi-api/internal/interfaces"

	structValidator "github.com/go-playground/validator/v10"
)

type Route struct {
	Metrics         interfaces.Metrics
	PracticaService interfaces.PracticaService
	UserService     interfaces.UserService
	Logger          interfaces.Logger
	validator       *structValidator.Validate
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, practicaService interfaces.PracticaService,
	userService interfaces.UserService, logger interfaces.Logger,
	validator *structValidator.Validate,
) *Route {

	return &Route{
		Metrics:         metrics,
		PracticaService: practicaService,
		UserService:     userService,
		Logger:          logger,
		validator:       validator,
	}
}

// errorResponse writes the JSON error body common to every failure.
func (r *Route) errorResponse(w http.ResponseWriter, err error, message string) {
	jsonResponse := map[string]string{
		"error":   err.Error(),
		"message": message,
	}
	_ = json.NewEncoder(w).Encode(jsonResponse)
}

// writeJSON encodes a success payload with the given status.
func (r *Route) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.Logger.Error(ErrFailedToEncodeResponse, "error", err)
	}
}

func (r *Route) incCounter(name string) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(name)
	}
}

func (r *Route) observeDuration(name string, start time.Time) {
	if r.Metrics != nil {
		r.Metrics.ObserveHistogram(name, time.Since(start).Seconds())
	}
}

// fechaLayouts are the accepted wire formats for the fecha field.
var fechaLayouts = []string{time.RFC3339, "2006-01-02"}

// parseFecha parses the fecha string from a create request.
func parseFecha(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range fechaLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
