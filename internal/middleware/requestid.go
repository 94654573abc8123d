package middleware

import (
	"net/http"

	"github.com/labfi/labfi-api/internal/interfaces"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware tags every request with a generated id, echoes it in
// the response header, logs the request line and counts it per method/path.
func RequestIDMiddleware(logger interfaces.Logger, metrics interfaces.Metrics, counterName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			if metrics != nil {
				metrics.IncCounterVec(counterName, r.Method, r.URL.Path)
			}
			logger.Debug("Request received", "request_id", requestID, "method", r.Method, "path", r.URL.Path)

			next.ServeHTTP(w, r)
		})
	}
}
