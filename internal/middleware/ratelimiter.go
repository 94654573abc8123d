package middleware

import (
	"encoding/json"
	"net/http"

	"golang.org/x/time/rate"
)

type rateLimitResponse struct {
	Message string `json:"message"`
}

// RateLimitMiddleware rejects requests beyond the limiter's budget with a
// 429 response.
func RateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				resp := rateLimitResponse{Message: "Too many requests. Please try again later."}
				_ = json.NewEncoder(w).Encode(resp)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
