// Package middleware provides reusable HTTP middleware for the itinerary form API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// preflightMaxAge is how long, in seconds, browsers may cache a preflight result.
const preflightMaxAge = 600

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash).
// The API only reads and validates, so GET and POST are the only methods allowed.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         preflightMaxAge,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
