// Package handler implements the HTTP handlers for the itinerary form API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, itinerary.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/itinerary-form/internal/domain"
)

// FormServicer defines the form operations the itinerary handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without wiring a real validator.
type FormServicer interface {
	Validate(ctx context.Context, it domain.Itinerary) domain.ValidationResult
	Submit(ctx context.Context, it domain.Itinerary) (domain.Summary, domain.ValidationResult, error)
}

// LocationLister provides the selectable place names.
type LocationLister interface {
	Names() []string
}

// Server serves every API endpoint.
type Server struct {
	form      FormServicer
	locations LocationLister
}

// NewServer constructs the Server with all its dependencies.
func NewServer(form FormServicer, locations LocationLister) *Server {
	return &Server{form: form, locations: locations}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}

// Routes returns a router with every endpoint registered.
// Middleware is applied by the caller (see cmd/api).
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/locations", s.ListLocations)
	r.Route("/itineraries", func(r chi.Router) {
		r.Post("/validate", s.ValidateItinerary)
		r.Post("/submit", s.SubmitItinerary)
	})
	return r
}
