package domain

import "errors"

// ErrNotFound is returned by form operations that address a leg by ID when
// no leg with that ID is part of the itinerary.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a form operation breaks a form policy
// (e.g. adding a sixth leg, removing the last leg, unknown field name).
// It is never used for itinerary findings: those are data in ValidationResult.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
