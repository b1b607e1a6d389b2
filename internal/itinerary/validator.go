// Package itinerary validates multi-leg itineraries.
//
// Validation is pure: the same legs, locations and clock always produce the
// same ValidationResult, inputs are never modified, and findings are returned
// as data rather than errors. A Validator is safe for concurrent use.
package itinerary

import (
	"strings"
	"time"

	"github.com/pkordes/itinerary-form/internal/domain"
)

// LocationSet is the enumerated set of selectable place names.
type LocationSet interface {
	Contains(name string) bool
}

// Validator checks legs and itineraries against the form rules.
type Validator struct {
	locations LocationSet
	now       func() time.Time
	tz        *time.Location
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock replaces time.Now as the source of "now".
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithTimeZone sets the zone in which departure dates are interpreted.
// Defaults to UTC.
func WithTimeZone(tz *time.Location) Option {
	return func(v *Validator) {
		if tz != nil {
			v.tz = tz
		}
	}
}

// New constructs a Validator over the given location set.
func New(locations LocationSet, opts ...Option) *Validator {
	v := &Validator{
		locations: locations,
		now:       time.Now,
		tz:        time.UTC,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Selectable reports whether name is one of the enumerated locations.
// Selection widgets use it to restrict input; it is not a validation rule.
func (v *Validator) Selectable(name string) bool {
	if v.locations == nil {
		return false
	}
	return v.locations.Contains(strings.TrimSpace(name))
}

// ValidateLeg applies every field rule to leg. Rules are independent, so
// several fields may fail at once; each field carries at most one message.
func (v *Validator) ValidateLeg(leg domain.Leg) domain.LegErrors {
	return v.validateLeg(leg, v.now())
}

// ValidateItinerary validates every leg in order, then checks that departure
// dates never go backwards. Only the first ordering violation is reported,
// as a single itinerary-level message.
//
// An empty slice is treated as one blank leg.
func (v *Validator) ValidateItinerary(legs []domain.Leg) domain.ValidationResult {
	if len(legs) == 0 {
		legs = []domain.Leg{{}}
	}

	// Sample the clock once so every leg is judged against the same moment.
	now := v.now()

	res := domain.ValidationResult{Legs: make([]domain.LegErrors, len(legs))}
	fieldErrors := 0
	for i, leg := range legs {
		res.Legs[i] = v.validateLeg(leg, now)
		fieldErrors += len(res.Legs[i])
	}

	res.Itinerary = ascendingDatesRule(legs, v.tz)
	res.Valid = fieldErrors == 0 && res.Itinerary == ""
	return res
}

func (v *Validator) validateLeg(leg domain.Leg, now time.Time) domain.LegErrors {
	errs := domain.LegErrors{}
	set := func(f domain.Field, msg string) {
		if msg != "" {
			errs[f] = msg
		}
	}
	set(domain.FieldDepartureLocation, departureLocationRule(leg))
	set(domain.FieldArrivalLocation, arrivalLocationRule(leg))
	set(domain.FieldDepartureDate, departureDateRule(leg, now, v.tz))
	set(domain.FieldPassengerCount, passengerCountRule(leg))
	return errs
}
