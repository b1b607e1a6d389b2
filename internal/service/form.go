// Package service contains the form logic behind the itinerary screen.
// It owns the screen's domain state as immutable Itinerary values: every
// operation returns a new value and leaves its input untouched. Validation
// rules live in package itinerary; this package applies form policy on top
// (leg limits, selectable locations) and gates submission on the result.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-form/internal/domain"
)

// DefaultMaxLegs is the number of legs the screen allows when no limit is configured.
const DefaultMaxLegs = 5

// ItineraryValidator is the subset of itinerary.Validator the form depends on.
type ItineraryValidator interface {
	ValidateItinerary(legs []domain.Leg) domain.ValidationResult
	Selectable(name string) bool
}

// Observer is notified of every validation the form performs.
type Observer interface {
	ObserveValidation(res domain.ValidationResult)
}

type nopObserver struct{}

func (nopObserver) ObserveValidation(domain.ValidationResult) {}

// FormService implements the operations of the itinerary form.
type FormService struct {
	validator ItineraryValidator
	maxLegs   int
	observer  Observer
	log       *slog.Logger
	newID     func() uuid.UUID
}

// FormOption configures a FormService.
type FormOption func(*FormService)

// WithMaxLegs overrides DefaultMaxLegs. Values below 1 are ignored.
func WithMaxLegs(n int) FormOption {
	return func(s *FormService) {
		if n >= 1 {
			s.maxLegs = n
		}
	}
}

// WithObserver attaches an Observer, typically a metrics recorder.
func WithObserver(o Observer) FormOption {
	return func(s *FormService) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithLogger replaces slog.Default.
func WithLogger(l *slog.Logger) FormOption {
	return func(s *FormService) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDGenerator replaces uuid.New for new legs. Tests use it for stable IDs.
func WithIDGenerator(f func() uuid.UUID) FormOption {
	return func(s *FormService) {
		if f != nil {
			s.newID = f
		}
	}
}

// NewFormService constructs a FormService backed by the provided validator.
func NewFormService(v ItineraryValidator, opts ...FormOption) *FormService {
	s := &FormService{
		validator: v,
		maxLegs:   DefaultMaxLegs,
		observer:  nopObserver{},
		log:       slog.Default(),
		newID:     uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxLegs returns the configured leg limit.
func (s *FormService) MaxLegs() int {
	return s.maxLegs
}

// New returns the initial form state: one blank leg.
func (s *FormService) New() domain.Itinerary {
	return domain.Itinerary{Legs: []domain.Leg{s.blankLeg()}}
}

// AddLeg appends a blank leg.
// Returns domain.ErrValidation when the itinerary already has MaxLegs legs.
func (s *FormService) AddLeg(it domain.Itinerary) (domain.Itinerary, error) {
	if it.Len() >= s.maxLegs {
		return it, fmt.Errorf("%w: an itinerary can have at most %d legs", domain.ErrValidation, s.maxLegs)
	}
	out := it.Clone()
	out.Legs = append(out.Legs, s.blankLeg())
	return out, nil
}

// RemoveLeg removes the leg with the given ID.
// Returns domain.ErrValidation when it is the only leg, and domain.ErrNotFound
// when no leg has that ID.
func (s *FormService) RemoveLeg(it domain.Itinerary, id uuid.UUID) (domain.Itinerary, error) {
	i := it.IndexOf(id)
	if i < 0 {
		return it, fmt.Errorf("service.FormService.RemoveLeg: leg %s: %w", id, domain.ErrNotFound)
	}
	if it.Len() <= 1 {
		return it, fmt.Errorf("%w: an itinerary needs at least one leg", domain.ErrValidation)
	}
	out := domain.Itinerary{Legs: make([]domain.Leg, 0, it.Len()-1)}
	out.Legs = append(out.Legs, it.Legs[:i]...)
	out.Legs = append(out.Legs, it.Legs[i+1:]...)
	return out, nil
}

// UpdateLeg sets one field of the leg with the given ID.
// Location fields only accept names from the location catalog, mirroring the
// picker the screen offers; they are stored trimmed and an empty value
// clears the field.
// Returns domain.ErrValidation for an unknown field or location, and
// domain.ErrNotFound when no leg has that ID.
func (s *FormService) UpdateLeg(it domain.Itinerary, id uuid.UUID, field, value string) (domain.Itinerary, error) {
	f, ok := domain.ParseField(field)
	if !ok {
		return it, fmt.Errorf("%w: unknown field %q", domain.ErrValidation, field)
	}
	i := it.IndexOf(id)
	if i < 0 {
		return it, fmt.Errorf("service.FormService.UpdateLeg: leg %s: %w", id, domain.ErrNotFound)
	}
	if isLocation(f) {
		value = strings.TrimSpace(value)
		if value != "" && !s.validator.Selectable(value) {
			return it, fmt.Errorf("%w: %q is not a selectable location", domain.ErrValidation, value)
		}
	}
	out := it.Clone()
	out.Legs[i] = out.Legs[i].With(f, value)
	return out, nil
}

// Validate returns the validation result for it. Findings are data; this
// never fails.
func (s *FormService) Validate(ctx context.Context, it domain.Itinerary) domain.ValidationResult {
	res := s.validator.ValidateItinerary(it.Legs)
	s.observer.ObserveValidation(res)
	s.log.DebugContext(ctx, "itinerary validated",
		"legs", len(res.Legs),
		"valid", res.Valid,
		"findings", res.FindingCount(),
	)
	return res
}

// Submit validates it and, when valid, builds the confirmation summary.
// The summary is zero when the result is invalid; callers must check
// res.Valid before showing it.
// Returns domain.ErrValidation, with no result, when it exceeds MaxLegs or
// names a location outside the catalog. Submit receives the whole itinerary
// from the client, so it applies the same policy as AddLeg and UpdateLeg.
func (s *FormService) Submit(ctx context.Context, it domain.Itinerary) (domain.Summary, domain.ValidationResult, error) {
	if it.Len() > s.maxLegs {
		return domain.Summary{}, domain.ValidationResult{},
			fmt.Errorf("%w: an itinerary can have at most %d legs", domain.ErrValidation, s.maxLegs)
	}
	if err := s.checkLocations(it); err != nil {
		return domain.Summary{}, domain.ValidationResult{}, err
	}
	res := s.Validate(ctx, it)
	if !res.Valid {
		s.log.InfoContext(ctx, "itinerary submit rejected", "findings", res.FindingCount())
		return domain.Summary{}, res, nil
	}
	s.log.InfoContext(ctx, "itinerary submitted", "legs", it.Len())
	return BuildSummary(it), res, nil
}

// checkLocations rejects the first non-empty location that is not selectable.
// Empty locations are left to the validator's required rules.
func (s *FormService) checkLocations(it domain.Itinerary) error {
	for i, leg := range it.Legs {
		for _, f := range []domain.Field{domain.FieldDepartureLocation, domain.FieldArrivalLocation} {
			v := strings.TrimSpace(leg.Get(f))
			if v != "" && !s.validator.Selectable(v) {
				return fmt.Errorf("%w: leg %d: %q is not a selectable location", domain.ErrValidation, i+1, v)
			}
		}
	}
	return nil
}

func (s *FormService) blankLeg() domain.Leg {
	return domain.Leg{ID: s.newID()}
}

func isLocation(f domain.Field) bool {
	return f == domain.FieldDepartureLocation || f == domain.FieldArrivalLocation
}
