package domain

// LegErrors maps a field to its error message.
// A field with no entry is valid.
type LegErrors map[Field]string

// Has reports whether field f carries an error.
func (e LegErrors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// ValidationResult is the outcome of validating an Itinerary.
// It is recomputed from scratch on every request and never mutated afterwards.
type ValidationResult struct {
	// Legs holds one entry per leg, in itinerary order. Entries are never nil.
	Legs []LegErrors `json:"legs"`

	// Itinerary is the sequence-wide finding, empty when there is none.
	Itinerary string `json:"itinerary,omitempty"`

	// Valid is true iff no leg has a field error and Itinerary is empty.
	Valid bool `json:"valid"`
}

// FieldError returns the message for field f of leg i, or "" when the field
// is valid or i is out of range.
func (r ValidationResult) FieldError(i int, f Field) string {
	if i < 0 || i >= len(r.Legs) {
		return ""
	}
	return r.Legs[i][f]
}

// FindingCount returns the total number of findings: every field error plus
// the itinerary-level error if present.
func (r ValidationResult) FindingCount() int {
	n := 0
	for _, le := range r.Legs {
		n += len(le)
	}
	if r.Itinerary != "" {
		n++
	}
	return n
}
