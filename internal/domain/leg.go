// Package domain contains the core data types for the itinerary form.
// This package has no behaviour beyond small accessors and is imported by
// every other internal package (itinerary, service, handler).
package domain

import "github.com/google/uuid"

// Field names one input of a Leg. The string value is the key used on the
// wire and in LegErrors.
type Field string

const (
	FieldDepartureLocation Field = "departureLocation"
	FieldArrivalLocation   Field = "arrivalLocation"
	FieldDepartureDate     Field = "departureDate"
	FieldPassengerCount    Field = "passengerCount"
)

// Fields lists every Leg field in display order.
var Fields = []Field{
	FieldDepartureLocation,
	FieldArrivalLocation,
	FieldDepartureDate,
	FieldPassengerCount,
}

// ParseField returns the Field named by s, or false when s is not a Leg field.
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Leg is one segment of a trip. Every input is kept as the raw string the
// user entered; the validator is responsible for interpreting dates and
// passenger counts.
//
// ID is a row key for the presentation layer. It plays no part in validation.
type Leg struct {
	ID                uuid.UUID `json:"id"`
	DepartureLocation string    `json:"departureLocation"`
	ArrivalLocation   string    `json:"arrivalLocation"`
	DepartureDate     string    `json:"departureDate"` // "2006-01-02"
	PassengerCount    string    `json:"passengerCount"`
}

// Get returns the raw value of field f.
func (l Leg) Get(f Field) string {
	switch f {
	case FieldDepartureLocation:
		return l.DepartureLocation
	case FieldArrivalLocation:
		return l.ArrivalLocation
	case FieldDepartureDate:
		return l.DepartureDate
	case FieldPassengerCount:
		return l.PassengerCount
	}
	return ""
}

// With returns a copy of l with field f set to value.
// Unknown fields leave the copy unchanged.
func (l Leg) With(f Field, value string) Leg {
	switch f {
	case FieldDepartureLocation:
		l.DepartureLocation = value
	case FieldArrivalLocation:
		l.ArrivalLocation = value
	case FieldDepartureDate:
		l.DepartureDate = value
	case FieldPassengerCount:
		l.PassengerCount = value
	}
	return l
}

// Itinerary is the ordered list of legs making up a trip.
// Order is chronological trip order and is significant.
type Itinerary struct {
	Legs []Leg `json:"legs"`
}

// Len returns the number of legs.
func (it Itinerary) Len() int {
	return len(it.Legs)
}

// Clone returns a copy of it that shares no backing array with the original,
// so callers can modify the copy without touching it.
func (it Itinerary) Clone() Itinerary {
	legs := make([]Leg, len(it.Legs))
	copy(legs, it.Legs)
	return Itinerary{Legs: legs}
}

// IndexOf returns the position of the leg with the given ID, or -1.
func (it Itinerary) IndexOf(id uuid.UUID) int {
	for i, l := range it.Legs {
		if l.ID == id {
			return i
		}
	}
	return -1
}
