package service

import (
	"fmt"
	"strings"

	"github.com/pkordes/itinerary-form/internal/domain"
)

// BuildSummary numbers the legs of it from 1 and copies their fields verbatim.
// Always returns a non-nil Legs slice so callers can safely range over it.
func BuildSummary(it domain.Itinerary) domain.Summary {
	out := domain.Summary{Legs: make([]domain.SummaryLeg, len(it.Legs))}
	for i, l := range it.Legs {
		out.Legs[i] = domain.SummaryLeg{
			Number:            i + 1,
			DepartureLocation: l.DepartureLocation,
			ArrivalLocation:   l.ArrivalLocation,
			DepartureDate:     l.DepartureDate,
			PassengerCount:    l.PassengerCount,
		}
	}
	return out
}

// RenderSummary formats a Summary the way the confirmation overlay shows it:
// one block per leg, blocks separated by a blank line.
func RenderSummary(sum domain.Summary) string {
	var b strings.Builder
	for i, l := range sum.Legs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Leg %d:\n", l.Number)
		fmt.Fprintf(&b, "Departure Location: %s\n", l.DepartureLocation)
		fmt.Fprintf(&b, "Arrival Location: %s\n", l.ArrivalLocation)
		fmt.Fprintf(&b, "Departure Date: %s\n", l.DepartureDate)
		fmt.Fprintf(&b, "No. of Passengers: %s\n", l.PassengerCount)
	}
	return b.String()
}
