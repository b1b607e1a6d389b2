package itinerary

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/itinerary-form/internal/domain"
)

// Messages returned as findings. The presentation layer shows them verbatim.
const (
	MsgDepartureLocationRequired = "Departure Location is required"
	MsgArrivalLocationRequired   = "Arrival Location is required"
	MsgSameLocation              = "Arrival location cannot be the same as departure location"
	MsgDepartureDateRequired     = "Departure Date is required"
	MsgDepartureDateInPast       = "Departure date must be in the future"
	MsgPassengersRequired        = "Number of Passengers is required"
	MsgPassengersMinimum         = "Number of Passengers should be at least 1"
	MsgDatesAscending            = "Dates must be in ascending order"
)

// DateLayout is the wire format of Leg.DepartureDate.
const DateLayout = "2006-01-02"

// minPassengers is the smallest accepted passenger count.
const minPassengers = 1

// Each rule returns the message for its field, or "" when the field is valid.
// Rules only look at their own leg and never at what other rules decided.

func departureLocationRule(leg domain.Leg) string {
	if blank(leg.DepartureLocation) {
		return MsgDepartureLocationRequired
	}
	return ""
}

func arrivalLocationRule(leg domain.Leg) string {
	arrival := strings.TrimSpace(leg.ArrivalLocation)
	if arrival == "" {
		return MsgArrivalLocationRequired
	}
	departure := strings.TrimSpace(leg.DepartureLocation)
	if departure != "" && arrival == departure {
		return MsgSameLocation
	}
	return ""
}

func departureDateRule(leg domain.Leg, now time.Time, tz *time.Location) string {
	d, ok := parseDate(leg.DepartureDate, tz)
	if !ok {
		return MsgDepartureDateRequired
	}
	if !d.After(now) {
		return MsgDepartureDateInPast
	}
	return ""
}

func passengerCountRule(leg domain.Leg) string {
	n, ok := parsePassengers(leg.PassengerCount)
	if !ok {
		return MsgPassengersRequired
	}
	if n < minPassengers {
		return MsgPassengersMinimum
	}
	return ""
}

// ascendingDatesRule walks the legs from the second one onward and reports
// the first leg whose date is strictly earlier than its predecessor's.
// Dates are compared by calendar day in tz, so a timestamp and a plain date
// on the same day are in order. Pairs where either date is missing or
// unparseable are skipped: those legs already carry a field error of their own.
func ascendingDatesRule(legs []domain.Leg, tz *time.Location) string {
	for i := 1; i < len(legs); i++ {
		prev, ok := parseDate(legs[i-1].DepartureDate, tz)
		if !ok {
			continue
		}
		cur, ok := parseDate(legs[i].DepartureDate, tz)
		if !ok {
			continue
		}
		if dayOf(cur, tz).Before(dayOf(prev, tz)) {
			return MsgDatesAscending
		}
	}
	return ""
}

// parseDate interprets s as a calendar date at midnight in tz.
// RFC 3339 timestamps are accepted as well, for clients that send the raw
// picker value. Anything else counts as absent.
func parseDate(s string, tz *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if d, err := time.ParseInLocation(DateLayout, s, tz); err == nil {
		return d, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parsePassengers converts numeric keypad text to an integer.
// Integral decimal forms such as "2.0" or "1e3" are accepted; values beyond
// the int range saturate so their sign still decides the minimum check.
// Empty, non-numeric, infinite or fractional text counts as absent.
func parsePassengers(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	switch {
	case f >= math.MaxInt:
		return math.MaxInt, true
	case f <= math.MinInt:
		return math.MinInt, true
	}
	return int(f), true
}

// dayOf truncates t to midnight of its calendar day in tz.
func dayOf(t time.Time, tz *time.Location) time.Time {
	t = t.In(tz)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, tz)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
