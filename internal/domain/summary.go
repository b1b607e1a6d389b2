package domain

// Summary is the confirmation shown after a successful submit.
// It echoes every leg exactly as entered.
type Summary struct {
	Legs []SummaryLeg `json:"legs"`
}

// SummaryLeg is a single numbered entry in a Summary.
// Number is 1-based and follows itinerary order.
type SummaryLeg struct {
	Number            int    `json:"number"`
	DepartureLocation string `json:"departureLocation"`
	ArrivalLocation   string `json:"arrivalLocation"`
	DepartureDate     string `json:"departureDate"`
	PassengerCount    string `json:"passengerCount"`
}
