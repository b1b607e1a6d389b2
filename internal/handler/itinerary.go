package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-form/internal/domain"
	"github.com/pkordes/itinerary-form/internal/service"
)

// ItineraryRequest is the body of POST /itineraries/validate and /submit.
type ItineraryRequest struct {
	Legs []LegRequest `json:"legs"`
}

// LegRequest is one leg as sent by the client. Every field tolerates any JSON
// scalar so that numeric keypad values arrive as numbers or strings alike.
type LegRequest struct {
	ID                looseString `json:"id"`
	DepartureLocation looseString `json:"departureLocation"`
	ArrivalLocation   looseString `json:"arrivalLocation"`
	DepartureDate     looseString `json:"departureDate"`
	PassengerCount    looseString `json:"passengerCount"`
}

// SubmitResponse is the body of a successful POST /itineraries/submit.
type SubmitResponse struct {
	Summary domain.Summary `json:"summary"`
	Text    string         `json:"text"`
}

// RejectedResponse is the body of a 422 from POST /itineraries/submit when
// the itinerary has findings.
type RejectedResponse struct {
	Error  ErrorDetail             `json:"error"`
	Result domain.ValidationResult `json:"result"`
}

// ValidateItinerary handles POST /itineraries/validate.
// Findings are data: any well-formed body yields 200 with the result.
func (s *Server) ValidateItinerary(w http.ResponseWriter, r *http.Request) {
	it, ok := decodeItinerary(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, s.form.Validate(r.Context(), it))
}

// SubmitItinerary handles POST /itineraries/submit.
// Returns 200 with the confirmation summary when the itinerary is valid and
// 422 otherwise.
func (s *Server) SubmitItinerary(w http.ResponseWriter, r *http.Request) {
	it, ok := decodeItinerary(w, r)
	if !ok {
		return
	}

	sum, res, err := s.form.Submit(r.Context(), it)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, r, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		slog.ErrorContext(r.Context(), "submit failed", "error", err)
		writeJSON(w, r, http.StatusInternalServerError, internalBody())
		return
	}
	if !res.Valid {
		writeJSON(w, r, http.StatusUnprocessableEntity, RejectedResponse{
			Error:  ErrorDetail{Code: "validation_error", Message: "itinerary is invalid"},
			Result: res,
		})
		return
	}

	writeJSON(w, r, http.StatusOK, SubmitResponse{Summary: sum, Text: service.RenderSummary(sum)})
}

// decodeItinerary reads the request body. On failure it writes the error
// response itself and returns false.
func decodeItinerary(w http.ResponseWriter, r *http.Request) (domain.Itinerary, bool) {
	var req ItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, r, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
			return domain.Itinerary{}, false
		}
		writeJSON(w, r, http.StatusBadRequest, requestBody("request body must be a JSON object with a legs array"))
		return domain.Itinerary{}, false
	}
	return req.toDomain(), true
}

func (req ItineraryRequest) toDomain() domain.Itinerary {
	it := domain.Itinerary{Legs: make([]domain.Leg, len(req.Legs))}
	for i, l := range req.Legs {
		// A malformed ID is a client row key we cannot use; drop it.
		id, _ := uuid.Parse(string(l.ID))
		it.Legs[i] = domain.Leg{
			ID:                id,
			DepartureLocation: string(l.DepartureLocation),
			ArrivalLocation:   string(l.ArrivalLocation),
			DepartureDate:     string(l.DepartureDate),
			PassengerCount:    string(l.PassengerCount),
		}
	}
	return it
}

// looseString decodes any JSON scalar into its text form.
// null, booleans, objects and arrays decode to "", which the validator then
// treats as an absent value.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = looseString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		*s = looseString(num.String())
		return nil
	}
	*s = ""
	return nil
}
