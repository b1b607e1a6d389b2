package handler

import "net/http"

// LocationsResponse is the body of GET /locations.
type LocationsResponse struct {
	Data []string `json:"data"`
}

// ListLocations handles GET /locations.
// Names are sorted; the list is what the departure and arrival pickers offer.
func (s *Server) ListLocations(w http.ResponseWriter, r *http.Request) {
	names := s.locations.Names()
	if names == nil {
		names = []string{}
	}
	writeJSON(w, r, http.StatusOK, LocationsResponse{Data: names})
}
