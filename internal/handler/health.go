package handler

import (
	"net/http"

	"github.com/pkordes/itinerary-form/spec"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// GetOpenAPI handles GET /openapi.yaml by serving the embedded API description.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
