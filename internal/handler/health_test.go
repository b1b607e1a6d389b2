package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-form/internal/handler"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	// Arrange
	httpHandler := handler.NewHealthHandler().Routes()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	// Act
	httpHandler.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}

// TestGetOpenAPI_servesEmbeddedDocument verifies that GET /openapi.yaml
// returns the embedded API description.
func TestGetOpenAPI_servesEmbeddedDocument(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()

	handler.NewHealthHandler().Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "/itineraries/validate")
}
