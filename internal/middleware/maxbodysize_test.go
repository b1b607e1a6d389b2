package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-form/internal/middleware"
)

// bodyReadingHandler reads the full request body. It returns 413 when the
// read fails with *http.MaxBytesError, otherwise 200.
var bodyReadingHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, err := io.ReadAll(r.Body)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func TestMaxBodySizeHandler_SmallBody_PassesThrough(t *testing.T) {
	const limit = 100
	h := middleware.NewMaxBodySizeHandler(limit)(bodyReadingHandler)

	req := httptest.NewRequest(http.MethodPost, "/itineraries/validate", strings.NewReader(strings.Repeat("x", 50)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMaxBodySizeHandler_ExactlyAtLimit_PassesThrough(t *testing.T) {
	const limit = 100
	h := middleware.NewMaxBodySizeHandler(limit)(bodyReadingHandler)

	req := httptest.NewRequest(http.MethodPost, "/itineraries/validate", strings.NewReader(strings.Repeat("x", limit)))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestMaxBodySizeHandler_ContentLengthExceedsLimit_Returns413 verifies that
// the next handler never runs when Content-Length is over the limit.
func TestMaxBodySizeHandler_ContentLengthExceedsLimit_Returns413(t *testing.T) {
	const limit = 100
	called := false
	h := middleware.NewMaxBodySizeHandler(limit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/itineraries/validate", strings.NewReader(strings.Repeat("x", 200)))
	req.ContentLength = 200
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"error":{"code":"validation_error","message":"request body too large"}}`, rec.Body.String())
}

func TestMaxBodySizeHandler_StreamingBodyExceedsLimit_Returns413(t *testing.T) {
	const limit = 100
	h := middleware.NewMaxBodySizeHandler(limit)(bodyReadingHandler)

	req := httptest.NewRequest(http.MethodPost, "/itineraries/validate", strings.NewReader(strings.Repeat("x", 200)))
	req.ContentLength = -1 // unknown, no Content-Length header
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
