package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "insightdeck/pkg/domain-errors"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"id": "e-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{"id": "e-1"}, decodeBody(t, rec))
}

func TestWriteError(t *testing.T) {
	t.Run("domain error maps code and message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeNotFound, "Event not found."))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, map[string]any{"error": "Event not found."}, decodeBody(t, rec))
	})

	t.Run("details are carried through in order", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.WithDetails(dErrors.CodeBadRequest, "Validation failed.",
			[]string{"title must be at least 3 characters.", "severity must be one of Low, Medium, High."}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Validation failed.", body["error"])
		assert.Equal(t, []any{
			"title must be at least 3 characters.",
			"severity must be one of Low, Medium, High.",
		}, body["details"])
	})

	t.Run("internal domain error hides its message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, dErrors.New(dErrors.CodeInternal, "pg: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]any{"error": "Internal server error."}, decodeBody(t, rec))
	})

	t.Run("plain error is masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, map[string]any{"error": "Internal server error."}, decodeBody(t, rec))
	})

	t.Run("wrapped domain error still classifies", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, wrap(dErrors.New(dErrors.CodeForbidden, "Forbidden.")))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, map[string]any{"error": "Forbidden."}, decodeBody(t, rec))
	})
}

func wrap(err error) error {
	return errors.Join(errors.New("handler: list"), err)
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(dErrors.CodeBadRequest))
	assert.Equal(t, http.StatusUnauthorized, ToHTTPStatus(dErrors.CodeUnauthorized))
	assert.Equal(t, http.StatusForbidden, ToHTTPStatus(dErrors.CodeForbidden))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(dErrors.CodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(dErrors.CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(dErrors.Code("mystery")))
}
