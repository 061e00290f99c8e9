package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightdeck/internal/events/models"
)

func ptr[T any](v T) *T { return &v }

func validPayload() models.EventPayload {
	return models.EventPayload{
		Title:       ptr("Card-Not-Present Spike"),
		Description: ptr("Rapid increase in suspicious transactions."),
		Category:    ptr("Fraud"),
		Severity:    ptr("High"),
		Location:    &models.LocationPayload{Lat: ptr(40.7), Lng: ptr(-74.0)},
		Metrics:     &models.MetricsPayload{Score: ptr(92.0), Confidence: ptr(0.86), Impact: ptr(72000.0)},
		Tags:        json.RawMessage(`["payments","anomaly"]`),
	}
}

func TestEventPayloadCreate(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		result := EventPayload(validPayload(), ModeCreate)
		require.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("empty payload reports every missing field in order", func(t *testing.T) {
		result := EventPayload(models.EventPayload{}, ModeCreate)
		require.False(t, result.Valid)
		assert.Equal(t, []string{
			"Missing required field: title",
			"Missing required field: description",
			"Missing required field: category",
			"Missing required field: severity",
			"Missing required field: location",
			"Missing required field: metrics",
			"Missing required field: tags",
		}, result.Errors)
	})

	t.Run("violations collect exhaustively in field order", func(t *testing.T) {
		payload := validPayload()
		payload.Title = ptr("ab")
		payload.Severity = ptr("Critical")
		payload.Location.Lng = ptr(200.0)
		payload.Metrics.Impact = ptr(-1.0)

		result := EventPayload(payload, ModeCreate)
		require.False(t, result.Valid)
		assert.Equal(t, []string{
			"Title must be at least 3 characters.",
			"Severity must be Low, Medium, or High.",
			"Location.lng must be between -180 and 180.",
			"Metrics.impact must be a positive number.",
		}, result.Errors)
	})

	t.Run("confidence above one is rejected", func(t *testing.T) {
		payload := validPayload()
		payload.Metrics.Confidence = ptr(1.5)

		result := EventPayload(payload, ModeCreate)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Metrics.confidence must be between 0 and 1.")
	})

	t.Run("whitespace does not count toward length minimums", func(t *testing.T) {
		payload := validPayload()
		payload.Description = ptr("   hi    ")

		result := EventPayload(payload, ModeCreate)
		require.False(t, result.Valid)
		assert.Equal(t, []string{"Description must be at least 8 characters."}, result.Errors)
	})

	t.Run("missing coordinate inside location is reported", func(t *testing.T) {
		payload := validPayload()
		payload.Location = &models.LocationPayload{Lat: ptr(10.0)}

		result := EventPayload(payload, ModeCreate)
		require.False(t, result.Valid)
		assert.Equal(t, []string{"Location.lng must be between -180 and 180."}, result.Errors)
	})

	t.Run("tags of the wrong type are reported, not a decode failure", func(t *testing.T) {
		payload := validPayload()
		payload.Tags = json.RawMessage(`"not-a-list"`)

		result := EventPayload(payload, ModeCreate)
		require.False(t, result.Valid)
		assert.Equal(t, []string{"Tags must be an array of strings."}, result.Errors)

		payload.Tags = json.RawMessage(`["ok", 42]`)
		result = EventPayload(payload, ModeCreate)
		require.False(t, result.Valid)
		assert.Equal(t, []string{"Tags must be an array of strings."}, result.Errors)
	})
}

func TestEventPayloadUpdate(t *testing.T) {
	t.Run("empty patch is valid", func(t *testing.T) {
		result := EventPayload(models.EventPayload{}, ModeUpdate)
		assert.True(t, result.Valid)
	})

	t.Run("present fields are still range-checked", func(t *testing.T) {
		payload := models.EventPayload{
			Category: ptr("ab"),
			Metrics:  &models.MetricsPayload{Score: ptr(101.0), Confidence: ptr(0.5), Impact: ptr(0.0)},
		}

		result := EventPayload(payload, ModeUpdate)
		require.False(t, result.Valid)
		assert.Equal(t, []string{
			"Category must be at least 3 characters.",
			"Metrics.score must be between 0 and 100.",
		}, result.Errors)
	})

	t.Run("boundary values pass", func(t *testing.T) {
		payload := models.EventPayload{
			Location: &models.LocationPayload{Lat: ptr(-90.0), Lng: ptr(180.0)},
			Metrics:  &models.MetricsPayload{Score: ptr(0.0), Confidence: ptr(1.0), Impact: ptr(0.0)},
		}

		result := EventPayload(payload, ModeUpdate)
		assert.True(t, result.Valid)
	})
}
