// Package validate checks candidate event payloads. It is pure: no I/O, no
// clock, no store access. Violations are collected exhaustively, in a fixed
// field order, so clients always receive the complete list.
package validate

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"

	"insightdeck/internal/events/models"
)

// Mode selects between full-payload and partial-payload validation.
type Mode string

const (
	// ModeCreate requires every field to be present.
	ModeCreate Mode = "create"
	// ModeUpdate validates only the fields present in the payload.
	ModeUpdate Mode = "update"
)

// Result is either valid or a non-empty ordered list of violations.
type Result struct {
	Valid  bool
	Errors []string
}

// EventPayload validates a candidate payload in the given mode. Rules are
// checked in presence -> title -> description -> category -> severity ->
// location (lat, lng) -> metrics (score, confidence, impact) -> tags order.
func EventPayload(payload models.EventPayload, mode Mode) Result {
	var errs []string

	if mode == ModeCreate {
		errs = appendMissing(errs, payload)
	}

	if payload.Title != nil && len(strings.TrimSpace(*payload.Title)) < 3 {
		errs = append(errs, "Title must be at least 3 characters.")
	}
	if payload.Description != nil && len(strings.TrimSpace(*payload.Description)) < 8 {
		errs = append(errs, "Description must be at least 8 characters.")
	}
	if payload.Category != nil && len(strings.TrimSpace(*payload.Category)) < 3 {
		errs = append(errs, "Category must be at least 3 characters.")
	}
	if payload.Severity != nil && !models.Severity(*payload.Severity).Valid() {
		errs = append(errs, "Severity must be Low, Medium, or High.")
	}
	if payload.Location != nil {
		if payload.Location.Lat == nil || !govalidator.InRangeFloat64(*payload.Location.Lat, -90, 90) {
			errs = append(errs, "Location.lat must be between -90 and 90.")
		}
		if payload.Location.Lng == nil || !govalidator.InRangeFloat64(*payload.Location.Lng, -180, 180) {
			errs = append(errs, "Location.lng must be between -180 and 180.")
		}
	}
	if payload.Metrics != nil {
		if payload.Metrics.Score == nil || !govalidator.InRangeFloat64(*payload.Metrics.Score, 0, 100) {
			errs = append(errs, "Metrics.score must be between 0 and 100.")
		}
		if payload.Metrics.Confidence == nil || !govalidator.InRangeFloat64(*payload.Metrics.Confidence, 0, 1) {
			errs = append(errs, "Metrics.confidence must be between 0 and 1.")
		}
		if payload.Metrics.Impact == nil || *payload.Metrics.Impact < 0 {
			errs = append(errs, "Metrics.impact must be a positive number.")
		}
	}
	if payload.HasTags() {
		if _, ok := payload.TagList(); !ok {
			errs = append(errs, "Tags must be an array of strings.")
		}
	}

	if len(errs) > 0 {
		return Result{Valid: false, Errors: errs}
	}
	return Result{Valid: true}
}

// Field presence is reported in this order for creates.
var requiredFields = []string{"title", "description", "category", "severity", "location", "metrics", "tags"}

func appendMissing(errs []string, payload models.EventPayload) []string {
	present := map[string]bool{
		"title":       payload.Title != nil,
		"description": payload.Description != nil,
		"category":    payload.Category != nil,
		"severity":    payload.Severity != nil,
		"location":    payload.Location != nil,
		"metrics":     payload.Metrics != nil,
		"tags":        payload.HasTags(),
	}
	for _, field := range requiredFields {
		if !present[field] {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}
	return errs
}
