package models

import (
	"encoding/json"
	"time"
)

// Severity is the three-level event severity. Sorting uses Rank, which
// imposes the total order Low < Medium < High.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Valid reports whether s is one of the three known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Rank maps severities onto Low=1, Medium=2, High=3 for comparisons.
// Unknown severities rank below Low; they cannot enter the store because
// validation gates every write.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	}
	return 0
}

// Location is a point on the map view. Lat is bounded to [-90,90] and Lng
// to [-180,180] by validation.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Metrics quantifies an event: score in [0,100], confidence in [0,1],
// impact >= 0.
type Metrics struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	Impact     float64 `json:"impact"`
}

// InsightEvent is a single reported operational signal record.
type InsightEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Severity    Severity  `json:"severity"`
	CreatedAt   time.Time `json:"createdAt"`
	Location    Location  `json:"location"`
	Metrics     Metrics   `json:"metrics"`
	Tags        []string  `json:"tags"`
}

// Sort keys and orders accepted by List. Unknown values fall back to the
// defaults (createdAt, ascending).
const (
	SortCreatedAt = "createdAt"
	SortSeverity  = "severity"
	SortScore     = "score"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// EventFilters carries the optional filter, sort, and pagination arguments
// for List. A zero value means the corresponding pass is skipped (pointer
// fields distinguish "absent" from legitimate zero values such as
// minScore=0).
type EventFilters struct {
	Categories []string
	Severities []string
	MinScore   *float64
	Query      string
	From       *time.Time
	To         *time.Time
	LastDays   int
	Sort       string
	Order      string
	Page       int
	PageSize   int
}

// PageMeta describes the pagination window returned alongside a page.
type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// ListResult is a page of events plus its pagination metadata.
type ListResult struct {
	Data []InsightEvent `json:"data"`
	Meta PageMeta       `json:"meta"`
}

// LocationPayload mirrors Location with optional fields so validation can
// distinguish absent coordinates from zero values.
type LocationPayload struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// MetricsPayload mirrors Metrics with optional fields.
type MetricsPayload struct {
	Score      *float64 `json:"score"`
	Confidence *float64 `json:"confidence"`
	Impact     *float64 `json:"impact"`
}

// EventPayload is a candidate event body for create or update. Every field
// is optional at the decoding layer; validation enforces presence for
// creates. Tags stays raw so a wrong-typed tags value surfaces as an
// itemized validation error rather than a decode failure.
type EventPayload struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Severity    *string          `json:"severity"`
	Location    *LocationPayload `json:"location"`
	Metrics     *MetricsPayload  `json:"metrics"`
	Tags        json.RawMessage  `json:"tags"`
}

// TagList decodes the raw tags value. The second return is false when tags
// is present but not an array of strings.
func (p EventPayload) TagList() ([]string, bool) {
	if len(p.Tags) == 0 || string(p.Tags) == "null" {
		return nil, true
	}
	var tags []string
	if err := json.Unmarshal(p.Tags, &tags); err != nil {
		return nil, false
	}
	return tags, true
}

// HasTags reports whether the payload carried a tags field.
func (p EventPayload) HasTags() bool {
	return len(p.Tags) > 0 && string(p.Tags) != "null"
}
