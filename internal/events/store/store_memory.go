package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"insightdeck/internal/events/models"
	"insightdeck/pkg/platform/sentinel"
)

const defaultPageSize = 20

// InMemoryEventStore is the process-wide event collection. Events live in a
// slice with newest-first insertion; the RWMutex serializes writes against
// the concurrent HTTP handlers. No state survives a restart.
type InMemoryEventStore struct {
	mu     sync.RWMutex
	events []models.InsightEvent
	now    func() time.Time
}

// NewInMemoryEventStore builds a store pre-populated with the given events.
func NewInMemoryEventStore(seed []models.InsightEvent) *InMemoryEventStore {
	s := &InMemoryEventStore{
		events: make([]models.InsightEvent, len(seed)),
		now:    time.Now,
	}
	copy(s.events, seed)
	return s
}

// WithClock overrides the store clock. Tests use it to pin createdAt and the
// lastDays cutoff.
func (s *InMemoryEventStore) WithClock(now func() time.Time) *InMemoryEventStore {
	s.now = now
	return s
}

// List runs the filter -> sort -> paginate pipeline. Filters are ANDed and
// each applies only when its key is set. Out-of-range pages return an empty
// page, never an error.
func (s *InMemoryEventStore) List(_ context.Context, filters models.EventFilters) (models.ListResult, error) {
	s.mu.RLock()
	filtered := s.applyFilters(filters)
	s.mu.RUnlock()

	applySort(filtered, filters)

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return models.ListResult{
		Data: filtered[start:end],
		Meta: models.PageMeta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	}, nil
}

// applyFilters copies the matching events so sorting never disturbs the
// stored order. Callers must hold at least the read lock.
func (s *InMemoryEventStore) applyFilters(filters models.EventFilters) []models.InsightEvent {
	now := s.now()
	var cutoff time.Time
	if filters.LastDays > 0 {
		cutoff = now.Add(-time.Duration(filters.LastDays) * 24 * time.Hour)
	}

	categories := toSet(filters.Categories)
	severities := toSet(filters.Severities)
	query := strings.ToLower(filters.Query)

	filtered := make([]models.InsightEvent, 0, len(s.events))
	for _, event := range s.events {
		if filters.LastDays > 0 && event.CreatedAt.Before(cutoff) {
			continue
		}
		if filters.From != nil && event.CreatedAt.Before(*filters.From) {
			continue
		}
		if filters.To != nil && event.CreatedAt.After(*filters.To) {
			continue
		}
		if len(categories) > 0 && !categories[event.Category] {
			continue
		}
		if len(severities) > 0 && !severities[string(event.Severity)] {
			continue
		}
		if filters.MinScore != nil && event.Metrics.Score < *filters.MinScore {
			continue
		}
		if query != "" && !matchesQuery(event, query) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}

func matchesQuery(event models.InsightEvent, query string) bool {
	if strings.Contains(strings.ToLower(event.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(event.Description), query) {
		return true
	}
	for _, tag := range event.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// applySort sorts ascending on the requested key with a stable sort, then
// reverses in place for descending order. Ties keep the filtered order.
func applySort(events []models.InsightEvent, filters models.EventFilters) {
	sort.SliceStable(events, func(i, j int) bool {
		switch filters.Sort {
		case models.SortSeverity:
			return events[i].Severity.Rank() < events[j].Severity.Rank()
		case models.SortScore:
			return events[i].Metrics.Score < events[j].Metrics.Score
		default:
			return events[i].CreatedAt.Before(events[j].CreatedAt)
		}
	})
	if filters.Order == models.OrderDesc {
		for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
			events[i], events[j] = events[j], events[i]
		}
	}
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// Get returns the event with the given id.
func (s *InMemoryEventStore) Get(_ context.Context, id string) (models.InsightEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, event := range s.events {
		if event.ID == id {
			return event, nil
		}
	}
	return models.InsightEvent{}, sentinel.ErrNotFound
}

// Create assigns a fresh id and server-side createdAt, prepends the record
// (newest-first), and returns it. Validation is the caller's responsibility.
func (s *InMemoryEventStore) Create(_ context.Context, event models.InsightEvent) (models.InsightEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = uuid.NewString()
	event.CreatedAt = s.now()
	s.events = append([]models.InsightEvent{event}, s.events...)
	return event, nil
}

// Update shallow-merges the patch onto the stored record. Nested objects
// (location, metrics, tags) are replaced whole when present in the patch,
// not deep-merged. id and createdAt are never touched.
func (s *InMemoryEventStore) Update(_ context.Context, id string, patch models.EventPayload) (models.InsightEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		event := &s.events[i]
		if patch.Title != nil {
			event.Title = *patch.Title
		}
		if patch.Description != nil {
			event.Description = *patch.Description
		}
		if patch.Category != nil {
			event.Category = *patch.Category
		}
		if patch.Severity != nil {
			event.Severity = models.Severity(*patch.Severity)
		}
		if patch.Location != nil {
			event.Location = models.Location{Lat: *patch.Location.Lat, Lng: *patch.Location.Lng}
		}
		if patch.Metrics != nil {
			event.Metrics = models.Metrics{
				Score:      *patch.Metrics.Score,
				Confidence: *patch.Metrics.Confidence,
				Impact:     *patch.Metrics.Impact,
			}
		}
		if tags, ok := patch.TagList(); ok && patch.HasTags() {
			event.Tags = tags
		}
		return *event, nil
	}
	return models.InsightEvent{}, sentinel.ErrNotFound
}

// Delete removes the record and returns it.
func (s *InMemoryEventStore) Delete(_ context.Context, id string) (models.InsightEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, event := range s.events {
		if event.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return event, nil
		}
	}
	return models.InsightEvent{}, sentinel.ErrNotFound
}
