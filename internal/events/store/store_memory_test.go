package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"insightdeck/internal/events/models"
	"insightdeck/pkg/platform/sentinel"
)

func ptr[T any](v T) *T { return &v }

type EventStoreSuite struct {
	suite.Suite
	store *InMemoryEventStore
	now   time.Time
}

func TestEventStoreSuite(t *testing.T) {
	suite.Run(t, new(EventStoreSuite))
}

// fixture builds five deterministic events, oldest first by age:
// e1 (1d, High, 96), e2 (3d, Low, 48), e3 (5d, Medium, 71),
// e4 (10d, High, 84), e5 (20d, Medium, 66).
func (s *EventStoreSuite) SetupTest() {
	s.now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d int) time.Time { return s.now.Add(-time.Duration(d) * 24 * time.Hour) }

	seed := []models.InsightEvent{
		{ID: "e1", Title: "Network Intrusion Attempt", Description: "Spike in blocked intrusion attempts.", Category: "Fraud", Severity: models.SeverityHigh, CreatedAt: daysAgo(1), Metrics: models.Metrics{Score: 96, Confidence: 0.9, Impact: 76000}, Tags: []string{"security", "network"}},
		{ID: "e2", Title: "Field Device Offline", Description: "Telemetry gaps detected in asset trackers.", Category: "Ops", Severity: models.SeverityLow, CreatedAt: daysAgo(3), Metrics: models.Metrics{Score: 48, Confidence: 0.58, Impact: 6000}, Tags: []string{"iot", "telemetry"}},
		{ID: "e3", Title: "Logistics Delay Cluster", Description: "Distribution centers reporting late departures.", Category: "Ops", Severity: models.SeverityMedium, CreatedAt: daysAgo(5), Metrics: models.Metrics{Score: 71, Confidence: 0.74, Impact: 18000}, Tags: []string{"supply-chain", "delay"}},
		{ID: "e4", Title: "Inventory Stockout Risk", Description: "High velocity SKUs expected to stock out.", Category: "Ops", Severity: models.SeverityHigh, CreatedAt: daysAgo(10), Metrics: models.Metrics{Score: 84, Confidence: 0.79, Impact: 41000}, Tags: []string{"inventory", "sku"}},
		{ID: "e5", Title: "Pipeline Stagnation", Description: "Enterprise pipeline velocity down 15%.", Category: "Sales", Severity: models.SeverityMedium, CreatedAt: daysAgo(20), Metrics: models.Metrics{Score: 66, Confidence: 0.7, Impact: 27000}, Tags: []string{"pipeline", "enterprise"}},
	}

	s.store = NewInMemoryEventStore(seed).WithClock(func() time.Time { return s.now })
}

func (s *EventStoreSuite) ids(result models.ListResult) []string {
	out := make([]string, 0, len(result.Data))
	for _, e := range result.Data {
		out = append(out, e.ID)
	}
	return out
}

func (s *EventStoreSuite) TestListSorting() {
	ctx := context.Background()

	s.Run("default sort is createdAt ascending", func() {
		result, err := s.store.List(ctx, models.EventFilters{})
		s.NoError(err)
		s.Equal([]string{"e5", "e4", "e3", "e2", "e1"}, s.ids(result))
	})

	s.Run("order desc reverses", func() {
		result, err := s.store.List(ctx, models.EventFilters{Order: models.OrderDesc})
		s.NoError(err)
		s.Equal([]string{"e1", "e2", "e3", "e4", "e5"}, s.ids(result))
	})

	s.Run("severity sort yields non-decreasing rank", func() {
		result, err := s.store.List(ctx, models.EventFilters{Sort: models.SortSeverity})
		s.NoError(err)
		for i := 1; i < len(result.Data); i++ {
			s.LessOrEqual(result.Data[i-1].Severity.Rank(), result.Data[i].Severity.Rank())
		}
	})

	s.Run("severity sort desc yields non-increasing rank", func() {
		result, err := s.store.List(ctx, models.EventFilters{Sort: models.SortSeverity, Order: models.OrderDesc})
		s.NoError(err)
		for i := 1; i < len(result.Data); i++ {
			s.GreaterOrEqual(result.Data[i-1].Severity.Rank(), result.Data[i].Severity.Rank())
		}
	})

	s.Run("score sort ascending", func() {
		result, err := s.store.List(ctx, models.EventFilters{Sort: models.SortScore})
		s.NoError(err)
		s.Equal([]string{"e2", "e5", "e3", "e4", "e1"}, s.ids(result))
	})

	s.Run("unknown sort key falls back to createdAt", func() {
		result, err := s.store.List(ctx, models.EventFilters{Sort: "bogus"})
		s.NoError(err)
		s.Equal([]string{"e5", "e4", "e3", "e2", "e1"}, s.ids(result))
	})
}

func (s *EventStoreSuite) TestListFiltering() {
	ctx := context.Background()

	s.Run("categories are a set, ANDed with other filters", func() {
		result, err := s.store.List(ctx, models.EventFilters{
			Categories: []string{"Ops"},
			Severities: []string{"High"},
		})
		s.NoError(err)
		s.Equal([]string{"e4"}, s.ids(result))
	})

	s.Run("minScore is inclusive", func() {
		result, err := s.store.List(ctx, models.EventFilters{MinScore: ptr(84.0)})
		s.NoError(err)
		s.ElementsMatch([]string{"e1", "e4"}, s.ids(result))
	})

	s.Run("query matches title, description, and tags case-insensitively", func() {
		byTitle, err := s.store.List(ctx, models.EventFilters{Query: "intrusion"})
		s.NoError(err)
		s.Equal([]string{"e1"}, s.ids(byTitle))

		byDescription, err := s.store.List(ctx, models.EventFilters{Query: "VELOCITY DOWN"})
		s.NoError(err)
		s.Equal([]string{"e5"}, s.ids(byDescription))

		byTag, err := s.store.List(ctx, models.EventFilters{Query: "Supply-Chain"})
		s.NoError(err)
		s.Equal([]string{"e3"}, s.ids(byTag))
	})

	s.Run("lastDays cutoff is inclusive", func() {
		result, err := s.store.List(ctx, models.EventFilters{LastDays: 5})
		s.NoError(err)
		s.ElementsMatch([]string{"e1", "e2", "e3"}, s.ids(result))
	})

	s.Run("from and to are inclusive bounds", func() {
		from := s.now.Add(-10 * 24 * time.Hour)
		to := s.now.Add(-5 * 24 * time.Hour)
		result, err := s.store.List(ctx, models.EventFilters{From: &from, To: &to})
		s.NoError(err)
		s.ElementsMatch([]string{"e3", "e4"}, s.ids(result))
	})

	s.Run("identical arguments give identical results", func() {
		filters := models.EventFilters{Categories: []string{"Ops"}, Sort: models.SortScore, Order: models.OrderDesc}
		first, err := s.store.List(ctx, filters)
		s.NoError(err)
		second, err := s.store.List(ctx, filters)
		s.NoError(err)
		s.Equal(first, second)
	})
}

func (s *EventStoreSuite) TestListPagination() {
	ctx := context.Background()

	s.Run("pages concatenate to the full sequence", func() {
		full, err := s.store.List(ctx, models.EventFilters{PageSize: 100})
		s.NoError(err)
		s.Len(full.Data, 5)

		var collected []string
		for page := 1; page <= full.Meta.TotalPages; page++ {
			result, err := s.store.List(ctx, models.EventFilters{Page: page, PageSize: 2})
			s.NoError(err)
			collected = append(collected, s.ids(result)...)
		}
		s.Equal(s.ids(full), collected)
	})

	s.Run("totalPages is max(1, ceil(total/pageSize))", func() {
		result, err := s.store.List(ctx, models.EventFilters{PageSize: 2})
		s.NoError(err)
		s.Equal(3, result.Meta.TotalPages)

		empty, err := s.store.List(ctx, models.EventFilters{Query: "no-such-event"})
		s.NoError(err)
		s.Equal(0, empty.Meta.Total)
		s.Equal(1, empty.Meta.TotalPages)
	})

	s.Run("out-of-range page returns an empty slice, not an error", func() {
		result, err := s.store.List(ctx, models.EventFilters{Page: 99, PageSize: 2})
		s.NoError(err)
		s.Empty(result.Data)
		s.Equal(5, result.Meta.Total)
		s.Equal(99, result.Meta.Page)
	})

	s.Run("defaults are page 1, size 20", func() {
		result, err := s.store.List(ctx, models.EventFilters{})
		s.NoError(err)
		s.Equal(1, result.Meta.Page)
		s.Equal(20, result.Meta.PageSize)
	})
}

func (s *EventStoreSuite) TestCreate() {
	ctx := context.Background()

	s.Run("assigns id and server-side createdAt, prepends", func() {
		created, err := s.store.Create(ctx, models.InsightEvent{
			Title: "Fresh Signal", Description: "A new operational signal.", Category: "Ops",
			Severity: models.SeverityLow, Metrics: models.Metrics{Score: 10, Confidence: 0.5},
			// Client-supplied values the store must override.
			ID: "client-id", CreatedAt: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		s.NoError(err)
		s.NotEqual("client-id", created.ID)
		s.NotEmpty(created.ID)
		s.Equal(s.now, created.CreatedAt)

		stored, err := s.store.Get(ctx, created.ID)
		s.NoError(err)
		s.Equal(created, stored)
	})

	s.Run("ids are unique across creates", func() {
		seen := map[string]bool{}
		for i := 0; i < 10; i++ {
			created, err := s.store.Create(ctx, models.InsightEvent{Title: "Dup Check"})
			s.NoError(err)
			s.False(seen[created.ID])
			seen[created.ID] = true
		}
	})
}

func (s *EventStoreSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("patch merges shallowly, untouched fields survive", func() {
		updated, err := s.store.Update(ctx, "e3", models.EventPayload{Title: ptr("Renamed Cluster")})
		s.NoError(err)
		s.Equal("Renamed Cluster", updated.Title)
		s.Equal("Ops", updated.Category)
		s.Equal(71.0, updated.Metrics.Score)
	})

	s.Run("metrics are replaced whole, not deep-merged", func() {
		updated, err := s.store.Update(ctx, "e3", models.EventPayload{
			Metrics: &models.MetricsPayload{Score: ptr(50.0), Confidence: ptr(0.5), Impact: ptr(0.0)},
		})
		s.NoError(err)
		s.Equal(models.Metrics{Score: 50, Confidence: 0.5, Impact: 0}, updated.Metrics)
	})

	s.Run("tags are replaced when present", func() {
		updated, err := s.store.Update(ctx, "e2", models.EventPayload{Tags: json.RawMessage(`["fresh"]`)})
		s.NoError(err)
		s.Equal([]string{"fresh"}, updated.Tags)
	})

	s.Run("unknown id is reported", func() {
		_, err := s.store.Update(ctx, "missing", models.EventPayload{Title: ptr("X")})
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *EventStoreSuite) TestDelete() {
	ctx := context.Background()

	removed, err := s.store.Delete(ctx, "e2")
	s.NoError(err)
	s.Equal("e2", removed.ID)

	_, err = s.store.Get(ctx, "e2")
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.Delete(ctx, "e2")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func TestSeedEvents(t *testing.T) {
	now := time.Now()
	seed := SeedEvents(now)

	suiteIDs := map[string]bool{}
	for _, event := range seed {
		if suiteIDs[event.ID] {
			t.Fatalf("duplicate seed id %s", event.ID)
		}
		suiteIDs[event.ID] = true
		if !event.Severity.Valid() {
			t.Fatalf("seed event %q has invalid severity %q", event.Title, event.Severity)
		}
		if event.CreatedAt.After(now) {
			t.Fatalf("seed event %q created in the future", event.Title)
		}
	}
	if len(seed) != 38 {
		t.Fatalf("expected 38 seed events, got %d", len(seed))
	}
}
