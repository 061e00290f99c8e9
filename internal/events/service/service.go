package service

import (
	"context"
	"errors"

	"insightdeck/internal/events/metrics"
	"insightdeck/internal/events/models"
	"insightdeck/internal/events/validate"
	dErrors "insightdeck/pkg/domain-errors"
	"insightdeck/pkg/platform/sentinel"
)

// Store abstracts the event collection so handlers and tests never depend on
// a concrete store.
type Store interface {
	List(ctx context.Context, filters models.EventFilters) (models.ListResult, error)
	Get(ctx context.Context, id string) (models.InsightEvent, error)
	Create(ctx context.Context, event models.InsightEvent) (models.InsightEvent, error)
	Update(ctx context.Context, id string, patch models.EventPayload) (models.InsightEvent, error)
	Delete(ctx context.Context, id string) (models.InsightEvent, error)
}

// Service validates event payloads and delegates to the store. Authorization
// happens at the transport layer; the service assumes an allowed caller.
type Service struct {
	store   Store
	metrics *metrics.Metrics
}

func New(store Store, metrics *metrics.Metrics) *Service {
	return &Service{store: store, metrics: metrics}
}

// List runs the filter/sort/paginate pipeline.
func (s *Service) List(ctx context.Context, filters models.EventFilters) (models.ListResult, error) {
	result, err := s.store.List(ctx, filters)
	if err != nil {
		return models.ListResult{}, err
	}
	if s.metrics != nil {
		s.metrics.Listed.Inc()
	}
	return result, nil
}

// Get returns a single event or a not-found domain error.
func (s *Service) Get(ctx context.Context, id string) (models.InsightEvent, error) {
	event, err := s.store.Get(ctx, id)
	if err != nil {
		return models.InsightEvent{}, translateStoreErr(err)
	}
	return event, nil
}

// Create validates the full payload and stores a new event. The store owns
// id and createdAt; any client-supplied values were already stripped by the
// payload shape.
func (s *Service) Create(ctx context.Context, payload models.EventPayload) (models.InsightEvent, error) {
	if result := validate.EventPayload(payload, validate.ModeCreate); !result.Valid {
		return models.InsightEvent{}, dErrors.WithDetails(dErrors.CodeBadRequest, "Validation failed.", result.Errors)
	}

	tags, _ := payload.TagList()
	event := models.InsightEvent{
		Title:       *payload.Title,
		Description: *payload.Description,
		Category:    *payload.Category,
		Severity:    models.Severity(*payload.Severity),
		Location:    models.Location{Lat: *payload.Location.Lat, Lng: *payload.Location.Lng},
		Metrics: models.Metrics{
			Score:      *payload.Metrics.Score,
			Confidence: *payload.Metrics.Confidence,
			Impact:     *payload.Metrics.Impact,
		},
		Tags: tags,
	}

	created, err := s.store.Create(ctx, event)
	if err != nil {
		return models.InsightEvent{}, err
	}
	if s.metrics != nil {
		s.metrics.Created.Inc()
	}
	return created, nil
}

// Update validates the partial payload and shallow-merges it onto the
// stored record.
func (s *Service) Update(ctx context.Context, id string, payload models.EventPayload) (models.InsightEvent, error) {
	if result := validate.EventPayload(payload, validate.ModeUpdate); !result.Valid {
		return models.InsightEvent{}, dErrors.WithDetails(dErrors.CodeBadRequest, "Validation failed.", result.Errors)
	}

	updated, err := s.store.Update(ctx, id, payload)
	if err != nil {
		return models.InsightEvent{}, translateStoreErr(err)
	}
	if s.metrics != nil {
		s.metrics.Updated.Inc()
	}
	return updated, nil
}

// Delete removes the event.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Delete(ctx, id); err != nil {
		return translateStoreErr(err)
	}
	if s.metrics != nil {
		s.metrics.Deleted.Inc()
	}
	return nil
}

func translateStoreErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "Event not found.")
	}
	return err
}
