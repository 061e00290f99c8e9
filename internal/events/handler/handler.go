package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"insightdeck/internal/events/models"
	"insightdeck/internal/events/service"
	mw "insightdeck/internal/platform/middleware"
	usermodels "insightdeck/internal/users/models"
	dErrors "insightdeck/pkg/domain-errors"
	"insightdeck/pkg/platform/httputil"
	"insightdeck/pkg/requestcontext"
)

// Handler wires the event endpoints to the event service.
type Handler struct {
	service *service.Service
	logger  *slog.Logger
}

func New(service *service.Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the event routes. Reads require any authenticated caller;
// writes are role-gated and deliberately skip the 401 gate so callers
// without a valid session still receive 403.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/events", func(r chi.Router) {
		r.With(mw.RequireUser).Get("/", h.handleList)
		r.With(mw.RequireRole(usermodels.RoleAdmin, usermodels.RoleAnalyst)).Post("/", h.handleCreate)

		r.Route("/{id}", func(r chi.Router) {
			r.With(mw.RequireUser).Get("/", h.handleGet)
			r.With(mw.RequireRole(usermodels.RoleAdmin, usermodels.RoleAnalyst)).Put("/", h.handleUpdate)
			r.With(mw.RequireRole(usermodels.RoleAdmin)).Delete("/", h.handleDelete)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filters := parseFilters(r)
	result, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "event list failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload models.EventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON payload."))
		return
	}

	created, err := h.service.Create(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "event created",
		"request_id", requestcontext.RequestID(r.Context()),
		"event_id", created.ID,
		"category", created.Category,
		"severity", created.Severity,
	)
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	event, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, event)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload models.EventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON payload."))
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "event updated",
		"request_id", requestcontext.RequestID(r.Context()),
		"event_id", updated.ID,
	)
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "event deleted",
		"request_id", requestcontext.RequestID(r.Context()),
		"event_id", id,
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// parseFilters maps query parameters onto EventFilters. Unparseable numeric
// or timestamp values are treated as absent rather than rejected.
func parseFilters(r *http.Request) models.EventFilters {
	params := r.URL.Query()
	filters := models.EventFilters{
		Categories: parseList(params.Get("category")),
		Severities: parseList(params.Get("severity")),
		Query:      params.Get("q"),
		Sort:       params.Get("sort"),
		Order:      params.Get("order"),
	}

	if v, err := strconv.ParseFloat(params.Get("minScore"), 64); err == nil {
		filters.MinScore = &v
	}
	if v, err := strconv.Atoi(params.Get("lastDays")); err == nil {
		filters.LastDays = v
	}
	if v, err := strconv.Atoi(params.Get("page")); err == nil {
		filters.Page = v
	}
	if v, err := strconv.Atoi(params.Get("pageSize")); err == nil {
		filters.PageSize = v
	}
	if t, ok := parseTime(params.Get("from")); ok {
		filters.From = &t
	}
	if t, ok := parseTime(params.Get("to")); ok {
		filters.To = &t
	}
	return filters
}

func parseList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// parseTime accepts RFC 3339 timestamps and bare dates.
func parseTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
