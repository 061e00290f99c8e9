package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "insightdeck/internal/platform/middleware"
	"insightdeck/internal/users/models"
	"insightdeck/internal/users/service"
	dErrors "insightdeck/pkg/domain-errors"
	"insightdeck/pkg/platform/httputil"
	"insightdeck/pkg/requestcontext"
)

// Handler wires the admin-only user endpoints to the user service.
type Handler struct {
	users  *service.Service
	logger *slog.Logger
}

func New(users *service.Service, logger *slog.Logger) *Handler {
	return &Handler{users: users, logger: logger}
}

// Register mounts the user routes. Both are admin-only, so unauthenticated
// callers get 403 rather than 401.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(mw.RequireRole(models.RoleAdmin))
		r.Get("/", h.handleList)
		r.Put("/{id}", h.handleUpdateRole)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.users.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"data": profiles})
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) handleUpdateRole(w http.ResponseWriter, r *http.Request) {
	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Role == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Role must be admin, analyst, or viewer."))
		return
	}

	profile, err := h.users.UpdateRole(r.Context(), chi.URLParam(r, "id"), models.Role(req.Role))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "user role updated",
		"request_id", requestcontext.RequestID(r.Context()),
		"user_id", profile.ID,
		"role", profile.Role,
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"user": profile})
}
