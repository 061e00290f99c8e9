package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"insightdeck/internal/auth/models"
	"insightdeck/internal/auth/service"
	mw "insightdeck/internal/platform/middleware"
	dErrors "insightdeck/pkg/domain-errors"
	"insightdeck/pkg/platform/httputil"
	"insightdeck/pkg/requestcontext"
)

// Handler wires the auth endpoints to the auth service.
type Handler struct {
	auth   *service.Service
	logger *slog.Logger
}

func New(auth *service.Service, logger *slog.Logger) *Handler {
	return &Handler{auth: auth, logger: logger}
}

// Register mounts the auth routes. Login is the only endpoint in the API
// that accepts unauthenticated callers.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/auth/login", h.handleLogin)
	r.With(mw.RequireUser).Get("/api/auth/me", h.handleMe)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Email and password are required."))
		return
	}

	session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(r.Context(), "login rejected",
			"request_id", requestcontext.RequestID(r.Context()),
			"email", req.Email,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "login succeeded",
		"request_id", requestcontext.RequestID(r.Context()),
		"user_id", session.User.ID,
		"role", session.User.Role,
	)
	httputil.WriteJSON(w, http.StatusOK, models.LoginResponse{
		Token: session.Token,
		User:  session.User,
	})
}

// handleMe returns the sanitized session snapshot for the presented token.
// The snapshot reflects the role held at login, not the current store state.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"user": requestcontext.User(r.Context()),
	})
}
