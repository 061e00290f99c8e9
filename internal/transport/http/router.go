// Package httptransport assembles the HTTP surface: middleware chain, domain
// handlers, and the operational endpoints. Business logic lives in the
// domain services; nothing here inspects payloads beyond routing.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	authhandler "insightdeck/internal/auth/handler"
	eventshandler "insightdeck/internal/events/handler"
	"insightdeck/internal/platform/metrics"
	mw "insightdeck/internal/platform/middleware"
	usershandler "insightdeck/internal/users/handler"
	"insightdeck/pkg/platform/httputil"
)

// Deps collects everything the router needs. Constructed once in main and
// once per end-to-end test, giving each test a fresh process-equivalent.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Sessions mw.SessionValidator
	Auth     *authhandler.Handler
	Events   *eventshandler.Handler
	Users    *usershandler.Handler
}

// NewRouter wires the middleware chain and mounts all endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.Recovery(deps.Logger))
	r.Use(mw.RequestID)
	r.Use(mw.UserAgentContext)
	r.Use(mw.Logger(deps.Logger))
	r.Use(mw.Latency(deps.Metrics))
	r.Use(mw.Authenticate(deps.Sessions))

	deps.Auth.Register(r)
	deps.Events.Register(r)
	deps.Users.Register(r)

	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
