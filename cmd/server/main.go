package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	authhandler "insightdeck/internal/auth/handler"
	authmetrics "insightdeck/internal/auth/metrics"
	authservice "insightdeck/internal/auth/service"
	authstore "insightdeck/internal/auth/store"
	eventshandler "insightdeck/internal/events/handler"
	eventsmetrics "insightdeck/internal/events/metrics"
	eventsservice "insightdeck/internal/events/service"
	eventsstore "insightdeck/internal/events/store"
	"insightdeck/internal/platform/config"
	"insightdeck/internal/platform/httpserver"
	"insightdeck/internal/platform/logger"
	platformmetrics "insightdeck/internal/platform/metrics"
	httptransport "insightdeck/internal/transport/http"
	usershandler "insightdeck/internal/users/handler"
	usersservice "insightdeck/internal/users/service"
	usersstore "insightdeck/internal/users/store"
)

// main wires dependencies and owns the server lifecycle. All state is
// process memory: stores are built once here and injected everywhere.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Environment)

	seedUsers := usersstore.SeedUsers()
	if cfg.UserSeedPath != "" {
		loaded, err := usersstore.LoadSeedFile(cfg.UserSeedPath)
		if err != nil {
			log.Error("user seed file rejected", "path", cfg.UserSeedPath, "error", err)
			os.Exit(1)
		}
		seedUsers = loaded
		log.Info("user seed loaded from file", "path", cfg.UserSeedPath, "users", len(loaded))
	}

	m := platformmetrics.New()

	userStore := usersstore.NewInMemoryUserStore(seedUsers)
	eventStore := eventsstore.NewInMemoryEventStore(eventsstore.SeedEvents(time.Now()))
	sessionStore := authstore.NewInMemorySessionStore()

	authSvc := authservice.New(userStore, sessionStore, authmetrics.New(m.Registry))
	eventSvc := eventsservice.New(eventStore, eventsmetrics.New(m.Registry))
	userSvc := usersservice.New(userStore)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:   log,
		Metrics:  m,
		Sessions: authSvc,
		Auth:     authhandler.New(authSvc, log),
		Events:   eventshandler.New(eventSvc, log),
		Users:    usershandler.New(userSvc, log),
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting insightdeck", "addr", cfg.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
