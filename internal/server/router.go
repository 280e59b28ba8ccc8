// Package server exposes the browser UI and JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"audiozip/internal/models"
	"audiozip/internal/session"
	"audiozip/internal/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var (
	sess     *session.Session
	settings models.Settings
)

const shutdownGrace = 10 * time.Second

// NewRouter returns the http.Handler for the UI and API routes.
func NewRouter(s *session.Session, cfg models.Settings) http.Handler {
	// Inject session
	sess = s
	settings = cfg

	// Initialize router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Frontend ---
	r.Get("/", handleIndex)

	// --- API Routes ---
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/runs", func(r chi.Router) {
			r.Post("/", handleStartRun)
			r.Get("/current", handleCurrentRun)
		})
		r.Route("/bundles", func(r chi.Router) {
			r.Get("/", handleListBundles)
			r.Get("/{id}", handleDownloadBundle)
		})
		r.Get("/environment", handleEnvironment)
	})

	return r
}

// StartServer runs the HTTP server on the given port and blocks until
// SIGINT/SIGTERM, then drains in-flight requests before returning.
func StartServer(s *session.Session, cfg models.Settings, port string) error {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: NewRouter(s, cfg),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.S("Web server running on http://localhost%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logging.I("Shutting down web server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
