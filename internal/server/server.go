package server

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roothaven/RootsBot_Go/internal/database"
	"github.com/roothaven/RootsBot_Go/internal/handler"
	"github.com/roothaven/RootsBot_Go/internal/logger"
	"github.com/roothaven/RootsBot_Go/internal/metrics"
	"github.com/roothaven/RootsBot_Go/internal/quest"
)

// Server hosts the reward engine's HTTP surface
type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and wraps it in an http.Server
func NewServer(port int, apiKey string, pool database.Pool, questService quest.Service) *Server {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health and metrics are unauthenticated
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(pool))
	r.Handle("/metrics", promhttp.Handler())

	questHandler := handler.NewQuestHandler(questService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware(apiKey))

		r.Route("/quest/{questID}", func(r chi.Router) {
			r.Post("/complete", questHandler.ProcessCompletion)
			r.Get("/reward-status", questHandler.RewardStatus)
		})

		r.Post("/admin/reconciliation/run", questHandler.RunReconciliation)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start blocks serving HTTP until the listener fails or the server stops
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// authMiddleware requires the configured API key on every request
func authMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// loggingMiddleware logs each request with its duration
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.FromContext(r.Context()).Debug("Handled request",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start).String())
	})
}
