// Package server assembles the HTTP API: routing, middleware chain and
// the lifecycle of the underlying http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glimmerclean/cleanup-backend/internal/config"
	"github.com/glimmerclean/cleanup-backend/internal/server/handlers"
	"github.com/glimmerclean/cleanup-backend/internal/server/media"
	"github.com/glimmerclean/cleanup-backend/internal/server/middleware"
	"github.com/glimmerclean/cleanup-backend/internal/server/storage"
	"github.com/glimmerclean/cleanup-backend/internal/server/token"
)

// Storage is the full persistence surface the server needs.
type Storage interface {
	storage.AdminStorage
	storage.WorkStorage
	storage.ContactStorage
}

// Server is the HTTP API server.
type Server struct {
	logger     *slog.Logger
	cfg        *config.Config
	httpServer *http.Server
	limiter    *middleware.RateLimiter
}

// New builds the server: handlers, routes and the middleware chain.
func New(cfg *config.Config, logger *slog.Logger, store Storage, uploader media.Uploader) *Server {
	codec := token.NewCodec(token.Config{
		AccessSecret:  []byte(cfg.Auth.AccessSecret),
		RefreshSecret: []byte(cfg.Auth.RefreshSecret),
		Issuer:        cfg.Auth.Issuer,
		AccessTTL:     cfg.Auth.AccessTokenTTL,
		RefreshTTL:    cfg.Auth.RefreshTokenTTL,
	})

	authHandler := handlers.NewAuthHandler(logger, store, codec, cfg.Auth.CookieAuth, cfg.IsProduction())
	workHandler := handlers.NewWorkHandler(logger, store, uploader, cfg.Upload.MaxFileSize, cfg.Upload.MaxFiles)
	contactHandler := handlers.NewContactHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, cfg.Env)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	gate := middleware.Auth(logger, codec)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Auth.
	mux.HandleFunc("POST /api/admin/login", authHandler.Login)
	mux.HandleFunc("POST /api/admin/refresh", authHandler.Refresh)
	mux.Handle("POST /api/admin/logout", gate(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/admin/profile", gate(http.HandlerFunc(authHandler.Profile)))

	// Portfolio, public side.
	mux.HandleFunc("GET /api/previous-work", workHandler.List)
	mux.HandleFunc("GET /api/previous-work/featured", workHandler.Featured)
	mux.HandleFunc("GET /api/previous-work/{id}", workHandler.Get)

	// Portfolio, admin side.
	mux.Handle("POST /api/admin/previous-work", gate(http.HandlerFunc(workHandler.Create)))
	mux.Handle("PUT /api/admin/previous-work/{id}", gate(http.HandlerFunc(workHandler.Update)))
	mux.Handle("DELETE /api/admin/previous-work/{id}", gate(http.HandlerFunc(workHandler.Delete)))
	mux.Handle("PATCH /api/admin/previous-work/{id}/toggle-featured", gate(http.HandlerFunc(workHandler.ToggleFeatured)))
	mux.Handle("DELETE /api/admin/previous-work/{id}/image", gate(http.HandlerFunc(workHandler.DeleteImage)))

	// Contact info: public read, admin write.
	mux.HandleFunc("GET /api/contact", contactHandler.Get)
	mux.Handle("POST /api/contact", gate(http.HandlerFunc(contactHandler.Create)))
	mux.Handle("PATCH /api/contact", gate(http.HandlerFunc(contactHandler.Patch)))

	var handler http.Handler = mux

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.Rate, cfg.RateLimit.Window, logger)
		handler = limiter.Middleware()(handler)
	}

	handler = middleware.LoggingWithSkip(logger, []string{"/health", "/metrics"})(handler)
	handler = metrics.Middleware()(handler)
	handler = middleware.CORS(cfg.CORS)(handler)
	handler = middleware.Recovery(logger)(handler)

	return &Server{
		logger:  logger,
		cfg:     cfg,
		limiter: limiter,
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}
}

// Run starts the server and blocks until ctx is canceled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen and serve: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")

	if s.limiter != nil {
		s.limiter.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// Handler exposes the assembled handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
