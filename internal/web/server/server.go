// Package server exposes the resolution engine over HTTP for introspection
// tooling: type listing, tag resolution, and declaring-class queries.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tagresolve/tagresolve/internal/web/middleware"
	"github.com/tagresolve/tagresolve/model"
	"github.com/tagresolve/tagresolve/resolver"
)

// Server serves read-only introspection queries over a registered model.
type Server struct {
	registry *model.Registry
	resolver *resolver.Resolver
	logger   *zap.Logger
	handler  http.Handler
}

// New creates a server over the given registry and resolver. A nil logger
// disables request logging.
func New(registry *model.Registry, res *resolver.Resolver, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		registry: registry,
		resolver: res,
		logger:   logger,
	}

	mux := chi.NewRouter()
	mux.Get("/health", s.handleHealth)
	mux.Route("/api", func(api chi.Router) {
		api.Get("/types", s.handleTypes)
		api.Get("/types/{name}", s.handleType)
		api.Get("/resolve/type", s.handleResolveType)
		api.Get("/resolve/method", s.handleResolveMethod)
		api.Get("/declaring", s.handleDeclaring)
	})

	chain := middleware.NewChain(
		middleware.RequestID(),
		middleware.Logging(logger),
	)
	s.handler = chain.Apply(mux)

	return s
}

// Handler returns the fully wrapped HTTP handler (used directly in tests).
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe starts the server on host:port and blocks until it stops.
func (s *Server) ListenAndServe(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}
