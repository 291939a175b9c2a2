package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkymst/tagrel/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr        string
	uploadToken string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithUploadToken requires token authentication on the upload endpoint
func WithUploadToken(token string) Option {
	return func(c *config) {
		c.uploadToken = token
	}
}

// Server represents the local package index HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server serving the package index
func NewServer(
	ctx context.Context,
	store interfaces.ArtifactStore,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr: "localhost:8080",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	// Package index
	uploadHandler := NewUploadHandler(cfg.uploadToken, store)
	router.Post("/upload", uploadHandler.Handle)

	indexHandler := NewIndexHandler(store)
	router.Get("/simple/", indexHandler.HandleList)
	router.Get("/simple/{project}/", indexHandler.HandleProject)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
