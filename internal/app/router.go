package app

import (
	"log/slog"
	"net/http"

	"github.com/mandalnilabja/friday/internal/transport/http/handler"
	"github.com/mandalnilabja/friday/internal/transport/http/handler/relay"
	"github.com/mandalnilabja/friday/internal/transport/http/middleware"
)

// RouterOptions configures the HTTP router behavior.
type RouterOptions struct {
	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router with all application routes.
// Returns an http.Handler with middleware applied.
func NewRouter(repo *handler.Repo, opts *RouterOptions) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", repo.Infra.HealthCheck)

	// The relay answers every method itself (405 for unsupported ones).
	mux.Handle(relay.Path, repo.Relay)

	mux.HandleFunc("GET /{$}", repo.Infra.RootStatus)

	// Apply middleware chain (order: outer to inner)
	var h http.Handler = mux

	if opts != nil && opts.Logger != nil {
		h = middleware.RequestLogger(opts.Logger)(h)
	}

	h = middleware.RequestID(h)

	// CORS (always applied, answers preflight)
	h = middleware.CORS(h)

	return h
}
