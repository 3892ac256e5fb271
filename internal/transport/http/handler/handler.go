package handler

import (
	"log/slog"
	"time"

	"github.com/mandalnilabja/friday/internal/provider"
	"github.com/mandalnilabja/friday/internal/transport/http/handler/infra"
	"github.com/mandalnilabja/friday/internal/transport/http/handler/relay"
)

// Repo composes all domain-specific handlers.
type Repo struct {
	Relay *relay.Handlers
	Infra *infra.Handlers
}

// NewRepo creates a new instance of the composed handler repository.
func NewRepo(client provider.ChatClient, logger *slog.Logger) *Repo {
	return &Repo{
		Relay: relay.New(client, logger),
		Infra: infra.New(time.Now()),
	}
}
