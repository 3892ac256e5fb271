package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/mandalnilabja/friday/internal/config"
	"github.com/mandalnilabja/friday/internal/provider"
	"github.com/mandalnilabja/friday/internal/provider/groq"
	"github.com/mandalnilabja/friday/internal/tokenizer"
	"github.com/mandalnilabja/friday/internal/transport/http/handler"
)

// NewChatClient builds the upstream client described by cfg.
func NewChatClient(cfg *config.Config, logger *slog.Logger) provider.ChatClient {
	opts := groq.Options{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
		Logger:  logger.With("provider", "groq"),
	}
	if cfg.CountPromptTokens {
		opts.Tokenizer = tokenizer.New()
	}
	return groq.New(opts)
}

// NewHandler wires the full HTTP surface for cfg.
func NewHandler(cfg *config.Config, logger *slog.Logger) http.Handler {
	repo := handler.NewRepo(NewChatClient(cfg, logger), logger)
	return NewRouter(repo, &RouterOptions{Logger: logger})
}

// NewLogger creates the process logger from cfg.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
