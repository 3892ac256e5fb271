package main

import (
	"fmt"
	"os"

	"github.com/mandalnilabja/friday/internal/config"
	"github.com/mandalnilabja/friday/internal/version"
)

func printStartupBanner(cfg *config.Config) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "🎀 Friday %s - Hinglish command relay\n", version.Version)
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "Relay API:  http://localhost%s/api/friday\n", cfg.ServerPort)
	fmt.Fprintf(os.Stderr, "Health:     http://localhost%s/api/health\n", cfg.ServerPort)
	fmt.Fprintf(os.Stderr, "Config:     %s\n", config.ConfigPath())
	if cfg.GroqAPIKey == "" {
		fmt.Fprintln(os.Stderr, "Warning:    GROQ_API_KEY is not set; commands will fail")
	}
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "\n")
}
