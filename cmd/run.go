package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/timesninja/internal/app"
	"github.com/abhisek/timesninja/internal/game"
	"github.com/abhisek/timesninja/internal/llm"
	"github.com/abhisek/timesninja/internal/questionbank"
	"github.com/abhisek/timesninja/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	return runAppWith(cmd, game.DefaultLevel, false)
}

// runAppWith is runApp with the play command's knobs applied.
func runAppWith(cmd *cobra.Command, level game.Level, forceOffline bool) error {
	ctx := cmd.Context()

	// A broken store disables history rather than refusing to run.
	var eventRepo store.EventRepo
	if dbPath, err := resolveDBPath(cmd); err != nil {
		fmt.Fprintln(os.Stderr, "History disabled:", err)
	} else if st, err := store.Open(dbPath); err != nil {
		fmt.Fprintln(os.Stderr, "History disabled:", err)
	} else {
		defer st.Close()
		eventRepo = st.EventRepo()
	}

	bank, offline := buildBank(ctx, eventRepo, forceOffline)

	return app.Run(app.Options{
		Bank:      bank,
		EventRepo: eventRepo,
		Level:     level,
		Offline:   offline,
	})
}

// buildBank wires up the LLM question bank when a provider is configured,
// falling back to the built-in bank otherwise. The second return is true
// when the fallback is in use.
func buildBank(ctx context.Context, eventRepo store.EventRepo, forceOffline bool) (questionbank.Bank, bool) {
	if forceOffline {
		return questionbank.NewLocalBank(), true
	}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "No LLM API key found; using the built-in question bank.")
			return questionbank.NewLocalBank(), true
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider setup failed:", err)
		fmt.Fprintln(os.Stderr, "Using the built-in question bank.")
		return questionbank.NewLocalBank(), true
	}

	return questionbank.NewLLMBank(provider, questionbank.DefaultConfig()), false
}
