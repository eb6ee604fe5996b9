package cmd

import (
	"fmt"
	"os"

	"github.com/halvden/grimoire/internal/app"
	"github.com/halvden/grimoire/internal/arbiter"
	"github.com/halvden/grimoire/internal/llm"
	"github.com/halvden/grimoire/internal/srs"
	"github.com/halvden/grimoire/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Store:     st,
		Scheduler: srs.NewScheduler(srs.DefaultParams()),
		Retention: srs.DefaultRetention,
	}

	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		// No explicit provider configured; probe the standard key vars.
		var ok bool
		cfg, ok = llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "No LLM provider configured; free-text answers will be self-graded.")
			return app.Run(opts)
		}
	}

	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		fmt.Fprintln(os.Stderr, "Free-text answers will be self-graded.")
	} else {
		opts.Arbiter = arbiter.New(provider, arbiter.DefaultConfig())
	}

	return app.Run(opts)
}
