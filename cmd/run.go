package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elliotskunk/stumble/internal/app"
	"github.com/elliotskunk/stumble/internal/capture"
	"github.com/elliotskunk/stumble/internal/challenge"
	"github.com/elliotskunk/stumble/internal/llm"
	"github.com/elliotskunk/stumble/internal/store"
	"github.com/elliotskunk/stumble/internal/stumble"
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

	history := store.LoadHistory(st)
	goals := store.LoadGoals(st)
	ctrl := stumble.NewController(history, goals)

	var device capture.Device
	if dir, _ := cmd.Flags().GetString("photos"); dir != "" {
		device = capture.NewFileDevice(dir)
	} else if dir := os.Getenv("STUMBLE_PHOTOS"); dir != "" {
		device = capture.NewFileDevice(dir)
	} else {
		device = capture.NewStubDevice()
	}

	var gen challenge.Generator
	provider, err := llm.NewProviderFromEnv(ctx, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Challenges will use the built-in fallback.")
		gen = challenge.Static{Challenge: challenge.Fallback()}
	} else {
		gen = challenge.NewLLMGenerator(provider)
	}

	return app.Run(ctrl, gen, device)
}
