package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"envelope/internal/config"
	"envelope/internal/ledger"
	"envelope/internal/logger"
	"envelope/internal/store"
)

var (
	flagServer string
	flagData   string
	flagStore  string
)

var rootCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Personal envelope budgeting with a JSON API and terminal UI",
	Long:  "Named categories hold a running balance derived from a ledger of deposits, withdrawals and transfers. Run the HTTP API with 'serve', the terminal UI with 'tui', or talk to a running server with the other commands.",
}

func init() {
	cfg := config.Load()
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "http://localhost:8087", "Server address")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", cfg.DataFile, "Data file path")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", cfg.Store, "Store backend (json, sqlite, memory)")
}

func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

// openEngine builds an engine on the configured store backend. A corrupt
// data file is quarantined by the store and logged here; the engine starts
// from the recovered empty state.
func openEngine() (*ledger.Engine, error) {
	st, err := store.Open(flagStore, flagData)
	if err != nil {
		return nil, err
	}

	snap, err := st.Load()
	if err != nil {
		if !errors.Is(err, ledger.ErrCorruptState) {
			return nil, fmt.Errorf("load data: %w", err)
		}
		logger.Get().Warnw("stored data was corrupt, starting fresh", "error", err)
	}
	return ledger.New(snap, st), nil
}
