package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"envelope/internal/ledger"
	"envelope/internal/store"
	"envelope/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long:  "The terminal UI runs on an in-memory ledger by default. Pass --store or --data to work against persistent storage instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var eng *ledger.Engine
		if cmd.Flags().Changed("store") || cmd.Flags().Changed("data") {
			var err error
			eng, err = openEngine()
			if err != nil {
				return err
			}
		} else {
			eng = ledger.New(ledger.Snapshot{}, store.NewMemory())
		}

		app := tui.NewApp(eng)
		p := tea.NewProgram(app, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
