package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ramanasai/dayflow/internal/ui"
)

// tuiCmd launches the Bubble Tea day dashboard.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive day view",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		return ui.Run(a)
	},
}
