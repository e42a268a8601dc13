package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/exactcalc/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive calculator",
	Long: `Start the interactive terminal calculator.

Keys:
  0-9 . ( )     - Enter numbers and groups
  + - * /       - Enter operators
  Enter or =    - Evaluate
  Backspace     - Delete the last character
  Esc           - Clear
  Ctrl+Z/Ctrl+Y - Undo/redo
  ?             - Toggle help
  q or Ctrl+C   - Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(cfg.Precision)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
