package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/npillmayer/translit/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal input line",
	Long: `Start an input line which transliterates while you type.

Navigation:
  Enter     - keep the line and start a new one
  Esc       - quit
  Ctrl+C    - quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	_, eng, err := setup()
	if err != nil {
		return err
	}
	p := tea.NewProgram(tui.New(eng), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
