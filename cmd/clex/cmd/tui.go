package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ltungv/clex/internal/tui"
)

func newTUICommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen calculator",
		Long: `Starts the terminal user interface of clex.

Navigation:
  Enter     - evaluate the line
  Up/Down   - recall previous lines
  Ctrl+L    - clear the history
  Esc       - quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			p := tea.NewProgram(
				tui.NewModel(session),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}
