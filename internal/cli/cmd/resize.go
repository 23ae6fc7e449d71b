package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tuikit/internal/cli/model"
	"github.com/bnema/tuikit/internal/logging"
)

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Show the terminal size while resizing",
	Long: `Print the terminal size in the top-left corner and update it on every
resize. Press q to quit.`,
	RunE: runResize,
}

func init() {
	rootCmd.AddCommand(resizeCmd)
}

func runResize(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "resize")

	p := tea.NewProgram(model.NewResizeModel(*logging.FromContext(ctx)), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run resize: %w", err)
	}
	return nil
}
