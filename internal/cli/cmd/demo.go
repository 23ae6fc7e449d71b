package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tuikit/internal/cli"
	"github.com/bnema/tuikit/internal/cli/model"
	"github.com/bnema/tuikit/internal/cli/styles"
	"github.com/bnema/tuikit/internal/config"
	"github.com/bnema/tuikit/internal/logging"
	"github.com/bnema/tuikit/internal/ui/gui"
)

var (
	demoRows  int
	demoWatch bool
)

var demoCmd = &cobra.Command{
	Use:   "demo [items...]",
	Short: "Try the ComboCheckList",
	Long: `Open a window with a ComboCheckList and an OK button.

Space or Enter opens the popup and toggles the highlighted row, Escape
applies the changes, Tab moves to the OK button. Pressing OK prints the
checked items and exits.

Without arguments the list holds nine US states.

Examples:
  tuikit demo                       # Nine states, popup height from config
  tuikit demo red green blue        # Custom items
  tuikit demo --rows 0              # Popup shows every item
  tuikit demo --watch               # Reload colors when config.toml changes`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().IntVarP(&demoRows, "rows", "r", config.DefaultDropDownRows, "popup height limit, 0 shows every item (default from config)")
	demoCmd.Flags().BoolVarP(&demoWatch, "watch", "w", false, "reload the theme when the config file changes")
}

func runDemo(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "demo")
	log := logging.FromContext(ctx)

	rows := app.Config.Combo.DropDownRows
	if cmd.Flags().Changed("rows") {
		if demoRows < 0 {
			return fmt.Errorf("--rows must be >= 0, got %d", demoRows)
		}
		rows = demoRows
	}

	g := app.NewGUI()
	demo := cli.NewComboDemo(g, args, rows)
	guiApp := gui.NewApp(g)
	m := model.NewDemoModel(guiApp, app.Theme, demo.Combo.KeyMap())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	guiApp.Attach(p)
	defer guiApp.Detach()

	if demoWatch {
		if err := watchTheme(g); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	log.Info().Int("items", demo.Combo.ItemCount()).Int("rows", rows).Msg("demo started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}

	items, confirmed := demo.Result()
	log.Info().Strs("checked", items).Bool("confirmed", confirmed).Msg("demo finished")
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewResultRenderer(app.Theme).RenderChecked(items, confirmed))
	return nil
}

// watchTheme swaps the GUI theme on the event loop whenever the config file changes.
func watchTheme(g *gui.MultiWindowTextGUI) error {
	if err := config.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	config.OnConfigChange(func(cfg *config.Config) {
		theme := styles.NewGUITheme(cfg)
		g.InvokeLater(func() {
			g.SetTheme(theme)
		})
	})
	return nil
}
