package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tuikit/internal/cli/styles"
	"github.com/bnema/tuikit/internal/ui/component"
	"github.com/bnema/tuikit/internal/ui/gui"
)

// DemoModel runs a window manager with a key help footer below it.
type DemoModel struct {
	app    *gui.App
	help   help.Model
	keys   demoKeyMap
	width  int
	height int
}

// demoKeyMap adds the app-level keys to the combo bindings.
type demoKeyMap struct {
	combo component.ComboCheckListKeyMap
	Next  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k demoKeyMap) ShortHelp() []key.Binding {
	return append(k.combo.ShortHelp(), k.Next, k.Help, k.Quit)
}

func (k demoKeyMap) FullHelp() [][]key.Binding {
	return append(k.combo.FullHelp(), []key.Binding{k.Next, k.Help, k.Quit})
}

// NewDemoModel wraps app. keys are the bindings of the demo combo.
func NewDemoModel(app *gui.App, theme *styles.Theme, keys component.ComboCheckListKeyMap) *DemoModel {
	h := help.New()
	h.Styles = theme.HelpStyles()

	return &DemoModel{
		app:  app,
		help: h,
		keys: demoKeyMap{
			combo: keys,
			Next: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", "next"),
			),
			Help: key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "more keys"),
			),
			Quit: key.NewBinding(
				key.WithKeys("ctrl+c"),
				key.WithHelp("ctrl+c", "quit"),
			),
		},
	}
}

// Init implements tea.Model.
func (m *DemoModel) Init() tea.Cmd {
	return m.app.Init()
}

// Update implements tea.Model.
func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, m.resizeGUI()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, m.resizeGUI()
		}
	}

	_, cmd := m.app.Update(msg)
	return m, cmd
}

// resizeGUI gives the GUI the screen minus the footer.
func (m *DemoModel) resizeGUI() tea.Cmd {
	if m.width == 0 && m.height == 0 {
		return nil
	}
	footer := lipgloss.Height(m.help.View(m.keys))
	_, cmd := m.app.Update(tea.WindowSizeMsg{Width: m.width, Height: max(0, m.height-footer)})
	return cmd
}

// View implements tea.Model.
func (m *DemoModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.app.View(), m.help.View(m.keys))
}
