package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tuikit/internal/cli/styles"
	"github.com/bnema/tuikit/internal/config"
	"github.com/bnema/tuikit/internal/ui/component"
	"github.com/bnema/tuikit/internal/ui/gui"
)

func newTestDemo(t *testing.T) (*DemoModel, *gui.MultiWindowTextGUI, *component.ComboCheckList[string]) {
	t.Helper()
	cfg := config.DefaultConfig()
	g := gui.NewMultiWindowTextGUI(styles.NewGUITheme(cfg), zerolog.Nop())

	combo := component.NewComboCheckList[string]().AddItem("Iowa").AddItem("Texas")
	w := gui.NewBasicWindow("demo", gui.HintCentered)
	w.SetComponent(gui.NewPanel(combo))
	g.AddWindow(w)

	m := NewDemoModel(gui.NewApp(g), styles.NewTheme(cfg), combo.KeyMap())
	require.Nil(t, m.Init())
	return m, g, combo
}

func TestDemoModel_ReservesFooter(t *testing.T) {
	m, g, _ := newTestDemo(t)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, gui.Size{Columns: 80, Rows: 23}, g.ScreenSize())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Nil(t, cmd)
	footer := lipgloss.Height(m.help.View(m.keys))
	assert.Greater(t, footer, 1)
	assert.Equal(t, 24-footer, g.ScreenSize().Rows)
}

func TestDemoModel_ForwardsKeys(t *testing.T) {
	m, _, combo := newTestDemo(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.True(t, combo.IsPopupOpen())
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, combo.IsPopupOpen())
	assert.Equal(t, []string{"Iowa"}, combo.CheckedItems())
}

func TestDemoModel_View(t *testing.T) {
	m, _, _ := newTestDemo(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})

	view := m.View()
	assert.Contains(t, view, "0 of 2 checked")
	assert.Contains(t, view, "open/toggle")
	assert.Equal(t, 12, lipgloss.Height(view))
}

func TestDemoModel_CtrlCQuits(t *testing.T) {
	m, _, _ := newTestDemo(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
