package gui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tuikit/internal/ui/gui"
)

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestApp_QuitsWithoutWindows(t *testing.T) {
	app := gui.NewApp(newTestGUI())

	_, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.True(t, isQuit(t, cmd))
}

func TestApp_RoutesKeysToActiveWindow(t *testing.T) {
	g := newTestGUI()
	a, b := newLabel("a"), newLabel("b")
	w := gui.NewBasicWindow("w")
	w.SetComponent(gui.NewPanel(a, b))
	g.AddWindow(w)
	app := gui.NewApp(g)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.False(t, isQuit(t, cmd))
	assert.Same(t, b, w.FocusedInteractable())
	require.Len(t, a.keys, 1)
	assert.Equal(t, gui.NewKeyStroke(gui.KeyArrowDown), a.keys[0])
}

func TestApp_CtrlCQuits(t *testing.T) {
	g := newTestGUI()
	g.AddWindow(gui.NewBasicWindow("w"))
	app := gui.NewApp(g)
	quit := false
	app.OnQuit(func() { quit = true })

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, isQuit(t, cmd))
	assert.True(t, quit)
}

func TestApp_ResizeAndView(t *testing.T) {
	g := newTestGUI()
	w := gui.NewBasicWindow("hello")
	w.SetComponent(newLabel("world"))
	g.AddWindow(w)
	app := gui.NewApp(g)

	app.Update(tea.WindowSizeMsg{Width: 30, Height: 8})

	assert.Equal(t, gui.Size{Columns: 30, Rows: 8}, g.ScreenSize())
	view := app.View()
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "world")
}

func TestApp_UpdateDrainsQueue(t *testing.T) {
	g := newTestGUI()
	w := gui.NewBasicWindow("w")
	g.AddWindow(w)
	app := gui.NewApp(g)

	g.InvokeLater(w.Close)
	_, cmd := app.Update(tea.WindowSizeMsg{Width: 10, Height: 5})

	assert.Empty(t, g.Windows())
	assert.True(t, isQuit(t, cmd))
}
