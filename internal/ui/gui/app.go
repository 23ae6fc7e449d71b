package gui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// queueMsg wakes the event loop so queued funcs run.
type queueMsg struct{}

// App drives a MultiWindowTextGUI from a bubbletea program.
// It quits once the last window is closed or on ctrl+c.
type App struct {
	gui      *MultiWindowTextGUI
	quitKeys map[string]bool
	onQuit   func()
}

// NewApp wraps g in a tea.Model.
func NewApp(g *MultiWindowTextGUI) *App {
	return &App{
		gui:      g,
		quitKeys: map[string]bool{"ctrl+c": true},
	}
}

// GUI returns the driven window manager.
func (a *App) GUI() *MultiWindowTextGUI {
	return a.gui
}

// OnQuit registers fn to run when the app decides to quit.
func (a *App) OnQuit(fn func()) {
	a.onQuit = fn
}

// Attach connects Dispatch to p. Send is called from its own goroutine
// because Program.Send blocks until the loop reads it, and Dispatch may run inside Update.
func (a *App) Attach(p *tea.Program) {
	a.gui.setWake(func() {
		go p.Send(queueMsg{})
	})
}

// Detach makes Dispatch synchronous again.
func (a *App) Detach() {
	a.gui.setWake(nil)
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.gui.Resize(Size{Columns: msg.Width, Rows: msg.Height})
	case tea.KeyMsg:
		if a.quitKeys[msg.String()] {
			return a, a.quit()
		}
		a.gui.HandleInput(FromKeyMsg(msg))
	case queueMsg:
	}

	a.gui.ProcessQueue()

	if len(a.gui.Windows()) == 0 {
		return a, a.quit()
	}
	return a, nil
}

func (a *App) quit() tea.Cmd {
	if a.onQuit != nil {
		a.onQuit()
	}
	return tea.Quit
}

func (a *App) View() string {
	return a.gui.Render()
}
