package model

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/bnema/tuikit/internal/ui/gui"
)

// greetingAt is where the static greeting is drawn.
var greetingAt = gui.Position{Column: 10, Row: 5}

// ResizeModel shows the terminal size in the top-left corner and redraws it on every resize.
type ResizeModel struct {
	size    gui.Size
	resizes int
	quit    key.Binding
	logger  zerolog.Logger
}

// NewResizeModel creates a resize display model.
func NewResizeModel(logger zerolog.Logger) ResizeModel {
	return ResizeModel{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		logger: logger,
	}
}

// Size returns the last reported terminal size.
func (m ResizeModel) Size() gui.Size {
	return m.size
}

// Init implements tea.Model.
func (m ResizeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ResizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = gui.Size{Columns: msg.Width, Rows: msg.Height}
		m.resizes++
		m.logger.Debug().
			Int("columns", msg.Width).
			Int("rows", msg.Height).
			Int("resizes", m.resizes).
			Msg("terminal resized")
	case tea.KeyMsg:
		if key.Matches(msg, m.quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m ResizeModel) View() string {
	if m.size.IsEmpty() {
		return ""
	}
	g := gui.NewTextGraphics(m.size)
	g.Fill(' ')
	g.PutString(greetingAt.Column, greetingAt.Row, "Hello!")
	g.PutString(0, 0, fmt.Sprintf("%dx%d", m.size.Columns, m.size.Rows))
	return g.Text()
}
