package gui

import (
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// TextGUI is the window manager components talk to.
type TextGUI interface {
	AddWindow(Window)
	RemoveWindow(Window)
	Windows() []Window
	ActiveWindow() Window
	Theme() *Theme
	// Dispatch runs fn on the GUI event loop, or immediately when no loop is attached.
	Dispatch(fn func())
	Logger() *zerolog.Logger
}

// MultiWindowTextGUI stacks windows bottom to top and routes input to the active one.
// It is driven by App; mutations from other goroutines go through Dispatch or InvokeLater.
type MultiWindowTextGUI struct {
	mu      sync.Mutex
	windows []Window
	active  Window
	theme   *Theme
	screen  Size
	logger  zerolog.Logger
	queue   []func()
	wake    func()
}

// NewMultiWindowTextGUI creates an empty window manager.
func NewMultiWindowTextGUI(theme *Theme, logger zerolog.Logger) *MultiWindowTextGUI {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &MultiWindowTextGUI{
		theme:  theme,
		logger: logger.With().Str("component", "gui").Logger(),
	}
}

func (g *MultiWindowTextGUI) Logger() *zerolog.Logger {
	return &g.logger
}

func (g *MultiWindowTextGUI) Theme() *Theme {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.theme
}

// SetTheme replaces the theme; windows without their own theme pick it up on the next render.
func (g *MultiWindowTextGUI) SetTheme(t *Theme) {
	if t == nil {
		return
	}
	g.mu.Lock()
	g.theme = t
	windows := slices.Clone(g.windows)
	g.mu.Unlock()

	for _, w := range windows {
		w.Invalidate()
	}
	g.logger.Debug().Msg("theme replaced")
}

// AddWindow pushes w on top of the stack. Windows without HintNoFocus become active.
func (g *MultiWindowTextGUI) AddWindow(w Window) {
	w.Attach(g)

	g.mu.Lock()
	if !w.HasHint(HintFixedPosition) && !w.HasHint(HintCentered) {
		n := len(g.windows)
		w.SetPosition(Position{Column: 2 + 2*n, Row: 1 + n})
	}
	g.windows = append(g.windows, w)
	focusable := !w.HasHint(HintNoFocus)
	if focusable {
		g.active = w
	}
	count := len(g.windows)
	g.mu.Unlock()

	if focusable {
		w.FocusFirst()
	}
	g.logger.Debug().
		Str("window", w.Title()).
		Bool("active", focusable).
		Int("windows", count).
		Msg("window added")
}

// RemoveWindow drops w; the topmost focusable window left becomes active.
func (g *MultiWindowTextGUI) RemoveWindow(w Window) {
	g.mu.Lock()
	idx := slices.Index(g.windows, w)
	if idx < 0 {
		g.mu.Unlock()
		return
	}
	g.windows = slices.Delete(g.windows, idx, idx+1)
	if g.active == w {
		g.active = nil
		for i := len(g.windows) - 1; i >= 0; i-- {
			if !g.windows[i].HasHint(HintNoFocus) {
				g.active = g.windows[i]
				break
			}
		}
	}
	count := len(g.windows)
	g.mu.Unlock()

	w.Attach(nil)
	g.logger.Debug().
		Str("window", w.Title()).
		Int("windows", count).
		Msg("window removed")
}

// Windows returns the stack, bottom first.
func (g *MultiWindowTextGUI) Windows() []Window {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.windows)
}

func (g *MultiWindowTextGUI) ActiveWindow() Window {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// HandleInput routes ks to the active window.
func (g *MultiWindowTextGUI) HandleInput(ks KeyStroke) bool {
	active := g.ActiveWindow()
	if active == nil {
		return false
	}
	handled := active.HandleInput(ks)
	g.logger.Trace().
		Str("key", ks.String()).
		Bool("handled", handled).
		Msg("input")
	return handled
}

// Resize records the terminal size.
func (g *MultiWindowTextGUI) Resize(s Size) {
	g.mu.Lock()
	g.screen = s
	g.mu.Unlock()
}

// ScreenSize returns the last size given to Resize.
func (g *MultiWindowTextGUI) ScreenSize() Size {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.screen
}

// Compose draws every window into a fresh canvas and marks the active cursor.
// Before the first Resize the canvas is just large enough for the windows.
func (g *MultiWindowTextGUI) Compose() *TextGraphics {
	g.mu.Lock()
	size := g.screen
	windows := slices.Clone(g.windows)
	active := g.active
	theme := g.theme
	g.mu.Unlock()

	if size.IsEmpty() {
		for _, w := range windows {
			end := w.Position()
			ds := w.DecoratedSize()
			size = size.Max(Size{Columns: end.Column + ds.Columns, Rows: end.Row + ds.Rows})
		}
	}

	screen := NewTextGraphics(size)
	screen.ApplyThemeStyle(theme.DefaultDefinition().Normal).Fill(' ')

	for _, w := range windows {
		ds := w.DecoratedSize()
		if w.HasHint(HintCentered) {
			w.SetPosition(Position{
				Column: max(0, (size.Columns-ds.Columns)/2),
				Row:    max(0, (size.Rows-ds.Rows)/2),
			})
		}
		w.Draw(screen.Sub(w.Position(), ds))
	}

	if active != nil {
		if p, ok := active.CursorPosition(); ok {
			screen.MarkCursor(p)
		}
	}
	return screen
}

// Render returns the styled screen.
func (g *MultiWindowTextGUI) Render() string {
	return g.Compose().Render()
}

// Dispatch runs fn on the event loop when one is attached, otherwise right away.
func (g *MultiWindowTextGUI) Dispatch(fn func()) {
	g.mu.Lock()
	if g.wake == nil {
		g.mu.Unlock()
		fn()
		return
	}
	g.queue = append(g.queue, fn)
	wake := g.wake
	g.mu.Unlock()

	wake()
}

// InvokeLater queues fn for the next ProcessQueue call.
func (g *MultiWindowTextGUI) InvokeLater(fn func()) {
	g.mu.Lock()
	g.queue = append(g.queue, fn)
	wake := g.wake
	g.mu.Unlock()

	if wake != nil {
		wake()
	}
}

// ProcessQueue runs the queued funcs in order, including ones they queue, and returns how many ran.
func (g *MultiWindowTextGUI) ProcessQueue() int {
	ran := 0
	for {
		g.mu.Lock()
		queue := g.queue
		g.queue = nil
		g.mu.Unlock()

		if len(queue) == 0 {
			return ran
		}
		for _, fn := range queue {
			fn()
		}
		ran += len(queue)
	}
}

// setWake installs the event loop hook used by Dispatch; nil detaches it.
func (g *MultiWindowTextGUI) setWake(wake func()) {
	g.mu.Lock()
	g.wake = wake
	g.mu.Unlock()
}
