package gui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// KindWindow is the theme kind of window decorations.
const KindWindow = "Window"

// Hint tunes how the window manager treats a window.
type Hint uint8

const (
	// HintNoFocus keeps the window from becoming the active window.
	HintNoFocus Hint = iota + 1
	// HintFixedPosition keeps the position set by the caller.
	HintFixedPosition
	// HintNoDecorations drops the border and title.
	HintNoDecorations
	// HintCentered centers the window on screen at every render.
	HintCentered
)

// Window is a top-level container managed by a TextGUI.
type Window interface {
	Container

	Title() string
	HasHint(Hint) bool
	Position() Position
	SetPosition(Position)
	DecoratedSize() Size
	Component() Component
	SetComponent(Component)
	FocusedInteractable() Interactable
	SetFocusedInteractable(Interactable)
	// FocusFirst focuses the first focusable interactable when nothing has focus.
	FocusFirst()
	HandleInput(KeyStroke) bool
	// CursorPosition is in screen coordinates.
	CursorPosition() (Position, bool)
	Draw(g *TextGraphics)
	// Attach is called by the TextGUI on add (non-nil) and remove (nil).
	Attach(TextGUI)
	Close()
}

// BasicWindow is the default Window implementation.
type BasicWindow struct {
	mu        sync.RWMutex
	title     string
	hints     map[Hint]bool
	position  Position
	component Component
	focused   Interactable
	gui       TextGUI
	theme     *Theme
	themeFn   func() *Theme
	invalid   bool
}

// NewBasicWindow creates an empty window.
func NewBasicWindow(title string, hints ...Hint) *BasicWindow {
	w := &BasicWindow{title: title, hints: make(map[Hint]bool), invalid: true}
	w.SetHints(hints...)
	return w
}

func (w *BasicWindow) Title() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.title
}

func (w *BasicWindow) SetTitle(title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()
	w.Invalidate()
}

// SetHints replaces the window hints.
func (w *BasicWindow) SetHints(hints ...Hint) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hints = make(map[Hint]bool, len(hints))
	for _, h := range hints {
		w.hints[h] = true
	}
}

func (w *BasicWindow) HasHint(h Hint) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.hints[h]
}

func (w *BasicWindow) Position() Position {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.position
}

func (w *BasicWindow) SetPosition(p Position) {
	w.mu.Lock()
	w.position = p
	w.mu.Unlock()
}

func (w *BasicWindow) Component() Component {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.component
}

// SetComponent sets the window content. Focus is reset.
func (w *BasicWindow) SetComponent(c Component) {
	w.mu.Lock()
	old := w.component
	w.component = c
	w.mu.Unlock()

	if old != nil {
		old.SetParent(nil)
	}
	w.setFocused(nil, FocusDirectionReset)
	if c != nil {
		c.SetParent(w)
	}
	w.Invalidate()
}

// SetTheme overrides the theme of the TextGUI for this window.
func (w *BasicWindow) SetTheme(t *Theme) {
	w.mu.Lock()
	w.theme = t
	w.mu.Unlock()
	w.Invalidate()
}

// SetThemeProvider makes the window resolve its theme through fn at every lookup.
func (w *BasicWindow) SetThemeProvider(fn func() *Theme) {
	w.mu.Lock()
	w.themeFn = fn
	w.mu.Unlock()
	w.Invalidate()
}

func (w *BasicWindow) Theme() *Theme {
	w.mu.RLock()
	fn, theme, gui := w.themeFn, w.theme, w.gui
	w.mu.RUnlock()

	switch {
	case fn != nil:
		if t := fn(); t != nil {
			return t
		}
	case theme != nil:
		return theme
	}
	if gui != nil {
		return gui.Theme()
	}
	return DefaultTheme()
}

func (w *BasicWindow) TextGUI() TextGUI {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.gui
}

func (w *BasicWindow) Attach(g TextGUI) {
	w.mu.Lock()
	w.gui = g
	w.mu.Unlock()
}

func (w *BasicWindow) Invalidate() {
	w.mu.Lock()
	w.invalid = true
	w.mu.Unlock()
}

// IsInvalid reports whether anything in the window changed since the last Draw.
func (w *BasicWindow) IsInvalid() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.invalid
}

func (w *BasicWindow) decorated() bool {
	return !w.HasHint(HintNoDecorations)
}

func (w *BasicWindow) contentOffset() Position {
	if w.decorated() {
		return Position{Column: 1, Row: 1}
	}
	return TopLeft
}

func (w *BasicWindow) ToGlobal(p Position) Position {
	return w.Position().Add(w.contentOffset()).Add(p)
}

// DecoratedSize is the content preferred size plus the frame.
func (w *BasicWindow) DecoratedSize() Size {
	var content Size
	if c := w.Component(); c != nil {
		content = c.PreferredSize()
	}
	if !w.decorated() {
		return content
	}
	size := content.WithRelative(2, 2)
	if title := w.Title(); title != "" {
		size = size.Max(Size{Columns: ColumnWidth(title) + 4, Rows: 2})
	}
	return size
}

func (w *BasicWindow) Draw(g *TextGraphics) {
	def := w.Theme().Definition(KindWindow)
	content := g
	if w.decorated() {
		g.ApplyThemeStyle(def.Normal).Fill(' ').DrawBorder(lipgloss.NormalBorder(), w.Title())
		content = g.Sub(w.contentOffset(), g.Size().WithRelative(-2, -2))
	}

	if c := w.Component(); c != nil {
		c.SetPosition(TopLeft)
		c.SetSize(content.Size())
		c.Draw(content)
	}

	w.mu.Lock()
	w.invalid = false
	w.mu.Unlock()
}

func (w *BasicWindow) FocusedInteractable() Interactable {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.focused
}

func (w *BasicWindow) SetFocusedInteractable(i Interactable) {
	w.setFocused(i, FocusDirectionTeleport)
}

func (w *BasicWindow) setFocused(next Interactable, dir FocusChangeDirection) {
	w.mu.Lock()
	prev := w.focused
	if prev == next {
		w.mu.Unlock()
		return
	}
	w.focused = next
	w.mu.Unlock()

	if prev != nil {
		prev.OnLeaveFocus(dir, next)
	}
	if next != nil {
		next.OnEnterFocus(dir, prev)
	}
	w.Invalidate()
}

func (w *BasicWindow) FocusFirst() {
	if w.FocusedInteractable() != nil {
		return
	}
	if list := w.interactables(); len(list) > 0 {
		w.setFocused(list[0], FocusDirectionNext)
	}
}

// interactables lists the focusable components in depth-first order.
func (w *BasicWindow) interactables() []Interactable {
	var out []Interactable
	var walk func(Component)
	walk = func(c Component) {
		if c == nil {
			return
		}
		if i, ok := c.(Interactable); ok && i.IsFocusable() {
			out = append(out, i)
		}
		if p, ok := c.(interface{ Children() []Component }); ok {
			for _, child := range p.Children() {
				walk(child)
			}
		}
	}
	walk(w.Component())
	return out
}

// HandleInput gives ks to the focused interactable and applies focus moves.
func (w *BasicWindow) HandleInput(ks KeyStroke) bool {
	w.FocusFirst()
	focused := w.FocusedInteractable()
	if focused == nil {
		return false
	}

	switch res := focused.HandleKeyStroke(ks); res {
	case Handled:
		return true
	case MoveFocusNext:
		return w.moveFocus(focused, 1, true, FocusDirectionNext)
	case MoveFocusPrevious:
		return w.moveFocus(focused, -1, true, FocusDirectionPrevious)
	case MoveFocusDown:
		return w.moveFocus(focused, 1, false, FocusDirectionDown)
	case MoveFocusRight:
		return w.moveFocus(focused, 1, false, FocusDirectionRight)
	case MoveFocusUp:
		return w.moveFocus(focused, -1, false, FocusDirectionUp)
	case MoveFocusLeft:
		return w.moveFocus(focused, -1, false, FocusDirectionLeft)
	default:
		return false
	}
}

// moveFocus steps through the traversal order. Tab order wraps, arrows stop at the ends.
func (w *BasicWindow) moveFocus(from Interactable, delta int, wrap bool, dir FocusChangeDirection) bool {
	list := w.interactables()
	idx := -1
	for i, it := range list {
		if it == from {
			idx = i
			break
		}
	}
	if idx < 0 || len(list) < 2 {
		return false
	}

	next := idx + delta
	if wrap {
		next = (next + len(list)) % len(list)
	} else if next < 0 || next >= len(list) {
		return false
	}

	w.setFocused(list[next], dir)
	return true
}

func (w *BasicWindow) CursorPosition() (Position, bool) {
	focused := w.FocusedInteractable()
	if focused == nil {
		return TopLeft, false
	}
	p, ok := focused.CursorLocation()
	if !ok {
		return TopLeft, false
	}
	return focused.ToGlobal(p), true
}

// Close drops focus, which lets the focused component release what it owns,
// then removes the window from its TextGUI.
func (w *BasicWindow) Close() {
	w.setFocused(nil, FocusDirectionReset)

	if g := w.TextGUI(); g != nil {
		g.RemoveWindow(w)
	}
}
