package component

import (
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"github.com/bnema/tuikit/internal/ui/gui"
)

// Button runs an action when activated with Enter or Space.
type Button struct {
	gui.InteractableBase

	mu       sync.RWMutex
	label    string
	action   func()
	activate key.Binding
}

// NewButton returns a button drawn as "< label >".
func NewButton(label string, action func()) *Button {
	b := &Button{
		label:  label,
		action: action,
		activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
	}
	b.InitComponent("Button")
	return b
}

func (b *Button) Label() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.label
}

func (b *Button) SetLabel(label string) {
	b.mu.Lock()
	b.label = label
	b.mu.Unlock()
	b.Invalidate()
}

// SetAction replaces the action run on activation.
func (b *Button) SetAction(action func()) {
	b.mu.Lock()
	b.action = action
	b.mu.Unlock()
}

func (b *Button) HandleKeyStroke(ks gui.KeyStroke) gui.Result {
	b.mu.RLock()
	activate, action := b.activate, b.action
	b.mu.RUnlock()

	if key.Matches(ks, activate) {
		if action != nil {
			action()
		}
		return gui.Handled
	}
	return b.InteractableBase.HandleKeyStroke(ks)
}

func (b *Button) CursorLocation() (gui.Position, bool) {
	if !b.IsFocused() || !b.ThemeDefinition().CursorVisible {
		return gui.TopLeft, false
	}
	return gui.Position{Column: 2, Row: 0}, true
}

func (b *Button) PreferredSize() gui.Size {
	return b.CachedPreferredSize(func() gui.Size {
		return gui.Size{Columns: gui.ColumnWidth(b.Label()) + 4, Rows: 1}
	})
}

func (b *Button) Draw(g *gui.TextGraphics) {
	def := b.ThemeDefinition()
	style := def.Normal
	if b.IsFocused() {
		style = def.Selected
	}
	g.ApplyThemeStyle(style).Fill(' ')
	g.PutString(0, 0, "< "+gui.FitString(b.Label(), max(0, g.Size().Columns-4))+" >")
	b.MarkDrawn()
}
