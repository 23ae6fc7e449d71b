package gui_test

import (
	"github.com/bnema/tuikit/internal/ui/gui"
)

// label is a minimal interactable used to exercise windows and focus.
type label struct {
	gui.InteractableBase

	text   string
	keys   []gui.KeyStroke
	result gui.Result
	left   []gui.FocusChangeDirection
}

func newLabel(text string) *label {
	l := &label{text: text}
	l.InitComponent("Label")
	return l
}

func (l *label) PreferredSize() gui.Size {
	return gui.Size{Columns: gui.ColumnWidth(l.text), Rows: 1}
}

func (l *label) Draw(g *gui.TextGraphics) {
	g.PutString(0, 0, l.text)
	l.MarkDrawn()
}

func (l *label) HandleKeyStroke(ks gui.KeyStroke) gui.Result {
	l.keys = append(l.keys, ks)
	if l.result != gui.Unhandled {
		return l.result
	}
	return l.InteractableBase.HandleKeyStroke(ks)
}

func (l *label) OnLeaveFocus(dir gui.FocusChangeDirection, next gui.Interactable) {
	l.InteractableBase.OnLeaveFocus(dir, next)
	l.left = append(l.left, dir)
}

func (l *label) CursorLocation() (gui.Position, bool) {
	return gui.Position{Column: 0, Row: 0}, l.IsFocused()
}
