package component_test

import (
	"github.com/rs/zerolog"

	"github.com/bnema/tuikit/internal/ui/component"
	"github.com/bnema/tuikit/internal/ui/gui"
)

var states = []string{
	"Alabama", "Michigan", "Wisconsin", "Idaho", "Oregon",
	"Iowa", "Kansas", "Texas", "North Carolina",
}

func testTheme() *gui.Theme {
	return gui.NewPaletteTheme(gui.DefaultPalette, true, nil)
}

func newStatesCombo() *component.ComboCheckList[string] {
	c := component.NewComboCheckList[string]()
	for _, s := range states {
		c.AddItem(s)
	}
	return c
}

// harness puts a combo and a sibling button in a window managed by a TextGUI.
type harness struct {
	gui     *gui.MultiWindowTextGUI
	window  *gui.BasicWindow
	combo   *component.ComboCheckList[string]
	sibling *component.Button
}

func newHarness(combo *component.ComboCheckList[string]) *harness {
	g := gui.NewMultiWindowTextGUI(testTheme(), zerolog.Nop())
	g.Resize(gui.Size{Columns: 80, Rows: 24})

	w := gui.NewBasicWindow("test", gui.HintFixedPosition)
	w.SetPosition(gui.Position{Column: 2, Row: 1})
	sibling := component.NewButton("OK", nil)
	w.SetComponent(gui.NewPanel(combo, sibling))
	g.AddWindow(w)
	g.Compose()

	return &harness{gui: g, window: w, combo: combo, sibling: sibling}
}

func (h *harness) press(ks gui.KeyStroke) bool {
	return h.gui.HandleInput(ks)
}

var (
	keySpace  = gui.NewCharacter(' ')
	keyEnter  = gui.NewKeyStroke(gui.KeyEnter)
	keyEscape = gui.NewKeyStroke(gui.KeyEscape)
	keyUp     = gui.NewKeyStroke(gui.KeyArrowUp)
	keyDown   = gui.NewKeyStroke(gui.KeyArrowDown)
	keyEnd    = gui.NewKeyStroke(gui.KeyEnd)
	keyHome   = gui.NewKeyStroke(gui.KeyHome)
	keyPgDown = gui.NewKeyStroke(gui.KeyPageDown)
	keyTab    = gui.NewKeyStroke(gui.KeyTab)
)
