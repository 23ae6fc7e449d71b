package component

import (
	"fmt"

	"github.com/bnema/tuikit/internal/ui/gui"
)

// ComboCheckListRenderer measures and draws the collapsed ComboCheckList.
type ComboCheckListRenderer[V comparable] interface {
	CursorLocation(c *ComboCheckList[V]) (gui.Position, bool)
	PreferredSize(c *ComboCheckList[V]) gui.Size
	Draw(g *gui.TextGraphics, c *ComboCheckList[V])
}

// DefaultComboCheckListRenderer draws the summary text followed by a separator
// and a drop-down arrow in the last two columns.
type DefaultComboCheckListRenderer[V comparable] struct{}

// CursorLocation puts the cursor on the arrow while the button has focus.
// There is no cursor before the combo has been laid out.
func (DefaultComboCheckListRenderer[V]) CursorLocation(c *ComboCheckList[V]) (gui.Position, bool) {
	st := c.State()
	if !st.Focused || !st.DropDownFocused || st.Size.Columns <= 0 || !c.ThemeDefinition().CursorVisible {
		return gui.TopLeft, false
	}
	return gui.Position{Column: st.Size.Columns - 1, Row: 0}, true
}

// PreferredSize fits the widest of the summary and every item, plus the arrow area.
func (DefaultComboCheckListRenderer[V]) PreferredSize(c *ComboCheckList[V]) gui.Size {
	st := c.State()
	textWidth := gui.ColumnWidth(st.Text)

	size := gui.Size{Columns: 2, Rows: 1}
	if len(st.Items) == 0 {
		size.Columns += textWidth
	}
	for _, item := range st.Items {
		w := max(gui.ColumnWidth(fmt.Sprint(item)), textWidth) + 2 + 3
		size = size.Max(gui.Size{Columns: w, Rows: 1})
	}
	return size
}

func (DefaultComboCheckListRenderer[V]) Draw(g *gui.TextGraphics, c *ComboCheckList[V]) {
	def := c.ThemeDefinition()
	st := c.State()

	g.ApplyThemeStyle(def.Normal).Fill(' ')

	textArea := g.Size().Columns - 2
	g.PutString(0, 0, gui.FitString(st.Text, textArea))
	g.SetCharacter(textArea, 0, def.Character(gui.GlyphPopupSeparator, gui.SymbolSingleLineVertical))

	if st.Focused && st.DropDownFocused {
		g.ApplyThemeStyle(def.Selected)
	}
	g.SetCharacter(textArea+1, 0, def.Character(gui.GlyphPopup, gui.SymbolTriangleDownPointing))
}
