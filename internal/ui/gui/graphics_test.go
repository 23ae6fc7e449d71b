package gui_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tuikit/internal/ui/gui"
)

func TestTextGraphics_PutStringClips(t *testing.T) {
	g := gui.NewTextGraphics(gui.Size{Columns: 5, Rows: 2})

	g.PutString(2, 0, "hello")
	g.PutString(-1, 1, "ab")

	assert.Equal(t, "  hel\nb    ", g.Text())
}

func TestTextGraphics_WideRunes(t *testing.T) {
	g := gui.NewTextGraphics(gui.Size{Columns: 5, Rows: 1})

	g.PutString(0, 0, "日本語")

	assert.Equal(t, "日本 ", g.Text(), "a wide rune straddling the edge is dropped")
	ch, _ := g.Cell(0, 0)
	assert.Equal(t, '日', ch)
}

func TestTextGraphics_SubIsClippedAndOffset(t *testing.T) {
	g := gui.NewTextGraphics(gui.Size{Columns: 6, Rows: 3})

	sub := g.Sub(gui.Position{Column: 4, Row: 1}, gui.Size{Columns: 10, Rows: 10})
	require.Equal(t, gui.Size{Columns: 2, Rows: 2}, sub.Size())

	sub.Fill('#')

	assert.Equal(t, "      \n    ##\n    ##", g.Text())
}

func TestTextGraphics_StyleIsRecordedPerCell(t *testing.T) {
	g := gui.NewTextGraphics(gui.Size{Columns: 3, Rows: 1})
	bold := lipgloss.NewStyle().Bold(true)

	g.SetCharacter(0, 0, 'a')
	g.ApplyThemeStyle(bold).SetCharacter(1, 0, 'b')

	_, s0 := g.Cell(0, 0)
	_, s1 := g.Cell(1, 0)
	assert.False(t, s0.GetBold())
	assert.True(t, s1.GetBold())
}

func TestTextGraphics_DrawBorder(t *testing.T) {
	g := gui.NewTextGraphics(gui.Size{Columns: 10, Rows: 3})

	g.DrawBorder(lipgloss.NormalBorder(), "Test")

	assert.Equal(t, "┌ Test ──┐\n│        │\n└────────┘", g.Text())
}

func TestTextGraphics_MarkCursorReverses(t *testing.T) {
	g := gui.NewTextGraphics(gui.Size{Columns: 2, Rows: 1})

	g.MarkCursor(gui.Position{Column: 1, Row: 0})

	_, s := g.Cell(1, 0)
	assert.True(t, s.GetReverse())
	_, s = g.Cell(0, 0)
	assert.False(t, s.GetReverse())
}

func TestTextGraphics_RenderKeepsText(t *testing.T) {
	g := gui.NewTextGraphics(gui.Size{Columns: 4, Rows: 2})
	g.PutString(0, 0, "ab")
	g.ApplyThemeStyle(lipgloss.NewStyle().Bold(true)).PutString(0, 1, "cd")

	out := g.Render()

	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "cd")
	assert.Equal(t, 2, lipgloss.Height(out))
}

func TestFitString(t *testing.T) {
	assert.Equal(t, "", gui.FitString("abc", 0))
	assert.Equal(t, "ab", gui.FitString("abc", 2))
	assert.Equal(t, "abc", gui.FitString("abc", 5))
	assert.Equal(t, "日", gui.FitString("日本", 3))
	assert.Equal(t, 4, gui.ColumnWidth("日本"))
}
