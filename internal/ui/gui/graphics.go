package gui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// wideTail marks the second cell covered by a double-width rune.
const wideTail rune = -1

type cell struct {
	ch    rune
	style int
}

// canvas is the backing store shared by a TextGraphics and its sub views.
// lipgloss.Style is not comparable, so cells hold an index into styles.
type canvas struct {
	size   Size
	cells  []cell
	styles []lipgloss.Style
}

func (c *canvas) register(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

// TextGraphics draws into a rectangular area of a cell canvas.
// Writes outside the area are clipped.
type TextGraphics struct {
	c      *canvas
	origin Position
	size   Size
	style  int
}

// NewTextGraphics returns a blank canvas of the given size.
func NewTextGraphics(size Size) *TextGraphics {
	size = size.Max(SizeZero)
	c := &canvas{
		size:   size,
		cells:  make([]cell, size.Columns*size.Rows),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range c.cells {
		c.cells[i].ch = ' '
	}
	return &TextGraphics{c: c, size: size}
}

// Size returns the drawable area.
func (g *TextGraphics) Size() Size {
	return g.size
}

// ApplyThemeStyle sets the style used by subsequent writes.
func (g *TextGraphics) ApplyThemeStyle(s lipgloss.Style) *TextGraphics {
	g.style = g.c.register(s)
	return g
}

func (g *TextGraphics) set(col, row int, r rune) {
	if col < 0 || row < 0 || col >= g.size.Columns || row >= g.size.Rows {
		return
	}
	x, y := g.origin.Column+col, g.origin.Row+row
	if x < 0 || y < 0 || x >= g.c.size.Columns || y >= g.c.size.Rows {
		return
	}
	g.c.cells[y*g.c.size.Columns+x] = cell{ch: r, style: g.style}
}

// SetCharacter writes one rune at col,row.
func (g *TextGraphics) SetCharacter(col, row int, r rune) *TextGraphics {
	g.set(col, row, r)
	return g
}

// Fill writes r over the whole area.
func (g *TextGraphics) Fill(r rune) *TextGraphics {
	for row := 0; row < g.size.Rows; row++ {
		for col := 0; col < g.size.Columns; col++ {
			g.set(col, row, r)
		}
	}
	return g
}

// FillRow writes r over one row.
func (g *TextGraphics) FillRow(row int, r rune) *TextGraphics {
	for col := 0; col < g.size.Columns; col++ {
		g.set(col, row, r)
	}
	return g
}

// PutString writes s starting at col,row. Double-width runes take two cells,
// zero-width runes are dropped, and a wide rune that would straddle the edge is not drawn.
func (g *TextGraphics) PutString(col, row int, s string) *TextGraphics {
	for _, r := range s {
		w := ansi.StringWidth(string(r))
		if w == 0 {
			continue
		}
		if col+w > g.size.Columns {
			break
		}
		g.set(col, row, r)
		if w == 2 {
			g.set(col+1, row, wideTail)
		}
		col += w
	}
	return g
}

// Sub returns a view clipped to pos,size inside g.
func (g *TextGraphics) Sub(pos Position, size Size) *TextGraphics {
	if pos.Column < 0 {
		size.Columns += pos.Column
		pos.Column = 0
	}
	if pos.Row < 0 {
		size.Rows += pos.Row
		pos.Row = 0
	}
	size = size.Min(Size{
		Columns: g.size.Columns - pos.Column,
		Rows:    g.size.Rows - pos.Row,
	}).Max(SizeZero)

	return &TextGraphics{
		c:      g.c,
		origin: g.origin.Add(pos),
		size:   size,
		style:  g.style,
	}
}

// DrawBorder frames the area with b and writes title into the top edge.
func (g *TextGraphics) DrawBorder(b lipgloss.Border, title string) *TextGraphics {
	cols, rows := g.size.Columns, g.size.Rows
	if cols < 2 || rows < 2 {
		return g
	}

	for col := 1; col < cols-1; col++ {
		g.set(col, 0, firstRune(b.Top))
		g.set(col, rows-1, firstRune(b.Bottom))
	}
	for row := 1; row < rows-1; row++ {
		g.set(0, row, firstRune(b.Left))
		g.set(cols-1, row, firstRune(b.Right))
	}
	g.set(0, 0, firstRune(b.TopLeft))
	g.set(cols-1, 0, firstRune(b.TopRight))
	g.set(0, rows-1, firstRune(b.BottomLeft))
	g.set(cols-1, rows-1, firstRune(b.BottomRight))

	if title != "" && cols > 4 {
		g.Sub(Position{Column: 1, Row: 0}, Size{Columns: cols - 2, Rows: 1}).
			PutString(0, 0, FitString(" "+title+" ", cols-2))
	}
	return g
}

// Cell returns the rune and style at col,row of this view.
func (g *TextGraphics) Cell(col, row int) (rune, lipgloss.Style) {
	if col < 0 || row < 0 || col >= g.size.Columns || row >= g.size.Rows {
		return 0, lipgloss.NewStyle()
	}
	c := g.c.cells[(g.origin.Row+row)*g.c.size.Columns+g.origin.Column+col]
	return c.ch, g.c.styles[c.style]
}

// Text returns the view contents without styling, one line per row.
func (g *TextGraphics) Text() string {
	lines := make([]string, 0, g.size.Rows)
	for row := 0; row < g.size.Rows; row++ {
		var sb strings.Builder
		for col := 0; col < g.size.Columns; col++ {
			ch, _ := g.Cell(col, row)
			if ch != wideTail {
				sb.WriteRune(ch)
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// MarkCursor renders the cell at p (view coordinates) in reverse video.
func (g *TextGraphics) MarkCursor(p Position) {
	if p.Column < 0 || p.Row < 0 || p.Column >= g.size.Columns || p.Row >= g.size.Rows {
		return
	}
	i := (g.origin.Row+p.Row)*g.c.size.Columns + g.origin.Column + p.Column
	style := g.c.styles[g.c.cells[i].style]
	g.c.cells[i].style = g.c.register(style.Reverse(true))
}

// Render returns the styled view, runs of equally styled cells rendered together.
func (g *TextGraphics) Render() string {
	lines := make([]string, 0, g.size.Rows)
	for row := 0; row < g.size.Rows; row++ {
		var (
			line  strings.Builder
			run   strings.Builder
			style = -1
		)
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(g.c.styles[style].Render(run.String()))
				run.Reset()
			}
		}
		for col := 0; col < g.size.Columns; col++ {
			c := g.c.cells[(g.origin.Row+row)*g.c.size.Columns+g.origin.Column+col]
			if c.ch == wideTail {
				continue
			}
			if c.style != style {
				flush()
				style = c.style
			}
			run.WriteRune(c.ch)
		}
		flush()
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// FitString truncates s to at most width terminal columns.
func FitString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

// ColumnWidth returns the number of terminal columns s occupies.
func ColumnWidth(s string) int {
	return ansi.StringWidth(s)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
