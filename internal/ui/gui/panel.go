package gui

import (
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Direction is the axis a Panel lays its children along.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

// Panel stacks its children along one axis at their preferred sizes.
type Panel struct {
	ComponentBase

	mu        sync.RWMutex
	direction Direction
	spacing   int
	children  []Component
}

// NewPanel returns a vertical panel.
func NewPanel(children ...Component) *Panel {
	return newPanel(Vertical, children)
}

// NewHorizontalPanel returns a panel laying children left to right.
func NewHorizontalPanel(children ...Component) *Panel {
	return newPanel(Horizontal, children)
}

func newPanel(dir Direction, children []Component) *Panel {
	p := &Panel{direction: dir, spacing: 1}
	p.InitComponent("Panel")
	for _, c := range children {
		p.AddComponent(c)
	}
	return p
}

// SetSpacing sets the gap between children; horizontal panels default to one column.
func (p *Panel) SetSpacing(spacing int) *Panel {
	p.mu.Lock()
	p.spacing = max(0, spacing)
	p.mu.Unlock()
	p.Invalidate()
	return p
}

func (p *Panel) gap() int {
	if p.direction == Vertical {
		return 0
	}
	return p.spacing
}

// AddComponent appends c and makes the panel its parent.
func (p *Panel) AddComponent(c Component) *Panel {
	p.mu.Lock()
	p.children = append(p.children, c)
	p.mu.Unlock()
	c.SetParent(p)
	p.Invalidate()
	return p
}

// RemoveComponent detaches c; it reports false when c is not a child.
func (p *Panel) RemoveComponent(c Component) bool {
	p.mu.Lock()
	idx := slices.Index(p.children, c)
	if idx < 0 {
		p.mu.Unlock()
		return false
	}
	p.children = slices.Delete(p.children, idx, idx+1)
	p.mu.Unlock()

	c.SetParent(nil)
	p.Invalidate()
	return true
}

// Children returns a copy of the child list.
func (p *Panel) Children() []Component {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.children)
}

func (p *Panel) PreferredSize() Size {
	return p.CachedPreferredSize(func() Size {
		p.mu.RLock()
		defer p.mu.RUnlock()

		var size Size
		for i, c := range p.children {
			ps := c.PreferredSize()
			gap := 0
			if i > 0 {
				gap = p.gap()
			}
			if p.direction == Vertical {
				size = Size{Columns: max(size.Columns, ps.Columns), Rows: size.Rows + ps.Rows + gap}
			} else {
				size = Size{Columns: size.Columns + ps.Columns + gap, Rows: max(size.Rows, ps.Rows)}
			}
		}
		return size
	})
}

func (p *Panel) layout(area Size) {
	offset := 0
	for i, c := range p.Children() {
		if i > 0 {
			offset += p.gap()
		}
		ps := c.PreferredSize()
		if p.direction == Vertical {
			h := max(0, min(ps.Rows, area.Rows-offset))
			c.SetPosition(Position{Column: 0, Row: offset})
			c.SetSize(Size{Columns: min(ps.Columns, area.Columns), Rows: h})
			offset += h
		} else {
			w := max(0, min(ps.Columns, area.Columns-offset))
			c.SetPosition(Position{Column: offset, Row: 0})
			c.SetSize(Size{Columns: w, Rows: min(ps.Rows, area.Rows)})
			offset += w
		}
	}
}

func (p *Panel) Draw(g *TextGraphics) {
	g.ApplyThemeStyle(p.ThemeDefinition().Normal).Fill(' ')
	p.layout(g.Size())
	for _, c := range p.Children() {
		c.Draw(g.Sub(c.Position(), c.Size()))
	}
	p.MarkDrawn()
}

// Border frames a single component with a titled single-line border.
type Border struct {
	ComponentBase

	title string
	style lipgloss.Border
	child Component
}

// WithBorder wraps c in a single-line border showing title.
func WithBorder(c Component, title string) *Border {
	b := &Border{title: title, style: lipgloss.NormalBorder(), child: c}
	b.InitComponent("Border")
	c.SetParent(b)
	return b
}

// Child returns the framed component.
func (b *Border) Child() Component {
	return b.child
}

func (b *Border) Children() []Component {
	return []Component{b.child}
}

func (b *Border) PreferredSize() Size {
	return b.CachedPreferredSize(func() Size {
		size := b.child.PreferredSize().WithRelative(2, 2)
		if b.title != "" {
			size = size.Max(Size{Columns: ColumnWidth(b.title) + 4, Rows: 2})
		}
		return size
	})
}

func (b *Border) Draw(g *TextGraphics) {
	g.ApplyThemeStyle(b.ThemeDefinition().Normal).Fill(' ').DrawBorder(b.style, b.title)

	inner := g.Size().WithRelative(-2, -2)
	b.child.SetPosition(Position{Column: 1, Row: 1})
	b.child.SetSize(inner)
	b.child.Draw(g.Sub(Position{Column: 1, Row: 1}, inner))
	b.MarkDrawn()
}
