package gui

// Position is a zero-based column/row coordinate.
type Position struct {
	Column int
	Row    int
}

// TopLeft is the origin of any coordinate space.
var TopLeft = Position{}

// WithRelative returns p moved by the given deltas.
func (p Position) WithRelative(columns, rows int) Position {
	return Position{Column: p.Column + columns, Row: p.Row + rows}
}

// Add returns the component-wise sum of p and o.
func (p Position) Add(o Position) Position {
	return p.WithRelative(o.Column, o.Row)
}

// Sub returns p relative to o.
func (p Position) Sub(o Position) Position {
	return p.WithRelative(-o.Column, -o.Row)
}

// Size is a width/height pair measured in terminal cells.
type Size struct {
	Columns int
	Rows    int
}

// SizeZero is the empty size.
var SizeZero = Size{}

// WithColumns returns s with its width replaced.
func (s Size) WithColumns(columns int) Size {
	return Size{Columns: columns, Rows: s.Rows}
}

// WithRows returns s with its height replaced.
func (s Size) WithRows(rows int) Size {
	return Size{Columns: s.Columns, Rows: rows}
}

// WithRelative returns s grown by the given deltas, never below zero.
func (s Size) WithRelative(columns, rows int) Size {
	return Size{Columns: max(0, s.Columns+columns), Rows: max(0, s.Rows+rows)}
}

// Max returns the component-wise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{Columns: max(s.Columns, o.Columns), Rows: max(s.Rows, o.Rows)}
}

// Min returns the component-wise minimum of s and o.
func (s Size) Min(o Size) Size {
	return Size{Columns: min(s.Columns, o.Columns), Rows: min(s.Rows, o.Rows)}
}

// IsEmpty reports whether s covers no cell.
func (s Size) IsEmpty() bool {
	return s.Columns <= 0 || s.Rows <= 0
}
