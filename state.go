package squaregrid

import "fmt"

// State holds the cell colors and grid-level settings of a grid.
//
// State is plain data with validated mutators. It knows nothing about
// rendering; a Grid owns one State and redraws itself when the state
// changes through the Grid's methods.
//
// State is NOT safe for concurrent use.
type State struct {
	rows    int
	columns int

	// cells is row-major: cells[row*columns+column].
	cells []OptionalColor

	defaultColor   Color
	gridColor      OptionalColor
	alwaysDrawGrid bool
}

// MaxCells is the largest number of cells a state may hold.
const MaxCells = 1 << 24

// NewState creates a state with the given dimensions. All cells start
// without a color, the default color is black and the grid color is gray.
//
// Returns ErrInvalidDimensions if rows or columns is not positive, or if
// rows*columns exceeds MaxCells.
func NewState(rows, columns int) (*State, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: rows=%d, columns=%d", ErrInvalidDimensions, rows, columns)
	}
	if rows > MaxCells/columns {
		return nil, fmt.Errorf("%w: rows=%d, columns=%d exceeds %d cells",
			ErrInvalidDimensions, rows, columns, MaxCells)
	}
	return &State{
		rows:         rows,
		columns:      columns,
		cells:        make([]OptionalColor, rows*columns),
		defaultColor: Black,
		gridColor:    Some(Gray),
	}, nil
}

// Rows returns the number of rows.
func (s *State) Rows() int {
	return s.rows
}

// Columns returns the number of columns.
func (s *State) Columns() int {
	return s.columns
}

// InBounds reports whether (row, column) addresses a cell.
func (s *State) InBounds(row, column int) bool {
	return row >= 0 && row < s.rows && column >= 0 && column < s.columns
}

// SetCell stores c at (row, column).
// It returns false and changes nothing if the cell is out of bounds.
func (s *State) SetCell(row, column int, c OptionalColor) bool {
	if !s.InBounds(row, column) {
		return false
	}
	s.cells[row*s.columns+column] = c
	return true
}

// Cell returns the color stored at (row, column).
// Unset and out-of-bounds cells both return NoColor.
func (s *State) Cell(row, column int) OptionalColor {
	if !s.InBounds(row, column) {
		return NoColor
	}
	return s.cells[row*s.columns+column]
}

// Fill stores c in every cell.
func (s *State) Fill(c OptionalColor) {
	for i := range s.cells {
		s.cells[i] = c
	}
}

// Row returns a copy of the cells in row, or nil if row is out of range.
func (s *State) Row(row int) []OptionalColor {
	if row < 0 || row >= s.rows {
		return nil
	}
	out := make([]OptionalColor, s.columns)
	copy(out, s.cells[row*s.columns:(row+1)*s.columns])
	return out
}

// Cells returns a copy of all cells indexed [row][column].
func (s *State) Cells() [][]OptionalColor {
	out := make([][]OptionalColor, s.rows)
	for r := range out {
		out[r] = s.Row(r)
	}
	return out
}

// DefaultColor returns the color used for cells without a color.
func (s *State) DefaultColor() Color {
	return s.defaultColor
}

// SetDefaultColor sets the color used for cells without a color.
func (s *State) SetDefaultColor(c Color) {
	s.defaultColor = c
}

// GridColor returns the grid line color. NoColor means no grid lines.
func (s *State) GridColor() OptionalColor {
	return s.gridColor
}

// SetGridColor sets the grid line color. NoColor disables grid lines.
func (s *State) SetGridColor(c OptionalColor) {
	s.gridColor = c
}

// AlwaysDrawGrid reports whether grid lines are drawn around empty cells too.
func (s *State) AlwaysDrawGrid() bool {
	return s.alwaysDrawGrid
}

// SetAlwaysDrawGrid sets whether grid lines are drawn around empty cells too.
func (s *State) SetAlwaysDrawGrid(b bool) {
	s.alwaysDrawGrid = b
}

// Clone returns a deep copy of s. The copy shares no storage with s.
func (s *State) Clone() *State {
	c := *s
	c.cells = make([]OptionalColor, len(s.cells))
	copy(c.cells, s.cells)
	return &c
}

// Equal reports whether s and o have the same dimensions, settings and cells.
func (s *State) Equal(o *State) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.rows != o.rows || s.columns != o.columns ||
		s.defaultColor != o.defaultColor ||
		s.gridColor != o.gridColor ||
		s.alwaysDrawGrid != o.alwaysDrawGrid {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// copyFrom copies settings and cells from src. Dimensions must match.
func (s *State) copyFrom(src *State) {
	s.defaultColor = src.defaultColor
	s.gridColor = src.gridColor
	s.alwaysDrawGrid = src.alwaysDrawGrid
	copy(s.cells, src.cells)
}
