package squaregrid

import (
	"image"
	"math"
)

// PixelToColumn returns the column containing the pixel x coordinate.
//
// Negative coordinates return -1. Coordinates at or beyond the right edge
// return Columns(), one past the last column: callers must treat both -1
// and Columns() as "no cell". Passing Columns() on to SetCell is a no-op.
func (g *Grid) PixelToColumn(x float64) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, _ := g.pixelSizeLocked()
	return pixelToIndex(x, float64(w), g.state.Columns())
}

// PixelToRow returns the row containing the pixel y coordinate.
//
// Negative coordinates return -1. Coordinates at or beyond the bottom edge
// return Rows(); see PixelToColumn.
func (g *Grid) PixelToRow(y float64) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, h := g.pixelSizeLocked()
	return pixelToIndex(y, float64(h), g.state.Rows())
}

// CellAt returns the cell containing the pixel (x, y).
// ok is false when the pixel is outside the grid.
func (g *Grid) CellAt(x, y float64) (row, column int, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, h := g.pixelSizeLocked()
	row = pixelToIndex(y, float64(h), g.state.Rows())
	column = pixelToIndex(x, float64(w), g.state.Columns())
	return row, column, g.state.InBounds(row, column)
}

// CellBounds returns the pixel rectangle (row, column) is drawn in.
// The rectangle is empty for out-of-bounds cells.
func (g *Grid) CellBounds(row, column int) image.Rectangle {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.state.InBounds(row, column) {
		return image.Rectangle{}
	}
	return g.cellRectLocked(row, column)
}

// pixelToIndex maps coordinate p on a dimension of size d split into n
// equal cells to a cell index in [-1, n].
func pixelToIndex(p, d float64, n int) int {
	if p < 0 || math.IsNaN(p) {
		return -1
	}
	if p >= d {
		return n
	}
	idx := int(p / (d / float64(n)))
	return min(idx, n)
}

// cellRectLocked returns the rectangle of (row, column) on the current surface.
func (g *Grid) cellRectLocked(row, column int) image.Rectangle {
	w, h := g.pixelSizeLocked()
	return cellRect(row, column, g.state.Rows(), g.state.Columns(), w, h)
}

// cellRect computes the rectangle of (row, column) on a width x height
// surface split into rows x columns cells. Each edge is rounded
// independently from its exact fractional position so rounding error
// never accumulates into gaps or overlaps across the grid.
func cellRect(row, column, rows, columns, width, height int) image.Rectangle {
	rowHeight := float64(height) / float64(rows)
	columnWidth := float64(width) / float64(columns)

	y := int(math.Round(rowHeight * float64(row)))
	x := int(math.Round(columnWidth * float64(column)))
	h := max(1, int(math.Round(rowHeight*float64(row+1)))-y)
	w := max(1, int(math.Round(columnWidth*float64(column+1)))-x)

	return image.Rect(x, y, x+w, y+h)
}
