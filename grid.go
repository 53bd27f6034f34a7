package squaregrid

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/squaregrid/dispatch"
	"github.com/gogpu/squaregrid/surface"
)

// Grid is a grid of colored square cells rendered onto a surface.
//
// Grid methods are safe to call from any goroutine. Drawing itself always
// runs on the grid's render context (see WithDispatcher); mutations made
// from other goroutines are stored immediately and drawn later.
type Grid struct {
	// mu guards state and automaticRedraw. Drawing holds the read lock.
	mu              sync.RWMutex
	state           *State
	automaticRedraw bool

	cellSize int

	// surface is only touched on the render context.
	surface    surface.Surface
	dispatcher dispatch.Dispatcher
	logger     *slog.Logger

	// fullPending is set while a full redraw is queued and not yet started.
	fullPending atomic.Bool

	// generation counts completed draws.
	generation atomic.Uint64
}

// New creates a grid with the given dimensions. cellSize is the side of
// one cell in pixels and is raised to MinCellSize if smaller.
//
// The grid is painted once before New returns (or, with a deferring
// dispatcher, the first paint is queued).
//
// Returns ErrInvalidDimensions if rows or columns is not positive, or if
// the surface would be larger than MaxSurfaceSize on either side.
func New(rows, columns, cellSize int, opts ...Option) (*Grid, error) {
	state, err := NewState(rows, columns)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cellSize = max(cellSize, MinCellSize)
	if !surfaceFits(rows, columns, cellSize) {
		return nil, fmt.Errorf("%w: %dx%d cells of %d pixels exceed %d pixels per side",
			ErrInvalidDimensions, rows, columns, cellSize, MaxSurfaceSize)
	}

	s, err := o.newSurface(columns*cellSize, rows*cellSize)
	if err != nil {
		return nil, fmt.Errorf("squaregrid: create surface: %w", err)
	}
	if s == nil {
		return nil, ErrNoSurface
	}

	state.SetDefaultColor(o.defaultColor)
	state.SetGridColor(o.gridColor)
	state.SetAlwaysDrawGrid(o.alwaysDrawGrid)

	g := &Grid{
		state:           state,
		automaticRedraw: o.automaticRedraw,
		cellSize:        cellSize,
		surface:         s,
		dispatcher:      o.dispatcher,
		logger:          o.logger,
	}

	g.log().Info("squaregrid: grid created",
		slog.Int("rows", rows),
		slog.Int("columns", columns),
		slog.Int("cellSize", cellSize))

	g.requestFull()
	return g, nil
}

// NewDefault creates a DefaultRows by DefaultColumns grid with
// DefaultCellSize cells.
func NewDefault(opts ...Option) (*Grid, error) {
	return New(DefaultRows, DefaultColumns, DefaultCellSize, opts...)
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(rows, columns, cellSize int, opts ...Option) *Grid {
	g, err := New(rows, columns, cellSize, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return Logger()
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Rows()
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Columns()
}

// CellSize returns the side of one cell in pixels.
func (g *Grid) CellSize() int {
	return g.cellSize
}

// Width returns the surface width in pixels.
func (g *Grid) Width() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, _ := g.pixelSizeLocked()
	return w
}

// Height returns the surface height in pixels.
func (g *Grid) Height() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, h := g.pixelSizeLocked()
	return h
}

// Size returns the surface width and height in pixels.
func (g *Grid) Size() (width, height int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pixelSizeLocked()
}

func (g *Grid) pixelSizeLocked() (width, height int) {
	return g.state.Columns() * g.cellSize, g.state.Rows() * g.cellSize
}

// surfaceFits reports whether a rows x columns grid of cellSize cells
// stays within MaxSurfaceSize. cellSize must be positive.
func surfaceFits(rows, columns, cellSize int) bool {
	limit := MaxSurfaceSize / cellSize
	return rows <= limit && columns <= limit
}

// Generation returns the number of draws completed so far. Hosts compare
// it between frames to decide whether the raster needs uploading again.
func (g *Grid) Generation() uint64 {
	return g.generation.Load()
}

// Cell returns the color of (row, column).
// Unset and out-of-bounds cells both return NoColor.
func (g *Grid) Cell(row, column int) OptionalColor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Cell(row, column)
}

// SetCell stores c at (row, column) and, with automatic redraw on,
// redraws that cell. Out-of-bounds coordinates change nothing and
// return false.
func (g *Grid) SetCell(row, column int, c OptionalColor) bool {
	g.mu.Lock()
	ok := g.state.SetCell(row, column, c)
	auto := g.automaticRedraw
	g.mu.Unlock()

	if ok && auto {
		g.requestCell(row, column)
	}
	return ok
}

// SetCellColor colors (row, column). See SetCell.
func (g *Grid) SetCellColor(row, column int, c Color) bool {
	return g.SetCell(row, column, Some(c))
}

// SetCellRGB colors (row, column) with RGB components clamped to [0, 1].
// See SetCell.
func (g *Grid) SetCellRGB(row, column int, r, gr, b float64) bool {
	return g.SetCell(row, column, Some(RGB(r, gr, b)))
}

// ClearCell removes the color of (row, column). See SetCell.
func (g *Grid) ClearCell(row, column int) bool {
	return g.SetCell(row, column, NoColor)
}

// Fill stores c in every cell and redraws the grid once.
// Fill(NoColor) clears the grid.
func (g *Grid) Fill(c OptionalColor) {
	g.mu.Lock()
	g.state.Fill(c)
	g.mu.Unlock()

	g.requestFull()
}

// FillColor colors every cell with c. See Fill.
func (g *Grid) FillColor(c Color) {
	g.Fill(Some(c))
}

// FillRGB colors every cell with RGB components clamped to [0, 1]. See Fill.
func (g *Grid) FillRGB(r, gr, b float64) {
	g.Fill(Some(RGB(r, gr, b)))
}

// Clear removes the color of every cell, so every cell shows the
// default color. See Fill.
func (g *Grid) Clear() {
	g.Fill(NoColor)
}

// DefaultColor returns the color of cells that have no color of their own.
func (g *Grid) DefaultColor() Color {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.DefaultColor()
}

// SetDefaultColor sets the color of cells that have no color of their
// own. The grid is redrawn if the color changed.
func (g *Grid) SetDefaultColor(c Color) {
	g.mu.Lock()
	changed := g.state.DefaultColor() != c
	if changed {
		g.state.SetDefaultColor(c)
	}
	g.mu.Unlock()

	if changed {
		g.requestFull()
	}
}

// SetDefaultRGB sets the default color from RGB components clamped to
// [0, 1]. See SetDefaultColor.
func (g *Grid) SetDefaultRGB(r, gr, b float64) {
	g.SetDefaultColor(RGB(r, gr, b))
}

// GridColor returns the color of the grid lines. NoColor means no lines.
func (g *Grid) GridColor() OptionalColor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.GridColor()
}

// SetGridColor sets the color of the grid lines; NoColor removes them.
// The grid is redrawn if the color changed or was removed.
func (g *Grid) SetGridColor(c OptionalColor) {
	g.mu.Lock()
	changed := !c.Valid() || g.state.GridColor() != c
	if changed {
		g.state.SetGridColor(c)
	}
	g.mu.Unlock()

	if changed {
		g.requestFull()
	}
}

// SetGridRGB sets the grid line color from RGB components clamped to
// [0, 1]. See SetGridColor.
func (g *Grid) SetGridRGB(r, gr, b float64) {
	g.SetGridColor(Some(RGB(r, gr, b)))
}

// AlwaysDrawGrid reports whether empty cells are bordered too.
func (g *Grid) AlwaysDrawGrid() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.AlwaysDrawGrid()
}

// SetAlwaysDrawGrid sets whether empty cells are bordered too.
// The grid is redrawn if the setting changed.
func (g *Grid) SetAlwaysDrawGrid(b bool) {
	g.mu.Lock()
	changed := g.state.AlwaysDrawGrid() != b
	if changed {
		g.state.SetAlwaysDrawGrid(b)
	}
	g.mu.Unlock()

	if changed {
		g.requestFull()
	}
}

// AutomaticRedraw reports whether changing a cell redraws it immediately.
func (g *Grid) AutomaticRedraw() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.automaticRedraw
}

// SetAutomaticRedraw sets whether changing a cell redraws it immediately.
// Turning it on redraws the whole grid so that changes made while it was
// off become visible.
func (g *Grid) SetAutomaticRedraw(b bool) {
	g.mu.Lock()
	g.automaticRedraw = b
	g.mu.Unlock()

	if b {
		g.requestFull()
	}
}

// Redraw repaints the whole grid.
func (g *Grid) Redraw() {
	g.requestFull()
}

// Close releases the grid's surface. The grid must not be used afterwards.
func (g *Grid) Close() error {
	var err error
	if cerr := g.dispatcher.Call(func() { err = g.surface.Close() }); cerr != nil {
		// The render context is gone, so nothing else touches the surface.
		err = g.surface.Close()
	}
	return err
}
