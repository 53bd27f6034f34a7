package squaregrid

import (
	"log/slog"

	"github.com/gogpu/squaregrid/surface"
)

// requestFull schedules a redraw of the whole grid. Requests made while
// one is already queued are merged into it.
func (g *Grid) requestFull() {
	if !g.fullPending.CompareAndSwap(false, true) {
		g.log().Debug("squaregrid: full redraw coalesced")
		return
	}
	g.dispatcher.Dispatch(func() {
		g.fullPending.Store(false)
		g.drawAll()
	})
}

// requestCell schedules a redraw of one cell. The request is dropped if a
// full redraw is queued, since that redraw reads the cell after this
// change was stored.
func (g *Grid) requestCell(row, column int) {
	if g.fullPending.Load() {
		g.log().Debug("squaregrid: cell redraw covered by pending full redraw",
			slog.Int("row", row), slog.Int("column", column))
		return
	}
	g.dispatcher.Dispatch(func() {
		g.drawCell(row, column)
	})
}

// drawCell redraws one cell. Runs on the render context.
func (g *Grid) drawCell(row, column int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// An import may have replaced the state since this draw was queued;
	// its own full redraw repaints everything.
	if !g.state.InBounds(row, column) || !g.surfaceMatchesLocked() {
		return
	}
	g.drawSquareLocked(row, column)
	g.generation.Add(1)
}

// drawAll redraws every cell. Runs on the render context.
//
// Without always-draw-grid the surface is first cleared with the default
// color and only colored cells are painted on top; empty cells already
// show the background. With always-draw-grid every cell is painted with
// its border.
func (g *Grid) drawAll() {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.surfaceMatchesLocked() {
		w, h := g.pixelSizeLocked()
		if err := g.surface.Resize(w, h); err != nil {
			g.log().Warn("squaregrid: surface resize failed",
				slog.Int("width", w), slog.Int("height", h), slog.Any("error", err))
			return
		}
	}

	st := g.state
	always := st.AlwaysDrawGrid()
	if !always {
		g.surface.Clear(st.DefaultColor())
	}
	for row := 0; row < st.Rows(); row++ {
		for column := 0; column < st.Columns(); column++ {
			if always || st.Cell(row, column).Valid() {
				g.drawSquareLocked(row, column)
			}
		}
	}
	g.generation.Add(1)
}

func (g *Grid) surfaceMatchesLocked() bool {
	w, h := g.pixelSizeLocked()
	return g.surface.Width() == w && g.surface.Height() == h
}

// drawSquareLocked paints one cell.
//
// A cell is a plain filled rectangle when there is no grid color, or when
// it is empty and grid lines are only drawn around colored cells.
// Otherwise the fill is inset by one pixel and a 1-pixel border is
// stroked on the half-pixel boundary, which lands exactly on the cell's
// outermost pixel ring.
func (g *Grid) drawSquareLocked(row, column int) {
	st := g.state
	bounds := surface.RectFrom(g.cellRectLocked(row, column))

	cell := st.Cell(row, column)
	fill := cell.Or(st.DefaultColor())

	gridColor, hasGrid := st.GridColor().Get()
	if !hasGrid || (!cell.Valid() && !st.AlwaysDrawGrid()) {
		g.surface.FillRect(bounds, fill)
		return
	}

	g.surface.FillRect(bounds.Inset(1), fill)
	g.surface.StrokeRect(bounds.Inset(0.5), 1, gridColor)
}
