package squaregrid

import "log/slog"

// Export returns a deep copy of the grid's state. The copy is
// independent: changing it does not affect the grid, and vice versa.
func (g *Grid) Export() *State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state.Clone()
}

// Import replaces the grid's settings and cells with those of s and
// redraws the grid once. If s has different dimensions the grid takes
// them over and its surface is resized.
//
// Import returns false and changes nothing if s is nil, has no rows or
// columns, or would need a surface larger than MaxSurfaceSize on either
// side. The grid keeps its own copy of s.
func (g *Grid) Import(s *State) bool {
	if s == nil || s.Rows() <= 0 || s.Columns() <= 0 || len(s.cells) != s.Rows()*s.Columns() {
		return false
	}
	if !surfaceFits(s.Rows(), s.Columns(), g.cellSize) {
		g.log().Warn("squaregrid: import rejected, surface too large",
			slog.Int("rows", s.Rows()), slog.Int("columns", s.Columns()),
			slog.Int("cellSize", g.cellSize))
		return false
	}
	src := s.Clone()

	g.mu.Lock()
	oldRows, oldColumns := g.state.Rows(), g.state.Columns()
	resized := src.Rows() != oldRows || src.Columns() != oldColumns
	if resized {
		g.state = src
	} else {
		g.state.copyFrom(src)
	}
	g.mu.Unlock()

	if resized {
		g.log().Info("squaregrid: import resized grid",
			slog.Int("fromRows", oldRows), slog.Int("fromColumns", oldColumns),
			slog.Int("rows", src.Rows()), slog.Int("columns", src.Columns()))
	}

	g.requestFull()
	return true
}
