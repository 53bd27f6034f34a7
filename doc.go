// Package squaregrid provides a grid of independently colorable square
// cells rendered onto a pixel surface.
//
// # Overview
//
// A Grid is a reusable widget core for pixel editors, board visualizations
// and heatmaps. It keeps the cell colors and grid settings in a State,
// renders them onto a surface.Surface, maps pixel coordinates back to
// cells for mouse picking, and exports or imports its State as an
// independent snapshot.
//
// # Quick Start
//
//	g, err := squaregrid.New(15, 15, 20, squaregrid.WithAlwaysDrawGrid(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Color the cell under a click
//	if row, col, ok := g.CellAt(x, y); ok {
//	    g.SetCellRGB(row, col, 1, 0, 0)
//	}
//
//	// Save what is on screen
//	if err := g.SaveBitmap("board.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Redraw Policy
//
// Changing one cell redraws that cell only, when automatic redraw is on.
// Fills, setting changes, imports and Redraw repaint the whole grid once.
// With automatic redraw off, cell changes are stored and become visible
// on the next full redraw.
//
// # Render Context
//
// All drawing runs through a dispatch.Dispatcher. Draws requested on the
// render context run synchronously; draws requested from other goroutines
// are queued and the caller does not wait. Pending full redraws are
// coalesced into one, and single-cell draws requested while a full redraw
// is pending are dropped because the full redraw covers them.
//
// The default dispatcher is dispatch.Immediate, which treats every caller
// as the render context. Use WithDispatcher with a dispatch.Loop or a
// host-pumped dispatch.Queue to render on a dedicated thread.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left corner of the surface
//   - Columns increase to the right, rows increase downwards
//   - The surface is Columns()*CellSize() by Rows()*CellSize() pixels
package squaregrid

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
