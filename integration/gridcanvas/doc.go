// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gridcanvas presents a squaregrid.Grid in gogpu GPU-accelerated
// windows.
//
// The data flow is:
//
//	squaregrid.Grid (draw) -> surface snapshot (CPU) -> GPU Texture -> Window
//
// # Architecture
//
// Canvas follows a grid and manages the texture upload pipeline:
//
//   - The grid draws on its own render context as usual
//   - Flush() uploads the grid's raster to a GPU texture when the grid
//     has drawn since the last upload
//   - RenderTo() draws the texture to a gogpu window
//
// # Usage
//
//	queue := dispatch.NewQueue()
//	grid, _ := squaregrid.New(15, 15, 20, squaregrid.WithDispatcher(queue))
//	canvas, _ := gridcanvas.New(grid)
//	defer canvas.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    queue.RunPending()
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Call it from the host's render
// callback only; the grid itself may be mutated from any goroutine.
//
// # Integration Without Circular Imports
//
// This package depends on gpucontext interfaces only and never imports
// gogpu directly.
package gridcanvas
