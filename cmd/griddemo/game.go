package main

import (
	"log/slog"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/squaregrid"
	"github.com/gogpu/squaregrid/dispatch"
)

// game hosts a grid in an ebiten window. The grid's render context is the
// ebiten update thread: queued draws run at the start of every tick.
type game struct {
	grid  *squaregrid.Grid
	queue *dispatch.Queue

	// img mirrors the grid surface; uploaded when the grid generation moves.
	img        *ebiten.Image
	generation uint64
	uploaded   bool
}

func newGame(grid *squaregrid.Grid, queue *dispatch.Queue) *game {
	return &game{grid: grid, queue: queue}
}

func (g *game) Update() error {
	g.queue.RunPending()

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.grid.Clear()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		row := g.grid.PixelToRow(float64(y))
		column := g.grid.PixelToColumn(float64(x))
		// Clicks on the far edge map to one past the last cell; SetCell ignores them.
		g.grid.SetCellRGB(row, column, rand.Float64(), rand.Float64(), rand.Float64())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.queue.RunPending()

	if gen := g.grid.Generation(); !g.uploaded || gen != g.generation {
		snap, err := g.grid.Snapshot()
		if err != nil {
			squaregrid.Logger().Warn("griddemo: snapshot failed", slog.Any("error", err))
			return
		}
		b := snap.Bounds()
		if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
			g.img = ebiten.NewImage(b.Dx(), b.Dy())
		}
		g.img.WritePixels(snap.Pix)
		g.generation = gen
		g.uploaded = true
	}

	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Size()
}
