// Command griddemo shows an interactive square grid in a window.
//
// Left click colors a cell with a random color, right click clears the
// grid. With -animate, a background goroutine keeps coloring cells; its
// draws are queued and run on the window's update thread.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/squaregrid"
	"github.com/gogpu/squaregrid/dispatch"
)

func main() {
	var (
		rows    = flag.Int("rows", 15, "number of rows")
		columns = flag.Int("columns", 15, "number of columns")
		cell    = flag.Int("cell", 20, "cell size in pixels")
		animate = flag.Duration("animate", 0, "color a random cell at this interval (0 disables)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		squaregrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	queue := dispatch.NewQueue(dispatch.WithLogger(squaregrid.Logger()))

	grid, err := squaregrid.New(*rows, *columns, *cell,
		squaregrid.WithAlwaysDrawGrid(true),
		squaregrid.WithDispatcher(queue),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		// Nothing pumps the queue once the window is gone, so close it
		// first; the grid then releases its surface directly.
		_ = queue.Close()
		_ = grid.Close()
	}()

	if *animate > 0 {
		go animateCells(grid, *animate)
	}

	g := newGame(grid, queue)

	ebiten.SetWindowSize(grid.Width(), grid.Height())
	ebiten.SetWindowTitle("squaregrid demo")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// animateCells colors random cells from outside the render thread.
func animateCells(grid *squaregrid.Grid, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for range t.C {
		grid.SetCellRGB(rand.IntN(grid.Rows()), rand.IntN(grid.Columns()),
			rand.Float64(), rand.Float64(), rand.Float64())
	}
}
