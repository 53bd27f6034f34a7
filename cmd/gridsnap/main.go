// Command gridsnap renders a square grid headlessly and saves it as a bitmap.
//
// Random cells are colored from several goroutines at once; drawing is
// serialized on a render loop, the same way an interactive host would.
//
//	gridsnap -rows 20 -columns 30 -cell 12 -random 200 -output board.bmp
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/squaregrid"
	"github.com/gogpu/squaregrid/bitmap"
	"github.com/gogpu/squaregrid/dispatch"
)

func main() {
	var (
		rows    = flag.Int("rows", 15, "number of rows")
		columns = flag.Int("columns", 15, "number of columns")
		cell    = flag.Int("cell", 20, "cell size in pixels")
		random  = flag.Int("random", 40, "number of randomly colored cells")
		workers = flag.Int("workers", 4, "goroutines coloring cells")
		seed    = flag.Uint64("seed", 1, "random seed")
		fill    = flag.String("fill", "", "fill every cell with this hex color first")
		bg      = flag.String("default", "#000", "default cell color (hex)")
		gridHex = flag.String("grid", "#808080", "grid line color (hex, empty for none)")
		always  = flag.Bool("always", true, "draw grid lines around empty cells")
		scale   = flag.Int("scale", 1, "integer upscale factor for the output")
		output  = flag.String("output", "grid.png", "output file (.png, .bmp, .tif)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		squaregrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	loop := dispatch.NewLoop(dispatch.WithLogger(squaregrid.Logger()))
	defer loop.Close()

	opts := []squaregrid.Option{
		squaregrid.WithDispatcher(loop),
		squaregrid.WithDefaultColor(squaregrid.Hex(*bg)),
		squaregrid.WithAlwaysDrawGrid(*always),
	}
	if *gridHex == "" {
		opts = append(opts, squaregrid.WithoutGridLines())
	} else {
		opts = append(opts, squaregrid.WithGridColor(squaregrid.Hex(*gridHex)))
	}

	g, err := squaregrid.New(*rows, *columns, *cell, opts...)
	if err != nil {
		log.Fatalf("Failed to create grid: %v", err)
	}
	defer g.Close()

	if *fill != "" {
		g.FillColor(squaregrid.Hex(*fill))
	}
	colorRandomCells(g, *random, max(*workers, 1), *seed)

	img, err := g.Snapshot()
	if err != nil {
		log.Fatalf("Failed to snapshot grid: %v", err)
	}
	if *scale > 1 {
		img = upscale(img, *scale)
	}

	if err := bitmap.Save(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Grid saved to %s (%dx%d)\n", *output, img.Bounds().Dx(), img.Bounds().Dy())
}

// colorRandomCells colors n random cells, split across workers goroutines.
func colorRandomCells(g *squaregrid.Grid, n, workers int, seed uint64) {
	rows, columns := g.Rows(), g.Columns()

	var wg sync.WaitGroup
	for w := range workers {
		share := n / workers
		if w < n%workers {
			share++
		}
		wg.Add(1)
		go func(r *rand.Rand) {
			defer wg.Done()
			for range share {
				g.SetCellRGB(r.IntN(rows), r.IntN(columns), r.Float64(), r.Float64(), r.Float64())
			}
		}(rand.New(rand.NewPCG(seed, uint64(w))))
	}
	wg.Wait()
}

func upscale(src *image.RGBA, factor int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
