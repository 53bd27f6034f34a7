package squaregrid

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/squaregrid/bitmap"
)

// Snapshot returns a copy of the surface as it currently appears, sized
// to the surface's pixel dimensions. It waits for the render context, so
// draws queued before the call are included.
func (g *Grid) Snapshot() (*image.RGBA, error) {
	var img *image.RGBA
	if err := g.dispatcher.Call(func() { img = g.surface.Snapshot() }); err != nil {
		g.log().Warn("squaregrid: snapshot on stopped render context", "error", err)
		return nil, fmt.Errorf("squaregrid: snapshot: %w", err)
	}
	if img == nil {
		return nil, ErrClosed
	}
	return img, nil
}

// EncodeBitmap writes a snapshot of the surface to w in the named
// format (see package bitmap). Encoding failures do not affect the grid.
func (g *Grid) EncodeBitmap(w io.Writer, format string) error {
	img, err := g.Snapshot()
	if err != nil {
		return err
	}
	return bitmap.Encode(w, img, format)
}

// SaveBitmap writes a snapshot of the surface to path. The format is
// chosen from the file extension (.png, .bmp, .tif, .tiff).
func (g *Grid) SaveBitmap(path string) error {
	img, err := g.Snapshot()
	if err != nil {
		return err
	}
	return bitmap.Save(path, img)
}
