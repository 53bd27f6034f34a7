// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/squaregrid"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("gridcanvas: canvas is closed")

	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("gridcanvas: nil grid")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas uploads a grid's raster to a GPU texture.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	grid       *squaregrid.Grid
	texture    any // Lazy-created texture (*gogpu.Texture or *pendingTexture)
	oldTexture any // Previous texture awaiting deferred destruction

	// generation is the grid generation last uploaded.
	generation uint64

	dirty  bool // Needs GPU upload
	width  int
	height int
	closed bool
}

// New creates a Canvas presenting grid.
// Returns ErrNilGrid if grid is nil.
func New(grid *squaregrid.Grid) (*Canvas, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	w, h := grid.Size()
	return &Canvas{
		grid:       grid,
		generation: grid.Generation(),
		width:      w,
		height:     h,
		dirty:      true, // Mark dirty so first Flush creates texture
	}, nil
}

// Grid returns the presented grid, or nil if the canvas is closed.
func (c *Canvas) Grid() *squaregrid.Grid {
	if c.closed {
		return nil
	}
	return c.grid
}

// Width returns the width of the last uploaded raster in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the last uploaded raster in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// MarkDirty forces an upload on the next Flush.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty reports whether the next Flush uploads: either MarkDirty was
// called or the grid has drawn since the last upload.
func (c *Canvas) IsDirty() bool {
	return c.dirty || c.grid.Generation() != c.generation
}

// Flush uploads the grid's raster to the GPU texture if dirty and returns
// the texture.
//
// The texture is created lazily on first Flush; until RenderTo has a
// texture creator available, a pending placeholder holds the pixels.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if !c.IsDirty() && c.texture != nil {
		return c.texture, nil
	}

	// Read the generation before the snapshot so a draw racing with the
	// snapshot leaves the canvas dirty.
	gen := c.grid.Generation()
	img, err := c.grid.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("gridcanvas: %w", err)
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	// If size changed, keep the old texture alive until the GPU is idle;
	// RenderTo destroys it after the replacement is written.
	if (w != c.width || h != c.height) && c.texture != nil {
		if _, pending := c.texture.(*pendingTexture); !pending {
			c.deferDestroy(c.texture)
		}
		c.texture = nil
	}
	c.width, c.height = w, h

	switch tex := c.texture.(type) {
	case nil, *pendingTexture:
		c.texture = &pendingTexture{width: w, height: h, data: img.Pix}
	case gpucontext.TextureUpdater:
		if err := tex.UpdateData(img.Pix); err != nil {
			return nil, fmt.Errorf("gridcanvas: texture update failed: %w", err)
		}
	}

	c.generation = gen
	c.dirty = false
	return c.texture, nil
}

// Texture returns the current texture without flushing.
// Returns nil if no texture has been created yet.
func (c *Canvas) Texture() any {
	return c.texture
}

// Close releases the textures. The grid is not closed.
// Close is idempotent - multiple calls are safe.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	destroy(c.oldTexture)
	c.oldTexture = nil
	destroy(c.texture)
	c.texture = nil

	c.grid = nil
	return nil
}

func (c *Canvas) deferDestroy(tex any) {
	// Destroy any previously deferred texture first
	destroy(c.oldTexture)
	c.oldTexture = tex
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

// pendingTexture is a placeholder for texture creation.
// It holds the pixels until RenderTo has a texture creator.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
