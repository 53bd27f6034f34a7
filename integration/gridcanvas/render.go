// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the created texture cannot be
	// drawn by the draw context.
	ErrInvalidDrawContext = errors.New("gridcanvas: texture is not a gpucontext.Texture")

	// ErrInvalidRenderer is returned when the draw context has no texture creator.
	ErrInvalidRenderer = errors.New("gridcanvas: draw context has no texture creator")
)

// RenderTo draws the grid at (0, 0).
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToPosition(dc, 0, 0)
}

// RenderToPosition draws the grid with its top-left corner at (x, y).
// Hosts translating mouse events must subtract the same offset before
// calling Grid.CellAt.
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}

	tex, err := c.Flush()
	if err != nil {
		return err
	}

	// If texture is pending (placeholder), create real GPU texture now
	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		var realTex any
		realTex, err = creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("gridcanvas: NewTextureFromRGBA failed: %w", err)
		}

		c.texture = realTex
		tex = realTex

		// The replacement write has completed, so the old texture is no
		// longer referenced by in-flight GPU work.
		destroy(c.oldTexture)
		c.oldTexture = nil
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, x, y)
}
