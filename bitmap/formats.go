// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bitmap

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Built-in format names.
const (
	PNG  = "png"
	BMP  = "bmp"
	TIFF = "tiff"
)

// init registers the built-in encoders.
func init() {
	Register(Format{Name: PNG, Extensions: []string{".png"}, Encode: png.Encode})
	Register(Format{Name: BMP, Extensions: []string{".bmp"}, Encode: bmp.Encode})
	Register(Format{Name: TIFF, Extensions: []string{".tif", ".tiff"}, Encode: encodeTIFF})
}

// encodeTIFF writes a deflate-compressed TIFF with horizontal prediction.
func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}
