// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package bitmap encodes grid rasters into standard image formats.
//
// Encoders are kept in a registry keyed by format name. Each format also
// lists the file extensions it claims, so Save can pick an encoder from
// the output path:
//
//	img, _ := grid.Snapshot()
//	if err := bitmap.Save("board.bmp", img); err != nil {
//	    log.Fatal(err)
//	}
//
// The built-in formats are png, bmp and tiff. Third-party encoders can be
// added with Register:
//
//	bitmap.Register(bitmap.Format{
//	    Name:       "qoi",
//	    Extensions: []string{".qoi"},
//	    Encode:     qoi.Encode,
//	})
package bitmap
