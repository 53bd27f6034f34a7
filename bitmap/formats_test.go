// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 6, 4))
	for y := range 4 {
		for x := range 6 {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 40), uint8(y * 60), 90, 255})
		}
	}
	return img
}

func TestBuiltinFormats(t *testing.T) {
	got := Formats()
	for _, name := range []string{BMP, PNG, TIFF} {
		if !slices.Contains(got, name) {
			t.Errorf("Formats() = %v, missing %q", got, name)
		}
	}

	tests := map[string]string{
		"a.png":      PNG,
		"a.PNG":      PNG,
		"a.bmp":      BMP,
		"a.tif":      TIFF,
		"dir/b.tiff": TIFF,
	}
	for path, want := range tests {
		f, err := ForPath(path)
		if err != nil {
			t.Errorf("ForPath(%q) = %v", path, err)
			continue
		}
		if f.Name != want {
			t.Errorf("ForPath(%q) = %q, want %q", path, f.Name, want)
		}
	}

	if _, ok := Lookup(PNG); !ok {
		t.Error("Lookup(png) = false")
	}
}

func TestBuiltinEncodersRoundTrip(t *testing.T) {
	decoders := map[string]func(io.Reader) (image.Image, error){
		PNG:  png.Decode,
		BMP:  bmp.Decode,
		TIFF: tiff.Decode,
	}

	src := testImage()
	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, name); err != nil {
				t.Fatalf("Encode(%s) = %v", name, err)
			}
			got, err := decode(&buf)
			if err != nil {
				t.Fatalf("decode %s: %v", name, err)
			}
			assertSameImage(t, got, src)
		})
	}
}

func TestSave(t *testing.T) {
	src := testImage()
	path := filepath.Join(t.TempDir(), "grid.png")

	if err := Save(path, src); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	assertSameImage(t, got, src)
}

func assertSameImage(t *testing.T, got image.Image, want *image.RGBA) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), want.Bounds())
	}
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.RGBAModel.Convert(got.At(x, y)).(color.RGBA)
			if w := want.RGBAAt(x, y); g != w {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, g, w)
			}
		}
	}
}
