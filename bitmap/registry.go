// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bitmap

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownFormat is returned when no encoder is registered for a
// format name or file extension.
var ErrUnknownFormat = errors.New("bitmap: unknown format")

// Encoder writes img to w in some image format.
type Encoder func(w io.Writer, img image.Image) error

// Format describes a registered image format.
type Format struct {
	// Name is the unique identifier for this format (e.g. "png").
	Name string

	// Extensions are the file extensions claimed by this format,
	// including the leading dot (e.g. ".tif", ".tiff").
	Extensions []string

	// Encode writes an image in this format.
	Encode Encoder
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry manages registered image encoders.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]*Format
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and Save.
func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]*Format),
	}
}

// Register adds a format to the global registry.
// Registering a name that already exists replaces the previous entry.
// Formats without a name or an encoder are ignored.
func Register(f Format) {
	globalRegistry.Register(f)
}

// Lookup returns a registered format by name from the global registry.
func Lookup(name string) (Format, bool) {
	return globalRegistry.Lookup(name)
}

// ForPath returns the format of the global registry claiming path's extension.
func ForPath(path string) (Format, error) {
	return globalRegistry.ForPath(path)
}

// Formats returns the names of all formats in the global registry, sorted.
func Formats() []string {
	return globalRegistry.Formats()
}

// Encode writes img to w using the named format of the global registry.
func Encode(w io.Writer, img image.Image, format string) error {
	return globalRegistry.Encode(w, img, format)
}

// Save writes img to path, choosing the encoder from the path's extension.
func Save(path string, img image.Image) error {
	return globalRegistry.Save(path, img)
}

// Register adds a format to this registry.
// Formats without a name or an encoder are ignored.
func (r *Registry) Register(f Format) {
	if f.Name == "" || f.Encode == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.formats == nil {
		r.formats = make(map[string]*Format)
	}

	exts := make([]string, len(f.Extensions))
	for i, e := range f.Extensions {
		exts[i] = strings.ToLower(e)
	}
	f.Extensions = exts
	r.formats[strings.ToLower(f.Name)] = &f
}

// Unregister removes a format from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.formats, strings.ToLower(name))
}

// Lookup returns a registered format by name.
func (r *Registry) Lookup(name string) (Format, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formats[strings.ToLower(name)]
	if !ok {
		return Format{}, false
	}
	return *f, true
}

// ForPath returns the format claiming path's file extension.
func (r *Registry) ForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return Format{}, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.sortedNames() {
		f := r.formats[name]
		for _, e := range f.Extensions {
			if e == ext {
				return *f, nil
			}
		}
	}
	return Format{}, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

// Formats returns the names of all registered formats, sorted.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames()
}

// Encode writes img to w using the named format.
func (r *Registry) Encode(w io.Writer, img image.Image, format string) error {
	f, ok := r.Lookup(format)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := f.Encode(w, img); err != nil {
		return fmt.Errorf("bitmap: encode %s: %w", f.Name, err)
	}
	return nil
}

// Save writes img to path, choosing the encoder from the path's extension.
// A partially written file is removed if encoding fails.
func (r *Registry) Save(path string, img image.Image) (err error) {
	f, err := r.ForPath(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("bitmap: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("bitmap: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := f.Encode(out, img); err != nil {
		return fmt.Errorf("bitmap: encode %s: %w", f.Name, err)
	}
	return nil
}

// sortedNames returns format names in lexical order.
// Must be called with lock held.
func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
