// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines rendering related features that renderers must implement.
package gfx

// Releasable defines any memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	// Calling it on an already released structure does nothing.
	Release()
}

// WindowSizer reports the current size of the window a surface
// belongs to, in pixels.
type WindowSizer interface {

	// DrawableSize returns the drawable width and height.
	DrawableSize() (width, height uint32)
}

// WindowSizeFunc adapts a function to the WindowSizer interface.
type WindowSizeFunc func() (width, height uint32)

// DrawableSize calls f.
func (f WindowSizeFunc) DrawableSize() (width, height uint32) {
	return f()
}

// FixedSize is a WindowSizer that always reports the same size.
type FixedSize struct {
	Width, Height uint32
}

// DrawableSize implements WindowSizer.
func (s FixedSize) DrawableSize() (width, height uint32) {
	return s.Width, s.Height
}
