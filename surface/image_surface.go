// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ImageSurface is a CPU surface backed by a premultiplied *image.RGBA whose
// origin is (0, 0).
//
// Like a cairo surface it carries a sticky status: once an operation fails,
// Status returns the error and later drawing is ignored.
type ImageSurface struct {
	img *image.RGBA
	err error
}

// NewImageSurface creates a transparent surface of the given size.
// It fails with ErrIntermediateSurfaceCreation for non-positive sizes or
// sizes above MaxSize.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	if width <= 0 || height <= 0 || width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrIntermediateSurfaceCreation, width, height)
	}
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// NewImageSurfaceFromImage creates a surface holding a premultiplied copy of
// img, translated so that img.Bounds().Min lands on the origin.
func NewImageSurfaceFromImage(img image.Image) (*ImageSurface, error) {
	b := img.Bounds()
	s, err := NewImageSurface(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(s.img, s.img.Rect, img, b.Min, draw.Src)
	return s, nil
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.img.Rect.Dy()
}

// Bounds returns the surface rectangle.
func (s *ImageSurface) Bounds() image.Rectangle {
	return s.img.Rect
}

// Status returns the first error recorded on the surface, or nil.
func (s *ImageSurface) Status() error {
	return s.err
}

// Clear fills the entire surface with c.
func (s *ImageSurface) Clear(c color.Color) {
	if s.err != nil {
		return
	}
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// RGBAAt returns the premultiplied pixel at (x, y).
func (s *ImageSurface) RGBAAt(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// SetRGBA sets the premultiplied pixel at (x, y).
func (s *ImageSurface) SetRGBA(x, y int, c color.RGBA) {
	if s.err != nil {
		return
	}
	s.img.SetRGBA(x, y, c)
}

// Snapshot returns a copy of the surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

// setError records err unless an earlier error is already recorded.
func (s *ImageSurface) setError(err error) {
	if s.err == nil {
		s.err = err
	}
}
