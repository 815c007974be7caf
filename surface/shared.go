// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	colorspace "github.com/gogpu/svgfilter/internal/color"
	"github.com/gogpu/svgfilter/internal/filter"
)

// Shared is an immutable surface tagged with the encoding of its color
// channels.
//
// A Shared may be referenced by any number of filter outputs. Nothing
// modifies its pixels after Wrap; operations that change pixels return a
// new surface.
type Shared struct {
	surf *ImageSurface
	typ  Type
}

// Wrap takes ownership of s and tags it with t. The caller must not draw on
// s afterwards. It fails with ErrBadIntermediateSurfaceStatus when s is in an
// error state.
func Wrap(s *ImageSurface, t Type) (*Shared, error) {
	if err := s.Status(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadIntermediateSurfaceStatus, err)
	}
	return &Shared{surf: s, typ: t}, nil
}

// Width returns the surface width.
func (s *Shared) Width() int {
	return s.surf.Width()
}

// Height returns the surface height.
func (s *Shared) Height() int {
	return s.surf.Height()
}

// Bounds returns the surface rectangle.
func (s *Shared) Bounds() image.Rectangle {
	return s.surf.Bounds()
}

// SurfaceType returns the encoding of the color channels.
func (s *Shared) SurfaceType() Type {
	return s.typ
}

// IsAlphaOnly reports whether only the alpha channel is meaningful.
func (s *Shared) IsAlphaOnly() bool {
	return s.typ == AlphaOnly
}

// RGBAAt returns the premultiplied pixel at (x, y).
func (s *Shared) RGBAAt(x, y int) color.RGBA {
	return s.surf.RGBAAt(x, y)
}

// Image returns a read-only view of the pixels, suitable for encoders.
func (s *Shared) Image() image.Image {
	return readOnly{s.surf.img}
}

// SetAsPaintSource makes s the source of the next Paint on cr, with its
// origin at (x, y).
func (s *Shared) SetAsPaintSource(cr *Context, x, y float64) {
	cr.SetSourceSurface(s.surf, x, y)
}

// CopyRegion returns a new surface of the same size holding the pixels of s
// inside bounds and transparent black elsewhere.
func (s *Shared) CopyRegion(bounds image.Rectangle) (*ImageSurface, error) {
	out, err := NewImageSurface(s.Width(), s.Height())
	if err != nil {
		return nil, err
	}
	r := bounds.Intersect(out.img.Rect)
	draw.Draw(out.img, r, s.surf.img, r.Min, draw.Src)
	return out, nil
}

// ToLinearRGB returns s converted to linear RGB. It returns s itself when s
// is already linear or alpha-only.
func (s *Shared) ToLinearRGB() (*Shared, error) {
	if s.typ != SRGB {
		return s, nil
	}
	return s.mapChannels(colorspace.LinearizeTable(), LinearRGB)
}

// ToSRGB returns s converted to sRGB. It returns s itself when s is already
// sRGB or alpha-only.
func (s *Shared) ToSRGB() (*Shared, error) {
	if s.typ != LinearRGB {
		return s, nil
	}
	return s.mapChannels(colorspace.UnlinearizeTable(), SRGB)
}

// mapChannels applies table to the un-premultiplied color channels of every
// pixel and re-premultiplies the result.
func (s *Shared) mapChannels(table [256]uint8, t Type) (*Shared, error) {
	out, err := NewImageSurface(s.Width(), s.Height())
	if err != nil {
		return nil, err
	}
	src, dst := s.surf.img.Pix, out.img.Pix
	for i := 0; i < len(src); i += 4 {
		a := src[i+3]
		if a == 0 {
			continue
		}
		dst[i+0] = premultiply(table[unpremultiply(src[i+0], a)], a)
		dst[i+1] = premultiply(table[unpremultiply(src[i+1], a)], a)
		dst[i+2] = premultiply(table[unpremultiply(src[i+2], a)], a)
		dst[i+3] = a
	}
	return Wrap(out, t)
}

// ExtractAlpha returns an alpha-only copy of s restricted to bounds.
func (s *Shared) ExtractAlpha(bounds image.Rectangle) (*Shared, error) {
	out, err := NewImageSurface(s.Width(), s.Height())
	if err != nil {
		return nil, err
	}
	filter.ExtractAlpha(out.img, s.surf.img, bounds)
	return Wrap(out, AlphaOnly)
}

// GaussianBlur returns s blurred with deviations sx and sy inside bounds.
// Pixels outside bounds are treated as transparent black.
func (s *Shared) GaussianBlur(bounds image.Rectangle, sx, sy float64) (*Shared, error) {
	out, err := NewImageSurface(s.Width(), s.Height())
	if err != nil {
		return nil, err
	}
	filter.Blur(out.img, s.surf.img, bounds, sx, sy)
	return Wrap(out, s.typ)
}

// ColorMatrix returns s transformed by the 4x5 row-major matrix m inside
// bounds, tagged with t.
func (s *Shared) ColorMatrix(bounds image.Rectangle, m [20]float64, t Type) (*Shared, error) {
	out, err := NewImageSurface(s.Width(), s.Height())
	if err != nil {
		return nil, err
	}
	cm := filter.ColorMatrix(m)
	filter.ApplyColorMatrix(out.img, s.surf.img, bounds, &cm)
	return Wrap(out, t)
}

// Offset returns s translated by (dx, dy) pixels and limited to bounds.
func (s *Shared) Offset(bounds image.Rectangle, dx, dy int) (*Shared, error) {
	out, err := NewImageSurface(s.Width(), s.Height())
	if err != nil {
		return nil, err
	}
	filter.Offset(out.img, s.surf.img, bounds, dx, dy)
	return Wrap(out, s.typ)
}

func unpremultiply(c, a uint8) uint8 {
	if a == 255 {
		return c
	}
	return uint8(min((uint32(c)*255+uint32(a)/2)/uint32(a), 255))
}

func premultiply(c, a uint8) uint8 {
	if a == 255 {
		return c
	}
	t := uint32(c)*uint32(a) + 128
	return uint8((t + t>>8) >> 8)
}

// readOnly hides the concrete *image.RGBA so callers cannot type-assert
// their way to the pixel buffer.
type readOnly struct {
	img *image.RGBA
}

func (r readOnly) ColorModel() color.Model { return r.img.ColorModel() }
func (r readOnly) Bounds() image.Rectangle { return r.img.Rect }
func (r readOnly) At(x, y int) color.Color { return r.img.At(x, y) }

// RGBAAt returns the pixel at (x, y) without boxing.
func (r readOnly) RGBAAt(x, y int) color.RGBA { return r.img.RGBAAt(x, y) }

// Opaque reports whether every pixel is fully opaque.
func (r readOnly) Opaque() bool { return r.img.Opaque() }
