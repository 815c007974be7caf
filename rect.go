// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svgfilter

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle with float64 coordinates. X0,Y0 is the
// top-left corner, X1,Y1 the bottom-right. A rectangle with X1 <= X0 or
// Y1 <= Y0 is empty.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// XYWH builds a Rect from an origin and a size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// RectFromImage converts an integer rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{X0: float64(r.Min.X), Y0: float64(r.Min.Y), X1: float64(r.Max.X), Y1: float64(r.Max.Y)}
}

// Width returns the width of r.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the height of r.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// IsEmpty reports whether r contains no area.
func (r Rect) IsEmpty() bool {
	return !(r.X1 > r.X0 && r.Y1 > r.Y0)
}

// Union returns the smallest rectangle containing both r and s.
// Empty rectangles are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return Rect{
		X0: math.Min(r.X0, s.X0),
		Y0: math.Min(r.Y0, s.Y0),
		X1: math.Max(r.X1, s.X1),
		Y1: math.Max(r.Y1, s.Y1),
	}
}

// Intersect returns the largest rectangle contained in both r and s.
// If they do not overlap the zero Rect is returned.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		X0: math.Max(r.X0, s.X0),
		Y0: math.Max(r.Y0, s.Y0),
		X1: math.Min(r.X1, s.X1),
		Y1: math.Min(r.Y1, s.Y1),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// ToImageRect rounds r outwards to whole pixels.
func (r Rect) ToImageRect() image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.X0)),
		int(math.Floor(r.Y0)),
		int(math.Ceil(r.X1)),
		int(math.Ceil(r.Y1)),
	)
}
