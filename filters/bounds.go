// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"image"
	"math"

	"github.com/gogpu/svgfilter"
)

// BoundsBuilder computes the device pixel rectangle a primitive renders
// into.
//
// The starting rectangle is the union of the bounds of the inputs that
// were added, or the whole filter region when a standard input was added
// or no input at all. Each subregion attribute that is present then
// replaces the matching edge or size, and the result is clipped to the
// filter region.
type BoundsBuilder struct {
	ctx *Context

	x, y, width, height *Length

	inputs   image.Rectangle
	hasInput bool
	standard bool
}

// AddInput includes the bounds of in.
func (b *BoundsBuilder) AddInput(in FilterInput) *BoundsBuilder {
	if in.Standard {
		b.standard = true
		return b
	}
	if b.hasInput {
		b.inputs = b.inputs.Union(in.Bounds)
	} else {
		b.inputs = in.Bounds
		b.hasInput = true
	}
	return b
}

// Rect returns the bounds in device pixels.
func (b *BoundsBuilder) Rect() image.Rectangle {
	region := b.ctx.Region()
	r := region
	if b.hasInput && !b.standard {
		r = b.inputs
	}

	if b.x != nil || b.y != nil || b.width != nil || b.height != nil {
		r = b.applySubregion(r)
	}
	return r.Intersect(region)
}

// applySubregion replaces the edges of r named by the subregion
// attributes. The attributes are in user space, so r takes a round trip
// through the inverse transform.
func (b *BoundsBuilder) applySubregion(r image.Rectangle) image.Rectangle {
	m := b.ctx.Transform()
	inv, ok := m.Invert()
	if !ok {
		return r
	}
	u := inv.TransformRect(svgfilter.RectFromImage(r))

	p := b.ctx.params
	x, y := u.X0, u.Y0
	w, h := u.Width(), u.Height()

	if p.PrimitiveUnits == ObjectBoundingBox {
		bb := p.BoundingBox
		if b.x != nil {
			x = bb.X0 + b.x.fraction()*bb.Width()
		}
		if b.y != nil {
			y = bb.Y0 + b.y.fraction()*bb.Height()
		}
		if b.width != nil {
			w = b.width.fraction() * bb.Width()
		}
		if b.height != nil {
			h = b.height.fraction() * bb.Height()
		}
	} else {
		vp := p.Viewport
		if b.x != nil {
			x = b.x.user(vp.Width())
		}
		if b.y != nil {
			y = b.y.user(vp.Height())
		}
		if b.width != nil {
			w = b.width.user(vp.Width())
		}
		if b.height != nil {
			h = b.height.user(vp.Height())
		}
	}

	return toPixels(m.TransformRect(svgfilter.XYWH(x, y, w, h)))
}

// toPixels rounds r outwards to whole pixels, ignoring floating point noise
// within 1e-6 of a pixel edge.
func toPixels(r svgfilter.Rect) image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	const eps = 1e-6
	return image.Rect(
		int(math.Floor(r.X0+eps)),
		int(math.Floor(r.Y0+eps)),
		int(math.Ceil(r.X1-eps)),
		int(math.Ceil(r.Y1-eps)),
	)
}
