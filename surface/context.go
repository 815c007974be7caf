// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/svgfilter/internal/blend"
)

// Context paints onto an ImageSurface.
//
// It keeps the small amount of state the filter engine needs: a clip
// rectangle, a source (a surface at an integer offset or a solid color)
// and an operator.
type Context struct {
	target *ImageSurface
	clip   image.Rectangle
	op     Operator

	srcSurface *ImageSurface
	srcOrigin  image.Point
	srcColor   *image.Uniform
}

// NewContext creates a drawing context for target with no clip, no source
// and OperatorOver.
func NewContext(target *ImageSurface) *Context {
	return &Context{
		target: target,
		clip:   target.Bounds(),
		op:     OperatorOver,
	}
}

// Target returns the surface the context paints onto.
func (c *Context) Target() *ImageSurface {
	return c.target
}

// Clip restricts subsequent painting to r, intersected with the current
// clip.
func (c *Context) Clip(r image.Rectangle) {
	c.clip = c.clip.Intersect(r)
}

// SetOperator sets the compositing operator used by Paint.
func (c *Context) SetOperator(op Operator) {
	c.op = op
}

// SetSourceSurface uses src as the paint source, with its origin placed at
// (x, y) on the target. Offsets are rounded to whole pixels.
func (c *Context) SetSourceSurface(src *ImageSurface, x, y float64) {
	c.srcSurface = src
	c.srcOrigin = image.Pt(int(math.Round(x)), int(math.Round(y)))
	c.srcColor = nil
}

// SetSourceColor uses a solid color as the paint source.
func (c *Context) SetSourceColor(col color.Color) {
	r, g, b, a := col.RGBA()
	c.srcColor = image.NewUniform(color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)})
	c.srcSurface = nil
}

// Paint composites the source onto the target inside the clip.
//
// Painting without a source, or from a source in an error state, puts the
// target into an error state.
func (c *Context) Paint() {
	t := c.target
	if t.err != nil {
		return
	}

	var src image.Image
	var sp image.Point
	switch {
	case c.srcColor != nil:
		src = c.srcColor
	case c.srcSurface != nil:
		if c.srcSurface.err != nil {
			t.setError(ErrInvalidSource)
			return
		}
		src = c.srcSurface.img
		sp = c.srcOrigin
	default:
		t.setError(ErrNoSource)
		return
	}

	r := c.clip
	if r.Empty() {
		return
	}

	switch c.op {
	case OperatorOver:
		draw.Draw(t.img, r, src, r.Min.Sub(sp), draw.Over)
	case OperatorSource:
		// Source is unbounded: the clip area outside the source is cleared.
		clearRect(t.img, r)
		draw.Draw(t.img, r, src, r.Min.Sub(sp), draw.Src)
	case OperatorClear:
		clearRect(t.img, r)
	default:
		c.blendRows(r, src, sp)
	}
}

// blendRows composites src onto the target with a blend mode, one row at a
// time. Pixels outside the source are transparent and leave the target
// unchanged.
func (c *Context) blendRows(r image.Rectangle, src image.Image, sp image.Point) {
	f := blend.For(c.op.mode())
	dst := c.target.img

	switch s := src.(type) {
	case *image.RGBA:
		r = r.Intersect(s.Rect.Add(sp))
		for y := r.Min.Y; y < r.Max.Y; y++ {
			d := dst.Pix[dst.PixOffset(r.Min.X, y):dst.PixOffset(r.Max.X, y)]
			p := s.Pix[s.PixOffset(r.Min.X-sp.X, y-sp.Y):]
			blend.Row(d, p, f)
		}
	case *image.Uniform:
		col := s.C.(color.RGBA)
		row := make([]byte, r.Dx()*4)
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = col.R, col.G, col.B, col.A
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			d := dst.Pix[dst.PixOffset(r.Min.X, y):dst.PixOffset(r.Max.X, y)]
			blend.Row(d, row, f)
		}
	}
}

func clearRect(img *image.RGBA, r image.Rectangle) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		clear(img.Pix[img.PixOffset(r.Min.X, y):img.PixOffset(r.Max.X, y)])
	}
}
