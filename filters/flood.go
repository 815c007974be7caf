// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"image/color"
	"math"

	colorspace "github.com/gogpu/svgfilter/internal/color"
	"github.com/gogpu/svgfilter/surface"
)

// Flood is the feFlood primitive: it fills its subregion with a color.
type Flood struct {
	Base

	// Color is the un-premultiplied sRGB flood-color; black by default.
	Color color.NRGBA

	// Opacity is flood-opacity clamped to [0, 1]; 1 by default.
	Opacity float64
}

func newFlood() *Flood {
	return &Flood{Color: color.NRGBA{A: 255}, Opacity: 1}
}

func (*Flood) ElementName() string { return "feFlood" }

func (*Flood) AffectedByColorInterpolation() bool { return true }

func (f *Flood) parse(attrs Attributes) error {
	return parseAttrs(&f.Base, attrs, func(a Attribute) error {
		switch a.Name {
		case "flood-color":
			c, err := parseColor(a.Name, a.Value)
			if err != nil {
				return err
			}
			f.Color = c
		case "flood-opacity":
			v, err := parseNumber(a.Value)
			if err != nil {
				return parseError(a.Name, a.Value, err)
			}
			f.Opacity = min(max(v, 0), 1)
		}
		return nil
	})
}

// paintColor returns the flood color with opacity applied, encoded for
// the working space.
func (f *Flood) paintColor(cs ColorInterpolation) color.NRGBA {
	c := f.Color
	c.A = uint8(math.Round(float64(c.A) * f.Opacity))
	if cs == ColorInterpolationLinearRGB {
		c.R = colorspace.LinearizeByte(c.R)
		c.G = colorspace.LinearizeByte(c.G)
		c.B = colorspace.LinearizeByte(c.B)
	}
	return c
}

func (f *Flood) render(ctx *Context) (Result, error) {
	cs := space(f, ctx)
	bounds := f.BoundsFor(ctx).Rect()

	work, err := ctx.newSurface()
	if err != nil {
		return Result{}, err
	}
	cr := surface.NewContext(work)
	cr.Clip(bounds)
	cr.SetSourceColor(f.paintColor(cs))
	cr.SetOperator(surface.OperatorSource)
	cr.Paint()

	out, err := surface.Wrap(work, cs.surfaceType())
	if err != nil {
		return Result{}, err
	}
	return f.NewResult(Output{Surface: out, Bounds: bounds}), nil
}
