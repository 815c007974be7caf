// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import "math"

// Offset is the feOffset primitive: it translates its input.
type Offset struct {
	Base

	// Dx and Dy are in primitive units.
	Dx, Dy float64
}

func (*Offset) ElementName() string { return "feOffset" }

// AffectedByColorInterpolation is false: moving pixels is the same in
// every color space.
func (*Offset) AffectedByColorInterpolation() bool { return false }

func (o *Offset) parse(attrs Attributes) error {
	return parseAttrs(&o.Base, attrs, func(a Attribute) error {
		var dst *float64
		switch a.Name {
		case "dx":
			dst = &o.Dx
		case "dy":
			dst = &o.Dy
		default:
			return nil
		}
		v, err := parseNumber(a.Value)
		if err != nil {
			return parseError(a.Name, a.Value, err)
		}
		*dst = v
		return nil
	})
}

func (o *Offset) render(ctx *Context) (Result, error) {
	in, err := ctx.Resolve(o.In, space(o, ctx))
	if err != nil {
		return Result{}, err
	}
	bounds := o.BoundsFor(ctx).AddInput(in).Rect()

	dx, dy := ctx.scaleLengths(o.Dx, o.Dy)
	dx, dy = ctx.Transform().TransformDistance(dx, dy)

	out, err := in.Surface.Offset(bounds, int(math.Round(dx)), int(math.Round(dy)))
	if err != nil {
		return Result{}, err
	}
	return o.NewResult(Output{Surface: out, Bounds: bounds}), nil
}
