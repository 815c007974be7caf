// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"errors"
	"log/slog"
	"math"

	"github.com/gogpu/svgfilter"
)

// GaussianBlur is the feGaussianBlur primitive.
type GaussianBlur struct {
	Base

	// StdDeviationX and StdDeviationY are in primitive units.
	StdDeviationX, StdDeviationY float64
}

func (*GaussianBlur) ElementName() string { return "feGaussianBlur" }

func (*GaussianBlur) AffectedByColorInterpolation() bool { return true }

func (g *GaussianBlur) parse(attrs Attributes) error {
	return parseAttrs(&g.Base, attrs, func(a Attribute) error {
		if a.Name != "stdDeviation" {
			return nil
		}
		v, err := parseNumberList(a.Value)
		if err != nil {
			return parseError(a.Name, a.Value, err)
		}
		switch len(v) {
		case 1:
			v = append(v, v[0])
		case 2:
		default:
			return parseErrorf(a.Name, a.Value, "expected one or two numbers, got %d", len(v))
		}
		if v[0] < 0 || v[1] < 0 {
			return parseError(a.Name, a.Value, errors.New("negative deviation"))
		}
		g.StdDeviationX, g.StdDeviationY = v[0], v[1]
		return nil
	})
}

func (g *GaussianBlur) render(ctx *Context) (Result, error) {
	in, err := ctx.Resolve(g.In, space(g, ctx))
	if err != nil {
		return Result{}, err
	}
	bounds := g.BoundsFor(ctx).AddInput(in).Rect()

	sx, sy := ctx.scaleLengths(g.StdDeviationX, g.StdDeviationY)
	m := ctx.Transform()
	sx *= math.Hypot(m.A, m.D)
	sy *= math.Hypot(m.B, m.E)

	svgfilter.Logger().Debug("feGaussianBlur",
		slog.Float64("device_sx", sx),
		slog.Float64("device_sy", sy),
		slog.Any("bounds", bounds),
	)

	// A zero deviation in both directions disables the effect: the result
	// is transparent black.
	if sx <= 0 && sy <= 0 {
		out, err := ctx.transparent(in.Surface.SurfaceType())
		if err != nil {
			return Result{}, err
		}
		return g.NewResult(Output{Surface: out, Bounds: bounds}), nil
	}

	out, err := in.Surface.GaussianBlur(bounds, sx, sy)
	if err != nil {
		return Result{}, err
	}
	return g.NewResult(Output{Surface: out, Bounds: bounds}), nil
}
