// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"errors"
	"strings"

	"github.com/gogpu/svgfilter/internal/filter"
)

// ColorMatrixType is the "type" attribute of feColorMatrix.
type ColorMatrixType uint8

const (
	ColorMatrixTypeMatrix ColorMatrixType = iota
	ColorMatrixTypeSaturate
	ColorMatrixTypeHueRotate
	ColorMatrixTypeLuminanceToAlpha
)

// ColorMatrix is the feColorMatrix primitive.
type ColorMatrix struct {
	Base

	Type ColorMatrixType

	// Values is the raw "values" list; nil when absent.
	Values []float64

	// Matrix is the 4x5 row-major matrix built from Type and Values.
	Matrix [20]float64

	rawValues string
}

func (*ColorMatrix) ElementName() string { return "feColorMatrix" }

func (*ColorMatrix) AffectedByColorInterpolation() bool { return true }

func (c *ColorMatrix) parse(attrs Attributes) error {
	c.Matrix = filter.IdentityMatrix()
	err := parseAttrs(&c.Base, attrs, func(a Attribute) error {
		switch a.Name {
		case "type":
			t, err := parseColorMatrixType(a.Name, a.Value)
			if err != nil {
				return err
			}
			c.Type = t
		case "values":
			v, err := parseNumberList(a.Value)
			if err != nil {
				return parseError(a.Name, a.Value, err)
			}
			c.Values = v
			c.rawValues = a.Value
		}
		return nil
	})
	if err != nil {
		return err
	}
	return c.buildMatrix()
}

// buildMatrix derives Matrix once both attributes are known, since their
// order in the element is arbitrary.
func (c *ColorMatrix) buildMatrix() error {
	v := c.Values
	switch c.Type {
	case ColorMatrixTypeMatrix:
		if v == nil {
			c.Matrix = filter.IdentityMatrix()
			return nil
		}
		if len(v) != 20 {
			return parseErrorf("values", c.rawValues, "matrix takes 20 values, got %d", len(v))
		}
		c.Matrix = [20]float64(v)
	case ColorMatrixTypeSaturate:
		s := 1.0
		if v != nil {
			if len(v) != 1 {
				return parseErrorf("values", c.rawValues, "saturate takes one value, got %d", len(v))
			}
			if v[0] < 0 {
				return parseError("values", c.rawValues, errors.New("negative saturation"))
			}
			s = v[0]
		}
		c.Matrix = filter.SaturateMatrix(s)
	case ColorMatrixTypeHueRotate:
		deg := 0.0
		if v != nil {
			if len(v) != 1 {
				return parseErrorf("values", c.rawValues, "hueRotate takes one value, got %d", len(v))
			}
			deg = v[0]
		}
		c.Matrix = filter.HueRotateMatrix(deg)
	case ColorMatrixTypeLuminanceToAlpha:
		c.Matrix = filter.LuminanceToAlphaMatrix()
	}
	return nil
}

func parseColorMatrixType(attr, raw string) (ColorMatrixType, error) {
	switch strings.TrimSpace(raw) {
	case "matrix":
		return ColorMatrixTypeMatrix, nil
	case "saturate":
		return ColorMatrixTypeSaturate, nil
	case "hueRotate":
		return ColorMatrixTypeHueRotate, nil
	case "luminanceToAlpha":
		return ColorMatrixTypeLuminanceToAlpha, nil
	default:
		return ColorMatrixTypeMatrix, parseError(attr, raw, errors.New("unknown type"))
	}
}

func (c *ColorMatrix) render(ctx *Context) (Result, error) {
	cs := space(c, ctx)
	in, err := ctx.Resolve(c.In, cs)
	if err != nil {
		return Result{}, err
	}
	bounds := c.BoundsFor(ctx).AddInput(in).Rect()

	typ := in.Surface.SurfaceType()
	if in.Surface.IsAlphaOnly() {
		typ = cs.surfaceType()
	}
	out, err := in.Surface.ColorMatrix(bounds, c.Matrix, typ)
	if err != nil {
		return Result{}, err
	}
	return c.NewResult(Output{Surface: out, Bounds: bounds}), nil
}
