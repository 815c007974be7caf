// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"fmt"
	"strings"
)

// Base holds the attributes every filter primitive shares.
type Base struct {
	// In is the "in" attribute; nil when absent.
	In *Input

	// Result is the name the output is stored under; empty when absent.
	Result string

	// Subregion attributes; nil when absent.
	X, Y, Width, Height *Length

	// ColorInterpolation is the primitive's color-interpolation-filters
	// value; ColorInterpolationNone inherits the filter element's value.
	ColorInterpolation ColorInterpolation
}

// parseAttr parses a if it is a shared attribute. It reports whether the
// attribute was consumed.
func (b *Base) parseAttr(a Attribute) (bool, error) {
	var err error
	switch a.Name {
	case "in":
		b.In, err = ParseInput(a.Name, a.Value)
	case "result":
		b.Result = strings.TrimSpace(a.Value)
	case "x":
		b.X, err = parseLengthPtr(a, ParseLength)
	case "y":
		b.Y, err = parseLengthPtr(a, ParseLength)
	case "width":
		b.Width, err = parseLengthPtr(a, parseNonNegativeLength)
	case "height":
		b.Height, err = parseLengthPtr(a, parseNonNegativeLength)
	case "color-interpolation-filters":
		b.ColorInterpolation, err = ParseColorInterpolation(a.Name, a.Value)
	default:
		return false, nil
	}
	return true, err
}

func parseLengthPtr(a Attribute, parse func(attr, raw string) (Length, error)) (*Length, error) {
	l, err := parse(a.Name, a.Value)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// InputOf returns the "in" attribute, or nil when absent.
func (b *Base) InputOf() *Input {
	return b.In
}

// BoundsFor starts a bounds computation for the primitive in ctx.
func (b *Base) BoundsFor(ctx *Context) *BoundsBuilder {
	return &BoundsBuilder{ctx: ctx, x: b.X, y: b.Y, width: b.Width, height: b.Height}
}

// NewResult names out with the primitive's result attribute.
func (b *Base) NewResult(out Output) Result {
	return Result{Name: b.Result, Output: out}
}

// workingSpace returns the color space the primitive computes in.
// linearRGB is the default.
func (b *Base) workingSpace(ctx *Context) ColorInterpolation {
	switch {
	case b.ColorInterpolation != ColorInterpolationNone:
		return b.ColorInterpolation
	case ctx.params.ColorInterpolation != ColorInterpolationNone:
		return ctx.params.ColorInterpolation
	default:
		return ColorInterpolationLinearRGB
	}
}

func (b *Base) primitiveBase() *Base { return b }

// Primitive is a parsed filter primitive. The set of implementations is
// closed: *Blend, *ColorMatrix, *Flood, *GaussianBlur and *Offset.
type Primitive interface {
	// ElementName returns the element name, for example "feBlend".
	ElementName() string

	// AffectedByColorInterpolation reports whether the inputs are
	// converted into the color-interpolation-filters space before
	// rendering.
	AffectedByColorInterpolation() bool

	primitiveBase() *Base
}

// ParsePrimitive parses the element called name.
//
// On a parse error the returned primitive holds the attributes parsed
// before the failure; it must not be rendered. An unknown element name
// fails with ErrUnsupportedPrimitive and a nil primitive.
func ParsePrimitive(name string, attrs Attributes) (Primitive, error) {
	var p interface {
		Primitive
		parse(Attributes) error
	}
	switch name {
	case "feBlend":
		p = &Blend{}
	case "feColorMatrix":
		p = &ColorMatrix{}
	case "feFlood":
		p = newFlood()
	case "feGaussianBlur":
		p = &GaussianBlur{}
	case "feOffset":
		p = &Offset{}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPrimitive, name)
	}
	return p, p.parse(attrs)
}

// parseAttrs feeds attrs in order to the base and then to own, stopping at
// the first error.
func parseAttrs(b *Base, attrs Attributes, own func(Attribute) error) error {
	for _, a := range attrs {
		handled, err := b.parseAttr(a)
		if err != nil {
			return err
		}
		if handled {
			continue
		}
		if err := own(a); err != nil {
			return err
		}
	}
	return nil
}

// render dispatches to the primitive's algorithm.
func render(p Primitive, ctx *Context) (Result, error) {
	switch p := p.(type) {
	case *Blend:
		return p.render(ctx)
	case *ColorMatrix:
		return p.render(ctx)
	case *Flood:
		return p.render(ctx)
	case *GaussianBlur:
		return p.render(ctx)
	case *Offset:
		return p.render(ctx)
	default:
		return Result{}, fmt.Errorf("filters: unknown primitive %T", p)
	}
}

// space returns the color space p's inputs are resolved into.
func space(p Primitive, ctx *Context) ColorInterpolation {
	if !p.AffectedByColorInterpolation() {
		return ColorInterpolationNone
	}
	return p.primitiveBase().workingSpace(ctx)
}
