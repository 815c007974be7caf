// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/svgfilter"
	"github.com/gogpu/svgfilter/internal/cache"
	"github.com/gogpu/svgfilter/surface"
)

// Output is the product of a primitive: a surface and the device pixel
// rectangle inside which its pixels are meaningful.
type Output struct {
	Surface *surface.Shared
	Bounds  image.Rectangle
}

// Result is an Output together with the result name it is stored under.
// An empty Name stores the output only as the previous result.
type Result struct {
	Name   string
	Output Output
}

// FilterInput is a resolved primitive input.
type FilterInput struct {
	Output

	// Standard is true for the reserved inputs (SourceGraphic and friends),
	// whose bounds are the whole filter region.
	Standard bool
}

// Params carries the per-application state a Context is created from.
type Params struct {
	// SourceGraphic is the rendering of the filtered element in sRGB.
	// It is required and determines the canvas size.
	SourceGraphic *surface.Shared

	// Optional special inputs. Absent inputs read as transparent black.
	BackgroundImage *surface.Shared
	FillPaint       *surface.Shared
	StrokePaint     *surface.Shared

	// Region is the filter region in user space.
	Region svgfilter.Rect

	// Transform maps user space to device pixels.
	Transform svgfilter.Matrix

	// BoundingBox is the user-space bounding box of the filtered element,
	// used for primitiveUnits="objectBoundingBox".
	BoundingBox svgfilter.Rect

	// Viewport resolves percentages in user space units.
	Viewport svgfilter.Rect

	PrimitiveUnits Units

	// ColorInterpolation is the value on the filter element. Primitives
	// that do not set their own value inherit it.
	ColorInterpolation ColorInterpolation
}

// conversionKey identifies a memoised color-space conversion.
type conversionKey struct {
	src   *surface.Shared
	space ColorInterpolation
}

// Context is the state of one filter application: the special inputs, the
// named results produced so far, the filter region and the transform.
//
// A Context is created per application and discarded afterwards. It is not
// safe for concurrent use.
type Context struct {
	params Params
	region image.Rectangle // device pixels, clipped to the canvas

	sourceAlpha     *surface.Shared
	background      *surface.Shared
	backgroundAlpha *surface.Shared
	fill            *surface.Shared
	stroke          *surface.Shared

	results map[string]Output
	last    *Output

	conversions *cache.Cache[conversionKey, *surface.Shared]
	telemetry   *telemetry
}

// NewContext creates a filter context.
func NewContext(p Params, opts ...ContextOption) (*Context, error) {
	if p.SourceGraphic == nil {
		return nil, errors.New("filters: nil source graphic")
	}
	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	canvas := p.SourceGraphic.Bounds()
	return &Context{
		params:      p,
		region:      toPixels(p.Transform.TransformRect(p.Region)).Intersect(canvas),
		results:     make(map[string]Output),
		conversions: cache.New[conversionKey, *surface.Shared](o.conversionCacheSize),
		telemetry:   newTelemetry(o),
	}, nil
}

// Region returns the filter region in device pixels.
func (c *Context) Region() image.Rectangle {
	return c.region
}

// Transform returns the user-space to device-space transform.
func (c *Context) Transform() svgfilter.Matrix {
	return c.params.Transform
}

// PrimitiveUnits returns the coordinate system of primitive attributes.
func (c *Context) PrimitiveUnits() Units {
	return c.params.PrimitiveUnits
}

// scaleLengths converts a pair of primitive-unit lengths to user units.
func (c *Context) scaleLengths(x, y float64) (float64, float64) {
	if c.params.PrimitiveUnits == ObjectBoundingBox {
		bb := c.params.BoundingBox
		return x * bb.Width(), y * bb.Height()
	}
	return x, y
}

// Store records r as the latest result and, if it has a name, under that
// name. Storing a name again replaces the earlier output.
func (c *Context) Store(r Result) {
	out := r.Output
	c.last = &out
	if r.Name != "" {
		c.results[r.Name] = out
	}
}

// Result returns the output stored under name.
func (c *Context) Result(name string) (Output, bool) {
	out, ok := c.results[name]
	return out, ok
}

// Last returns the output of the most recent primitive.
func (c *Context) Last() (Output, bool) {
	if c.last == nil {
		return Output{}, false
	}
	return *c.last, true
}

// Resolve returns the output in refers to.
//
// A nil in (absent attribute) resolves to the previous primitive's output,
// or to SourceGraphic at the start of the chain. A reference to a name that
// was never stored fails with ErrInvalidReference. Unless space is
// ColorInterpolationNone, the surface is converted into that color space.
func (c *Context) Resolve(in *Input, space ColorInterpolation) (FilterInput, error) {
	fi, err := c.lookup(in)
	if err != nil {
		return FilterInput{}, err
	}
	fi.Surface, err = c.convert(fi.Surface, space)
	if err != nil {
		return FilterInput{}, err
	}
	return fi, nil
}

func (c *Context) lookup(in *Input) (FilterInput, error) {
	if in == nil {
		if c.last != nil {
			return FilterInput{Output: *c.last}, nil
		}
		return c.standard(c.params.SourceGraphic), nil
	}

	switch in.Kind {
	case InputSourceGraphic:
		return c.standard(c.params.SourceGraphic), nil
	case InputSourceAlpha:
		if c.sourceAlpha == nil {
			a, err := c.params.SourceGraphic.ExtractAlpha(c.region)
			if err != nil {
				return FilterInput{}, err
			}
			c.sourceAlpha = a
		}
		return c.standard(c.sourceAlpha), nil
	case InputBackgroundImage:
		s, err := c.optional(&c.background, c.params.BackgroundImage)
		if err != nil {
			return FilterInput{}, err
		}
		return c.standard(s), nil
	case InputBackgroundAlpha:
		if c.backgroundAlpha == nil {
			bg, err := c.optional(&c.background, c.params.BackgroundImage)
			if err != nil {
				return FilterInput{}, err
			}
			if c.backgroundAlpha, err = bg.ExtractAlpha(c.region); err != nil {
				return FilterInput{}, err
			}
		}
		return c.standard(c.backgroundAlpha), nil
	case InputFillPaint:
		s, err := c.optional(&c.fill, c.params.FillPaint)
		if err != nil {
			return FilterInput{}, err
		}
		return c.standard(s), nil
	case InputStrokePaint:
		s, err := c.optional(&c.stroke, c.params.StrokePaint)
		if err != nil {
			return FilterInput{}, err
		}
		return c.standard(s), nil
	default:
		out, ok := c.results[in.Name]
		if !ok {
			return FilterInput{}, fmt.Errorf("%w: %q", ErrInvalidReference, in.Name)
		}
		return FilterInput{Output: out}, nil
	}
}

func (c *Context) standard(s *surface.Shared) FilterInput {
	return FilterInput{Output: Output{Surface: s, Bounds: c.region}, Standard: true}
}

// optional returns the supplied special input, or a transparent surface of
// canvas size cached in *slot.
func (c *Context) optional(slot **surface.Shared, supplied *surface.Shared) (*surface.Shared, error) {
	if supplied != nil {
		return supplied, nil
	}
	if *slot == nil {
		s, err := c.transparent(surface.SRGB)
		if err != nil {
			return nil, err
		}
		*slot = s
	}
	return *slot, nil
}

// transparent allocates a transparent canvas-sized surface.
func (c *Context) transparent(t surface.Type) (*surface.Shared, error) {
	s, err := c.newSurface()
	if err != nil {
		return nil, err
	}
	return surface.Wrap(s, t)
}

// newSurface allocates a transparent canvas-sized backend surface.
func (c *Context) newSurface() (*surface.ImageSurface, error) {
	src := c.params.SourceGraphic
	return surface.NewImageSurface(src.Width(), src.Height())
}

func (c *Context) convert(s *surface.Shared, space ColorInterpolation) (*surface.Shared, error) {
	switch {
	case space == ColorInterpolationNone || s.IsAlphaOnly():
		return s, nil
	case space.surfaceType() == s.SurfaceType():
		return s, nil
	}

	key := conversionKey{src: s, space: space}
	if out, ok := c.conversions.Get(key); ok {
		return out, nil
	}
	var out *surface.Shared
	var err error
	if space == ColorInterpolationLinearRGB {
		out, err = s.ToLinearRGB()
	} else {
		out, err = s.ToSRGB()
	}
	if err != nil {
		return nil, err
	}
	c.conversions.Put(key, out)
	return out, nil
}
