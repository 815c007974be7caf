// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/gogpu/svgfilter"
	"github.com/gogpu/svgfilter/surface"
)

// Filter is a parsed filter element and its chain of primitives.
// It is immutable and may be applied concurrently.
type Filter struct {
	// Filter region attributes.
	X, Y, Width, Height Length

	FilterUnits    Units
	PrimitiveUnits Units

	// ColorInterpolation is the filter element's
	// color-interpolation-filters value, inherited by primitives.
	ColorInterpolation ColorInterpolation

	primitives  []Primitive
	parseErrors []error
}

// ParseFilter parses a filter element and its primitive children.
//
// Parsing never fails as a whole. A malformed filter attribute keeps its
// default; a child that fails to parse is left out of the chain. Both kinds
// of error are logged and reported by ParseErrors.
func ParseFilter(attrs Attributes, children []Element) *Filter {
	f := &Filter{
		X:                  Length{Value: -10, Percent: true},
		Y:                  Length{Value: -10, Percent: true},
		Width:              Length{Value: 120, Percent: true},
		Height:             Length{Value: 120, Percent: true},
		FilterUnits:        ObjectBoundingBox,
		PrimitiveUnits:     UserSpaceOnUse,
		ColorInterpolation: ColorInterpolationLinearRGB,
	}

	for _, a := range attrs {
		if err := f.parseAttr(a); err != nil {
			f.parseErrors = append(f.parseErrors, err)
			svgfilter.Logger().Warn("ignoring filter attribute", slog.String("error", err.Error()))
		}
	}

	for i, child := range children {
		p, err := ParsePrimitive(child.Name, child.Attrs)
		if err != nil {
			err = fmt.Errorf("%s #%d: %w", child.Name, i, err)
			f.parseErrors = append(f.parseErrors, err)
			svgfilter.Logger().Warn("excluding filter primitive",
				slog.String("element", child.Name),
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		f.primitives = append(f.primitives, p)
	}
	return f
}

func (f *Filter) parseAttr(a Attribute) error {
	var err error
	switch a.Name {
	case "x":
		err = setLength(&f.X, a, ParseLength)
	case "y":
		err = setLength(&f.Y, a, ParseLength)
	case "width":
		err = setLength(&f.Width, a, parseNonNegativeLength)
	case "height":
		err = setLength(&f.Height, a, parseNonNegativeLength)
	case "filterUnits":
		var u Units
		if u, err = ParseUnits(a.Name, a.Value); err == nil {
			f.FilterUnits = u
		}
	case "primitiveUnits":
		var u Units
		if u, err = ParseUnits(a.Name, a.Value); err == nil {
			f.PrimitiveUnits = u
		}
	case "color-interpolation-filters":
		var c ColorInterpolation
		if c, err = ParseColorInterpolation(a.Name, a.Value); err == nil && c != ColorInterpolationNone {
			f.ColorInterpolation = c
		}
	}
	return err
}

// setLength stores the parsed value of a in dst, leaving dst untouched on
// error.
func setLength(dst *Length, a Attribute, parse func(attr, raw string) (Length, error)) error {
	l, err := parse(a.Name, a.Value)
	if err != nil {
		return err
	}
	*dst = l
	return nil
}

// Primitives returns the chain in document order.
func (f *Filter) Primitives() []Primitive {
	return f.primitives
}

// ParseErrors returns the errors found while parsing.
func (f *Filter) ParseErrors() []error {
	return f.parseErrors
}

// Region returns the filter region in user space for an element with the
// given bounding box and viewport.
func (f *Filter) Region(bbox, viewport svgfilter.Rect) svgfilter.Rect {
	if f.FilterUnits == ObjectBoundingBox {
		return svgfilter.XYWH(
			bbox.X0+f.X.fraction()*bbox.Width(),
			bbox.Y0+f.Y.fraction()*bbox.Height(),
			f.Width.fraction()*bbox.Width(),
			f.Height.fraction()*bbox.Height(),
		)
	}
	return svgfilter.XYWH(
		f.X.user(viewport.Width()),
		f.Y.user(viewport.Height()),
		f.Width.user(viewport.Width()),
		f.Height.user(viewport.Height()),
	)
}

// DrawInput is what the drawing layer hands to a filter.
type DrawInput struct {
	// SourceGraphic is the element rendered on a transparent canvas. It is
	// required; every intermediate surface has its size.
	SourceGraphic *surface.ImageSurface

	// Optional special inputs of the same size as SourceGraphic.
	BackgroundImage *surface.ImageSurface
	FillPaint       *surface.ImageSurface
	StrokePaint     *surface.ImageSurface

	// Transform maps user space to canvas pixels. The zero Matrix is
	// treated as the identity.
	Transform svgfilter.Matrix

	// BoundingBox is the element's bounding box in user space. When empty,
	// the canvas mapped back to user space is used.
	BoundingBox svgfilter.Rect

	// Viewport resolves percentages of userSpaceOnUse lengths. When empty,
	// the canvas mapped back to user space is used.
	Viewport svgfilter.Rect
}

// Apply runs the chain against in and returns the last primitive's output
// converted to sRGB.
//
// Primitives render strictly in document order. The first render error
// aborts the chain and no output is returned. An empty chain yields
// transparent black over the filter region. The input surfaces are read but
// never modified. ctx carries tracing only; rendering is not cancellable.
func (f *Filter) Apply(ctx context.Context, in DrawInput, opts ...ContextOption) (Output, error) {
	params, err := f.params(in)
	if err != nil {
		return Output{}, err
	}
	fc, err := NewContext(params, opts...)
	if err != nil {
		return Output{}, err
	}
	tel := fc.telemetry

	ctx, span := tel.tracer.Start(ctx, "svgfilter.Apply",
		trace.WithAttributes(
			attribute.Int("svgfilter.primitives", len(f.primitives)),
			attribute.String("svgfilter.region", fc.Region().String()),
		),
	)
	defer span.End()

	start := time.Now()
	out, err := f.run(ctx, fc)
	if tel.applyDuration != nil {
		tel.applyDuration.Record(ctx, time.Since(start).Seconds())
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Output{}, err
	}
	span.SetStatus(codes.Ok, "")
	return out, nil
}

func (f *Filter) run(ctx context.Context, fc *Context) (Output, error) {
	for i, p := range f.primitives {
		if err := renderPrimitive(ctx, fc, i, p); err != nil {
			return Output{}, err
		}
	}

	last, ok := fc.Last()
	if !ok {
		s, err := fc.transparent(surface.SRGB)
		if err != nil {
			return Output{}, err
		}
		return Output{Surface: s, Bounds: fc.Region()}, nil
	}
	s, err := last.Surface.ToSRGB()
	if err != nil {
		return Output{}, err
	}
	return Output{Surface: s, Bounds: last.Bounds}, nil
}

// renderPrimitive renders one primitive inside its own span and stores the
// result.
func renderPrimitive(ctx context.Context, fc *Context, i int, p Primitive) error {
	tel := fc.telemetry
	name := p.ElementName()
	ctx, span := tel.tracer.Start(ctx, name,
		trace.WithAttributes(
			attribute.String("svgfilter.primitive", name),
			attribute.Int("svgfilter.index", i),
			attribute.String("svgfilter.result", p.primitiveBase().Result),
		),
	)
	defer span.End()

	log := svgfilter.Logger()
	log.Debug("primitive starting", slog.String("primitive", name), slog.Int("index", i))

	start := time.Now()
	res, err := render(p, fc)
	duration := time.Since(start)

	attrs := metric.WithAttributes(attribute.String("primitive", name))
	if tel.primitiveDuration != nil {
		tel.primitiveDuration.Record(ctx, duration.Seconds(), attrs)
	}

	if err != nil {
		err = fmt.Errorf("%s #%d: %w", name, i, err)
		if tel.primitiveFailures != nil {
			tel.primitiveFailures.Add(ctx, 1, attrs)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("primitive failed",
			slog.String("primitive", name),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()),
		)
		return err
	}

	if tel.primitiveSuccesses != nil {
		tel.primitiveSuccesses.Add(ctx, 1, attrs)
	}
	span.SetAttributes(attribute.String("svgfilter.bounds", res.Output.Bounds.String()))
	span.SetStatus(codes.Ok, "")
	fc.Store(res)

	log.Debug("primitive finished",
		slog.String("primitive", name),
		slog.Any("bounds", res.Output.Bounds),
		slog.Duration("duration", duration),
	)
	return nil
}

// params builds the context parameters for in.
func (f *Filter) params(in DrawInput) (Params, error) {
	if in.SourceGraphic == nil {
		return Params{}, errors.New("filters: DrawInput without SourceGraphic")
	}
	m := in.Transform
	if m == (svgfilter.Matrix{}) {
		m = svgfilter.Identity()
	}

	src, err := surface.Wrap(in.SourceGraphic, surface.SRGB)
	if err != nil {
		return Params{}, err
	}
	p := Params{
		SourceGraphic:      src,
		Transform:          m,
		BoundingBox:        in.BoundingBox,
		Viewport:           in.Viewport,
		PrimitiveUnits:     f.PrimitiveUnits,
		ColorInterpolation: f.ColorInterpolation,
	}
	for _, opt := range []struct {
		dst **surface.Shared
		src *surface.ImageSurface
	}{
		{&p.BackgroundImage, in.BackgroundImage},
		{&p.FillPaint, in.FillPaint},
		{&p.StrokePaint, in.StrokePaint},
	} {
		if opt.src == nil {
			continue
		}
		if *opt.dst, err = surface.Wrap(opt.src, surface.SRGB); err != nil {
			return Params{}, err
		}
	}

	if p.BoundingBox.IsEmpty() || p.Viewport.IsEmpty() {
		canvas := svgfilter.RectFromImage(src.Bounds())
		if inv, ok := m.Invert(); ok {
			canvas = inv.TransformRect(canvas)
		}
		if p.BoundingBox.IsEmpty() {
			p.BoundingBox = canvas
		}
		if p.Viewport.IsEmpty() {
			p.Viewport = canvas
		}
	}
	p.Region = f.Region(p.BoundingBox, p.Viewport)
	return p, nil
}

// Composite paints out onto dst with source-over, limited to the output
// bounds. It returns dst's status afterwards.
func Composite(dst *surface.ImageSurface, out Output) error {
	cr := surface.NewContext(dst)
	cr.Clip(out.Bounds)
	out.Surface.SetAsPaintSource(cr, 0, 0)
	cr.Paint()
	if err := dst.Status(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadIntermediateSurfaceStatus, err)
	}
	return nil
}
