// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/svgfilter"
	"github.com/gogpu/svgfilter/surface"
)

// Mode is the blend mode of feBlend.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeMultiply
	ModeScreen
	ModeDarken
	ModeLighten
	ModeOverlay
	ModeColorDodge
	ModeColorBurn
	ModeHardLight
	ModeSoftLight
	ModeDifference
	ModeExclusion
	ModeHue
	ModeSaturation
	ModeColor
	ModeLuminosity
)

var modeKeywords = [...]string{
	ModeNormal:     "normal",
	ModeMultiply:   "multiply",
	ModeScreen:     "screen",
	ModeDarken:     "darken",
	ModeLighten:    "lighten",
	ModeOverlay:    "overlay",
	ModeColorDodge: "color-dodge",
	ModeColorBurn:  "color-burn",
	ModeHardLight:  "hard-light",
	ModeSoftLight:  "soft-light",
	ModeDifference: "difference",
	ModeExclusion:  "exclusion",
	ModeHue:        "hue",
	ModeSaturation: "saturation",
	ModeColor:      "color",
	ModeLuminosity: "luminosity",
}

var modeOperators = [...]surface.Operator{
	ModeNormal:     surface.OperatorOver,
	ModeMultiply:   surface.OperatorMultiply,
	ModeScreen:     surface.OperatorScreen,
	ModeDarken:     surface.OperatorDarken,
	ModeLighten:    surface.OperatorLighten,
	ModeOverlay:    surface.OperatorOverlay,
	ModeColorDodge: surface.OperatorColorDodge,
	ModeColorBurn:  surface.OperatorColorBurn,
	ModeHardLight:  surface.OperatorHardLight,
	ModeSoftLight:  surface.OperatorSoftLight,
	ModeDifference: surface.OperatorDifference,
	ModeExclusion:  surface.OperatorExclusion,
	ModeHue:        surface.OperatorHSLHue,
	ModeSaturation: surface.OperatorHSLSaturation,
	ModeColor:      surface.OperatorHSLColor,
	ModeLuminosity: surface.OperatorHSLLuminosity,
}

// Modes returns every blend mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, len(modeKeywords))
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// ParseMode parses a mode keyword. Keywords are case-sensitive.
func ParseMode(attr, raw string) (Mode, error) {
	for m, kw := range modeKeywords {
		if raw == kw {
			return Mode(m), nil
		}
	}
	return ModeNormal, parseError(attr, raw, errors.New("invalid value"))
}

// String returns the attribute keyword.
func (m Mode) String() string {
	if int(m) < len(modeKeywords) {
		return modeKeywords[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Operator returns the compositing operator implementing m.
func (m Mode) Operator() surface.Operator {
	if int(m) < len(modeOperators) {
		return modeOperators[m]
	}
	return surface.OperatorOver
}

// Blend is the feBlend primitive: it composites "in" onto "in2" with a
// blend mode.
type Blend struct {
	Base

	// In2 is the backdrop input; nil when absent.
	In2  *Input
	Mode Mode
}

func (*Blend) ElementName() string { return "feBlend" }

// AffectedByColorInterpolation is always true for feBlend.
func (*Blend) AffectedByColorInterpolation() bool { return true }

func (b *Blend) parse(attrs Attributes) error {
	return parseAttrs(&b.Base, attrs, func(a Attribute) error {
		var err error
		switch a.Name {
		case "in2":
			b.In2, err = ParseInput(a.Name, a.Value)
		case "mode":
			b.Mode, err = ParseMode(a.Name, a.Value)
		}
		return err
	})
}

func (b *Blend) render(ctx *Context) (Result, error) {
	cs := space(b, ctx)
	in, err := ctx.Resolve(b.In, cs)
	if err != nil {
		return Result{}, err
	}
	// An absent in2 resolves exactly like an absent in.
	in2, err := ctx.Resolve(b.In2, cs)
	if err != nil {
		return Result{}, err
	}

	bounds := b.BoundsFor(ctx).AddInput(in).AddInput(in2).Rect()

	var typ surface.Type
	switch {
	case in.Surface.IsAlphaOnly():
		typ = in2.Surface.SurfaceType()
	case in2.Surface.IsAlphaOnly():
		typ = in.Surface.SurfaceType()
	case in.Surface.SurfaceType() != in2.Surface.SurfaceType():
		return Result{}, fmt.Errorf("filters: feBlend inputs in %v and %v", in.Surface.SurfaceType(), in2.Surface.SurfaceType())
	default:
		typ = in.Surface.SurfaceType()
	}

	work, err := in2.Surface.CopyRegion(bounds)
	if err != nil {
		return Result{}, err
	}
	cr := surface.NewContext(work)
	cr.Clip(bounds)
	in.Surface.SetAsPaintSource(cr, 0, 0)
	cr.SetOperator(b.Mode.Operator())
	cr.Paint()

	out, err := surface.Wrap(work, typ)
	if err != nil {
		return Result{}, err
	}

	svgfilter.Logger().Debug("feBlend rendered",
		slog.String("mode", b.Mode.String()),
		slog.Any("bounds", bounds),
		slog.String("type", typ.String()),
	)
	return b.NewResult(Output{Surface: out, Bounds: bounds}), nil
}
