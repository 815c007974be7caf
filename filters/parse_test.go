// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/svgfilter/surface"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		raw  string
		want Input
	}{
		{"SourceGraphic", Input{Kind: InputSourceGraphic}},
		{"SourceAlpha", Input{Kind: InputSourceAlpha}},
		{"BackgroundImage", Input{Kind: InputBackgroundImage}},
		{"BackgroundAlpha", Input{Kind: InputBackgroundAlpha}},
		{"FillPaint", Input{Kind: InputFillPaint}},
		{"StrokePaint", Input{Kind: InputStrokePaint}},
		{"blur1", Input{Kind: InputReference, Name: "blur1"}},
		{"  spaced  ", Input{Kind: InputReference, Name: "spaced"}},
		{"SourceGraphicX", Input{Kind: InputReference, Name: "SourceGraphicX"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseInput("in", tt.raw)
			if err != nil {
				t.Fatalf("ParseInput(%q): %v", tt.raw, err)
			}
			if *got != tt.want {
				t.Errorf("ParseInput(%q) = %+v, want %+v", tt.raw, *got, tt.want)
			}
			if got.IsStandard() != (tt.want.Kind != InputReference) {
				t.Errorf("IsStandard() = %v", got.IsStandard())
			}
		})
	}
}

func TestParseInputErrors(t *testing.T) {
	for _, raw := range []string{"", "   ", "sourcegraphic", "SOURCEALPHA", "fillpaint"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseInput("in2", raw)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("ParseInput(%q) err = %v, want ErrParse", raw, err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) || pe.Attr != "in2" || pe.Value != raw {
				t.Errorf("ParseError = %+v, want attribute in2 with raw value", pe)
			}
		})
	}
}

func TestInputString(t *testing.T) {
	var nilInput *Input
	if nilInput.String() != "" || nilInput.IsStandard() {
		t.Error("nil input should be empty and non-standard")
	}
	if s := (&Input{Kind: InputBackgroundAlpha}).String(); s != "BackgroundAlpha" {
		t.Errorf("String() = %q", s)
	}
	if s := (&Input{Name: "a"}).String(); s != "a" {
		t.Errorf("String() = %q", s)
	}
}

func TestParseMode(t *testing.T) {
	want := map[string]surface.Operator{
		"normal":      surface.OperatorOver,
		"multiply":    surface.OperatorMultiply,
		"screen":      surface.OperatorScreen,
		"darken":      surface.OperatorDarken,
		"lighten":     surface.OperatorLighten,
		"overlay":     surface.OperatorOverlay,
		"color-dodge": surface.OperatorColorDodge,
		"color-burn":  surface.OperatorColorBurn,
		"hard-light":  surface.OperatorHardLight,
		"soft-light":  surface.OperatorSoftLight,
		"difference":  surface.OperatorDifference,
		"exclusion":   surface.OperatorExclusion,
		"hue":         surface.OperatorHSLHue,
		"saturation":  surface.OperatorHSLSaturation,
		"color":       surface.OperatorHSLColor,
		"luminosity":  surface.OperatorHSLLuminosity,
	}
	if len(Modes()) != len(want) {
		t.Fatalf("Modes() has %d entries, want %d", len(Modes()), len(want))
	}
	for kw, op := range want {
		m, err := ParseMode("mode", kw)
		if err != nil {
			t.Errorf("ParseMode(%q): %v", kw, err)
			continue
		}
		if m.String() != kw {
			t.Errorf("ParseMode(%q).String() = %q", kw, m.String())
		}
		if m.Operator() != op {
			t.Errorf("ParseMode(%q).Operator() = %v, want %v", kw, m.Operator(), op)
		}
	}
}

func TestParseModeRejects(t *testing.T) {
	for _, raw := range []string{"xyz", "Multiply", " screen", ""} {
		_, err := ParseMode("mode", raw)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseMode(%q) err = %v, want *ParseError", raw, err)
			continue
		}
		if pe.Attr != "mode" {
			t.Errorf("ParseMode(%q) names attribute %q, want mode", raw, pe.Attr)
		}
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		raw  string
		want Length
		ok   bool
	}{
		{"10", Length{Value: 10}, true},
		{"2.5px", Length{Value: 2.5}, true},
		{"-10%", Length{Value: -10, Percent: true}, true},
		{" 1e1 ", Length{Value: 10}, true},
		{"", Length{}, false},
		{"10em", Length{}, false},
		{"abc", Length{}, false},
		{"1e400", Length{}, false},
	}
	for _, tt := range tests {
		got, err := ParseLength("x", tt.raw)
		if (err == nil) != tt.ok {
			t.Errorf("ParseLength(%q) err = %v, want ok=%v", tt.raw, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseLength(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}

	if _, err := parseNonNegativeLength("width", "-1"); !errors.Is(err, ErrParse) {
		t.Errorf("negative width err = %v, want ErrParse", err)
	}
	if s := (Length{Value: 120, Percent: true}).String(); s != "120%" {
		t.Errorf("String() = %q", s)
	}
}

func TestParseNumberList(t *testing.T) {
	got, err := parseNumberList(" 1, 2 3\t4,\n5 ")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 5}, got); diff != "" {
		t.Errorf("parseNumberList mismatch (-want +got):\n%s", diff)
	}
	if _, err := parseNumberList("1 x 3"); err == nil {
		t.Error("parseNumberList accepted a non-number")
	}
}

func TestParseUnitsAndColorInterpolation(t *testing.T) {
	if u, err := ParseUnits("filterUnits", "userSpaceOnUse"); err != nil || u != UserSpaceOnUse {
		t.Errorf("userSpaceOnUse = %v, %v", u, err)
	}
	if u, err := ParseUnits("filterUnits", "objectBoundingBox"); err != nil || u != ObjectBoundingBox {
		t.Errorf("objectBoundingBox = %v, %v", u, err)
	}
	if _, err := ParseUnits("filterUnits", "objectboundingbox"); !errors.Is(err, ErrParse) {
		t.Errorf("bad units err = %v", err)
	}

	tests := map[string]ColorInterpolation{
		"sRGB":      ColorInterpolationSRGB,
		"linearRGB": ColorInterpolationLinearRGB,
		"auto":      ColorInterpolationLinearRGB,
		"inherit":   ColorInterpolationNone,
	}
	for raw, want := range tests {
		got, err := ParseColorInterpolation("color-interpolation-filters", raw)
		if err != nil || got != want {
			t.Errorf("ParseColorInterpolation(%q) = %v, %v; want %v", raw, got, err, want)
		}
	}
	if _, err := ParseColorInterpolation("color-interpolation-filters", "srgb"); !errors.Is(err, ErrParse) {
		t.Errorf("bad value err = %v", err)
	}
}

func TestParseColor(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	tests := []struct {
		raw  string
		want color.NRGBA
	}{
		{"#f00", red},
		{"#FF0000", red},
		{"rgb(255, 0, 0)", red},
		{"rgb(100%,0%,0%)", red},
		{"red", red},
		{"RED", red},
		{"transparent", color.NRGBA{}},
		{"cornflowerblue", color.NRGBA{100, 149, 237, 255}},
	}
	for _, tt := range tests {
		got, err := parseColor("flood-color", tt.raw)
		if err != nil {
			t.Errorf("parseColor(%q): %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}

	for _, raw := range []string{"#ff00", "#ggg", "rgb(1,2)", "notacolor", "currentColor"} {
		if _, err := parseColor("flood-color", raw); !errors.Is(err, ErrParse) {
			t.Errorf("parseColor(%q) err = %v, want ErrParse", raw, err)
		}
	}
}

func TestParsePrimitive(t *testing.T) {
	p, err := ParsePrimitive("feBlend", Attributes{
		{Name: "in", Value: "SourceAlpha"},
		{Name: "in2", Value: "a"},
		{Name: "mode", Value: "screen"},
		{Name: "result", Value: "out"},
		{Name: "x", Value: "5"},
		{Name: "unknown", Value: "ignored"},
	})
	if err != nil {
		t.Fatal(err)
	}
	b, ok := p.(*Blend)
	if !ok {
		t.Fatalf("ParsePrimitive returned %T, want *Blend", p)
	}
	if b.In.Kind != InputSourceAlpha || b.In2.Name != "a" || b.Mode != ModeScreen {
		t.Errorf("blend = %+v", b)
	}
	if b.Result != "out" || b.X == nil || b.X.Value != 5 || b.Y != nil {
		t.Errorf("base = %+v", b.Base)
	}
	if b.InputOf() != b.In {
		t.Error("InputOf does not return In")
	}
}

func TestParsePrimitiveDefaults(t *testing.T) {
	p, err := ParsePrimitive("feBlend", nil)
	if err != nil {
		t.Fatal(err)
	}
	b := p.(*Blend)
	if b.In != nil || b.In2 != nil || b.Mode != ModeNormal || b.Result != "" {
		t.Errorf("defaults = %+v", b)
	}

	p, err = ParsePrimitive("feFlood", nil)
	if err != nil {
		t.Fatal(err)
	}
	f := p.(*Flood)
	if f.Color != (color.NRGBA{A: 255}) || f.Opacity != 1 {
		t.Errorf("flood defaults = %+v", f)
	}
}

func TestParsePrimitiveKeepsAttributesBeforeError(t *testing.T) {
	p, err := ParsePrimitive("feBlend", Attributes{
		{Name: "in", Value: "SourceAlpha"},
		{Name: "mode", Value: "xyz"},
		{Name: "result", Value: "never"},
	})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
	b := p.(*Blend)
	if b.In == nil || b.In.Kind != InputSourceAlpha {
		t.Errorf("in = %v, want SourceAlpha kept", b.In)
	}
	if b.Result != "" {
		t.Errorf("result = %q, attributes after the failure must not be applied", b.Result)
	}
}

func TestParsePrimitiveUnsupported(t *testing.T) {
	p, err := ParsePrimitive("feTurbulence", nil)
	if p != nil {
		t.Errorf("primitive = %v, want nil", p)
	}
	if !errors.Is(err, ErrUnsupportedPrimitive) {
		t.Errorf("err = %v, want ErrUnsupportedPrimitive", err)
	}
}

func TestAttributesGet(t *testing.T) {
	a := Attributes{{Name: "in", Value: "a"}, {Name: "in", Value: "b"}}
	if v, ok := a.Get("in"); !ok || v != "b" {
		t.Errorf("Get(in) = %q, %v; want the last value", v, ok)
	}
	if _, ok := a.Get("in2"); ok {
		t.Error("Get(in2) found a missing attribute")
	}
}
