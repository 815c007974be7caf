// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/svgfilter"
	"github.com/gogpu/svgfilter/surface"
)

var (
	opaqueRed  = color.RGBA{255, 0, 0, 255}
	opaqueBlue = color.RGBA{0, 0, 255, 255}
)

// solid returns a w x h surface filled with c.
func solid(t *testing.T, w, h int, c color.RGBA) *surface.ImageSurface {
	t.Helper()
	s, err := surface.NewImageSurface(w, h)
	if err != nil {
		t.Fatalf("NewImageSurface: %v", err)
	}
	s.Clear(c)
	return s
}

// square returns a w x h transparent surface with r filled with c.
func square(t *testing.T, w, h int, r image.Rectangle, c color.RGBA) *surface.ImageSurface {
	t.Helper()
	s := solid(t, w, h, color.RGBA{})
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.SetRGBA(x, y, c)
		}
	}
	return s
}

func shared(t *testing.T, s *surface.ImageSurface, typ surface.Type) *surface.Shared {
	t.Helper()
	sh, err := surface.Wrap(s, typ)
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	return sh
}

// testParams returns parameters for a w x h canvas with an identity
// transform, a filter region covering the canvas, and sRGB filter math.
func testParams(t *testing.T, src *surface.ImageSurface) Params {
	t.Helper()
	canvas := svgfilter.RectFromImage(src.Bounds())
	return Params{
		SourceGraphic:      shared(t, src, surface.SRGB),
		Region:             canvas,
		Transform:          svgfilter.Identity(),
		BoundingBox:        canvas,
		Viewport:           canvas,
		PrimitiveUnits:     UserSpaceOnUse,
		ColorInterpolation: ColorInterpolationSRGB,
	}
}

func newTestContext(t *testing.T, p Params) *Context {
	t.Helper()
	ctx, err := NewContext(p)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func near(a, b color.RGBA, tol int) bool {
	return absDiff(a.R, b.R) <= tol && absDiff(a.G, b.G) <= tol &&
		absDiff(a.B, b.B) <= tol && absDiff(a.A, b.A) <= tol
}

func TestNewContextRequiresSource(t *testing.T) {
	if _, err := NewContext(Params{}); err == nil {
		t.Error("NewContext accepted a nil source graphic")
	}
}

func TestContextRegionClippedToCanvas(t *testing.T) {
	p := testParams(t, solid(t, 10, 10, opaqueRed))
	p.Region = svgfilter.XYWH(-5, 2.5, 30, 4)
	ctx := newTestContext(t, p)
	if diff := cmp.Diff(image.Rect(0, 2, 10, 7), ctx.Region()); diff != "" {
		t.Errorf("Region mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveAbsentInputIsSourceGraphic(t *testing.T) {
	p := testParams(t, solid(t, 4, 4, opaqueRed))
	ctx := newTestContext(t, p)

	in, err := ctx.Resolve(nil, ColorInterpolationNone)
	if err != nil {
		t.Fatalf("Resolve(nil): %v", err)
	}
	if in.Surface != p.SourceGraphic {
		t.Error("absent input did not resolve to SourceGraphic")
	}
	if !in.Standard || in.Bounds != ctx.Region() {
		t.Errorf("input = %+v, want a standard input over the region", in)
	}
}

func TestResolveAbsentInputIsLastResult(t *testing.T) {
	ctx := newTestContext(t, testParams(t, solid(t, 4, 4, opaqueRed)))
	prev := Output{Surface: shared(t, solid(t, 4, 4, opaqueBlue), surface.SRGB), Bounds: image.Rect(1, 1, 2, 2)}
	ctx.Store(Result{Output: prev})

	in, err := ctx.Resolve(nil, ColorInterpolationNone)
	if err != nil {
		t.Fatal(err)
	}
	if in.Surface != prev.Surface || in.Bounds != prev.Bounds || in.Standard {
		t.Errorf("input = %+v, want the previous result", in)
	}
	if _, ok := ctx.Result(""); ok {
		t.Error("an unnamed result was stored under the empty name")
	}
}

func TestResolveNamedReference(t *testing.T) {
	ctx := newTestContext(t, testParams(t, solid(t, 4, 4, opaqueRed)))

	_, err := ctx.Resolve(&Input{Name: "missing"}, ColorInterpolationNone)
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("err = %v, want ErrInvalidReference", err)
	}

	first := Output{Surface: shared(t, solid(t, 4, 4, opaqueBlue), surface.SRGB), Bounds: image.Rect(0, 0, 1, 1)}
	second := Output{Surface: shared(t, solid(t, 4, 4, opaqueRed), surface.SRGB), Bounds: image.Rect(0, 0, 2, 2)}
	ctx.Store(Result{Name: "a", Output: first})
	ctx.Store(Result{Name: "a", Output: second})

	in, err := ctx.Resolve(&Input{Name: "a"}, ColorInterpolationNone)
	if err != nil {
		t.Fatal(err)
	}
	if in.Surface != second.Surface {
		t.Error("named reference did not resolve to the most recent output")
	}
	if last, _ := ctx.Last(); last.Surface != second.Surface {
		t.Error("Last is not the most recent output")
	}
}

func TestResolveSourceAlpha(t *testing.T) {
	src := square(t, 6, 6, image.Rect(1, 1, 3, 3), color.RGBA{40, 80, 120, 200})
	ctx := newTestContext(t, testParams(t, src))

	a1, err := ctx.Resolve(&Input{Kind: InputSourceAlpha}, ColorInterpolationLinearRGB)
	if err != nil {
		t.Fatal(err)
	}
	if !a1.Surface.IsAlphaOnly() {
		t.Fatalf("type = %v, want alpha-only", a1.Surface.SurfaceType())
	}
	if got := a1.Surface.RGBAAt(2, 2); got != (color.RGBA{A: 200}) {
		t.Errorf("SourceAlpha(2,2) = %v, want alpha 200 only", got)
	}

	a2, err := ctx.Resolve(&Input{Kind: InputSourceAlpha}, ColorInterpolationSRGB)
	if err != nil {
		t.Fatal(err)
	}
	if a1.Surface != a2.Surface {
		t.Error("SourceAlpha was extracted twice")
	}
}

func TestResolveMissingOptionalInputs(t *testing.T) {
	ctx := newTestContext(t, testParams(t, solid(t, 4, 4, opaqueRed)))
	for _, kind := range []InputKind{InputBackgroundImage, InputBackgroundAlpha, InputFillPaint, InputStrokePaint} {
		in, err := ctx.Resolve(&Input{Kind: kind}, ColorInterpolationNone)
		if err != nil {
			t.Errorf("%v: %v", kind, err)
			continue
		}
		if in.Surface.Width() != 4 || in.Surface.Height() != 4 {
			t.Errorf("%v: size %dx%d, want canvas size", kind, in.Surface.Width(), in.Surface.Height())
		}
		if got := in.Surface.RGBAAt(1, 1); got != (color.RGBA{}) {
			t.Errorf("%v: pixel = %v, want transparent", kind, got)
		}
	}
}

func TestResolveSuppliedOptionalInputs(t *testing.T) {
	p := testParams(t, solid(t, 4, 4, opaqueRed))
	p.BackgroundImage = shared(t, solid(t, 4, 4, opaqueBlue), surface.SRGB)
	p.FillPaint = shared(t, solid(t, 4, 4, opaqueBlue), surface.SRGB)
	ctx := newTestContext(t, p)

	bg, err := ctx.Resolve(&Input{Kind: InputBackgroundImage}, ColorInterpolationNone)
	if err != nil {
		t.Fatal(err)
	}
	if bg.Surface != p.BackgroundImage {
		t.Error("BackgroundImage is not the supplied surface")
	}
	fill, err := ctx.Resolve(&Input{Kind: InputFillPaint}, ColorInterpolationNone)
	if err != nil {
		t.Fatal(err)
	}
	if fill.Surface != p.FillPaint {
		t.Error("FillPaint is not the supplied surface")
	}
	ba, err := ctx.Resolve(&Input{Kind: InputBackgroundAlpha}, ColorInterpolationNone)
	if err != nil {
		t.Fatal(err)
	}
	if got := ba.Surface.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("BackgroundAlpha = %v, want opaque alpha", got)
	}
}

func TestResolveConvertsAndMemoises(t *testing.T) {
	p := testParams(t, solid(t, 2, 2, color.RGBA{128, 128, 128, 255}))
	ctx := newTestContext(t, p)

	lin1, err := ctx.Resolve(&Input{Kind: InputSourceGraphic}, ColorInterpolationLinearRGB)
	if err != nil {
		t.Fatal(err)
	}
	if lin1.Surface.SurfaceType() != surface.LinearRGB {
		t.Fatalf("type = %v, want linearRGB", lin1.Surface.SurfaceType())
	}
	if got := lin1.Surface.RGBAAt(0, 0); got != (color.RGBA{55, 55, 55, 255}) {
		t.Errorf("linear pixel = %v, want 55", got)
	}

	lin2, err := ctx.Resolve(&Input{Kind: InputSourceGraphic}, ColorInterpolationLinearRGB)
	if err != nil {
		t.Fatal(err)
	}
	if lin1.Surface != lin2.Surface {
		t.Error("conversion was not memoised")
	}

	same, err := ctx.Resolve(&Input{Kind: InputSourceGraphic}, ColorInterpolationSRGB)
	if err != nil {
		t.Fatal(err)
	}
	if same.Surface != p.SourceGraphic {
		t.Error("resolving into the current space made a copy")
	}
}
