// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/svgfilter"
	"github.com/gogpu/svgfilter/surface"
)

func length(v float64) *Length  { return &Length{Value: v} }
func percent(v float64) *Length { return &Length{Value: v, Percent: true} }

func namedInput(t *testing.T, ctx *Context, r image.Rectangle) FilterInput {
	t.Helper()
	src := ctx.params.SourceGraphic
	return FilterInput{Output: Output{Surface: src, Bounds: r}}
}

func TestBoundsBuilder(t *testing.T) {
	p := testParams(t, solid(t, 20, 20, opaqueRed))
	p.Region = svgfilter.XYWH(0, 0, 10, 10)
	ctx := newTestContext(t, p)

	tests := []struct {
		name   string
		base   Base
		inputs []FilterInput
		want   image.Rectangle
	}{
		{
			name: "no inputs",
			want: image.Rect(0, 0, 10, 10),
		},
		{
			name:   "standard input",
			inputs: []FilterInput{ctx.standard(ctx.params.SourceGraphic)},
			want:   image.Rect(0, 0, 10, 10),
		},
		{
			name: "union of inputs",
			inputs: []FilterInput{
				namedInput(t, ctx, image.Rect(2, 2, 5, 5)),
				namedInput(t, ctx, image.Rect(4, 1, 6, 3)),
			},
			want: image.Rect(2, 1, 6, 5),
		},
		{
			name:   "clipped to region",
			inputs: []FilterInput{namedInput(t, ctx, image.Rect(5, 5, 15, 15))},
			want:   image.Rect(5, 5, 10, 10),
		},
		{
			name: "standard input wins over named",
			inputs: []FilterInput{
				namedInput(t, ctx, image.Rect(2, 2, 5, 5)),
				ctx.standard(ctx.params.SourceGraphic),
			},
			want: image.Rect(0, 0, 10, 10),
		},
		{
			name:   "x and width override",
			base:   Base{X: length(1), Width: length(3)},
			inputs: []FilterInput{namedInput(t, ctx, image.Rect(2, 2, 5, 5))},
			want:   image.Rect(1, 2, 4, 5),
		},
		{
			name:   "y and height override",
			base:   Base{Y: length(6), Height: length(10)},
			inputs: []FilterInput{namedInput(t, ctx, image.Rect(2, 2, 5, 5))},
			want:   image.Rect(2, 6, 5, 10),
		},
		{
			name: "fractional subregion rounds outwards",
			base: Base{X: length(1.5), Y: length(1.5), Width: length(2), Height: length(2)},
			want: image.Rect(1, 1, 4, 4),
		},
		{
			name: "percentages of the viewport",
			base: Base{X: percent(10), Width: percent(50)},
			want: image.Rect(2, 0, 10, 10),
		},
		{
			name: "zero width",
			base: Base{Width: length(0)},
			want: image.Rectangle{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.base.BoundsFor(ctx)
			for _, in := range tt.inputs {
				b.AddInput(in)
			}
			got := b.Rect()
			if got.Empty() && tt.want.Empty() {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Rect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBoundsBuilderObjectBoundingBox(t *testing.T) {
	p := testParams(t, solid(t, 20, 20, opaqueRed))
	p.BoundingBox = svgfilter.XYWH(4, 4, 8, 8)
	p.PrimitiveUnits = ObjectBoundingBox
	ctx := newTestContext(t, p)

	base := Base{X: length(0.25), Y: percent(50), Width: length(0.5), Height: percent(25)}
	got := base.BoundsFor(ctx).Rect()
	if diff := cmp.Diff(image.Rect(6, 8, 10, 10), got); diff != "" {
		t.Errorf("Rect mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundsBuilderTransform(t *testing.T) {
	p := testParams(t, solid(t, 40, 40, opaqueRed))
	p.Region = svgfilter.XYWH(0, 0, 10, 10)
	p.Transform = svgfilter.Translate(2, 0).Multiply(svgfilter.Scale(2, 2))
	ctx := newTestContext(t, p)

	if diff := cmp.Diff(image.Rect(2, 0, 22, 20), ctx.Region()); diff != "" {
		t.Fatalf("Region mismatch (-want +got):\n%s", diff)
	}

	base := Base{X: length(2), Width: length(3)}
	got := base.BoundsFor(ctx).AddInput(namedInput(t, ctx, image.Rect(4, 4, 10, 10))).Rect()
	if diff := cmp.Diff(image.Rect(6, 4, 12, 10), got); diff != "" {
		t.Errorf("Rect mismatch (-want +got):\n%s", diff)
	}
}

func TestToPixelsIgnoresRoundingNoise(t *testing.T) {
	r := svgfilter.Rect{X0: 1 + 1e-9, Y0: 2 - 1e-9, X1: 5 - 1e-9, Y1: 7 + 1e-9}
	if got := toPixels(r); got != image.Rect(1, 2, 5, 7) {
		t.Errorf("toPixels = %v, want (1,2)-(5,7)", got)
	}
	if got := toPixels(svgfilter.Rect{}); got != (image.Rectangle{}) {
		t.Errorf("toPixels(empty) = %v", got)
	}
}

func TestBlendBoundsAreRegionIntersectInputs(t *testing.T) {
	p := testParams(t, solid(t, 12, 12, opaqueRed))
	p.Region = svgfilter.XYWH(0, 0, 10, 10)
	ctx := newTestContext(t, p)

	ctx.Store(Result{Name: "a", Output: Output{Surface: shared(t, solid(t, 12, 12, opaqueRed), surface.SRGB), Bounds: image.Rect(1, 1, 4, 4)}})
	ctx.Store(Result{Name: "b", Output: Output{Surface: shared(t, solid(t, 12, 12, opaqueBlue), surface.SRGB), Bounds: image.Rect(3, 3, 12, 12)}})

	b := &Blend{Base: Base{In: &Input{Name: "a"}}, In2: &Input{Name: "b"}}
	res, err := render(b, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(image.Rect(1, 1, 10, 10), res.Output.Bounds); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}
