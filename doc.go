// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svgfilter is the execution engine for SVG filter effects.
//
// A filter is a chain of primitives (feBlend, feColorMatrix, feFlood,
// feGaussianBlur, feOffset) evaluated against raster surfaces. Each primitive
// resolves its inputs by reserved token (SourceGraphic, SourceAlpha, ...) or
// by the result name of an earlier primitive, computes its output bounds and
// stores a named output that later primitives may read.
//
// The root package holds the pieces shared by every sub-package: the
// user-to-device [Matrix], the [Rect] type used for filter regions and
// subregions, and the package logger.
//
// Sub-packages:
//   - surface: premultiplied backend surfaces, the drawing context used for
//     compositing, and the color-space tagged Shared image.
//   - filters: attribute parsing, input resolution, the filter context and
//     the primitives themselves.
//
// Quick start:
//
//	f := filters.ParseFilter(filterAttrs, []filters.Element{
//	    {Name: "feBlend", Attrs: filters.Attributes{
//	        {Name: "in", Value: "SourceGraphic"},
//	        {Name: "in2", Value: "BackgroundImage"},
//	        {Name: "mode", Value: "multiply"},
//	    }},
//	})
//	out, err := f.Apply(ctx, filters.DrawInput{SourceGraphic: src, Transform: svgfilter.Identity()})
//
// Logging is silent by default; see [SetLogger].
package svgfilter
