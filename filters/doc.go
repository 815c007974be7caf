// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package filters parses and renders chains of SVG filter primitives.
//
// [ParseFilter] turns the attributes of a filter element and its children
// into a [Filter]. Children that fail to parse are left out of the chain and
// logged; the rest of the chain still renders. [Filter.Apply] then runs the
// chain in document order against a [DrawInput].
//
// Each primitive resolves its inputs through a [Context]: the reserved
// inputs (SourceGraphic, SourceAlpha, BackgroundImage, BackgroundAlpha,
// FillPaint, StrokePaint), the name of an earlier result, or, when "in" is
// absent, the previous primitive's output. Inputs are converted into the
// primitive's color-interpolation-filters space before use.
//
// Output bounds are computed with a [BoundsBuilder]: the union of the input
// bounds (or the filter region for reserved inputs), overridden by the
// primitive subregion attributes and clipped to the filter region.
//
// Every application records an OpenTelemetry span with one child span per
// primitive, plus duration histograms and success/failure counters. The
// global providers are used unless [WithTracerProvider] or
// [WithMeterProvider] is given.
package filters
