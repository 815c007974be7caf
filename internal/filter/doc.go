// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package filter provides the pixel kernels behind the SVG filter
// primitives.
//
// All kernels operate on premultiplied *image.RGBA buffers and touch only
// the pixels inside the rectangle they are given:
//   - Gaussian blur (separable, transparent-black edges, cached kernels)
//   - Color matrix (4x5, applied to un-premultiplied values)
//   - Alpha extraction (SourceAlpha, BackgroundAlpha)
//   - Offset (integer device-pixel translation)
//
// Source and destination buffers must have the same bounds.
package filter
