// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the raster surfaces the filter engine renders
// into.
//
// The package has two layers:
//
//   - ImageSurface and Context are a minimal software compositor over
//     premultiplied *image.RGBA buffers: allocate, clip, set a source,
//     select an operator and paint. Errors are sticky, in the style of
//     cairo's surface status.
//   - Shared is an immutable, color-space-tagged wrapper over an
//     ImageSurface. It may be aliased freely; every operation that changes
//     pixels returns a new surface.
//
// # Usage
//
//	s, err := surface.NewImageSurface(200, 100)
//	if err != nil {
//	    return err
//	}
//	cr := surface.NewContext(s)
//	cr.SetSourceColor(color.RGBA{255, 0, 0, 255})
//	cr.Clip(image.Rect(10, 10, 50, 50))
//	cr.Paint()
//
//	shared, err := surface.Wrap(s, surface.SRGB)
//	if err != nil {
//	    return err
//	}
//	linear, err := shared.ToLinearRGB()
//
// # References
//
//   - Cairo: https://cairographics.org/manual/cairo-Image-Surfaces.html
//   - Filter Effects: https://www.w3.org/TR/filter-effects-1/
package surface
