// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"image"

	"golang.org/x/image/draw"
)

// Offset writes src translated by (dx, dy) device pixels into dst, limited
// to r. Pixels of dst inside r that have no source are left untouched.
func Offset(dst, src *image.RGBA, r image.Rectangle, dx, dy int) {
	r = r.Intersect(dst.Rect)
	if r.Empty() {
		return
	}
	d := image.Pt(dx, dy)
	// dst(p) = src(p - d); draw clips against src bounds.
	draw.Draw(dst, r, src, r.Min.Sub(d), draw.Src)
}
