// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import "image"

// ExtractAlpha copies the alpha channel of src inside r into dst, setting
// the color channels to zero.
func ExtractAlpha(dst, src *image.RGBA, r image.Rectangle) {
	r = r.Intersect(src.Rect).Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		in := src.Pix[src.PixOffset(r.Min.X, y):]
		out := dst.Pix[dst.PixOffset(r.Min.X, y):]
		for x := 0; x < r.Dx(); x++ {
			i := x * 4
			out[i+0], out[i+1], out[i+2] = 0, 0, 0
			out[i+3] = in[i+3]
		}
	}
}
