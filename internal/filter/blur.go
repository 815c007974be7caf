// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"image"
	"sync"
)

// Blur applies a separable Gaussian blur with deviations sx and sy to the
// pixels of src inside r and writes the result into dst inside r.
//
// Each pass is a direct convolution with a sampled Gaussian kernel.
// Pixels outside r read as transparent black, matching the SVG edge mode
// "none", so the kernel is truncated to the extent of r and the cost does
// not grow with the deviation. A non-positive deviation skips the pass in
// that direction.
func Blur(dst, src *image.RGBA, r image.Rectangle, sx, sy float64) {
	r = r.Intersect(src.Rect).Intersect(dst.Rect)
	if r.Empty() {
		return
	}

	w, h := r.Dx(), r.Dy()
	temp := getTempBuffer(w * h * 4)
	defer putTempBuffer(temp)

	// Pass 1: horizontal (src -> temp).
	kx := CachedGaussianKernel(sx, w-1)
	half := len(kx) / 2
	for y := 0; y < h; y++ {
		row := src.Pix[src.PixOffset(r.Min.X, r.Min.Y+y):]
		out := temp[y*w*4 : (y+1)*w*4]
		for x := 0; x < w; x++ {
			var cr, cg, cb, ca float32
			for k, weight := range kx {
				ix := x + k - half
				if ix < 0 || ix >= w {
					continue
				}
				p := row[ix*4 : ix*4+4 : ix*4+4]
				cr += float32(p[0]) * weight
				cg += float32(p[1]) * weight
				cb += float32(p[2]) * weight
				ca += float32(p[3]) * weight
			}
			out[x*4+0] = cr
			out[x*4+1] = cg
			out[x*4+2] = cb
			out[x*4+3] = ca
		}
	}

	// Pass 2: vertical (temp -> dst).
	ky := CachedGaussianKernel(sy, h-1)
	half = len(ky) / 2
	for y := 0; y < h; y++ {
		out := dst.Pix[dst.PixOffset(r.Min.X, r.Min.Y+y):]
		for x := 0; x < w; x++ {
			var cr, cg, cb, ca float32
			for k, weight := range ky {
				iy := y + k - half
				if iy < 0 || iy >= h {
					continue
				}
				i := (iy*w + x) * 4
				cr += temp[i+0] * weight
				cg += temp[i+1] * weight
				cb += temp[i+2] * weight
				ca += temp[i+3] * weight
			}
			a := clampUint8(ca)
			out[x*4+0] = min(clampUint8(cr), a)
			out[x*4+1] = min(clampUint8(cg), a)
			out[x*4+2] = min(clampUint8(cb), a)
			out[x*4+3] = a
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{data: make([]float32, 256*256*4)}
	},
}

// getTempBuffer returns a zeroed buffer of n elements.
func getTempBuffer(n int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < n {
		tempBufferPool.Put(wrapper)
		return make([]float32, n)
	}
	buf := wrapper.data[:n]
	clear(buf)
	return buf
}

func putTempBuffer(buf []float32) {
	// Keep pooled buffers under 64MB.
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps v to [0, 255] and rounds to the nearest integer.
func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
