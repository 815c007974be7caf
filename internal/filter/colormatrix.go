// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"image"
	"math"
)

// ColorMatrix is a 4x5 color transformation matrix in row-major order:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channels are un-premultiplied values in [0, 1]; the fifth column is an
// offset in the same unit.
type ColorMatrix [20]float64

// IdentityMatrix returns the matrix that leaves every pixel unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// SaturateMatrix returns the feColorMatrix "saturate" matrix. 0 produces
// grayscale and 1 is the identity.
func SaturateMatrix(s float64) ColorMatrix {
	return ColorMatrix{
		0.213 + 0.787*s, 0.715 - 0.715*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 + 0.285*s, 0.072 - 0.072*s, 0, 0,
		0.213 - 0.213*s, 0.715 - 0.715*s, 0.072 + 0.928*s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// HueRotateMatrix returns the feColorMatrix "hueRotate" matrix for an angle
// in degrees.
func HueRotateMatrix(degrees float64) ColorMatrix {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return ColorMatrix{
		0.213 + cos*0.787 - sin*0.213, 0.715 - cos*0.715 - sin*0.715, 0.072 - cos*0.072 + sin*0.928, 0, 0,
		0.213 - cos*0.213 + sin*0.143, 0.715 + cos*0.285 + sin*0.140, 0.072 - cos*0.072 - sin*0.283, 0, 0,
		0.213 - cos*0.213 - sin*0.787, 0.715 - cos*0.715 + sin*0.715, 0.072 + cos*0.928 + sin*0.072, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// LuminanceToAlphaMatrix returns the feColorMatrix "luminanceToAlpha"
// matrix. Color channels become zero.
func LuminanceToAlphaMatrix() ColorMatrix {
	return ColorMatrix{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0.2125, 0.7154, 0.0721, 0, 0,
	}
}

// ApplyColorMatrix transforms the pixels of src inside r and writes them
// premultiplied into dst.
func ApplyColorMatrix(dst, src *image.RGBA, r image.Rectangle, m *ColorMatrix) {
	r = r.Intersect(src.Rect).Intersect(dst.Rect)
	if r.Empty() {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		in := src.Pix[src.PixOffset(r.Min.X, y):]
		out := dst.Pix[dst.PixOffset(r.Min.X, y):]
		for x := 0; x < r.Dx(); x++ {
			p := in[x*4 : x*4+4 : x*4+4]
			a := float64(p[3]) / 255

			var cr, cg, cb float64
			if p[3] > 0 {
				cr = float64(p[0]) / 255 / a
				cg = float64(p[1]) / 255 / a
				cb = float64(p[2]) / 255 / a
			}

			nr := unitClamp(m[0]*cr + m[1]*cg + m[2]*cb + m[3]*a + m[4])
			ng := unitClamp(m[5]*cr + m[6]*cg + m[7]*cb + m[8]*a + m[9])
			nb := unitClamp(m[10]*cr + m[11]*cg + m[12]*cb + m[13]*a + m[14])
			na := unitClamp(m[15]*cr + m[16]*cg + m[17]*cb + m[18]*a + m[19])

			q := out[x*4 : x*4+4 : x*4+4]
			q[0] = premul(nr, na)
			q[1] = premul(ng, na)
			q[2] = premul(nb, na)
			q[3] = uint8(math.Round(na * 255))
		}
	}
}

func unitClamp(v float64) float64 {
	return min(max(v, 0), 1)
}

func premul(c, a float64) uint8 {
	return uint8(math.Round(c * a * 255))
}
