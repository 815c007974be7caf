// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// mulDiv255 multiplies two bytes and divides by 255 with correct rounding.
//
// Formula: t = a*b + 128; (t + (t >> 8)) >> 8
//
// This is Alvy Ray Smith's exact division by 255 and gives the same result as
// round(a*b/255) for every input pair.
func mulDiv255(a, b byte) byte {
	t := uint16(a)*uint16(b) + 128
	return byte((t + (t >> 8)) >> 8)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// unit maps a byte to [0, 1].
func unit(v byte) float32 {
	return float32(v) / 255
}

// toByte maps [0, 1] to a byte, rounding to nearest and clamping.
func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}

// clampUnit clamps v to [0, 1].
func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
