// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package color provides the sRGB transfer function tables used by filter
// surfaces to move between sRGB and linear-light RGB.
//
// Both tables map an 8-bit channel value to an 8-bit channel value. They are
// computed once at package initialisation; the computation is deterministic,
// so the result is identical to tables generated ahead of time.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - Filter Effects, color-interpolation-filters:
//     https://www.w3.org/TR/filter-effects-1/#ColorInterpolationFiltersProperty
package color

import "math"

// linearizeTable maps an sRGB byte to a linear-light byte.
var linearizeTable [256]uint8

// unlinearizeTable maps a linear-light byte to an sRGB byte.
var unlinearizeTable [256]uint8

func init() {
	linearizeTable = ComputeTable(Linearize)
	unlinearizeTable = ComputeTable(Unlinearize)
}

// Linearize converts an sRGB component to linear light (undoes the gamma
// curve). Input and output are in [0, 1].
func Linearize(c float64) float64 {
	if c <= 12.92*0.0031308 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Unlinearize converts a linear-light component to sRGB (applies the gamma
// curve). Input and output are in [0, 1].
func Unlinearize(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// ComputeTable samples f at 256 evenly spaced points over [0, 1] and rounds
// 255*f(c) to the nearest integer, halves away from zero.
func ComputeTable(f func(float64) float64) [256]uint8 {
	var table [256]uint8
	for i := range table {
		v := math.Round(f(float64(i)/255) * 255)
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		table[i] = uint8(v)
	}
	return table
}

// LinearizeTable returns a copy of the sRGB to linear table.
func LinearizeTable() [256]uint8 {
	return linearizeTable
}

// UnlinearizeTable returns a copy of the linear to sRGB table.
func UnlinearizeTable() [256]uint8 {
	return unlinearizeTable
}

// LinearizeByte converts one sRGB channel byte to linear light.
func LinearizeByte(v uint8) uint8 {
	return linearizeTable[v]
}

// UnlinearizeByte converts one linear-light channel byte to sRGB.
func UnlinearizeByte(v uint8) uint8 {
	return unlinearizeTable[v]
}
