// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Type describes how the color channels of a Shared surface are encoded.
type Type uint8

const (
	// SRGB holds sRGB-encoded color channels.
	SRGB Type = iota

	// LinearRGB holds linear-light color channels.
	LinearRGB

	// AlphaOnly carries only meaningful alpha. Color channels are zero and
	// the surface can be combined with a surface of either color space.
	AlphaOnly
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case SRGB:
		return "sRGB"
	case LinearRGB:
		return "linearRGB"
	case AlphaOnly:
		return "alpha-only"
	default:
		return "unknown"
	}
}
