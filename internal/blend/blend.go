// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blend implements the compositing operators used by filter
// surfaces: the Porter-Duff source, clear and source-over operators, and the
// separable and non-separable blend modes of W3C Compositing and Blending
// Level 1.
//
// All operations work on premultiplied RGBA bytes.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects a compositing operator.
type Mode uint8

const (
	ModeClear  Mode = iota // Result: 0
	ModeSource             // Result: S
	ModeOver               // Result: S + D*(1-Sa)

	// Separable blend modes.
	ModeMultiply   // B = Cb * Cs
	ModeScreen     // B = Cb + Cs - Cb*Cs
	ModeOverlay    // HardLight with layers swapped
	ModeDarken     // B = min(Cb, Cs)
	ModeLighten    // B = max(Cb, Cs)
	ModeColorDodge // B = min(1, Cb / (1 - Cs))
	ModeColorBurn  // B = 1 - min(1, (1 - Cb) / Cs)
	ModeHardLight  // Multiply or Screen depending on source
	ModeSoftLight  // Darken or lighten depending on source
	ModeDifference // B = |Cb - Cs|
	ModeExclusion  // B = Cb + Cs - 2*Cb*Cs

	// Non-separable blend modes.
	ModeHue
	ModeSaturation
	ModeColor
	ModeLuminosity
)

var modeNames = [...]string{
	ModeClear:      "clear",
	ModeSource:     "source",
	ModeOver:       "over",
	ModeMultiply:   "multiply",
	ModeScreen:     "screen",
	ModeOverlay:    "overlay",
	ModeDarken:     "darken",
	ModeLighten:    "lighten",
	ModeColorDodge: "color-dodge",
	ModeColorBurn:  "color-burn",
	ModeHardLight:  "hard-light",
	ModeSoftLight:  "soft-light",
	ModeDifference: "difference",
	ModeExclusion:  "exclusion",
	ModeHue:        "hsl-hue",
	ModeSaturation: "hsl-saturation",
	ModeColor:      "hsl-color",
	ModeLuminosity: "hsl-luminosity",
}

// String returns the operator name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Func composites one premultiplied source pixel onto one premultiplied
// destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// For returns the compositing function for mode.
// Unknown modes fall back to source-over.
func For(mode Mode) Func {
	switch mode {
	case ModeClear:
		return clearPixel
	case ModeSource:
		return source
	case ModeOver:
		return over
	case ModeMultiply:
		return separable(multiply)
	case ModeScreen:
		return separable(screen)
	case ModeOverlay:
		return separable(overlay)
	case ModeDarken:
		return separable(darken)
	case ModeLighten:
		return separable(lighten)
	case ModeColorDodge:
		return separable(colorDodge)
	case ModeColorBurn:
		return separable(colorBurn)
	case ModeHardLight:
		return separable(hardLight)
	case ModeSoftLight:
		return separable(softLight)
	case ModeDifference:
		return separable(difference)
	case ModeExclusion:
		return separable(exclusion)
	case ModeHue:
		return nonSeparable(hue)
	case ModeSaturation:
		return nonSeparable(saturation)
	case ModeColor:
		return nonSeparable(colorMode)
	case ModeLuminosity:
		return nonSeparable(luminosity)
	default:
		return over
	}
}

// Row composites a row of premultiplied RGBA source pixels onto dst in
// place. Both slices hold 4 bytes per pixel; the shorter length wins.
func Row(dst, src []byte, f Func) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		dst[i], dst[i+1], dst[i+2], dst[i+3] = f(
			src[i], src[i+1], src[i+2], src[i+3],
			dst[i], dst[i+1], dst[i+2], dst[i+3],
		)
	}
}

func clearPixel(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func source(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// over composites source over destination.
// Formula: S + D * (1 - Sa)
func over(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}
