// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"errors"
	"strings"

	"github.com/gogpu/svgfilter/surface"
)

// Units selects the coordinate system of filterUnits and primitiveUnits.
type Units uint8

const (
	UserSpaceOnUse Units = iota
	ObjectBoundingBox
)

// ParseUnits parses a filterUnits or primitiveUnits value.
func ParseUnits(attr, raw string) (Units, error) {
	switch strings.TrimSpace(raw) {
	case "userSpaceOnUse":
		return UserSpaceOnUse, nil
	case "objectBoundingBox":
		return ObjectBoundingBox, nil
	default:
		return UserSpaceOnUse, parseError(attr, raw, errors.New("expected userSpaceOnUse or objectBoundingBox"))
	}
}

func (u Units) String() string {
	if u == ObjectBoundingBox {
		return "objectBoundingBox"
	}
	return "userSpaceOnUse"
}

// ColorInterpolation is the value of color-interpolation-filters: the
// color space filter math runs in.
type ColorInterpolation uint8

const (
	// ColorInterpolationNone means no value was given. As an argument to
	// Resolve it means the input keeps its current color space.
	ColorInterpolationNone ColorInterpolation = iota
	ColorInterpolationSRGB
	ColorInterpolationLinearRGB
)

// ParseColorInterpolation parses a color-interpolation-filters value.
// "auto" selects linearRGB; "inherit" yields ColorInterpolationNone so that
// the value of the filter element applies.
func ParseColorInterpolation(attr, raw string) (ColorInterpolation, error) {
	switch strings.TrimSpace(raw) {
	case "sRGB":
		return ColorInterpolationSRGB, nil
	case "linearRGB", "auto":
		return ColorInterpolationLinearRGB, nil
	case "inherit":
		return ColorInterpolationNone, nil
	default:
		return ColorInterpolationNone, parseError(attr, raw, errors.New("expected auto, sRGB, linearRGB or inherit"))
	}
}

func (c ColorInterpolation) String() string {
	switch c {
	case ColorInterpolationSRGB:
		return "sRGB"
	case ColorInterpolationLinearRGB:
		return "linearRGB"
	default:
		return "none"
	}
}

// surfaceType returns the surface type matching c.
func (c ColorInterpolation) surfaceType() surface.Type {
	if c == ColorInterpolationLinearRGB {
		return surface.LinearRGB
	}
	return surface.SRGB
}
