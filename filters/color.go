// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"errors"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// parseColor parses an SVG color value: #rgb, #rrggbb, rgb(r, g, b) with
// integers or percentages, "transparent" or a color keyword.
func parseColor(attr, raw string) (color.NRGBA, error) {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(s, "#"):
		c, ok := parseHexColor(s[1:])
		if !ok {
			return color.NRGBA{}, parseError(attr, raw, errors.New("malformed hex color"))
		}
		return c, nil
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		c, err := parseRGBFunc(s[len("rgb(") : len(s)-1])
		if err != nil {
			return color.NRGBA{}, parseError(attr, raw, err)
		}
		return c, nil
	}

	name := strings.ToLower(s)
	switch name {
	case "transparent":
		return color.NRGBA{}, nil
	case "currentcolor":
		return color.NRGBA{}, parseError(attr, raw, errors.New("currentColor is not supported"))
	}
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, parseError(attr, raw, errors.New("unknown color"))
}

func parseHexColor(s string) (color.NRGBA, bool) {
	var digits []byte
	switch len(s) {
	case 3:
		digits = []byte{s[0], s[0], s[1], s[1], s[2], s[2]}
	case 6:
		digits = []byte(s)
	default:
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(string(digits), 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

func parseRGBFunc(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.NRGBA{}, errors.New("rgb() takes three components")
	}
	var ch [3]uint8
	for i, p := range parts {
		p = strings.TrimSpace(p)
		percent := strings.HasSuffix(p, "%")
		v, err := parseNumber(strings.TrimSuffix(p, "%"))
		if err != nil {
			return color.NRGBA{}, err
		}
		if percent {
			v = v * 255 / 100
		}
		ch[i] = uint8(min(max(v, 0), 255) + 0.5)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}
