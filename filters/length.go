// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Length is a coordinate or size attribute: a number, optionally followed
// by "px" or "%".
type Length struct {
	Value   float64
	Percent bool
}

// ParseLength parses a length attribute.
func ParseLength(attr, raw string) (Length, error) {
	s := strings.TrimSpace(raw)
	l := Length{}
	switch {
	case strings.HasSuffix(s, "%"):
		s = strings.TrimSuffix(s, "%")
		l.Percent = true
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	v, err := parseNumber(s)
	if err != nil {
		return Length{}, parseError(attr, raw, err)
	}
	l.Value = v
	return l, nil
}

// parseNonNegativeLength parses a size attribute. Negative sizes are
// errors.
func parseNonNegativeLength(attr, raw string) (Length, error) {
	l, err := ParseLength(attr, raw)
	if err != nil {
		return Length{}, err
	}
	if l.Value < 0 {
		return Length{}, parseError(attr, raw, errors.New("negative size"))
	}
	return l, nil
}

// fraction returns the length as a fraction of a reference dimension for
// objectBoundingBox units: percentages divide by 100, plain numbers are
// already fractions.
func (l Length) fraction() float64 {
	if l.Percent {
		return l.Value / 100
	}
	return l.Value
}

// user returns the length in user units, resolving percentages against
// ref.
func (l Length) user(ref float64) float64 {
	if l.Percent {
		return l.Value / 100 * ref
	}
	return l.Value
}

// String returns the attribute spelling.
func (l Length) String() string {
	s := strconv.FormatFloat(l.Value, 'g', -1, 64)
	if l.Percent {
		return s + "%"
	}
	return s
}

// parseNumber parses a finite SVG number.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("expected number")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("expected number: %w", err)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.New("number out of range")
	}
	return v, nil
}

// parseNumberList parses a list of numbers separated by whitespace and/or
// a comma.
func parseNumberList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := parseNumber(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
