// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"errors"
	"strings"
)

// InputKind identifies what an Input refers to.
type InputKind uint8

const (
	// InputReference names the result of an earlier primitive.
	InputReference InputKind = iota
	InputSourceGraphic
	InputSourceAlpha
	InputBackgroundImage
	InputBackgroundAlpha
	InputFillPaint
	InputStrokePaint
)

var reservedInputs = [...]string{
	InputSourceGraphic:   "SourceGraphic",
	InputSourceAlpha:     "SourceAlpha",
	InputBackgroundImage: "BackgroundImage",
	InputBackgroundAlpha: "BackgroundAlpha",
	InputFillPaint:       "FillPaint",
	InputStrokePaint:     "StrokePaint",
}

// Input is the value of an "in" or "in2" attribute.
type Input struct {
	Kind InputKind
	Name string // result name, set only for InputReference
}

// ParseInput parses the value of the input attribute attr.
//
// The six reserved keywords are matched exactly. Any other non-empty value
// is a reference to a named result. An empty value, or a value that differs
// from a reserved keyword only in case, is a parse error.
func ParseInput(attr, raw string) (*Input, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, parseError(attr, raw, errors.New("empty input reference"))
	}
	for kind := InputSourceGraphic; int(kind) < len(reservedInputs); kind++ {
		name := reservedInputs[kind]
		if s == name {
			return &Input{Kind: kind}, nil
		}
		if strings.EqualFold(s, name) {
			return nil, parseErrorf(attr, raw, "reserved input must be spelled %q", name)
		}
	}
	return &Input{Kind: InputReference, Name: s}, nil
}

// IsStandard reports whether in is one of the reserved inputs.
func (in *Input) IsStandard() bool {
	return in != nil && in.Kind != InputReference
}

// String returns the attribute spelling of the input.
func (in *Input) String() string {
	if in == nil {
		return ""
	}
	if in.Kind == InputReference {
		return in.Name
	}
	return reservedInputs[in.Kind]
}
