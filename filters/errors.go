// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"errors"
	"fmt"

	"github.com/gogpu/svgfilter/surface"
)

var (
	// ErrParse matches every *ParseError through errors.Is.
	ErrParse = errors.New("filters: parse error")

	// ErrInvalidReference is returned when an input names a result that no
	// earlier primitive produced.
	ErrInvalidReference = errors.New("filters: invalid reference")

	// ErrIntermediateSurfaceCreation is returned when a working surface
	// cannot be allocated.
	ErrIntermediateSurfaceCreation = surface.ErrIntermediateSurfaceCreation

	// ErrBadIntermediateSurfaceStatus is returned when a working surface
	// entered an error state.
	ErrBadIntermediateSurfaceStatus = surface.ErrBadIntermediateSurfaceStatus

	// ErrUnsupportedPrimitive is wrapped by the parse error of an element
	// that is not a known filter primitive.
	ErrUnsupportedPrimitive = errors.New("unsupported filter primitive")
)

// ParseError describes a malformed attribute value.
type ParseError struct {
	Attr  string // attribute name
	Value string // raw attribute value
	Err   error  // underlying cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("filters: invalid value %q for attribute %q: %v", e.Value, e.Attr, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func parseError(attr, value string, err error) *ParseError {
	return &ParseError{Attr: attr, Value: value, Err: err}
}

func parseErrorf(attr, value, format string, args ...any) *ParseError {
	return &ParseError{Attr: attr, Value: value, Err: fmt.Errorf(format, args...)}
}
