// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

// MaxSize is the largest supported width or height in pixels.
const MaxSize = 32767

var (
	// ErrIntermediateSurfaceCreation is returned when a surface cannot be
	// allocated.
	ErrIntermediateSurfaceCreation = errors.New("surface: failed to create intermediate surface")

	// ErrBadIntermediateSurfaceStatus is returned when a surface is wrapped
	// or used while it is in an error state.
	ErrBadIntermediateSurfaceStatus = errors.New("surface: bad intermediate surface status")

	// ErrNoSource is the status of a surface painted without a source.
	ErrNoSource = errors.New("surface: paint without source")

	// ErrInvalidSource is the status of a surface painted from a source in
	// an error state.
	ErrInvalidSource = errors.New("surface: source in error state")
)
