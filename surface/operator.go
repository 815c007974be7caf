// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/svgfilter/internal/blend"

// Operator selects how Paint combines the source with the target.
type Operator uint8

const (
	OperatorOver Operator = iota
	OperatorClear
	OperatorSource
	OperatorMultiply
	OperatorScreen
	OperatorOverlay
	OperatorDarken
	OperatorLighten
	OperatorColorDodge
	OperatorColorBurn
	OperatorHardLight
	OperatorSoftLight
	OperatorDifference
	OperatorExclusion
	OperatorHSLHue
	OperatorHSLSaturation
	OperatorHSLColor
	OperatorHSLLuminosity
)

var operatorModes = [...]blend.Mode{
	OperatorOver:          blend.ModeOver,
	OperatorClear:         blend.ModeClear,
	OperatorSource:        blend.ModeSource,
	OperatorMultiply:      blend.ModeMultiply,
	OperatorScreen:        blend.ModeScreen,
	OperatorOverlay:       blend.ModeOverlay,
	OperatorDarken:        blend.ModeDarken,
	OperatorLighten:       blend.ModeLighten,
	OperatorColorDodge:    blend.ModeColorDodge,
	OperatorColorBurn:     blend.ModeColorBurn,
	OperatorHardLight:     blend.ModeHardLight,
	OperatorSoftLight:     blend.ModeSoftLight,
	OperatorDifference:    blend.ModeDifference,
	OperatorExclusion:     blend.ModeExclusion,
	OperatorHSLHue:        blend.ModeHue,
	OperatorHSLSaturation: blend.ModeSaturation,
	OperatorHSLColor:      blend.ModeColor,
	OperatorHSLLuminosity: blend.ModeLuminosity,
}

// mode returns the blend mode implementing op.
func (op Operator) mode() blend.Mode {
	if int(op) < len(operatorModes) {
		return operatorModes[op]
	}
	return blend.ModeOver
}

// String returns the operator name.
func (op Operator) String() string {
	return op.mode().String()
}
