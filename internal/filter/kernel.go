// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"math"

	"github.com/gogpu/svgfilter/internal/cache"
)

const (
	// maxRadius saturates KernelRadius so huge deviations cannot overflow int.
	maxRadius = 1 << 30

	// Up to this radius the normalization sum is taken tap by tap; beyond it
	// the sum is the integral of the Gaussian over the kernel support.
	maxExactRadius = 1 << 12

	// Deviations at or above this are not cached; their quantized key would
	// lose precision.
	maxCachedSigma = 1e12
)

// GaussianKernel generates a 1D Gaussian kernel for the standard deviation
// sigma holding at most limit taps on each side of the center.
//
// The full kernel size is 2*ceil(3*sigma) + 1, which covers 99.7% of the
// distribution. Truncated kernels keep the weights of the full kernel, so
// they sum to less than one. A blur over a span of n pixels never reads
// further than n-1 pixels away, which bounds the kernel by the surface
// rather than by sigma. For sigma <= 0 the kernel is the identity [1].
func GaussianKernel(sigma float64, limit int) []float32 {
	if !(sigma > 0) {
		return []float32{1}
	}

	half := min(KernelRadius(sigma), max(limit, 0))
	kernel := make([]float32, 2*half+1)
	if math.IsInf(sigma, 1) {
		return kernel
	}

	twoSigmaSq := 2 * sigma * sigma
	norm := gaussianSum(sigma)
	for i := range kernel {
		x := float64(i - half)
		kernel[i] = float32(weight(x, twoSigmaSq) / norm)
	}
	return kernel
}

// gaussianSum returns the sum of the unnormalized weights of the full
// kernel for sigma.
func gaussianSum(sigma float64) float64 {
	radius := math.Ceil(sigma * 3)
	if radius > maxExactRadius {
		return math.Sqrt(2*math.Pi) * sigma * math.Erf((radius+0.5)/(sigma*math.Sqrt2))
	}
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := -int(radius); i <= int(radius); i++ {
		x := float64(i)
		sum += weight(x, twoSigmaSq)
	}
	return sum
}

// weight is the unnormalized Gaussian at x. The center weight is exactly 1
// even when 2*sigma^2 underflows to zero.
func weight(x, twoSigmaSq float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Exp(-(x * x) / twoSigmaSq)
}

// KernelRadius returns the number of pixels a blur of deviation sigma reaches
// on each side of a pixel.
func KernelRadius(sigma float64) int {
	if !(sigma > 0) {
		return 0
	}
	r := math.Ceil(sigma * 3)
	if r >= maxRadius {
		return maxRadius
	}
	return int(r)
}

type kernelKey struct {
	sigma int64 // hundredths of a pixel
	limit int
}

var kernels = cache.New[kernelKey, []float32](64)

// CachedGaussianKernel returns a shared Gaussian kernel for sigma truncated
// to limit taps per side. Deviations are quantized to 1/100 pixel.
// The returned slice must not be modified.
func CachedGaussianKernel(sigma float64, limit int) []float32 {
	if !(sigma < maxCachedSigma) {
		return GaussianKernel(sigma, limit)
	}
	q := int64(math.Round(sigma * 100))
	return kernels.GetOrCreate(kernelKey{sigma: q, limit: limit}, func() []float32 {
		return GaussianKernel(float64(q)/100, limit)
	})
}
