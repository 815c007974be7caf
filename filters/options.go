// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default: global otel providers, 16 memoised conversions
//	out, err := f.Apply(ctx, in)
//
//	// Explicit providers
//	out, err := f.Apply(ctx, in, filters.WithTracerProvider(tp), filters.WithMeterProvider(mp))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	tracerProvider      trace.TracerProvider
	meterProvider       metric.MeterProvider
	conversionCacheSize int
}

// defaultContextOptions returns the default context options.
func defaultContextOptions() contextOptions {
	return contextOptions{
		tracerProvider:      otel.GetTracerProvider(),
		meterProvider:       otel.GetMeterProvider(),
		conversionCacheSize: 16,
	}
}

// WithTracerProvider sets the provider of the tracer that records one span
// per filter application and one child span per primitive.
func WithTracerProvider(tp trace.TracerProvider) ContextOption {
	return func(o *contextOptions) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}

// WithMeterProvider sets the provider of the meter that records primitive
// counts, failures and durations.
func WithMeterProvider(mp metric.MeterProvider) ContextOption {
	return func(o *contextOptions) {
		if mp != nil {
			o.meterProvider = mp
		}
	}
}

// WithConversionCacheSize sets how many color-space conversions of inputs
// are kept for reuse within one application. 0 means unbounded.
func WithConversionCacheSize(n int) ContextOption {
	return func(o *contextOptions) {
		o.conversionCacheSize = max(n, 0)
	}
}
