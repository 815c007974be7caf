// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filters

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/gogpu/svgfilter"
)

const instrumentationName = "github.com/gogpu/svgfilter/filters"

// telemetry holds the tracer and instruments used by Apply. Instruments
// that fail to initialize are left nil and skipped.
type telemetry struct {
	tracer trace.Tracer

	primitiveDuration  metric.Float64Histogram
	primitiveSuccesses metric.Int64Counter
	primitiveFailures  metric.Int64Counter
	applyDuration      metric.Float64Histogram
}

func newTelemetry(o contextOptions) *telemetry {
	meter := o.meterProvider.Meter(instrumentationName)
	t := &telemetry{tracer: o.tracerProvider.Tracer(instrumentationName)}

	var failed []string
	var err error
	t.primitiveDuration, err = meter.Float64Histogram("svgfilter_primitive_duration_seconds",
		metric.WithDescription("Time spent rendering each filter primitive"),
		metric.WithUnit("s"),
	)
	if err != nil {
		failed = append(failed, "primitive_duration: "+err.Error())
	}
	t.primitiveSuccesses, err = meter.Int64Counter("svgfilter_primitive_success_total",
		metric.WithDescription("Number of filter primitives rendered successfully"),
	)
	if err != nil {
		failed = append(failed, "primitive_successes: "+err.Error())
	}
	t.primitiveFailures, err = meter.Int64Counter("svgfilter_primitive_failure_total",
		metric.WithDescription("Number of filter primitives that failed to render"),
	)
	if err != nil {
		failed = append(failed, "primitive_failures: "+err.Error())
	}
	t.applyDuration, err = meter.Float64Histogram("svgfilter_apply_duration_seconds",
		metric.WithDescription("Total time spent applying a filter chain"),
		metric.WithUnit("s"),
	)
	if err != nil {
		failed = append(failed, "apply_duration: "+err.Error())
	}

	if len(failed) > 0 {
		svgfilter.Logger().Error("failed to initialize filter metrics",
			slog.Int("failed_count", len(failed)),
			slog.Any("errors", failed),
		)
	}
	return t
}
