// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

// Package probeotel provides OpenTelemetry instrumentation for constprobe
// runs. It implements the [constprobe.RunHook] interface to add tracing
// and metrics around report emission.
//
// Usage:
//
//	probe := constprobe.NewProbe(set)
//	probeotel.InstrumentProbe(probe, probeotel.DefaultConfig())
package probeotel

import (
	"context"
	"fmt"
	"time"

	"github.com/bindcheck/constprobe/constprobe"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "constprobe"

// Config configures OpenTelemetry instrumentation for a probe.
type Config struct {
	// TracerProvider supplies the tracer. Defaults to otel.GetTracerProvider().
	TracerProvider trace.TracerProvider
	// MeterProvider supplies the meter. Defaults to otel.GetMeterProvider().
	MeterProvider metric.MeterProvider
	// EnableTracing enables span creation. Default true.
	EnableTracing bool
	// EnableMetrics enables counter and histogram recording. Default true.
	EnableMetrics bool
	// RecordExceptions calls RecordError on the span for failed runs.
	// Default true.
	RecordExceptions bool
	// ProbeName is the probe.name attribute value. Defaults to
	// Probe.ProbeID() or "constprobe".
	ProbeName string
	// CustomAttributes are added to every span.
	CustomAttributes []attribute.KeyValue
}

// DefaultConfig returns a Config with sensible defaults. TracerProvider
// and MeterProvider are resolved from the global OTel SDK at
// instrumentation time.
func DefaultConfig() Config {
	return Config{
		EnableTracing:    true,
		EnableMetrics:    true,
		RecordExceptions: true,
	}
}

// InstrumentProbe attaches OpenTelemetry instrumentation to a probe.
// The hook is installed via [constprobe.Probe.SetRunHook].
func InstrumentProbe(probe *constprobe.Probe, cfg Config) {
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = otel.GetTracerProvider()
	}
	if cfg.MeterProvider == nil {
		cfg.MeterProvider = otel.GetMeterProvider()
	}
	if cfg.ProbeName == "" {
		if id := probe.ProbeID(); id != "" {
			cfg.ProbeName = id
		} else {
			cfg.ProbeName = "constprobe"
		}
	}

	hook := &otelHook{
		cfg:    cfg,
		tracer: cfg.TracerProvider.Tracer(instrumentationName),
	}

	if cfg.EnableMetrics {
		meter := cfg.MeterProvider.Meter(instrumentationName)
		hook.runCounter, _ = meter.Int64Counter("probe.runs",
			metric.WithUnit("{run}"),
			metric.WithDescription("Number of probe report runs"),
		)
		hook.recordCounter, _ = meter.Int64Counter("probe.records",
			metric.WithUnit("{record}"),
			metric.WithDescription("Number of report records emitted"),
		)
		hook.durationHistogram, _ = meter.Float64Histogram("probe.run.duration",
			metric.WithUnit("s"),
			metric.WithDescription("Duration of probe report runs"),
		)
	}

	probe.SetRunHook(hook)
}

// otelHook implements constprobe.RunHook with OpenTelemetry tracing and
// metrics.
type otelHook struct {
	cfg               Config
	tracer            trace.Tracer
	runCounter        metric.Int64Counter
	recordCounter     metric.Int64Counter
	durationHistogram metric.Float64Histogram
}

// spanToken is the HookToken returned by OnRunStart.
type spanToken struct {
	span      trace.Span
	startTime time.Time
}

// OnRunStart starts a span for the report run.
func (h *otelHook) OnRunStart(ctx context.Context, info constprobe.RunInfo) (context.Context, constprobe.HookToken) {
	if !h.cfg.EnableTracing {
		return ctx, &spanToken{startTime: time.Now()}
	}

	attrs := []attribute.KeyValue{
		attribute.String("probe.name", h.cfg.ProbeName),
		attribute.String("probe.id", info.ProbeID),
		attribute.Int("probe.symbols", info.Symbols),
	}
	attrs = append(attrs, h.cfg.CustomAttributes...)

	ctx, span := h.tracer.Start(ctx, "constprobe/run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return ctx, &spanToken{span: span, startTime: time.Now()}
}

// OnRunEnd records metrics and span attributes, then ends the span.
func (h *otelHook) OnRunEnd(ctx context.Context, token constprobe.HookToken, info constprobe.RunInfo, stats *constprobe.RunStatistics, err error) {
	st, ok := token.(*spanToken)
	if !ok {
		return
	}

	duration := time.Since(st.startTime)

	if h.cfg.EnableMetrics {
		status := "ok"
		if err != nil {
			status = "error"
		}
		metricAttrs := metric.WithAttributes(
			attribute.String("probe.name", h.cfg.ProbeName),
			attribute.String("status", status),
		)
		if h.runCounter != nil {
			h.runCounter.Add(ctx, 1, metricAttrs)
		}
		if h.recordCounter != nil && stats != nil {
			h.recordCounter.Add(ctx, stats.Records, metricAttrs)
		}
		if h.durationHistogram != nil {
			h.durationHistogram.Record(ctx, duration.Seconds(), metricAttrs)
		}
	}

	if st.span != nil && st.span.IsRecording() {
		if stats != nil {
			st.span.SetAttributes(
				attribute.Int64("probe.records", stats.Records),
				attribute.Int64("probe.bytes", stats.Bytes),
			)
		}

		if err != nil {
			st.span.SetStatus(codes.Error, err.Error())
			if h.cfg.RecordExceptions {
				st.span.RecordError(err)
			}
			errType := fmt.Sprintf("%T", err)
			if probeErr, ok := err.(*constprobe.ProbeError); ok {
				errType = probeErr.Type
			}
			st.span.SetAttributes(attribute.String("probe.error_type", errType))
		} else {
			st.span.SetStatus(codes.Ok, "")
		}

		st.span.End()
	}
}
