// © Copyright 2025-2026, the constprobe authors
// SPDX-License-Identifier: Apache-2.0

// Command constprobe-conformance-go emits the conformance fixture report
// on stdout. The default output is the line-oriented wire format; --ipc
// switches to a single Arrow IPC stream and --zstd to a zstd-compressed
// line report. --otel adds OpenTelemetry tracing and metrics, exported as
// JSON on stderr so the report stream stays clean.
//
// Exit status 0 means the probe ran to completion; whether the values
// match the reference table is decided by the external comparison step.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bindcheck/constprobe/conformance"
	"github.com/bindcheck/constprobe/constprobe"
	probeotel "github.com/bindcheck/constprobe/constprobe/otel"

	"github.com/klauspost/compress/zstd"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func main() {
	probe := constprobe.NewProbe(conformance.Constants())
	probe.SetProbeID("conformance-go")

	var mode string
	var otelEnabled bool
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--ipc", "--zstd":
			mode = arg
		case "--otel":
			otelEnabled = true
		default:
			fmt.Fprintf(os.Stderr, "usage: %s [--ipc | --zstd] [--otel]\n", os.Args[0])
			os.Exit(2)
		}
	}

	ctx := context.Background()
	if otelEnabled {
		shutdown, err := setupOtel(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "otel setup error: %v\n", err)
			os.Exit(1)
		}
		defer shutdown()
		probeotel.InstrumentProbe(probe, probeotel.DefaultConfig())
	}

	var err error
	switch mode {
	case "--ipc":
		err = probe.RunIPC(ctx, os.Stdout)
	case "--zstd":
		var enc *zstd.Encoder
		enc, err = zstd.NewWriter(os.Stdout)
		if err == nil {
			if err = probe.Run(ctx, enc); err == nil {
				err = enc.Close()
			} else {
				enc.Close()
			}
		}
	default:
		err = probe.RunStdio()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "probe error: %v\n", err)
		os.Exit(1)
	}
}

// setupOtel installs stdout-exporting tracer and meter providers,
// writing to stderr. The returned function flushes and shuts them down.
func setupOtel(ctx context.Context) (func(), error) {
	traceExp, err := stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
	if err != nil {
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}
	metricExp, err := stdoutmetric.New(stdoutmetric.WithWriter(os.Stderr))
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(traceExp))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
	)
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	return func() {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
	}, nil
}
