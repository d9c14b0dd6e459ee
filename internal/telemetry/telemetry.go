// Package telemetry wires OpenTelemetry tracing and metrics with stdout
// exporters, suitable for a deployment without a collector.
package telemetry

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// ScopeName identifies this module's tracer and meter.
const ScopeName = "gitlab.com/phantrg/vitien-ai"

var (
	fallbackOnce    sync.Once
	fallbackCounter metric.Int64Counter
)

// Setup installs global tracer and meter providers. The returned shutdown
// function flushes both; call it on process exit.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	traceExporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)

	metricExporter, err := stdoutmetric.New()
	if err != nil {
		return nil, err
	}
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter,
			sdkmetric.WithInterval(time.Minute))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	return func(ctx context.Context) error {
		return errors.Join(tracerProvider.Shutdown(ctx), meterProvider.Shutdown(ctx))
	}, nil
}

// Tracer returns the module tracer.
func Tracer() trace.Tracer {
	return otel.Tracer(ScopeName)
}

// CountFallback records one fallback routing for a task.
func CountFallback(ctx context.Context, task string) {
	fallbackOnce.Do(func() {
		var err error
		fallbackCounter, err = otel.Meter(ScopeName).Int64Counter(
			"ai.fallback.count",
			metric.WithDescription("Number of AI operations served by the fallback provider"),
		)
		if err != nil {
			fallbackCounter = nil
		}
	})
	if fallbackCounter == nil {
		return
	}
	fallbackCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("task", task)))
}
