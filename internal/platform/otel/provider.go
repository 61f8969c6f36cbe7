// Package otel wires OpenTelemetry tracing for the rendering surfaces.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/aeterna-porta/internal/platform/branding"
	"github.com/louisbranch/aeterna-porta/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies spans emitted by this module.
const InstrumentationName = "github.com/louisbranch/aeterna-porta"

// Settings controls exporter selection.
type Settings struct {
	Endpoint string `env:"OTEL_ENDPOINT"`
	Enabled  string `env:"OTEL_ENABLED"`
}

// Active reports whether an exporter should be installed.
func (s Settings) Active() bool {
	if strings.EqualFold(strings.TrimSpace(s.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(s.Endpoint) != ""
}

// Setup initialises OpenTelemetry tracing for the given service.
//
// Tracing is opt-in: when AETERNA_PORTA_OTEL_ENDPOINT is empty or
// AETERNA_PORTA_OTEL_ENABLED is "false", Setup returns a no-op shutdown
// function and no global provider is registered.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	var settings Settings
	if err := config.ParseEnv(&settings); err != nil {
		return noop, err
	}
	return SetupWith(ctx, serviceName, settings)
}

// SetupWith initialises tracing from explicit settings.
func SetupWith(ctx context.Context, serviceName string, settings Settings) (func(context.Context) error, error) {
	if !settings.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(settings.Endpoint)),
	)
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(branding.Version),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the module tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

func noop(context.Context) error { return nil }
