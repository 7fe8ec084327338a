package telemetry

import (
    "context"
    "go.opentelemetry.io/contrib/instrumentation/runtime"
    "go.opentelemetry.io/otel"
    "go.opentelemetry.io/otel/attribute"
    "go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
    "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
    "go.opentelemetry.io/otel/metric"
    "go.opentelemetry.io/otel/propagation"
    sdkmetric "go.opentelemetry.io/otel/sdk/metric"
    "go.opentelemetry.io/otel/sdk/resource"
    sdktrace "go.opentelemetry.io/otel/sdk/trace"
    semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
    "go.opentelemetry.io/otel/trace"
    "os"
    "time"
)

const systemName = "linkedlist"

type IgnoreExporterErrorsHandler struct{}

func (IgnoreExporterErrorsHandler) Handle(err error) {}

// New installs global trace and meter providers exporting to collectorURL over OTLP/HTTP.
// With an empty collectorURL nothing is installed and the global no-op providers stay in place.
func New(service, version string, collectorURL string) (func(), error) {
    if collectorURL == "" {
        return func() {}, nil
    }
    ctx := context.Background()

    res, err := resource.New(
        ctx,
        resource.WithHost(),
        resource.WithAttributes(semconv.ServiceNameKey.String(service), semconv.ServiceVersion(version)))
    if err != nil {
        return nil, err
    }

    te, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(collectorURL), otlptracehttp.WithInsecure())
    if err != nil {
        return nil, err
    }

    tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(te), sdktrace.WithResource(res))
    otel.SetTracerProvider(tp)
    otel.SetTextMapPropagator(propagation.TraceContext{})

    me, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpoint(collectorURL), otlpmetrichttp.WithInsecure())
    if err != nil {
        return nil, err
    }

    mp := sdkmetric.NewMeterProvider(
        sdkmetric.WithResource(res),
        sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
            me,
            sdkmetric.WithProducer(runtime.NewProducer()),
            sdkmetric.WithInterval(60*time.Second))))

    // the new runtime metrics lack gc count and pause time, fall back to the old ones
    os.Setenv("OTEL_GO_X_DEPRECATED_RUNTIME_METRICS", "true")
    runtime.Start(runtime.WithMinimumReadMemStatsInterval(60 * time.Second))
    otel.SetMeterProvider(mp)

    // swallow otel errors so they don't spam the shell
    otel.SetErrorHandler(IgnoreExporterErrorsHandler{})

    return func() {
        _ = tp.Shutdown(context.Background())
        _ = mp.Shutdown(context.Background())
    }, nil
}

func SetAttributes(span trace.Span, kv ...attribute.KeyValue) {
    for _, attr := range kv {
        span.SetAttributes(attr)
    }
}

func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
    opts = append(opts, trace.WithAttributes(attribute.String("container.system.name", systemName)))
    return otel.GetTracerProvider().Tracer(systemName).Start(ctx, name, opts...)
}

func Meter() metric.Meter {
    return otel.GetMeterProvider().Meter(systemName)
}
