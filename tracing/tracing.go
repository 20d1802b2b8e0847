package tracing

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/viant/forktree"

// exporterState holds the single provider installed per process.
var exporterState struct {
	once     sync.Once
	err      error
	provider *sdktrace.TracerProvider
	sink     io.Closer
}

// Init exports simulation spans as JSON lines to outputFile, or to
// os.Stdout when outputFile is empty. Only the first call takes effect.
func Init(serviceName, serviceVersion, outputFile string) error {
	var sink io.WriteCloser = nopCloser{os.Stdout}
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return errors.Wrapf(err, "trace file %s", outputFile)
		}
		sink = f
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(sink))
	if err != nil {
		return errors.Wrap(err, "stdout exporter")
	}
	return install(serviceName, serviceVersion, exporter, sink)
}

// InitWithExporter exports simulation spans through exporter.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return nil
	}
	return install(serviceName, serviceVersion, exporter, nil)
}

func install(serviceName, serviceVersion string, exporter sdktrace.SpanExporter, sink io.Closer) error {
	exporterState.once.Do(func() {
		res, err := resource.New(context.Background(), resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		))
		if err != nil {
			exporterState.err = errors.Wrap(err, "trace resource")
			return
		}
		exporterState.provider = sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
			sdktrace.WithResource(res),
		)
		exporterState.sink = sink
		otel.SetTracerProvider(exporterState.provider)
	})
	return exporterState.err
}

// Shutdown flushes pending spans and closes the trace file, if any.
func Shutdown(ctx context.Context) error {
	if exporterState.provider == nil {
		return nil
	}
	err := exporterState.provider.Shutdown(ctx)
	if exporterState.sink != nil {
		err = errors.CombineErrors(err, exporterState.sink.Close())
		exporterState.sink = nil
	}
	return err
}

// Span is a simulation span; a nil Span ignores every call.
type Span struct {
	span trace.Span
}

// StartSpan starts a child of the span carried by ctx.
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}

// Set attaches a string, int or bool attribute. Other values are stored as
// strings via their error or Stringer form when available.
func (s *Span) Set(key string, value interface{}) *Span {
	if s == nil {
		return s
	}
	var kv attribute.KeyValue
	switch actual := value.(type) {
	case string:
		kv = attribute.String(key, actual)
	case int:
		kv = attribute.Int(key, actual)
	case bool:
		kv = attribute.Bool(key, actual)
	case interface{ String() string }:
		kv = attribute.String(key, actual.String())
	default:
		return s
	}
	s.span.SetAttributes(kv)
	return s
}

// Event records a named point in time on the span.
func (s *Span) Event(name string) {
	if s != nil {
		s.span.AddEvent(name)
	}
}

// End closes the span, marking it failed when err is non-nil.
func (s *Span) End(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
