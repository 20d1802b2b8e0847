package forktree

import (
	"io"
	"log/slog"

	"github.com/viant/afs/storage"
	"github.com/viant/forktree/runtime/random"
	"github.com/viant/forktree/service/dao/run"
	"github.com/viant/forktree/service/event"
	"github.com/viant/forktree/service/meta"
	"github.com/viant/forktree/service/metrics"
	"github.com/viant/forktree/service/simulator"
	"github.com/viant/forktree/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option configures a Service.
type Option func(s *Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.runtime.logger = logger }
}

// WithRunDAO sets the run record store.
func WithRunDAO(dao run.Service) Option {
	return func(s *Service) { s.runtime.runDAO = dao }
}

// WithRandomSource makes every run draw from src instead of a source seeded
// from the simulation config.
func WithRandomSource(src random.Source) Option {
	return func(s *Service) { s.runtime.src = src }
}

// WithOutput sets where simulations print.
func WithOutput(w io.Writer) Option {
	return func(s *Service) { s.runtime.out = w }
}

// WithMetrics records run and action metrics.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(s *Service) { s.runtime.metrics = recorder }
}

// WithEvents publishes every action outcome to publisher.
func WithEvents(publisher *event.Publisher[simulator.Outcome]) Option {
	return func(s *Service) { s.runtime.events = publisher }
}

// WithSimulation sets the simulation config used when Run is given none.
func WithSimulation(config *simulator.Config) Option {
	return func(s *Service) { s.runtime.defaults = config }
}

// WithMetaService sets the config loader.
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) { s.metaService = service }
}

// WithMetaBaseURL sets the location relative config paths resolve against.
func WithMetaBaseURL(URL string) Option {
	return func(s *Service) { s.metaBaseURL = URL }
}

// WithMetaFsOptions sets storage options for config loading.
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) { s.metaFsOptions = options }
}

// WithTracing exports spans with the stdout exporter, to outputFile when it
// is set. The first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		if err := tracing.Init(serviceName, serviceVersion, outputFile); err != nil {
			s.initErr = err
		}
	}
}

// WithTracingExporter exports spans through exporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		if err := tracing.InitWithExporter(serviceName, serviceVersion, exporter); err != nil {
			s.initErr = err
		}
	}
}
