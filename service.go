package forktree

import (
	"context"
	"log/slog"
	"os"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/forktree/service/dao/run/fs"
	rmemory "github.com/viant/forktree/service/dao/run/memory"
	"github.com/viant/forktree/service/event"
	"github.com/viant/forktree/service/messaging/memory"
	"github.com/viant/forktree/service/meta"
	"github.com/viant/forktree/service/simulator"
)

// Version is reported as the tracing service version.
const Version = "0.3.0"

// Service wires the simulator with its stores and ambient services.
type Service struct {
	runtime       *Runtime
	metaService   *meta.Service
	metaBaseURL   string
	metaFsOptions []storage.Option
	initErr       error
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
}

func (s *Service) ensureBaseSetup() {
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
	if s.runtime.runDAO == nil {
		s.runtime.runDAO = rmemory.New()
	}
	if s.runtime.out == nil {
		s.runtime.out = os.Stdout
	}
	if s.runtime.logger == nil {
		s.runtime.logger = slog.Default()
	}
}

// Runtime returns the simulation runtime.
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// LoadConfig reads a yaml config through the service's meta loader, so
// relative locations resolve against the meta base URL.
func (s *Service) LoadConfig(ctx context.Context, location string) (*Config, error) {
	ret := DefaultConfig()
	if err := s.metaService.Load(ctx, location, ret); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Events returns the outcome publisher, or nil when events are disabled.
func (s *Service) Events() *event.Publisher[simulator.Outcome] {
	return s.runtime.events
}

// Err returns the first error raised while applying options.
func (s *Service) Err() error {
	return s.initErr
}

// New creates a service with an in-memory run store.
func New(options ...Option) *Service {
	ret := &Service{runtime: &Runtime{}}
	ret.init(options)
	return ret
}

// NewFromConfig creates a service from config. The logger, store, tracing and
// default simulation come from config; options are applied afterwards and
// take precedence.
func NewFromConfig(ctx context.Context, config *Config, options ...Option) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	level, _ := config.LogLevel()
	base := []Option{
		WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))),
		WithSimulation(config.Simulation),
	}
	if config.Store.URL != "" {
		store, err := fs.New(ctx, config.Store.URL, afs.New())
		if err != nil {
			return nil, err
		}
		base = append(base, WithRunDAO(store))
	}
	if config.Events.Enabled {
		queue := memory.NewQueue[event.Event[simulator.Outcome]](memory.Config{
			MaxRetries:  memory.DefaultConfig().MaxRetries,
			QueueBuffer: config.Events.Buffer,
		})
		base = append(base, WithEvents(event.NewPublisher[simulator.Outcome](queue)))
	}
	if config.Tracing.Enabled {
		base = append(base, WithTracing(config.Tracing.ServiceName, Version, config.Tracing.OutputFile))
	}
	ret := New(append(base, options...)...)
	if err := ret.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}
