package forktree

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/viant/afs/storage"
	"github.com/viant/forktree/service/meta"
	"github.com/viant/forktree/service/simulator"
)

// ErrInvalidConfig reports an invalid service setting.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the serialisable service configuration, typically loaded from
// yaml with LoadConfig.
type Config struct {
	Simulation *simulator.Config `json:"simulation" yaml:"simulation"`
	Store      StoreConfig       `json:"store" yaml:"store"`
	Tracing    TracingConfig     `json:"tracing" yaml:"tracing"`
	Log        LogConfig         `json:"log" yaml:"log"`
	Events     EventsConfig      `json:"events" yaml:"events"`
}

// EventsConfig enables the in-memory outcome feed.
type EventsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Buffer bounds the queue; outcomes published to a full queue are dropped
	// with a warning.
	Buffer int `json:"buffer" yaml:"buffer"`
}

// StoreConfig selects where run records are kept. An empty URL keeps them in
// memory.
type StoreConfig struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

type TracingConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	// OutputFile receives the exported spans; stdout when empty.
	OutputFile string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level" yaml:"level"`
}

// DefaultConfig returns the defaults; fields absent from a loaded document
// keep these values.
func DefaultConfig() *Config {
	return &Config{
		Simulation: simulator.DefaultConfig(),
		Tracing:    TracingConfig{ServiceName: "forktree"},
		Log:        LogConfig{Level: "warn"},
		Events:     EventsConfig{Buffer: 1024},
	}
}

// Validate returns the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Simulation == nil {
		return errors.Wrap(ErrInvalidConfig, "simulation section is missing")
	}
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Events.Buffer < 0 {
		return errors.Wrapf(ErrInvalidConfig, "events.buffer %d is negative", c.Events.Buffer)
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return errors.Wrap(ErrInvalidConfig, "tracing.serviceName is empty")
	}
	return nil
}

// LogLevel parses Log.Level; empty means warn.
func (c *Config) LogLevel() (slog.Level, error) {
	if strings.TrimSpace(c.Log.Level) == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, errors.Wrapf(ErrInvalidConfig, "log.level %q", c.Log.Level)
	}
	return level, nil
}

// LoadConfig reads a yaml config from location over DefaultConfig. options
// are passed to the storage layer, for example an embed.FS.
func LoadConfig(ctx context.Context, location string, options ...storage.Option) (*Config, error) {
	ret := DefaultConfig()
	if err := meta.New(nil, "", options...).Load(ctx, location, ret); err != nil {
		return nil, err
	}
	if err := ret.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", location)
	}
	return ret, nil
}
