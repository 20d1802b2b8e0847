// Package metrics exposes simulation counters through a private prometheus
// registry.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "forktree"

// Outcome labels.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
)

// Recorder records per-action and per-run metrics. A nil *Recorder is a
// valid no-op recorder.
type Recorder struct {
	registry *prometheus.Registry
	actions  *prometheus.CounterVec
	live     prometheus.Gauge
	runs     prometheus.Counter
}

// New creates a recorder with its own registry.
func New() *Recorder {
	ret := &Recorder{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Actions processed, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_processes",
			Help:      "Live processes in the most recently updated tree.",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed simulation runs.",
		}),
	}
	ret.registry.MustRegister(ret.actions, ret.live, ret.runs)
	return ret
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Action counts one action of kind with outcome.
func (r *Recorder) Action(kind, outcome string) {
	if r == nil {
		return
	}
	r.actions.WithLabelValues(kind, outcome).Inc()
}

// SetLive records the live process count.
func (r *Recorder) SetLive(n int) {
	if r == nil {
		return
	}
	r.live.Set(float64(n))
}

// RunCompleted counts a finished run.
func (r *Recorder) RunCompleted() {
	if r == nil {
		return
	}
	r.runs.Inc()
}

// Write dumps every gathered sample as `name{labels} value`, one per line.
func (r *Recorder) Write(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, family := range families {
		for _, m := range family.GetMetric() {
			lines = append(lines, fmt.Sprintf("%s%s %v", family.GetName(), labels(m), value(m)))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func labels(m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(m.GetLabel()))
	for _, l := range m.GetLabel() {
		pairs = append(pairs, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	return "{" + strings.Join(pairs, ",") + "}"
}

func value(m *dto.Metric) float64 {
	switch {
	case m.GetCounter() != nil:
		return m.GetCounter().GetValue()
	case m.GetGauge() != nil:
		return m.GetGauge().GetValue()
	}
	return 0
}
