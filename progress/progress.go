package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/forktree/internal/clock"
)

// Delta is an incremental counter change. Fields are signed.
type Delta struct {
	Actions  int
	Forked   int
	Exited   int
	Rejected int
	Live     int
}

// Counters is a read-only copy of the tracker state.
type Counters struct {
	RunID     string    `json:"runId" yaml:"runId"`
	StartedAt time.Time `json:"startedAt" yaml:"startedAt"`
	Actions   int       `json:"actions" yaml:"actions"`
	Forked    int       `json:"forked" yaml:"forked"`
	Exited    int       `json:"exited" yaml:"exited"`
	Rejected  int       `json:"rejected" yaml:"rejected"`
	Live      int       `json:"live" yaml:"live"`
}

// Progress aggregates counters for one run. It is safe for concurrent use.
type Progress struct {
	mu       sync.Mutex
	counters Counters
	onChange func(Counters)
}

// New creates a tracker for runID starting with the given number of live
// processes.
func New(runID string, live int) *Progress {
	return &Progress{counters: Counters{RunID: runID, StartedAt: clock.Now(), Live: live}}
}

// Update applies d. The onChange callback, if any, receives a copy of the
// updated counters outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.counters.Actions += d.Actions
	p.counters.Forked += d.Forked
	p.counters.Exited += d.Exited
	p.counters.Rejected += d.Rejected
	p.counters.Live += d.Live
	snapshot := p.counters
	cb := p.onChange
	p.mu.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the counters.
func (p *Progress) Snapshot() Counters {
	if p == nil {
		return Counters{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counters
}

// OnChange registers a callback invoked after every Update. Passing nil
// disables it; only one callback is kept.
func (p *Progress) OnChange(cb func(Counters)) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.onChange = cb
	p.mu.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithTracker embeds tr in a derived context.
func WithTracker(ctx context.Context, tr *Progress) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, trackerKey, tr)
}

// FromContext extracts the tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx applies d to the tracker carried by ctx, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
