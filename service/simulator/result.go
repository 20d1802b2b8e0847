package simulator

import (
	"time"

	"github.com/viant/forktree/progress"
)

// Outcome records what happened to one action.
type Outcome struct {
	Action      string `json:"action" yaml:"action"`
	Description string `json:"description" yaml:"description"`
	Applied     bool   `json:"applied" yaml:"applied"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
	Live        int    `json:"live" yaml:"live"`
}

// Result is the record of a completed run.
type Result struct {
	ID         string            `json:"id" yaml:"id"`
	Config     *Config           `json:"config" yaml:"config"`
	Policy     string            `json:"policy" yaml:"policy"`
	Actions    []string          `json:"actions" yaml:"actions"`
	Outcomes   []*Outcome        `json:"outcomes" yaml:"outcomes"`
	Counters   progress.Counters `json:"counters" yaml:"counters"`
	FinalTree  string            `json:"finalTree" yaml:"finalTree"`
	StartedAt  time.Time         `json:"startedAt" yaml:"startedAt"`
	FinishedAt time.Time         `json:"finishedAt" yaml:"finishedAt"`
}

// Rejected returns the outcomes of actions that were not applied.
func (r *Result) Rejected() []*Outcome {
	var ret []*Outcome
	for _, o := range r.Outcomes {
		if !o.Applied {
			ret = append(ret, o)
		}
	}
	return ret
}
