package simulator

import (
	"github.com/cockroachdb/errors"
	"github.com/viant/forktree/model/tree"
	"github.com/viant/forktree/service/renderer"
)

// Config describes a simulation run. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	// ForkPercentage is the probability in [0,1] that a generated action is a fork.
	ForkPercentage float64 `json:"forkPercentage" yaml:"forkPercentage"`
	// MaxActions is the number of generated actions; ignored when Actions is set.
	MaxActions int `json:"maxActions" yaml:"maxActions"`
	// Actions is an explicit action log such as ["a+b", "b-"].
	Actions []string `json:"actions,omitempty" yaml:"actions,omitempty"`
	// ShowTree prints the tree after each action and hides the action when not solving.
	ShowTree bool `json:"showTree" yaml:"showTree"`
	// JustFinal suppresses per-action output.
	JustFinal bool `json:"justFinal" yaml:"justFinal"`
	// LeafOnly rejects exits of processes that have children.
	LeafOnly bool `json:"leafOnly" yaml:"leafOnly"`
	// LocalReparent reparents orphans to the exiting process's parent instead of root.
	LocalReparent bool   `json:"localReparent" yaml:"localReparent"`
	PrintStyle    string `json:"printStyle" yaml:"printStyle"`
	// Solve reveals answers; otherwise placeholders are printed.
	Solve    bool   `json:"solve" yaml:"solve"`
	ShowDiff bool   `json:"showDiff" yaml:"showDiff"`
	Seed     uint64 `json:"seed" yaml:"seed"`
	Root     string `json:"root" yaml:"root"`
}

// DefaultConfig returns the classic defaults: 70% forks, five actions, fancy
// output, root "a".
func DefaultConfig() *Config {
	return &Config{
		ForkPercentage: 0.7,
		MaxActions:     5,
		PrintStyle:     renderer.Fancy.String(),
		Root:           string(tree.DefaultRoot),
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !(c.ForkPercentage >= 0 && c.ForkPercentage <= 1) {
		return errors.Wrapf(ErrInvalidConfig, "forkPercentage %v outside [0,1]", c.ForkPercentage)
	}
	if c.MaxActions < 0 {
		return errors.Wrapf(ErrInvalidConfig, "maxActions %d is negative", c.MaxActions)
	}
	if c.Root == "" {
		return errors.Wrap(ErrInvalidConfig, "root name is empty")
	}
	_, err := renderer.ParseStyle(c.PrintStyle)
	return err
}

// Policy returns the reparenting policy selected by LocalReparent.
func (c *Config) Policy() tree.Policy {
	return tree.PolicyOf(c.LocalReparent)
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	ret := *c
	ret.Actions = append([]string(nil), c.Actions...)
	return &ret
}
