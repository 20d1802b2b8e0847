// Package action defines the fork/exit action language: `X+Y` forks Y from X
// and `X-` exits X.
package action

import (
	"fmt"

	"github.com/viant/forktree/model/tree"
)

// Kind is the type of an action.
type Kind string

const (
	KindFork Kind = "fork"
	KindExit Kind = "exit"
)

// Action is a parsed fork or exit. For exits only Parent is set and names the
// exiting process.
type Action struct {
	Kind   Kind    `json:"kind" yaml:"kind"`
	Parent tree.ID `json:"parent" yaml:"parent"`
	Child  tree.ID `json:"child,omitempty" yaml:"child,omitempty"`
}

// NewFork creates a fork of child from parent.
func NewFork(parent, child tree.ID) *Action {
	return &Action{Kind: KindFork, Parent: parent, Child: child}
}

// NewExit creates an exit of process.
func NewExit(process tree.ID) *Action {
	return &Action{Kind: KindExit, Parent: process}
}

// Target returns the process an exit removes, or the process a fork creates.
func (a *Action) Target() tree.ID {
	if a.Kind == KindFork {
		return a.Child
	}
	return a.Parent
}

// String returns the action in its textual form.
func (a *Action) String() string {
	if a.Kind == KindFork {
		return string(a.Parent) + "+" + string(a.Child)
	}
	return string(a.Parent) + "-"
}

// Description returns a human readable form, e.g. "a forks b" or "b EXITS".
func (a *Action) Description() string {
	if a.Kind == KindFork {
		return fmt.Sprintf("%s forks %s", a.Parent, a.Child)
	}
	return fmt.Sprintf("%s EXITS", a.Parent)
}

// Strings converts actions to their textual form.
func Strings(actions []*Action) []string {
	ret := make([]string, 0, len(actions))
	for _, a := range actions {
		ret = append(ret, a.String())
	}
	return ret
}
