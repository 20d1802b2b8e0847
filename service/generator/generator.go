// Package generator produces random, replayable fork/exit action logs.
package generator

import (
	"github.com/viant/forktree/model/action"
	"github.com/viant/forktree/model/tree"
	"github.com/viant/forktree/runtime/random"
)

// Generator creates action logs from a random source. It keeps its own list
// of active processes, independent of any tree the log is later applied to.
type Generator struct {
	src  random.Source
	root tree.ID
}

// New creates a generator for a tree rooted at root.
func New(src random.Source, root tree.ID) *Generator {
	return &Generator{src: src, root: root}
}

// Generate returns maxActions actions. Each draw below forkProbability forks a
// random active process; any other draw exits a random active process,
// except that drawing the root is discarded without using up an action.
// When only the root is active and forking is impossible (a probability that
// is not positive, NaN included), generation stops early.
func (g *Generator) Generate(forkProbability float64, maxActions int) []*action.Action {
	names := tree.NewAllocator(g.root)
	active := []tree.ID{g.root}
	ret := make([]*action.Action, 0, maxActions)
	for len(ret) < maxActions {
		if !(forkProbability > 0) && len(active) == 1 {
			break
		}
		if g.src.Float64() < forkProbability {
			parent := random.Choice(g.src, active)
			child := names.Next()
			ret = append(ret, action.NewFork(parent, child))
			active = append(active, child)
			continue
		}
		candidate := random.Choice(g.src, active)
		if candidate == g.root {
			continue
		}
		ret = append(ret, action.NewExit(candidate))
		active = without(active, candidate)
	}
	return ret
}

func without(ids []tree.ID, id tree.ID) []tree.ID {
	ret := make([]tree.ID, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			ret = append(ret, candidate)
		}
	}
	return ret
}
