package tree

import "github.com/cockroachdb/errors"

// Check verifies the structural invariants of the tree: the root is live,
// every other live process has a live parent listing it as a child, parent
// links form a single acyclic tree and no retired name is live again.
func (t *Tree) Check() error {
	root, ok := t.procs[t.root]
	if !ok {
		return errors.Wrapf(ErrInvariant, "root %s is not live", t.root)
	}
	if root.Parent != "" {
		return errors.Wrapf(ErrInvariant, "root %s has parent %s", t.root, root.Parent)
	}
	for id, p := range t.procs {
		if t.retired[id] {
			return errors.Wrapf(ErrInvariant, "retired process %s is live", id)
		}
		seen := map[ID]bool{}
		for _, child := range p.Children {
			if seen[child] {
				return errors.Wrapf(ErrInvariant, "%s lists child %s twice", id, child)
			}
			seen[child] = true
			c, ok := t.procs[child]
			if !ok {
				return errors.Wrapf(ErrInvariant, "%s lists dead child %s", id, child)
			}
			if c.Parent != id {
				return errors.Wrapf(ErrInvariant, "%s lists %s whose parent is %s", id, child, c.Parent)
			}
		}
		if id == t.root {
			continue
		}
		parent, ok := t.procs[p.Parent]
		if !ok {
			return errors.Wrapf(ErrInvariant, "%s has dead parent %s", id, p.Parent)
		}
		if !contains(parent.Children, id) {
			return errors.Wrapf(ErrInvariant, "%s is missing from children of %s", id, p.Parent)
		}
	}
	if reachable := len(t.Descendants(t.root)); reachable != len(t.procs) {
		return errors.Wrapf(ErrInvariant, "%d of %d processes reachable from root", reachable, len(t.procs))
	}
	return nil
}

func contains(ids []ID, id ID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
