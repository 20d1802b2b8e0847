// Package tree models a Unix-style process tree under fork and exit.
//
// Processes live in an arena keyed by ID; the parent of a process is stored as
// a key into that arena, so reparenting is a key reassignment.
package tree

import (
	"github.com/cockroachdb/errors"
)

// ID identifies a process. IDs are never reused within a tree.
type ID string

// Process is a live process entry.
type Process struct {
	ID       ID   `json:"id" yaml:"id"`
	Parent   ID   `json:"parent,omitempty" yaml:"parent,omitempty"`
	Children []ID `json:"children,omitempty" yaml:"children,omitempty"`
}

// Tree owns the live processes and their parent/children relationships.
// A Tree is not safe for concurrent use.
type Tree struct {
	root    ID
	procs   map[ID]*Process
	created []ID
	retired map[ID]bool
	names   *Allocator
}

// New creates a tree holding only root.
func New(root ID) *Tree {
	return &Tree{
		root:    root,
		procs:   map[ID]*Process{root: {ID: root}},
		created: []ID{root},
		retired: map[ID]bool{},
		names:   NewAllocator(root),
	}
}

// Root returns the root process ID.
func (t *Tree) Root() ID {
	return t.root
}

// IsLive reports whether id is a live process.
func (t *Tree) IsLive(id ID) bool {
	_, ok := t.procs[id]
	return ok
}

// Len returns the number of live processes.
func (t *Tree) Len() int {
	return len(t.procs)
}

// Parent returns the parent of id; ok is false for the root and for processes
// that are not live.
func (t *Tree) Parent(id ID) (ID, bool) {
	p, ok := t.procs[id]
	if !ok || id == t.root {
		return "", false
	}
	return p.Parent, true
}

// Children returns a copy of the children of id in fork order.
func (t *Tree) Children(id ID) []ID {
	p, ok := t.procs[id]
	if !ok {
		return nil
	}
	return append([]ID(nil), p.Children...)
}

// HasChildren reports whether id is live and has at least one child.
func (t *Tree) HasChildren(id ID) bool {
	p, ok := t.procs[id]
	return ok && len(p.Children) > 0
}

// Live returns the live processes in creation order.
func (t *Tree) Live() []ID {
	ret := make([]ID, 0, len(t.procs))
	for _, id := range t.created {
		if t.IsLive(id) {
			ret = append(ret, id)
		}
	}
	return ret
}

// Fork creates a new child of parent with the next free name.
func (t *Tree) Fork(parent ID) (ID, error) {
	if !t.IsLive(parent) {
		return "", errors.Wrapf(ErrUnknownProcess, "fork from %s", parent)
	}
	child := t.names.Next()
	t.attach(parent, child)
	return child, nil
}

// Spawn creates child as a new child of parent. It is used when an action log
// already names the child.
func (t *Tree) Spawn(parent, child ID) error {
	if !t.IsLive(parent) {
		return errors.Wrapf(ErrUnknownProcess, "fork from %s", parent)
	}
	if t.IsLive(child) || t.retired[child] {
		return errors.Wrapf(ErrDuplicateProcess, "fork of %s", child)
	}
	t.names.Reserve(child)
	t.attach(parent, child)
	return nil
}

func (t *Tree) attach(parent, child ID) {
	t.procs[child] = &Process{ID: child, Parent: parent}
	t.created = append(t.created, child)
	p := t.procs[parent]
	p.Children = append(p.Children, child)
}

// Exit removes id from the tree, reattaching its children according to
// policy.
func (t *Tree) Exit(id ID, policy Policy) error {
	if id == t.root {
		return errors.Wrapf(ErrCannotExitRoot, "exit of %s", id)
	}
	proc, ok := t.procs[id]
	if !ok {
		return errors.Wrapf(ErrUnknownProcess, "exit of %s", id)
	}
	grandparent := t.procs[proc.Parent]
	switch policy {
	case LocalReparent:
		for _, orphan := range proc.Children {
			t.procs[orphan].Parent = grandparent.ID
			grandparent.Children = append(grandparent.Children, orphan)
		}
	default:
		root := t.procs[t.root]
		for _, orphan := range t.Descendants(id)[1:] {
			o := t.procs[orphan]
			o.Parent = t.root
			o.Children = nil
			root.Children = append(root.Children, orphan)
		}
	}
	grandparent.Children = remove(grandparent.Children, id)
	proc.Children = nil
	delete(t.procs, id)
	t.retired[id] = true
	return nil
}

// Descendants returns id followed by all of its descendants in pre-order.
func (t *Tree) Descendants(id ID) []ID {
	p, ok := t.procs[id]
	if !ok {
		return nil
	}
	ret := []ID{id}
	for _, child := range p.Children {
		ret = append(ret, t.Descendants(child)...)
	}
	return ret
}

func remove(ids []ID, id ID) []ID {
	ret := ids[:0]
	for _, candidate := range ids {
		if candidate != id {
			ret = append(ret, candidate)
		}
	}
	return ret
}
