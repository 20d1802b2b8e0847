package tree

// BaseNames is the alphabet process names are built from.
const BaseNames = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultRoot is the conventional root process name.
const DefaultRoot ID = "a"

// Allocator hands out process names in a fixed order: every single base symbol
// first, then every known name extended by each base symbol, and so on. A name
// is never returned twice, and reserved names are skipped.
type Allocator struct {
	base     []ID
	current  []ID
	index    int
	reserved map[ID]bool
}

// NewAllocator creates an allocator that never returns any of reserved.
func NewAllocator(reserved ...ID) *Allocator {
	base := make([]ID, 0, len(BaseNames))
	for _, r := range BaseNames {
		base = append(base, ID(string(r)))
	}
	ret := &Allocator{
		base:     base,
		current:  base,
		reserved: make(map[ID]bool, len(reserved)),
	}
	for _, name := range reserved {
		ret.Reserve(name)
	}
	return ret
}

// Reserve marks name as taken so that Next skips it.
func (a *Allocator) Reserve(name ID) {
	a.reserved[name] = true
}

// Next returns the next unused name.
func (a *Allocator) Next() ID {
	for {
		if a.index == len(a.current) {
			a.grow()
		}
		name := a.current[a.index]
		a.index++
		if a.reserved[name] {
			continue
		}
		a.reserved[name] = true
		return name
	}
}

// grow replaces the current generation with every current name crossed with
// every base symbol.
func (a *Allocator) grow() {
	next := make([]ID, 0, len(a.current)*len(a.base))
	for _, prefix := range a.current {
		for _, suffix := range a.base {
			next = append(next, prefix+suffix)
		}
	}
	a.current = next
	a.index = 0
}
