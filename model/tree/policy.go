package tree

// Policy decides where the children of an exiting process go.
type Policy int

const (
	// RootReparent moves every descendant of the exiting process directly
	// under the root.
	RootReparent Policy = iota
	// LocalReparent moves the direct children of the exiting process under its
	// parent; deeper descendants keep their parent.
	LocalReparent
)

// PolicyOf returns LocalReparent when local is set, RootReparent otherwise.
func PolicyOf(local bool) Policy {
	if local {
		return LocalReparent
	}
	return RootReparent
}

func (p Policy) String() string {
	switch p {
	case LocalReparent:
		return "local"
	default:
		return "root"
	}
}
