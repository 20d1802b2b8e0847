package tree

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownProcess is returned when an operation references a process
	// that is not live.
	ErrUnknownProcess = errors.New("unknown process")

	// ErrCannotExitRoot is returned when exit targets the root process.
	ErrCannotExitRoot = errors.New("root process cannot exit")

	// ErrDuplicateProcess is returned when a fork names a child that is live
	// or has already exited.
	ErrDuplicateProcess = errors.New("process name already used")

	// ErrInvariant reports a structurally inconsistent tree.
	ErrInvariant = errors.New("process tree invariant violated")
)
