package simulator

import (
	"github.com/cockroachdb/errors"
	"github.com/viant/forktree/model/tree"
)

var (
	// ErrRejectedLeafExit is reported when leaf-only mode rejects the exit of
	// a process that has children.
	ErrRejectedLeafExit = errors.New("process has children")

	// ErrInvalidConfig reports an out of range setting.
	ErrInvalidConfig = errors.New("invalid simulation config")

	// ErrAlreadyRun is returned when Run is called twice.
	ErrAlreadyRun = errors.New("simulation already ran")
)

// rejections are per-action errors that skip the action without aborting
// the run.
var rejections = []error{
	tree.ErrUnknownProcess,
	tree.ErrCannotExitRoot,
	tree.ErrDuplicateProcess,
	ErrRejectedLeafExit,
}

// rejectionOf returns the rejection sentinel err matches.
func rejectionOf(err error) (error, bool) {
	for _, candidate := range rejections {
		if errors.Is(err, candidate) {
			return candidate, true
		}
	}
	return nil, false
}
