package idgen

import "github.com/google/uuid"

// NewFunc produces run ids; override in tests.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique run id.
func New() string { return NewFunc() }
