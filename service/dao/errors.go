package dao

import "github.com/cockroachdb/errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("dao: not found")

	// ErrInvalidID indicates an empty key.
	ErrInvalidID = errors.New("dao: invalid id")

	// ErrNilEntity is returned when a nil record is saved.
	ErrNilEntity = errors.New("dao: nil entity")
)
