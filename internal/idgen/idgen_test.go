package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	first, second := New(), New()
	assert.NotEqual(t, first, second)
	_, err := uuid.Parse(first)
	assert.NoError(t, err)

	saved := NewFunc
	defer func() { NewFunc = saved }()
	NewFunc = func() string { return "run-1" }
	assert.Equal(t, "run-1", New())
}
