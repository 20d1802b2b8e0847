package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocator_Next(t *testing.T) {
	allocator := NewAllocator("a")
	var names []ID
	for i := 0; i < 51+3; i++ {
		names = append(names, allocator.Next())
	}
	assert.Equal(t, ID("b"), names[0])
	assert.Equal(t, ID("z"), names[24])
	assert.Equal(t, ID("A"), names[25])
	assert.Equal(t, ID("Z"), names[50])
	assert.EqualValues(t, []ID{"aa", "ab", "ac"}, names[51:])
}

func TestAllocator_Unique(t *testing.T) {
	allocator := NewAllocator("a", "c")
	seen := map[ID]bool{}
	for i := 0; i < 3*52*52; i++ {
		name := allocator.Next()
		assert.False(t, seen[name], "duplicate %s", name)
		assert.NotEqual(t, ID("a"), name)
		assert.NotEqual(t, ID("c"), name)
		seen[name] = true
	}
	assert.True(t, seen["aaa"])
}

func TestAllocator_Reserve(t *testing.T) {
	allocator := NewAllocator()
	assert.Equal(t, ID("a"), allocator.Next())
	allocator.Reserve("b")
	assert.Equal(t, ID("c"), allocator.Next())
}
