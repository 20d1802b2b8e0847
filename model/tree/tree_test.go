package tree

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build spawns each parent/child pair in order.
func build(t *testing.T, pairs ...[2]ID) *Tree {
	t.Helper()
	ret := New("a")
	for _, pair := range pairs {
		require.NoError(t, ret.Spawn(pair[0], pair[1]))
	}
	require.NoError(t, ret.Check())
	return ret
}

func TestTree_Fork(t *testing.T) {
	tr := New("a")
	b, err := tr.Fork("a")
	require.NoError(t, err)
	c, err := tr.Fork("a")
	require.NoError(t, err)
	d, err := tr.Fork(b)
	require.NoError(t, err)

	assert.EqualValues(t, []ID{"b", "c"}, tr.Children("a"))
	assert.EqualValues(t, []ID{"d"}, tr.Children(b))
	parent, ok := tr.Parent(d)
	assert.True(t, ok)
	assert.Equal(t, b, parent)
	assert.Equal(t, ID("c"), c)
	assert.Equal(t, 4, tr.Len())
	assert.NoError(t, tr.Check())

	_, err = tr.Fork("zz")
	assert.True(t, errors.Is(err, ErrUnknownProcess))
	assert.Equal(t, 4, tr.Len())
}

func TestTree_Spawn(t *testing.T) {
	testCases := []struct {
		description string
		parent      ID
		child       ID
		expect      error
	}{
		{description: "new child", parent: "b", child: "x"},
		{description: "unknown parent", parent: "q", child: "x", expect: ErrUnknownProcess},
		{description: "live name", parent: "a", child: "b", expect: ErrDuplicateProcess},
		{description: "retired name", parent: "a", child: "c", expect: ErrDuplicateProcess},
		{description: "root name", parent: "b", child: "a", expect: ErrDuplicateProcess},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			tr := build(t, [2]ID{"a", "b"}, [2]ID{"a", "c"})
			require.NoError(t, tr.Exit("c", LocalReparent))
			err := tr.Spawn(tc.parent, tc.child)
			if tc.expect != nil {
				assert.True(t, errors.Is(err, tc.expect), "got %v", err)
				assert.Equal(t, 2, tr.Len())
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, tr.Check())
		})
	}
}

func TestTree_ForkSkipsSpawnedNames(t *testing.T) {
	tr := build(t, [2]ID{"a", "b"}, [2]ID{"a", "d"})
	next, err := tr.Fork("a")
	require.NoError(t, err)
	assert.Equal(t, ID("c"), next)
	next, err = tr.Fork("a")
	require.NoError(t, err)
	assert.Equal(t, ID("e"), next)
}

func TestTree_Exit(t *testing.T) {
	testCases := []struct {
		description string
		pairs       [][2]ID
		exit        ID
		policy      Policy
		expect      map[ID][]ID
	}{
		{
			description: "local reparent moves direct children to grandparent",
			pairs:       [][2]ID{{"a", "b"}, {"a", "c"}, {"b", "d"}},
			exit:        "b",
			policy:      LocalReparent,
			expect:      map[ID][]ID{"a": {"c", "d"}},
		},
		{
			description: "root reparent with root grandparent",
			pairs:       [][2]ID{{"a", "b"}, {"a", "c"}, {"b", "d"}},
			exit:        "b",
			policy:      RootReparent,
			expect:      map[ID][]ID{"a": {"c", "d"}},
		},
		{
			description: "local reparent keeps deeper chain",
			pairs:       [][2]ID{{"a", "b"}, {"b", "d"}, {"d", "g"}},
			exit:        "b",
			policy:      LocalReparent,
			expect:      map[ID][]ID{"a": {"d"}, "d": {"g"}},
		},
		{
			description: "root reparent flattens whole subtree",
			pairs:       [][2]ID{{"a", "b"}, {"b", "d"}, {"d", "g"}},
			exit:        "b",
			policy:      RootReparent,
			expect:      map[ID][]ID{"a": {"d", "g"}, "d": nil, "g": nil},
		},
		{
			description: "local reparent below root",
			pairs:       [][2]ID{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"c", "e"}, {"b", "f"}},
			exit:        "c",
			policy:      LocalReparent,
			expect:      map[ID][]ID{"a": {"b"}, "b": {"f", "d", "e"}},
		},
		{
			description: "root reparent below root uses pre-order",
			pairs:       [][2]ID{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "g"}, {"c", "e"}, {"b", "f"}},
			exit:        "c",
			policy:      RootReparent,
			expect:      map[ID][]ID{"a": {"b", "d", "g", "e"}, "b": {"f"}, "d": nil},
		},
		{
			description: "leaf exit",
			pairs:       [][2]ID{{"a", "b"}, {"a", "c"}},
			exit:        "b",
			policy:      RootReparent,
			expect:      map[ID][]ID{"a": {"c"}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			tr := build(t, tc.pairs...)
			require.NoError(t, tr.Exit(tc.exit, tc.policy))
			assert.NoError(t, tr.Check())
			assert.False(t, tr.IsLive(tc.exit))
			for id, children := range tc.expect {
				assert.EqualValues(t, children, tr.Children(id), "children of %s", id)
				for _, child := range children {
					parent, _ := tr.Parent(child)
					assert.Equal(t, id, parent)
				}
			}
		})
	}
}

func TestTree_ExitRejections(t *testing.T) {
	tr := build(t, [2]ID{"a", "b"}, [2]ID{"b", "c"})
	before := tr.Descendants("a")

	err := tr.Exit("a", LocalReparent)
	assert.True(t, errors.Is(err, ErrCannotExitRoot))
	err = tr.Exit("a", RootReparent)
	assert.True(t, errors.Is(err, ErrCannotExitRoot))
	err = tr.Exit("x", RootReparent)
	assert.True(t, errors.Is(err, ErrUnknownProcess))

	assert.EqualValues(t, before, tr.Descendants("a"))
	assert.NoError(t, tr.Check())

	require.NoError(t, tr.Exit("c", RootReparent))
	err = tr.Exit("c", RootReparent)
	assert.True(t, errors.Is(err, ErrUnknownProcess))
}

func TestTree_Descendants(t *testing.T) {
	tr := build(t, [2]ID{"a", "b"}, [2]ID{"a", "c"}, [2]ID{"b", "d"}, [2]ID{"d", "e"}, [2]ID{"c", "f"})
	assert.EqualValues(t, []ID{"a", "b", "d", "e", "c", "f"}, tr.Descendants("a"))
	assert.EqualValues(t, []ID{"d", "e"}, tr.Descendants("d"))
	assert.Nil(t, tr.Descendants("zz"))
	assert.EqualValues(t, []ID{"a", "b", "c", "d", "e", "f"}, tr.Live())
}

func TestTree_CheckDetectsCorruption(t *testing.T) {
	tr := build(t, [2]ID{"a", "b"}, [2]ID{"b", "c"})
	tr.procs["c"].Parent = "a"
	assert.True(t, errors.Is(tr.Check(), ErrInvariant))

	tr = build(t, [2]ID{"a", "b"})
	tr.retired["b"] = true
	assert.True(t, errors.Is(tr.Check(), ErrInvariant))

	tr = build(t, [2]ID{"a", "b"}, [2]ID{"b", "c"})
	tr.procs["b"].Children = nil
	assert.True(t, errors.Is(tr.Check(), ErrInvariant))
}

func TestTree_InvariantsUnderRandomWalk(t *testing.T) {
	tr := New("a")
	seen := map[ID]bool{"a": true}
	for i := 0; i < 400; i++ {
		live := tr.Live()
		target := live[(i*7)%len(live)]
		if i%3 == 2 && target != tr.Root() {
			require.NoError(t, tr.Exit(target, PolicyOf(i%2 == 0)))
		} else {
			child, err := tr.Fork(target)
			require.NoError(t, err)
			assert.False(t, seen[child], "name %s reused", child)
			seen[child] = true
		}
		require.NoError(t, tr.Check())
	}
}
