package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/forktree/model/action"
	"github.com/viant/forktree/model/tree"
)

// buildTree applies one action per input line to a tree rooted at "a".
func buildTree(t *testing.T, input string, policy tree.Policy) *tree.Tree {
	ret := tree.New("a")
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		if line == "" {
			continue
		}
		a, err := action.Parse(line)
		require.NoError(t, err)
		switch a.Kind {
		case action.KindFork:
			require.NoError(t, ret.Spawn(a.Parent, a.Child))
		case action.KindExit:
			require.NoError(t, ret.Exit(a.Parent, policy))
		}
	}
	return ret
}

func TestRender(t *testing.T) {
	datadriven.RunTest(t, "testdata/render", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "render":
			name := "fancy"
			if d.HasArg("style") {
				d.ScanArgs(t, "style", &name)
			}
			style, err := ParseStyle(name)
			if err != nil {
				return err.Error() + "\n"
			}
			policy := tree.RootReparent
			if d.HasArg("local") {
				policy = tree.LocalReparent
			}
			return New(style).String(buildTree(t, d.Input, policy))
		default:
			return fmt.Sprintf("unknown command: %s\n", d.Cmd)
		}
	})
}

func TestParseStyle(t *testing.T) {
	for i, name := range Styles() {
		style, err := ParseStyle(name)
		assert.NoError(t, err)
		assert.Equal(t, Style(i), style)
		assert.Equal(t, name, style.String())
	}
	for _, name := range []string{"FANCY", "Basic", " line1", "curly", ""} {
		_, err := ParseStyle(name)
		assert.True(t, errors.Is(err, ErrUnknownStyle), "style %q", name)
	}
	assert.Equal(t, Glyphs{}, Basic.Glyphs())
	assert.Equal(t, "└", Fancy.Glyphs().Corner)
}

func TestRender_DoesNotShareMask(t *testing.T) {
	tr := buildTree(t, "a+b\nb+c\nb+d\nc+e\nd+f\na+g", tree.RootReparent)
	expected := strings.Join([]string{
		"─── a",
		"├── b",
		"│   ├── c",
		"│   │   └── e",
		"│   └── d",
		"│       └── f",
		"└── g",
		"",
	}, "\n")
	assert.Equal(t, expected, New(Fancy).String(tr))
}

func TestDiff(t *testing.T) {
	tr := buildTree(t, "a+b\na+c", tree.RootReparent)
	r := New(Basic)
	before := r.String(tr)
	require.NoError(t, tr.Exit("b", tree.RootReparent))
	after := r.String(tr)

	diff, err := Diff(before, after, "tree")
	require.NoError(t, err)
	assert.Contains(t, diff, "--- tree (before)")
	assert.Contains(t, diff, "+++ tree (after)")
	assert.Contains(t, diff, "-    b\n")

	diff, err = Diff(after, after, "tree")
	assert.NoError(t, err)
	assert.Empty(t, diff)
}
