package renderer

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff between two renderings of a tree, or an empty
// string when they are identical.
func Diff(before, after, label string) (string, error) {
	if before == after {
		return "", nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.TrimSuffix(before, "\n")),
		B:        difflib.SplitLines(strings.TrimSuffix(after, "\n")),
		FromFile: label + " (before)",
		ToFile:   label + " (after)",
		Context:  1,
	}
	return difflib.GetUnifiedDiffString(ud)
}
