package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	store := "mem://localhost/forktree/cli-runs"

	out, errOut, err := execute(t, "run", "--store", store, "--log-level", "error",
		"-c", "-P", "basic", "-A", "a+b,b+c,b-", "--metrics")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, strings.Repeat(" ", 27)+"Process Tree:\na\n\n"))
	assert.Contains(t, out, "Action: b EXITS\na\n    c\n")
	assert.Contains(t, errOut, "forktree_runs_total 1")
	require.True(t, strings.HasPrefix(errOut, "run: "))
	runID := strings.TrimSpace(strings.SplitN(strings.TrimPrefix(errOut, "run: "), "\n", 2)[0])

	out, _, err = execute(t, "show", runID, "--store", store)
	require.NoError(t, err)
	assert.Contains(t, out, "policy:   root")
	assert.Contains(t, out, "b EXITS")
	assert.True(t, strings.HasSuffix(out, "a\n    c\n"))

	out, errOut, err = execute(t, "replay", runID, "--store", store, "-R", "-P", "line1", "--events")
	require.NoError(t, err)
	assert.Contains(t, out, "|-- c\n")
	assert.Contains(t, errOut, "event: 3 applied b EXITS\n")

	out, _, err = execute(t, "show", "--store", store, "--policy", "local")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, " local 3 actions")

	_, _, err = execute(t, "run", "--store", store, "-A", "a+b,a*b")
	assert.Error(t, err)
}
