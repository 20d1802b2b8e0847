package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := New()
	r.Action("fork", OutcomeApplied)
	r.Action("fork", OutcomeApplied)
	r.Action("exit", OutcomeRejected)
	r.SetLive(3)
	r.RunCompleted()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.actions.WithLabelValues("fork", OutcomeApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.actions.WithLabelValues("exit", OutcomeRejected)))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.live))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs))

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	assert.Contains(t, buf.String(), `forktree_actions_total{kind="fork",outcome="applied"} 2`)
	assert.Contains(t, buf.String(), "forktree_live_processes 3")
	assert.Contains(t, buf.String(), "forktree_runs_total 1")
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder
	r.Action("fork", OutcomeApplied)
	r.SetLive(1)
	r.RunCompleted()
	assert.Nil(t, r.Registry())
	assert.NoError(t, r.Write(&bytes.Buffer{}))
}
