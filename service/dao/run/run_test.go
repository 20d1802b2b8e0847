package run_test

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/forktree/service/dao"
	"github.com/viant/forktree/service/dao/run"
	"github.com/viant/forktree/service/dao/run/fs"
	"github.com/viant/forktree/service/dao/run/memory"
	"github.com/viant/forktree/service/simulator"
)

func newResult(id, policy string, startedAt time.Time) *simulator.Result {
	config := simulator.DefaultConfig()
	config.LocalReparent = policy == "local"
	config.Actions = []string{"a+b", "b-"}
	return &simulator.Result{
		ID:        id,
		Config:    config,
		Policy:    policy,
		Actions:   []string{"a+b", "b-"},
		Outcomes:  []*simulator.Outcome{{Action: "a+b", Description: "a forks b", Applied: true, Live: 2}},
		FinalTree: "─── a\n",
		StartedAt: startedAt,
	}
}

func TestStores(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		description string
		new         func(t *testing.T) run.Service
	}{
		{
			description: "memory",
			new:         func(t *testing.T) run.Service { return memory.New() },
		},
		{
			description: "fs",
			new: func(t *testing.T) run.Service {
				ret, err := fs.New(ctx, "mem://localhost/forktree/"+t.Name(), afs.New())
				require.NoError(t, err)
				return ret
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			srv := tc.new(t)
			base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
			require.NoError(t, srv.Save(ctx, newResult("r1", "root", base)))
			require.NoError(t, srv.Save(ctx, newResult("r2", "local", base.Add(time.Minute))))
			require.NoError(t, srv.Save(ctx, newResult("r3", "root", base.Add(2*time.Minute))))

			loaded, err := srv.Load(ctx, "r2")
			require.NoError(t, err)
			assert.Equal(t, "local", loaded.Policy)
			assert.True(t, loaded.Config.LocalReparent)
			assert.EqualValues(t, []string{"a+b", "b-"}, loaded.Actions)
			assert.Equal(t, "─── a\n", loaded.FinalTree)
			assert.True(t, base.Add(time.Minute).Equal(loaded.StartedAt))
			require.Len(t, loaded.Outcomes, 1)
			assert.True(t, loaded.Outcomes[0].Applied)

			all, err := srv.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"r1", "r2", "r3"}, ids(all))

			roots, err := srv.List(ctx, dao.NewParameter(run.FieldPolicy, "root"))
			require.NoError(t, err)
			assert.Equal(t, []string{"r1", "r3"}, ids(roots))

			require.NoError(t, srv.Delete(ctx, "r1"))
			_, err = srv.Load(ctx, "r1")
			assert.True(t, errors.Is(err, dao.ErrNotFound))
			assert.True(t, errors.Is(srv.Delete(ctx, "r1"), dao.ErrNotFound))

			assert.True(t, errors.Is(srv.Save(ctx, nil), dao.ErrNilEntity))
			assert.True(t, errors.Is(srv.Save(ctx, &simulator.Result{}), dao.ErrInvalidID))
			_, err = srv.Load(ctx, "")
			assert.True(t, errors.Is(err, dao.ErrInvalidID))
		})
	}
}

func TestFields(t *testing.T) {
	r := newResult("r1", "local", time.Time{})
	assert.Equal(t, map[string]string{run.FieldPolicy: "local", run.FieldStyle: "fancy"}, run.Fields(r))
	assert.Equal(t, "r1", run.Key(r))
}

func ids(results []*simulator.Result) []string {
	ret := make([]string, 0, len(results))
	for _, r := range results {
		ret = append(ret, r.ID)
	}
	return ret
}
