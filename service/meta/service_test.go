package meta

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestService_Load(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/meta/forktree.yaml"
	document := "simulation:\n  printStyle: ${env.FT_META_STYLE}\n  maxActions: 9\n"
	require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(document)))
	t.Setenv("FT_META_STYLE", "line2")

	var dest struct {
		Simulation struct {
			PrintStyle string `yaml:"printStyle"`
			MaxActions int    `yaml:"maxActions"`
		} `yaml:"simulation"`
	}
	srv := New(fs, "")
	require.NoError(t, srv.Load(ctx, URL, &dest))
	assert.Equal(t, "line2", dest.Simulation.PrintStyle)
	assert.Equal(t, 9, dest.Simulation.MaxActions)

	relative := New(fs, "mem://localhost/meta")
	assert.Equal(t, URL, relative.URL("forktree.yaml"))
	assert.Equal(t, URL, relative.URL(URL))
	assert.Error(t, relative.Load(ctx, "missing.yaml", &dest))
}
