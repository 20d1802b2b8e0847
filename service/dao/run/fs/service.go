// Package fs persists run records as yaml files on any afs storage.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/forktree/service/dao"
	"github.com/viant/forktree/service/dao/criteria"
	"github.com/viant/forktree/service/dao/run"
	"github.com/viant/forktree/service/simulator"
	"gopkg.in/yaml.v3"
)

const ext = ".yaml"

// Service stores each run as <baseURL>/<runID>.yaml.
type Service struct {
	baseURL string
	fs      afs.Service
	mu      sync.RWMutex
}

var _ run.Service = (*Service)(nil)

// Save writes r, replacing any earlier record with the same id.
func (s *Service) Save(ctx context.Context, r *simulator.Result) error {
	if r == nil {
		return dao.ErrNilEntity
	}
	if r.ID == "" {
		return dao.ErrInvalidID
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return errors.Wrapf(err, "encode run %s", r.ID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	URL := s.runURL(r.ID)
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return errors.Wrapf(err, "save run to %s", URL)
	}
	return nil
}

// Load reads the run with id.
func (s *Service) Load(ctx context.Context, id string) (*simulator.Result, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	URL := s.runURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "check run %s", id)
	}
	if !exists {
		return nil, errors.Wrapf(dao.ErrNotFound, "run %s", id)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "read run %s", id)
	}
	return decode(data, URL)
}

// Delete removes the run with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	URL := s.runURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return errors.Wrapf(err, "check run %s", id)
	}
	if !exists {
		return errors.Wrapf(dao.ErrNotFound, "run %s", id)
	}
	return s.fs.Delete(ctx, URL)
}

// List returns the matching runs ordered by start time. Files that cannot be
// decoded are an error.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*simulator.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "list runs in %s", s.baseURL)
	}
	var ret []*simulator.Result
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ext) {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", object.URL())
		}
		r, err := decode(data, object.URL())
		if err != nil {
			return nil, err
		}
		if !criteria.Match(run.Fields(r), parameters) {
			continue
		}
		ret = append(ret, r)
	}
	sort.SliceStable(ret, func(i, j int) bool {
		if ret[i].StartedAt.Equal(ret[j].StartedAt) {
			return ret[i].ID < ret[j].ID
		}
		return ret[i].StartedAt.Before(ret[j].StartedAt)
	})
	return ret, nil
}

func (s *Service) runURL(id string) string {
	return url.Join(s.baseURL, fmt.Sprintf("%s%s", id, ext))
}

func decode(data []byte, URL string) (*simulator.Result, error) {
	ret := &simulator.Result{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, errors.Wrapf(err, "decode %s", URL)
	}
	return ret, nil
}

// New creates a store rooted at baseURL, creating the location if needed.
// Plain paths are treated as local files.
func New(ctx context.Context, baseURL string, fs afs.Service) (*Service, error) {
	if baseURL == "" {
		return nil, errors.Wrap(dao.ErrInvalidID, "empty base URL")
	}
	if fs == nil {
		fs = afs.New()
	}
	baseURL = url.Normalize(baseURL, file.Scheme)
	exists, err := fs.Exists(ctx, baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "check %s", baseURL)
	}
	if !exists {
		if err := fs.Create(ctx, baseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, errors.Wrapf(err, "create %s", baseURL)
		}
	}
	return &Service{baseURL: baseURL, fs: fs}, nil
}
