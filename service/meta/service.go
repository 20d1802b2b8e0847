// Package meta loads yaml documents from any afs location, expanding
// ${env.KEY} expressions before decoding.
package meta

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service reads configuration documents. Relative locations resolve against
// baseURL.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// URL resolves location against the base URL. Plain absolute paths are read
// from the local file system.
func (s *Service) URL(location string) string {
	if s.baseURL != "" && url.IsRelative(location) {
		return url.Join(s.baseURL, location)
	}
	return url.Normalize(location, file.Scheme)
}

// Load downloads location and decodes it into dest.
func (s *Service) Load(ctx context.Context, location string, dest interface{}) error {
	URL := s.URL(location)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return errors.Wrapf(err, "download %s", URL)
	}
	if err = yaml.Unmarshal([]byte(expandEnv(string(data))), dest); err != nil {
		return errors.Wrapf(err, "decode %s", URL)
	}
	return nil
}

// New creates a meta service. A nil fs uses a default afs service; options
// are passed to every download (for example an embed.FS).
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, baseURL: baseURL, options: options}
}
