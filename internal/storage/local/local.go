// Package local keeps the public tree on a filesystem.
package local

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/xw1nchester/foodcatalog-backend/internal/storage"
)

type store struct {
	fs afero.Fs
}

func New(fs afero.Fs) *store {
	return &store{fs: fs}
}

// NewDir roots the store at dir on the OS filesystem.
func NewDir(dir string) (*store, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}

	return New(afero.NewBasePathFs(osFs, root)), nil
}

func (s *store) EnsureDir(ctx context.Context, dir string) error {
	return s.fs.MkdirAll(dir, 0o755)
}

func (s *store) Write(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if err := afero.WriteReader(s.fs, name, r); err != nil {
		s.fs.Remove(name)
		return err
	}

	return nil
}

func (s *store) Remove(ctx context.Context, name string) error {
	if err := s.fs.Remove(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotExist
		}
		return err
	}

	return nil
}

func (s *store) Open(ctx context.Context, name string) (io.ReadSeekCloser, *storage.Info, error) {
	f, err := s.fs.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, storage.ErrNotExist
		}
		return nil, nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	if stat.IsDir() {
		f.Close()
		return nil, nil, storage.ErrNotExist
	}

	return f, &storage.Info{
		Size:        stat.Size(),
		ModTime:     stat.ModTime(),
		ContentType: mime.TypeByExtension(filepath.Ext(name)),
	}, nil
}
