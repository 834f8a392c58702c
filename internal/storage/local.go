package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore writes files below a directory; used when no Cloudinary URL is set
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates dir if needed. baseURL is the public prefix the
// files are served under.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStore) Upload(_ context.Context, r io.Reader, opts UploadOptions) (*Object, error) {
	name := uuid.NewString()
	if ext := filepath.Ext(opts.FileName); ext != "" {
		name += ext
	}
	publicID := path.Join(opts.Folder, name)

	target := filepath.Join(s.dir, filepath.FromSlash(publicID))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	f, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(target)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return &Object{URL: s.baseURL + "/" + publicID, PublicID: publicID}, nil
}

func (s *LocalStore) Delete(_ context.Context, publicID, _ string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(path.Clean("/"+publicID))))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete %s: %w", publicID, err)
	}
	return nil
}
