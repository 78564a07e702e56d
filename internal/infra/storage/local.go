// Package storage keeps uploaded files on the local disk under a directory
// served statically by the router.
package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"ranch-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOutsideRoot = errs.New("path is outside the upload directory")

type LocalStore struct {
	dir       string
	urlPrefix string
}

func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create upload directory")
	}
	return &LocalStore{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

// Save writes body under a random name that keeps the original extension and
// returns its public path, e.g. /uploads/<uuid>.jpg.
func (s *LocalStore) Save(_ context.Context, filename string, body io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errs.Wrap(err, "failed to create upload file")
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", errs.Wrap(err, "failed to write upload file")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", errs.Wrap(err, "failed to close upload file")
	}
	return s.urlPrefix + "/" + name, nil
}

// Remove deletes the file behind a public path returned by Save. Missing
// files are not an error.
func (s *LocalStore) Remove(_ context.Context, src string) error {
	name := path.Base(strings.TrimPrefix(src, s.urlPrefix+"/"))
	if name == "." || name == "/" || name == ".." {
		return ErrOutsideRoot
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to remove upload file")
	}
	return nil
}
