package store

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FileStore keeps each kind in <dir>/<kind>.json.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, errors.Wrapf(err, "create store dir %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(kind Kind) string {
	return filepath.Join(s.dir, string(kind)+".json")
}

func (s *FileStore) Read(ctx context.Context, kind Kind) ([]byte, error) {
	if !kind.Valid() {
		return nil, errors.Errorf("unknown record kind %q", kind)
	}
	path := s.path(kind)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		created, cerr := s.create(path)
		if cerr != nil {
			return nil, cerr
		}
		if created {
			return emptyArray, nil
		}
		// Someone else created it first.
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

// create writes an empty array to path unless the file already exists. It never
// truncates, so a concurrent Write that renamed real data into place is kept.
func (s *FileStore) create(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "create %s", path)
	}
	logrus.Infof("store: creating %s", path)
	if _, err := f.Write(emptyArray); err != nil {
		f.Close()
		return false, errors.Wrapf(err, "create %s", path)
	}
	if err := f.Close(); err != nil {
		return false, errors.Wrapf(err, "create %s", path)
	}
	return true, nil
}

// Write replaces the file through a temporary sibling and a rename, so a reader never
// observes a half-written array.
func (s *FileStore) Write(ctx context.Context, kind Kind, data []byte) error {
	if !kind.Valid() {
		return errors.Errorf("unknown record kind %q", kind)
	}
	path := s.path(kind)
	tmp, err := os.CreateTemp(s.dir, string(kind)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replace %s", path)
	}
	return nil
}
