// Package media is a filesystem blob store for avatars and post
// images, keyed by filename = {entity-id}{extension}.
package media

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("media not found")

type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}

	return &Store{root: root}, nil
}

func (s *Store) Save(name string, r io.Reader) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, r)
	return err
}

// Path returns the on-disk location of a stored file, or ErrNotFound.
func (s *Store) Path(name string) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}

	return path, nil
}

// resolve rejects names that would escape the media root.
func (s *Store) resolve(name string) (string, error) {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return "", ErrNotFound
	}

	return filepath.Join(s.root, name), nil
}
