// Package favourites manages the list of directories a user can jump to by
// base name.
package favourites

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/text/cases"
)

type Store struct {
	path string
	fold cases.Caser
}

func New(path string) *Store {
	return &Store{
		path: path,
		fold: cases.Fold(),
	}
}

func (s *Store) Path() string {
	return s.path
}

// List returns the favourites in file order, skipping blank lines.
func (s *Store) List() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read favourites: %w", err)
	}

	favs := make([]string, 0)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		favs = append(favs, line)
	}
	return favs, nil
}

func (s *Store) key(name string) string {
	return s.fold.String(name)
}

// Resolve returns the first favourite whose base name matches name, ignoring
// case. Only the base name is compared, never the full path.
func (s *Store) Resolve(name string) (string, bool, error) {
	favs, err := s.List()
	if err != nil {
		return "", false, err
	}

	want := s.key(name)
	for _, fav := range favs {
		if s.key(filepath.Base(fav)) == want {
			return fav, true, nil
		}
	}
	return "", false, nil
}

// Complete returns the base names of favourites starting with prefix,
// ignoring case, in list order.
func (s *Store) Complete(prefix string) ([]string, error) {
	favs, err := s.List()
	if err != nil {
		return nil, err
	}

	want := s.key(prefix)
	names := make([]string, 0)
	for _, fav := range favs {
		name := filepath.Base(fav)
		if strings.HasPrefix(s.key(name), want) {
			names = append(names, name)
		}
	}
	return names, nil
}

// Add appends path to the list. Paths that do not exist or are already
// listed are ignored and reported as not added.
func (s *Store) Add(path string) (added bool, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("failed to get absolute path: %w", err)
	}

	if _, err := os.Stat(abs); err != nil {
		return false, nil
	}

	favs, err := s.List()
	if err != nil {
		return false, err
	}
	for _, fav := range favs {
		if fav == abs {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return false, fmt.Errorf("failed to create favourites directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open favourites: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if _, err := f.WriteString(abs + "\n"); err != nil {
		return false, fmt.Errorf("failed to write favourites: %w", err)
	}
	return true, nil
}

// Remove drops the favourite that name resolves to. Every line holding that
// path is removed.
func (s *Store) Remove(name string) (string, bool, error) {
	match, ok, err := s.Resolve(name)
	if err != nil || !ok {
		return "", false, err
	}

	favs, err := s.List()
	if err != nil {
		return "", false, err
	}

	var buf bytes.Buffer
	for _, fav := range favs {
		if fav == match {
			continue
		}
		buf.WriteString(fav)
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return "", false, fmt.Errorf("failed to update favourites: %w", err)
	}
	return match, true, nil
}
