// Package nav implements the actions that move the shell: resolving a
// favourite or path to jump to, and jumping back through history.
package nav

import (
	"errors"
	"os"
	"path/filepath"

	"navdir/internal/logging"
)

var (
	ErrNoTarget  = errors.New("wrong path/favourite")
	ErrNoHistory = errors.New("no previous directory")
)

type Favourites interface {
	Resolve(name string) (string, bool, error)
}

type History interface {
	Push(dir string) error
	PopN(n int) (string, bool, error)
}

type Navigator struct {
	favs Favourites
	hist History
}

func New(favs Favourites, hist History) *Navigator {
	return &Navigator{favs: favs, hist: hist}
}

// Go resolves target, first as a favourite name and then as a path, and
// records cwd in history before returning the directory to change into.
// Targets that do not exist or point at cwd itself yield ErrNoTarget.
func (n *Navigator) Go(cwd, target string) (string, error) {
	if target == "" {
		return "", ErrNoTarget
	}

	fav, ok, err := n.favs.Resolve(target)
	if err != nil {
		return "", err
	}
	if ok && exists(fav) && !samePath(fav, cwd) {
		logging.Debug("resolved favourite", logging.String("name", target), logging.String("path", fav))
		return n.leave(cwd, fav)
	}

	if exists(target) && !samePath(target, cwd) {
		return n.leave(cwd, target)
	}

	return "", ErrNoTarget
}

func (n *Navigator) leave(cwd, dest string) (string, error) {
	if err := n.hist.Push(cwd); err != nil {
		return "", err
	}
	return dest, nil
}

// Back pops steps entries off the history and returns the directory to
// return to.
func (n *Navigator) Back(steps int) (string, error) {
	dir, ok, err := n.hist.PopN(steps)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoHistory
	}

	logging.Debug("jumped back", logging.Int("steps", steps), logging.String("path", dir))
	return dir, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
