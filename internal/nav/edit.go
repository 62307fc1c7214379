package nav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

var ErrNothingToEdit = errors.New("no file or favourite to edit")

// Editor opens files in an external editor attached to the caller's terminal.
type Editor struct {
	Command string // may carry arguments, e.g. "code -w"
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

func NewEditor(command string) *Editor {
	return &Editor{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Edit opens target when it is a regular file, otherwise the favourite it
// names if that is a regular file. It waits for the editor to exit and
// returns the file that was opened.
func (n *Navigator) Edit(ctx context.Context, editor *Editor, target string) (string, error) {
	file := ""
	if isFile(target) {
		file = target
	} else {
		fav, ok, err := n.favs.Resolve(target)
		if err != nil {
			return "", err
		}
		if ok && isFile(fav) {
			file = fav
		}
	}
	if file == "" {
		return "", ErrNothingToEdit
	}

	if err := editor.Open(ctx, file); err != nil {
		return "", err
	}
	return file, nil
}

func (e *Editor) Open(ctx context.Context, file string) error {
	args := strings.Fields(e.Command)
	if len(args) == 0 {
		return errors.New("no editor configured")
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], file)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor %q: %w", args[0], err)
	}
	return nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
