// Package history persists the directories a shell navigated away from.
//
// The stack lives in a flat text file, one path per line, oldest first; the
// last line is the top. Pushes append a line and pops rewrite the file with
// the retained prefix. There is no locking: one shell session at a time is
// assumed.
package history

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

const DefaultListSize = 10

var (
	ErrEmptyPath    = errors.New("history: empty path")
	ErrInvalidCount = errors.New("history: pop count must be at least 1")
)

type Stack struct {
	path string
}

func New(path string) *Stack {
	return &Stack{path: path}
}

// Path returns the file backing the stack.
func (s *Stack) Path() string {
	return s.path
}

// Entries returns the whole stack, oldest first. A missing file is an empty
// stack; blank lines are ignored.
func (s *Stack) Entries() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	entries := make([]string, 0)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}

// Push appends dir as the new top of the stack, creating the file if needed.
// Duplicates and paths that no longer exist are accepted as-is.
func (s *Stack) Push(dir string) (err error) {
	if dir == "" {
		return ErrEmptyPath
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	line := dir + "\n"
	// A hand-edited file may lack its final newline.
	open, err := endsMidLine(f)
	if err != nil {
		return fmt.Errorf("failed to inspect history: %w", err)
	}
	if open {
		line = "\n" + line
	}

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

func endsMidLine(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && err != io.EOF {
		return false, err
	}
	return last[0] != '\n', nil
}

// PopN removes the n most recent entries and returns the oldest of them, the
// directory being jumped back to. n is clamped to the stack length. An empty
// stack yields ok == false and leaves the file untouched.
func (s *Stack) PopN(n int) (dir string, ok bool, err error) {
	if n < 1 {
		return "", false, ErrInvalidCount
	}

	entries, err := s.Entries()
	if err != nil {
		return "", false, err
	}
	if len(entries) == 0 {
		return "", false, nil
	}

	n = min(n, len(entries))
	keep := len(entries) - n
	dir = entries[keep]

	if err := s.rewrite(entries[:keep]); err != nil {
		return "", false, err
	}
	return dir, true, nil
}

func (s *Stack) rewrite(entries []string) error {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(e)
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to update history: %w", err)
	}
	return nil
}

// ListTail returns up to k of the most recent entries, newest first. It never
// modifies the stack.
func (s *Stack) ListTail(k int) ([]string, error) {
	if k <= 0 {
		return []string{}, nil
	}

	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}

	start := max(len(entries)-k, 0)
	tail := make([]string, 0, len(entries)-start)
	for i := len(entries) - 1; i >= start; i-- {
		tail = append(tail, entries[i])
	}
	return tail, nil
}
