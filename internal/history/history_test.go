package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStack(t *testing.T) *Stack {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "crabwalker", "state.txt"))
}

func writeState(t *testing.T, s *Stack, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0755))
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0644))
}

func readState(t *testing.T, s *Stack) string {
	t.Helper()
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	return string(data)
}

func TestPush_CreatesFile(t *testing.T) {
	s := newStack(t)

	require.NoError(t, s.Push("/home/x/a"))
	require.NoError(t, s.Push("/home/x/b"))
	require.NoError(t, s.Push("/home/x/a"))

	assert.Equal(t, "/home/x/a\n/home/x/b\n/home/x/a\n", readState(t, s))
}

func TestPush_EmptyPath(t *testing.T) {
	s := newStack(t)

	assert.ErrorIs(t, s.Push(""), ErrEmptyPath)
	assert.NoFileExists(t, s.Path())
}

func TestPush_MissingTrailingNewline(t *testing.T) {
	s := newStack(t)
	writeState(t, s, "A\nB")

	require.NoError(t, s.Push("C"))
	assert.Equal(t, "A\nB\nC\n", readState(t, s))
}

func TestPushThenPop_RestoresStack(t *testing.T) {
	s := newStack(t)
	writeState(t, s, "A\nB\n")
	before := readState(t, s)

	require.NoError(t, s.Push("P"))
	dir, ok, err := s.PopN(1)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "P", dir)
	assert.Equal(t, before, readState(t, s))
}

func TestPopN_ReturnsNthMostRecent(t *testing.T) {
	s := newStack(t)
	writeState(t, s, "A\nB\nC\n")

	dir, ok, err := s.PopN(2)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "B", dir)
	assert.Equal(t, "A\n", readState(t, s))
}

func TestPopN_ClampsToLength(t *testing.T) {
	for _, n := range []int{3, 4, 100} {
		s := newStack(t)
		writeState(t, s, "A\nB\nC\n")

		dir, ok, err := s.PopN(n)
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equal(t, "A", dir, "n=%d", n)
		assert.Equal(t, "", readState(t, s), "n=%d", n)
	}
}

func TestPopN_MissingFile(t *testing.T) {
	s := newStack(t)

	dir, ok, err := s.PopN(1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, dir)
	assert.NoFileExists(t, s.Path())
}

func TestPopN_BlankFileIsNotRewritten(t *testing.T) {
	s := newStack(t)
	writeState(t, s, "\n  \n\n")

	_, ok, err := s.PopN(1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "\n  \n\n", readState(t, s))
}

func TestPopN_InvalidCount(t *testing.T) {
	s := newStack(t)
	writeState(t, s, "A\n")

	_, _, err := s.PopN(0)
	assert.ErrorIs(t, err, ErrInvalidCount)
	assert.Equal(t, "A\n", readState(t, s))
}

func TestPopN_BlankLinesTolerated(t *testing.T) {
	s := newStack(t)
	writeState(t, s, "A\n\nB\n\n\nC\n\n")

	dir, ok, err := s.PopN(1)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "C", dir)
	assert.Equal(t, "A\nB\n", readState(t, s))
}

func TestPushAfterPop_KeepsLinesSeparate(t *testing.T) {
	s := newStack(t)
	writeState(t, s, "A\nB\nC\n")

	_, _, err := s.PopN(1)
	require.NoError(t, err)
	require.NoError(t, s.Push("D"))

	entries, err := s.Entries()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, entries)
}

func TestListTail(t *testing.T) {
	s := newStack(t)
	for _, d := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"} {
		require.NoError(t, s.Push(d))
	}
	before := readState(t, s)

	tail, err := s.ListTail(DefaultListSize)
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "11", "10", "9", "8", "7", "6", "5", "4", "3"}, tail)

	again, err := s.ListTail(DefaultListSize)
	require.NoError(t, err)
	assert.Equal(t, tail, again)
	assert.Equal(t, before, readState(t, s))
}

func TestListTail_FewerThanK(t *testing.T) {
	s := newStack(t)
	writeState(t, s, "A\nB\n")

	tail, err := s.ListTail(10)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, tail)

	none, err := s.ListTail(0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListTail_MissingFile(t *testing.T) {
	s := newStack(t)

	tail, err := s.ListTail(10)
	require.NoError(t, err)
	assert.Empty(t, tail)
	assert.NoFileExists(t, s.Path())
}

func TestEntries_UnreadableFile(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.Entries()
	assert.Error(t, err, "reading a directory as history should fail")
}
