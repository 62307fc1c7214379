package walker

import (
	"os"
	"path/filepath"
	"strings"

	"navdir/internal/logging"
)

// Entry is a single node of a directory tree. Depth is the distance from the
// root the traversal started at.
type Entry struct {
	Path  string
	IsDir bool
	Depth int
}

type Options struct {
	// Hidden includes entries whose base name starts with a dot.
	Hidden bool
	// FollowCycles disables the ancestor guard, leaving the depth budget as
	// the only bound on symlink loops.
	FollowCycles bool
}

func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Root returns the entry for path, or false if nothing exists there.
func Root(path string) (Entry, bool) {
	if _, err := os.Lstat(path); err != nil {
		return Entry{}, false
	}
	return Entry{Path: path, IsDir: isDir(path), Depth: 0}, true
}

// ListDir returns the children of dir in name order. Directories that cannot
// be read are reported as empty.
func ListDir(dir string, depth int, hidden bool) []Entry {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		logging.Debug("skipping unreadable directory", logging.String("path", dir), logging.Err(err))
		return nil
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if !hidden && IsHidden(d.Name()) {
			continue
		}

		path := filepath.Join(dir, d.Name())
		dirFlag := d.IsDir()
		if d.Type()&os.ModeSymlink != 0 {
			dirFlag = isDir(path)
		}

		entries = append(entries, Entry{
			Path:  path,
			IsDir: dirFlag,
			Depth: depth,
		})
	}

	return entries
}

// isDir follows symlinks, so a link to a directory counts as one.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Collect gathers the root and every descendant within depth-1 hops of it in
// pre-order. A depth of zero collects nothing.
func Collect(root string, depth int, opts Options) []Entry {
	result := make([]Entry, 0)

	rootEntry, ok := Root(root)
	if !ok {
		return result
	}

	c := &collector{
		opts:  opts,
		guard: NewGuard(!opts.FollowCycles),
	}
	c.collect(rootEntry, depth, &result)

	return result
}

type collector struct {
	opts  Options
	guard *Guard
}

func (c *collector) collect(entry Entry, depth int, out *[]Entry) {
	if depth == 0 {
		return
	}

	*out = append(*out, entry)

	if !entry.IsDir || depth == 1 {
		return
	}

	release, ok := c.guard.Enter(entry.Path)
	if !ok {
		logging.Debug("not descending into cycle", logging.String("path", entry.Path))
		return
	}
	defer release()

	for _, child := range ListDir(entry.Path, entry.Depth+1, c.opts.Hidden) {
		c.collect(child, depth-1, out)
	}
}
