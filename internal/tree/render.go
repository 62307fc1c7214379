package tree

import (
	"fmt"
	"io"
	"path/filepath"

	"navdir/internal/logging"
	"navdir/internal/walker"
)

type Options struct {
	Depth   int
	Entries int
	walker.Options
}

// Render writes the subtree under root to w as an indented listing with
// box-drawing connectors. At most opts.Entries children are shown per
// directory; a trailing "…" line marks the rest unless the directory sits on
// the deepest rendered level. A root that does not exist renders nothing.
//
// Only write errors are returned. Unreadable directories render as empty.
func Render(w io.Writer, root string, opts Options) error {
	rootEntry, ok := walker.Root(root)
	if !ok {
		logging.Debug("tree root does not exist", logging.String("path", root))
		return nil
	}

	r := &renderer{
		w:     w,
		opts:  opts,
		guard: walker.NewGuard(!opts.FollowCycles),
	}
	r.node(rootEntry, "", true, opts.Depth)

	return r.err
}

type renderer struct {
	w     io.Writer
	opts  Options
	guard *walker.Guard
	err   error
}

func (r *renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		r.err = fmt.Errorf("failed to write tree: %w", err)
	}
}

func (r *renderer) node(entry walker.Entry, prefix string, last bool, depth int) {
	if depth == 0 || r.err != nil {
		return
	}

	r.printf("%s%s%s %s\n", prefix, connector(last), marker(entry.IsDir), filepath.Base(entry.Path))

	// The deepest rendered level shows neither children nor an elision line.
	if !entry.IsDir || depth == 1 {
		return
	}

	release, ok := r.guard.Enter(entry.Path)
	if !ok {
		return
	}
	defer release()

	children := walker.ListDir(entry.Path, entry.Depth+1, r.opts.Hidden)
	shown := children
	if len(shown) > r.opts.Entries {
		shown = shown[:max(r.opts.Entries, 0)]
	}
	truncated := len(children) > len(shown)

	childPrefix := prefix + indent(last)
	for i, child := range shown {
		// With truncation the elision marker is the last sibling, so no
		// rendered child gets the closing connector.
		isLast := i == len(shown)-1 && !truncated
		r.node(child, childPrefix, isLast, depth-1)
	}

	if truncated {
		r.printf("%s%s%s\n", childPrefix, connectorLast, elision)
	}
}
