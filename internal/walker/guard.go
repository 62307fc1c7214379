package walker

type fileKey struct {
	dev uint64
	ino uint64
}

// Guard tracks the directories on the current ancestor chain so that a
// symlink pointing back up the tree is listed but not expanded again.
type Guard struct {
	enabled bool
	active  map[fileKey]struct{}
}

func NewGuard(enabled bool) *Guard {
	return &Guard{
		enabled: enabled,
		active:  make(map[fileKey]struct{}),
	}
}

// Enter marks dir as an active ancestor. It reports false when dir is already
// on the chain; otherwise the returned release func must be called on the way
// back up.
func (g *Guard) Enter(dir string) (release func(), ok bool) {
	if g == nil || !g.enabled {
		return func() {}, true
	}

	key, known := identify(dir)
	if !known {
		return func() {}, true
	}

	if _, seen := g.active[key]; seen {
		return nil, false
	}

	g.active[key] = struct{}{}
	return func() { delete(g.active, key) }, true
}
