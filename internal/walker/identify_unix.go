//go:build unix

package walker

import "golang.org/x/sys/unix"

// identify resolves symlinks and returns the device/inode pair of path.
func identify(path string) (fileKey, bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return fileKey{}, false
	}
	return fileKey{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true
}
