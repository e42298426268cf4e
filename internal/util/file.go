// Package util holds small filesystem helpers shared by the entry points.
package util

import "os"

// EnsureDir creates path and any missing parents. An empty path is a
// no-op so callers can pass filepath.Dir of a bare filename.
func EnsureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o755)
}
