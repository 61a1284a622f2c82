package utils

import (
	"path/filepath"
	"runtime"
)

// ResolveFile joins fn onto the root of this module, so tests and tools can name fixtures like
// "referenceframe/data/planar3.json" no matter which directory they run from.
func ResolveFile(fn string) string {
	//nolint:dogsled
	_, self, _, _ := runtime.Caller(0)
	root, err := filepath.Abs(filepath.Join(filepath.Dir(self), ".."))
	if err != nil {
		panic(err)
	}
	return filepath.Join(root, fn)
}
