package utils

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func TestResolveFile(t *testing.T) {
	p := ResolveFile("go.mod")
	test.That(t, filepath.IsAbs(p), test.ShouldBeTrue)
	_, err := os.Stat(p)
	test.That(t, err, test.ShouldBeNil)
}
