package testutil

import (
	"os"

	"src.retk.dev/pkg/must"
)

// TempDir creates a temporary directory that is removed when the test
// finishes.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "retktest")
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// InTempDir is like TempDir, but also changes into the directory, and changes
// back to the original working directory when the test finishes.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	pwd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() { must.OK(os.Chdir(pwd)) })
	return dir
}
