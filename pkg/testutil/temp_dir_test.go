package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInTempDir(t *testing.T) {
	pwd, _ := os.Getwd()
	var c fakeCleanuper
	dir := InTempDir(&c)

	got, _ := os.Getwd()
	if evalSymlinks(got) != evalSymlinks(dir) {
		t.Errorf("pwd = %q, want %q", got, dir)
	}
	c.run()
	if got, _ := os.Getwd(); got != pwd {
		t.Errorf("pwd = %q after cleanup, want %q", got, pwd)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("temp dir still exists after cleanup")
	}
}

func evalSymlinks(path string) string {
	path, err := filepath.EvalSymlinks(path)
	if err != nil {
		panic(err)
	}
	return path
}
