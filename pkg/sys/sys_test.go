//go:build unix

package sys

import (
	"os"
	"testing"
)

func TestPipeIsNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if IsATTY(r.Fd()) {
		t.Errorf("IsATTY(pipe) = true")
	}
	if row, col := WinSize(w); row != -1 || col != -1 {
		t.Errorf("WinSize(pipe) = %d, %d; want -1, -1", row, col)
	}
}
