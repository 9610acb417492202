// Retk runs the demo view tree in the terminal. With -snapshot it prints one
// frame instead, and with -replay it replays a recorded journal.
package main

import (
	"os"

	"src.retk.dev/pkg/buildinfo"
	"src.retk.dev/pkg/demo"
	"src.retk.dev/pkg/headless"
	"src.retk.dev/pkg/interact"
	"src.retk.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&buildinfo.Program{},
			&headless.Replay{View: demo.View},
			&headless.Snapshot{View: demo.View},
			&interact.Program{View: demo.View})))
}
