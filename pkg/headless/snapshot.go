package headless

import (
	"os"

	"src.retk.dev/pkg/logutil"
	"src.retk.dev/pkg/prog"
	"src.retk.dev/pkg/rt"
)

// Snapshot is the subprogram that renders one frame of a view tree and
// prints it.
type Snapshot struct {
	View func() rt.Node

	snapshot bool
	size     string
}

func (p *Snapshot) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.snapshot, "snapshot", false,
		"render one frame and print it instead of running interactively")
	fs.StringVar(&p.size, "size", "",
		"size of the frame printed by -snapshot as WxH; defaults to the terminal size")
}

func (p *Snapshot) Run(fds [3]*os.File, args []string) error {
	if !p.snapshot {
		return prog.ErrNextProgram
	}
	if len(args) > 0 {
		return prog.BadUsage("arguments are not allowed with -snapshot")
	}
	size := termSize(fds[1])
	if p.size != "" {
		var err error
		size, err = parseSize(p.size)
		if err != nil {
			return prog.BadUsage(err.Error())
		}
	}
	c := rt.NewContext(rt.WithLogger(logutil.Logger("snapshot")))
	root := p.View()
	return printGrid(fds[1], rasterize(c.Render(root, size), size))
}
