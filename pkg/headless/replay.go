package headless

import (
	"fmt"
	"os"

	"go.uber.org/multierr"

	"src.retk.dev/pkg/journal"
	"src.retk.dev/pkg/logutil"
	"src.retk.dev/pkg/prog"
	"src.retk.dev/pkg/rt"
)

// Replay is the subprogram that feeds the inputs recorded in a journal to a
// view tree and prints the last frame.
type Replay struct {
	View func() rt.Node

	path string
	host *prog.HostFlags
}

func (p *Replay) RegisterFlags(fs *prog.FlagSet) {
	fs.StringVar(&p.path, "replay", "",
		"replay the journal at this path and print the last frame")
	p.host = fs.HostFlags()
}

func (p *Replay) Run(fds [3]*os.File, args []string) (err error) {
	if p.path == "" {
		return prog.ErrNextProgram
	}
	if len(args) > 0 {
		return prog.BadUsage("arguments are not allowed with -replay")
	}
	// Opening a journal creates it; a missing one is an error here.
	if _, err := os.Stat(p.path); err != nil {
		return err
	}
	// Frames are replayed at the rate of the session.
	cfg, err := p.host.LoadConfig()
	if err != nil {
		return err
	}
	j, err := journal.Open(p.path)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() { err = multierr.Append(err, j.Close()) }()

	entries, err := j.Entries()
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	logger := logutil.Logger("replay")
	logger.V(1).Info("replaying", "path", p.path, "entries", len(entries), "fps", cfg.FPS)

	c := rt.NewContext(rt.WithLogger(logger), rt.WithFrameInterval(cfg.FrameInterval()))
	root := p.View()
	size := journal.Replay(c, root, DefaultSize, entries)
	return printGrid(fds[1], rasterize(c.Render(root, size), size))
}
