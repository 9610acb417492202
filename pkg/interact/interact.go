// Package interact is the subprogram that runs a view tree in the terminal.
package interact

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/multierr"

	"src.retk.dev/pkg/host"
	"src.retk.dev/pkg/journal"
	"src.retk.dev/pkg/logutil"
	"src.retk.dev/pkg/menu"
	"src.retk.dev/pkg/prog"
	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/sys"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("stdin and stdout must be terminals; use -snapshot to print a single frame")

// Program is the interactive subprogram. It is meant to be the last
// subprogram of a composite, as it always runs.
type Program struct {
	View func() rt.Node

	flags *prog.HostFlags
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	p.flags = fs.HostFlags()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not allowed")
	}
	if !sys.IsATTY(fds[0].Fd()) || !sys.IsATTY(fds[1].Fd()) {
		return ErrNotTerminal
	}
	cfg, err := p.flags.LoadConfig()
	if err != nil {
		return err
	}
	logger := logutil.Logger("host")

	hcfg := host.Config{
		FrameInterval: cfg.FrameInterval(),
		Mouse:         cfg.Mouse,
		Logger:        logger,
	}
	if cfg.Journal != "" {
		if hcfg.Journal, err = journal.Open(cfg.Journal); err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
	}
	if cfg.MenuSocket != "" {
		if hcfg.Menu, err = menu.Listen(cfg.MenuSocket); err != nil {
			return multierr.Append(fmt.Errorf("menu: %w", err), closeJournal(hcfg.Journal))
		}
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	h := host.New(screen, p.View(), hcfg, rt.WithTitle(cfg.Title))
	if err != nil {
		return multierr.Append(fmt.Errorf("terminal: %w", err), h.Close())
	}
	logger.Info("started", "fps", cfg.FPS, "journal", cfg.Journal, "menu", cfg.MenuSocket)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = multierr.Append(h.Run(ctx), h.Close())
	c := h.Context()
	logger.Info("stopped", "stats", c.Stats().String(), "unhandled", c.UnhandledActions())
	return err
}

func closeJournal(j *journal.Journal) error {
	if j == nil {
		return nil
	}
	return j.Close()
}
