package prog_test

import (
	"os"
	"path/filepath"
	"testing"

	. "src.retk.dev/pkg/prog"
	"src.retk.dev/pkg/prog/progtest"
	"src.retk.dev/pkg/testutil"
)

var (
	Test     = progtest.Test
	ThatRetk = progtest.ThatRetk
)

func TestCommonFlagHandling(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, testProgram{},
		ThatRetk("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatRetk("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatRetk("-help").
			WritesStdoutContaining("Usage: retk [flags]"),

		ThatRetk("-log", "log").DoesNothing(),
		ThatRetk("-log", "/a/bad/path/log").
			WritesStderrContaining("no such file or directory"),
	)

	if _, err := os.Stat("log"); err != nil {
		t.Errorf("log file does not exist: %v", err)
	}
}

func TestNextProgram(t *testing.T) {
	Test(t, testProgram{next: true},
		ThatRetk().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{next: true}, testProgram{writeOut: "program 2"}),
		ThatRetk().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{next: true}, testProgram{next: true}),
		ThatRetk().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatRetk().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatRetk().ExitsWith(2).WritesStderrContaining("lorem ipsum\n"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		ThatRetk().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		ThatRetk().ExitsWith(0),
	)
}

func TestHostFlags_SharedBetweenPrograms(t *testing.T) {
	a, b := &hostProgram{next: true}, &hostProgram{}
	Test(t, Composite(a, b),
		ThatRetk("-fps", "30", "-journal", "j.db", "-menu-sock", "m.sock").DoesNothing(),
	)
	if a.flags != b.flags {
		t.Errorf("programs got different HostFlags")
	}
	if a.flags.FPS != 30 || a.flags.Journal != "j.db" || a.flags.MenuSock != "m.sock" {
		t.Errorf("got flags %+v", *a.flags)
	}
}

func TestHostFlags_LoadConfig(t *testing.T) {
	dir := testutil.TempDir(t)
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("fps: 30\njournal: a.db\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	hf := &HostFlags{Config: path, Journal: "b.db"}
	cfg, err := hf.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FPS != 30 || cfg.Journal != "b.db" || !cfg.Mouse {
		t.Errorf("got config %+v", cfg)
	}

	hf.FPS = 1000
	if _, err := hf.LoadConfig(); err == nil {
		t.Errorf("want error for -fps 1000")
	}
}

type testProgram struct {
	next      bool
	writeOut  string
	returnErr error
}

func (p testProgram) RegisterFlags(f *FlagSet) {}

func (p testProgram) Run(fds [3]*os.File, args []string) error {
	if p.next {
		return ErrNextProgram
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}

type hostProgram struct {
	next  bool
	flags *HostFlags
}

func (p *hostProgram) RegisterFlags(f *FlagSet) { p.flags = f.HostFlags() }

func (p *hostProgram) Run(fds [3]*os.File, args []string) error {
	if p.next {
		return ErrNextProgram
	}
	return nil
}
