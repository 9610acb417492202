package prog

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"src.retk.dev/pkg/config"
	"src.retk.dev/pkg/logutil"
)

// FlagSet wraps a [flag.FlagSet]. Flags used by more than one subprogram are
// registered lazily by the methods of FlagSet, so that each is registered
// once no matter how many subprograms ask for it.
type FlagSet struct {
	*flag.FlagSet
	log  *string
	host *HostFlags
	json *bool
}

// HostFlags are the flags of subprograms that run a view tree.
type HostFlags struct {
	Config   string
	FPS      int
	Journal  string
	MenuSock string

	log *string
}

// HostFlags registers and returns the flags of subprograms that run a view
// tree.
func (fs *FlagSet) HostFlags() *HostFlags {
	if fs.host == nil {
		hf := HostFlags{log: fs.log}
		fs.StringVar(&hf.Config, "config", "",
			"path to the configuration file; defaults to retk/config.yaml in the user config directory")
		fs.IntVar(&hf.FPS, "fps", 0,
			"frames per second, overriding the configuration file")
		fs.StringVar(&hf.Journal, "journal", "",
			"record input events into a journal at this path")
		fs.StringVar(&hf.MenuSock, "menu-sock", "",
			"serve the menu bridge on a UNIX socket at this path")
		fs.host = &hf
	}
	return fs.host
}

// JSON registers and returns the -json flag.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show the output of -version or -buildinfo in JSON")
		fs.json = &json
	}
	return fs.json
}

// LoadConfig loads the configuration file and applies the flags on top of it.
// If the configuration names a log file and -log was not given, logging is
// directed to it.
func (hf *HostFlags) LoadConfig() (config.Config, error) {
	path := hf.Config
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if hf.FPS != 0 {
		cfg.FPS = hf.FPS
	}
	if hf.Journal != "" {
		cfg.Journal = hf.Journal
	}
	if hf.MenuSock != "" {
		cfg.MenuSocket = hf.MenuSock
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, BadUsage(err.Error())
	}
	if cfg.Log != "" && (hf.log == nil || *hf.log == "") {
		if err := logutil.SetOutputFile(cfg.Log); err != nil {
			return config.Config{}, fmt.Errorf("log: %w", err)
		}
	}
	return cfg, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "retk", "config.yaml")
}
