// Package logutil provides the logger of retk programs.
//
// Log lines are JSON objects written by zerolog and reached through the logr
// interface used by the library packages. Nothing is written until an output
// is set: the terminal belongs to the UI, so logs normally go to a file.
package logutil

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

var (
	mu   sync.Mutex
	out  io.Writer = io.Discard
	file *os.File
)

var base zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	zerologr.SetMaxV(2)
	base = zerolog.New(writer{}).Level(zerolog.TraceLevel).With().Timestamp().Logger()
}

type writer struct{}

func (writer) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	return out.Write(p)
}

// Logger returns a logger with the given name. Loggers follow later calls to
// SetOutput and SetOutputFile.
func Logger(name string) logr.Logger {
	return zerologr.New(&base).WithName(name)
}

// SetOutput redirects the output of all loggers to w, closing the file opened
// by SetOutputFile, if any.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setOutput(w, nil)
}

// SetOutputFile redirects the output of all loggers to the named file,
// appending to it. An empty name discards the output.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	setOutput(f, f)
	return nil
}

func setOutput(w io.Writer, f *os.File) {
	if file != nil {
		file.Close()
	}
	out, file = w, f
}
