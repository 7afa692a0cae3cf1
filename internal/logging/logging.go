// Package logging builds the process logger shared by the commands,
// frontends, session and jukebox.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options select the log destination and level.
type Options struct {
	Level string // debug, info, warn or error
	File  string // appended to when set; otherwise logs go to the fallback writer
}

// New builds a logger writing to opts.File, or to fallback when no file is
// given. The returned func closes the file, if any.
func New(fallback io.Writer, opts Options) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closeFn, nil
}
