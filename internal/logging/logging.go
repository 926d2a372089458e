// Package logging builds the charmbracelet/log loggers used by hopper.
//
// The TUI owns the terminal, so interactive commands log to a rotating file
// under the XDG state directory. The SSH server logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLogFile is the log path relative to the XDG state directory.
const DefaultLogFile = "hopper/hopper.log"

// Options configures a logger.
type Options struct {
	Level  string // debug, info, warn or error; empty means info
	File   string // Log file path; empty means the XDG default
	Stderr bool   // Log to stderr instead of a file
	Prefix string
}

// ParseLevel converts a level name, accepting the empty string as info.
func ParseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// LogPath resolves the file a logger writes to, creating its directory.
func LogPath(custom string) (string, error) {
	if custom == "" {
		path, err := xdg.StateFile(DefaultLogFile)
		if err != nil {
			return "", fmt.Errorf("logging: cannot resolve log path: %w", err)
		}
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(custom), 0o755); err != nil {
		return "", fmt.Errorf("logging: cannot create log directory: %w", err)
	}
	return custom, nil
}

// New creates a logger and returns the closer of its sink.
func New(opts Options) (*log.Logger, io.Closer, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	if opts.Stderr {
		w = os.Stderr
	} else {
		path, err := LogPath(opts.File)
		if err != nil {
			return nil, nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		w, closer = lj, lj
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
