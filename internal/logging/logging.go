// Package logging configures the process wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the level, output format and optional rotated log file.
type Options struct {
	Level  string
	Format string
	File   string
}

// Setup installs the global logger described by opts. The returned closer
// flushes and closes the rotated log file, if any.
func Setup(opts Options, stdout io.Writer) (io.Closer, error) {
	logger, closer, err := New(opts, stdout)
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(logger.GetLevel())
	log.Logger = logger
	return closer, nil
}

// New builds a logger without touching global state.
func New(opts Options, stdout io.Writer) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	if stdout == nil {
		stdout = os.Stdout
	}
	var console io.Writer = stdout
	switch strings.ToLower(opts.Format) {
	case "", "json":
	case "console":
		console = zerolog.ConsoleWriter{Out: stdout, TimeFormat: time.Kitchen}
	default:
		return zerolog.Logger{}, nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	var closer io.Closer = nopCloser{}
	out := console
	if opts.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		closer = rotated
		out = zerolog.MultiLevelWriter(rotated, console)
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
