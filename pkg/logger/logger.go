package logger

import (
	"io"
	"os"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Logger is the logging contract every component receives.
type Logger = glog.Logger

// New returns a JSON logger writing to stdout at the given level
// ("trace", "debug", "info", "warn", "error").
func New(level string, opts ...glog.Option) Logger {
	return NewWithWriter(os.Stdout, level, opts...)
}

// NewWithWriter is New with an explicit sink. Extra options are applied last,
// so callers can override the fatal behavior.
func NewWithWriter(w io.Writer, level string, opts ...glog.Option) Logger {
	options := append([]glog.Option{
		glog.WithLevel(normalizeLevel(level)),
		glog.WithLoggerTypeJSON(),
		glog.WithWriter(w),
	}, opts...)
	return glog.NewLogger(options...)
}

// Nop discards everything.
func Nop() Logger {
	return glog.Nop()
}

func normalizeLevel(level string) string {
	level = strings.ToUpper(strings.TrimSpace(level))
	if level == "WARNING" {
		return glog.Warn
	}
	return level
}
