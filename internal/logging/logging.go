package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps logrus with rotating-file output. Log lines go to both
// the console and a size-rotated file under the configured directory.
type Logger struct {
	*logrus.Logger
	file io.Closer
}

// New creates a Logger writing to stdout and dir/service.log.
func New(dir, level string, maxSizeMB, maxBackups int) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create logs folder failed: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "service.log"),
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}

	l := logrus.New()
	l.SetOutput(io.MultiWriter(os.Stdout, rotator))
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return &Logger{Logger: l, file: rotator}, nil
}

// Discard returns a Logger that drops everything. Used in tests.
func Discard() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{Logger: l}
}

// Close flushes and closes the rotating file.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
