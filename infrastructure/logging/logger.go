package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Options configures the run logger
type Options struct {
	Level     string
	LogToFile bool
	LogsDir   string
	Output    io.Writer
}

// New - creates the logger for one run. Console output keeps logrus' colours;
// the optional log file receives the same entries as plain text.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(level)

	if !opts.LogToFile {
		return logger, nopCloser{}, nil
	}

	if err := os.MkdirAll(opts.LogsDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	path := FilePath(opts.LogsDir, os.Getpid())
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// The console logger still works; losing the file is not fatal.
		logger.Warnf("Could not create log file %s: %v", path, err)
		return logger, nopCloser{}, nil
	}

	logger.AddHook(newFileHook(file))
	return logger, file, nil
}

// FilePath returns the log file path for a process id
func FilePath(dir string, pid int) string {
	return filepath.Join(dir, fmt.Sprintf("validation_%d.log", pid))
}

// ParseLevel accepts the level names used in configuration, including
// "warning" and "critical".
func ParseLevel(name string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return logrus.InfoLevel, nil
	case "critical":
		return logrus.FatalLevel, nil
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

type fileHook struct {
	mu        sync.Mutex
	w         io.Writer
	formatter logrus.Formatter
}

func newFileHook(w io.Writer) *fileHook {
	return &fileHook{
		w: w,
		formatter: &logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
	}
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(line)
	return err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
