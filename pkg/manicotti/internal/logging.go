package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logPath string

	writerOnce sync.Once
	logWriter  io.Writer
	logFile    *os.File

	appOnce  sync.Once
	appLog   *slog.Logger
	appLevel *slog.LevelVar

	frameworkOnce  sync.Once
	frameworkLog   *slog.Logger
	frameworkLevel *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created as needed. Call before the first logger
// access to take effect.
func SetLogPath(path string) {
	logPath = path
}

func writer() io.Writer {
	writerOnce.Do(func() {
		logWriter = os.Stdout

		target := logPath
		if target == "" {
			target = filepath.Join("logs", "manicotti.log")
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Console-only; navigation keeps working without a log file.
			return
		}
		logFile = f
		logWriter = io.MultiWriter(os.Stdout, f)
	})
	return logWriter
}

// GetLogger returns the application logger, for consuming applications.
func GetLogger() *slog.Logger {
	appOnce.Do(func() {
		appLevel = &slog.LevelVar{}
		appLog = slog.New(slog.NewJSONHandler(writer(), &slog.HandlerOptions{
			Level: appLevel,
		}))
	})
	return appLog
}

// GetFrameworkLogger returns the logger the framework itself writes to.
// It is kept separate from the application logger so framework noise can be
// silenced independently.
func GetFrameworkLogger() *slog.Logger {
	frameworkOnce.Do(func() {
		frameworkLevel = &slog.LevelVar{}
		frameworkLog = slog.New(slog.NewJSONHandler(writer(), &slog.HandlerOptions{
			Level: frameworkLevel,
		}))
	})
	return frameworkLog
}

// SetLogLevel sets the minimum level for the application logger.
func SetLogLevel(level slog.Level) {
	GetLogger()
	appLevel.Set(level)
}

// SetFrameworkLogLevel sets the minimum level for the framework logger.
func SetFrameworkLogLevel(level slog.Level) {
	GetFrameworkLogger()
	frameworkLevel.Set(level)
}

// SetRawLogLevel parses and sets the application log level from a string
// such as "debug", "info", "warn" or "error". Unknown values fall back to
// info.
func SetRawLogLevel(rawLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	SetLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
