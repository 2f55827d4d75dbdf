// Package logging configures the CLI's structured log file
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/apimgr/ghuser/src/client/paths"
)

// Config holds logging configuration
type Config struct {
	Level    string // debug, info, warn, error (default: warn)
	File     string // Log file path (empty = {log_dir}/cli.log)
	MaxSize  int    // Max log file size in MB (default: 10)
	MaxFiles int    // Max log files to keep (default: 5)
}

// FromViper returns logging configuration from v
func FromViper(v *viper.Viper) Config {
	return Config{
		Level:    v.GetString("logging.level"),
		File:     v.GetString("logging.file"),
		MaxSize:  v.GetInt("logging.max_size"),
		MaxFiles: v.GetInt("logging.max_files"),
	}
}

// ParseLevel maps a level name to a slog level, defaulting to warn
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Setup creates the rotating JSON logger and installs it as the slog
// default. Every record carries a per-run session id. The returned
// function closes the log file.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	logPath := cfg.File
	if logPath == "" {
		logPath = paths.LogFile()
	}
	logPath = paths.ExpandHome(logPath)

	if err := paths.EnsureFile(logPath); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = 10
	}
	maxFiles := cfg.MaxFiles
	if maxFiles <= 0 {
		maxFiles = 5
	}

	rotatingWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSize, // MB
		MaxBackups: maxFiles,
		MaxAge:     30, // days
		Compress:   true,
	}

	handler := slog.NewJSONHandler(rotatingWriter, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	})
	logger := slog.New(handler).With("session", ulid.Make().String(), "pid", os.Getpid())
	slog.SetDefault(logger)

	return logger, rotatingWriter.Close, nil
}
