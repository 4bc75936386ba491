package main

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogging sends diagnostics to a rotating file: the TUI owns the
// terminal, so nothing may write to stdout or stderr while it runs.
func setupLogging(config *Config) func() {
	logPath := "kknd2-mapview.log"
	if homeDir, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(homeDir, ".kknd2-mapview")
		if err := os.MkdirAll(dir, 0755); err == nil {
			logPath = filepath.Join(dir, "viewer.log")
		}
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}
	log.SetOutput(writer)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	return func() { writer.Close() }
}
