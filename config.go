package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	PanStepPx       int
	TileSizePx      uint32
	ExportDirectory string
	LogLevel        string
}

// loadConfig reads ~/.kknd2mapviewrc, a key=value file. Missing file or
// unparseable entries fall back to defaults; a bad config never stops the
// viewer from starting.
func loadConfig() *Config {
	config := &Config{
		PanStepPx:  defaultPanStepPx,
		TileSizePx: defaultTileSizePx,
		LogLevel:   "info",
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".kknd2mapviewrc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "panstep", "pan_step":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.PanStepPx = n
			}
		case "tilesize", "tile_size":
			if n, err := strconv.Atoi(value); err == nil && n > 0 && n <= 256 {
				config.TileSizePx = uint32(n)
			}
		case "exportdirectory", "export_directory", "exportdir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			config.ExportDirectory = value
		case "loglevel", "log_level":
			config.LogLevel = strings.ToLower(value)
		}
	}

	return config
}

// GetExportPath resolves where an exported PNG lands.
func (c *Config) GetExportPath(filename string) string {
	if c.ExportDirectory == "" {
		return filename
	}
	os.MkdirAll(c.ExportDirectory, 0755)
	return filepath.Join(c.ExportDirectory, filename)
}
