package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// scanMapFiles fills the file picker with map files from the current
// directory, sorted alphabetically.
func (m *model) scanMapFiles() {
	m.fileList = nil
	m.selectedFileIndex = -1

	dir, err := os.Getwd()
	if err != nil {
		return
	}
	m.fileDir = dir

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isMapFile(entry.Name()) {
			m.fileList = append(m.fileList, entry.Name())
		}
	}

	sort.Strings(m.fileList)
	if len(m.fileList) > 0 {
		m.selectedFileIndex = 0
	}
}

func (m *model) selectedFilePath() string {
	return filepath.Join(m.fileDir, m.fileList[m.selectedFileIndex])
}

func isMapFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range mapFileExtensions {
		if ext == want {
			return true
		}
	}
	return false
}
