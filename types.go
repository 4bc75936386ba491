package main

import "github.com/ucosty/kknd2-mapview/mapfile"

type Mode int

const (
	ModeStartup Mode = iota
	ModeLoading
	ModeViewing
	ModeFilePicker
)

type model struct {
	width  int
	height int
	mode   Mode

	// The one loaded map. Replaced wholesale on a successful decode, never
	// patched in place, so a frame always renders a complete document.
	doc     *mapfile.Document
	mapPath string

	vp ViewportState

	// loadSeq numbers open requests; a decode result whose sequence number
	// is stale was superseded by a newer request and gets dropped.
	loadSeq     int
	loadingPath string

	fileDir           string
	fileList          []string
	selectedFileIndex int

	errorMessage   string
	successMessage string

	help       bool
	helpScroll int

	config      *Config
	startupPath string
	exitCode    int
}

// mapLoadedMsg carries a finished decode back into the update loop.
type mapLoadedMsg struct {
	seq  int
	path string
	doc  *mapfile.Document
	err  error
}
