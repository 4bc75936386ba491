package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/ucosty/kknd2-mapview/mapfile"
)

func main() {
	config := loadConfig()
	closeLog := setupLogging(config)
	defer closeLog()

	m := initialModel(config)
	if len(os.Args) > 1 {
		m.startupPath = os.Args[1]
		m.loadingPath = m.startupPath
		m.mode = ModeLoading
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		closeLog()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if fm, ok := final.(model); ok && fm.exitCode != 0 {
		closeLog()
		os.Exit(fm.exitCode)
	}
}

func initialModel(config *Config) model {
	return model{
		mode:              ModeStartup,
		selectedFileIndex: -1,
		config:            config,
		vp: ViewportState{
			TileSizePx: config.TileSizePx,
		},
	}
}

func (m model) Init() tea.Cmd {
	if m.mode == ModeLoading {
		return loadMapCmd(m.loadSeq, m.startupPath)
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		wpx, hpx := m.viewportPixels()
		mapW, mapH := m.mapSize()
		m.vp.Resize(wpx, hpx, mapW, mapH)
		return m, nil

	case mapLoadedMsg:
		return m.handleMapLoaded(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.help {
		switch key {
		case "j", "down":
			m.helpScroll++
			return m, nil
		case "k", "up":
			if m.helpScroll > 0 {
				m.helpScroll--
			}
			return m, nil
		default:
			m.help = false
			m.helpScroll = 0
			return m, nil
		}
	}

	switch m.mode {
	case ModeStartup:
		switch key {
		case "o":
			return m.openFilePicker()
		case "?":
			m.help = true
			return m, nil
		case "q":
			return m, tea.Quit
		}
		return m, nil

	case ModeLoading:
		switch key {
		case "o":
			// A new open request supersedes the decode in flight.
			return m.openFilePicker()
		case "q":
			return m, tea.Quit
		}
		return m, nil

	case ModeViewing:
		if intent, ok := movementIntentFor(key); ok {
			m.clearMessages()
			mapW, mapH := m.mapSize()
			m.vp.ApplyMovement(intent, m.panStep(key), mapW, mapH)
			return m, nil
		}
		switch key {
		case "o":
			return m.openFilePicker()
		case "e":
			m.exportVisible()
			return m, nil
		case "y":
			m.copyMapInfo()
			return m, nil
		case "?":
			m.help = true
			return m, nil
		case "q":
			return m, tea.Quit
		}
		return m, nil

	case ModeFilePicker:
		return m.handleFilePickerKey(key)
	}

	return m, nil
}

func (m model) handleMapLoaded(msg mapLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loadSeq {
		// Superseded by a newer open request; drop the result.
		log.WithField("path", msg.path).Debug("discarding superseded decode result")
		return m, nil
	}

	if msg.err != nil {
		log.WithField("path", msg.path).WithError(msg.err).Warn("map load failed")
		m.errorMessage = fmt.Sprintf("%s: %v", msg.path, msg.err)
		if m.doc != nil {
			// Keep the old map on screen; the failed open changes nothing.
			m.mode = ModeViewing
			return m, nil
		}
		if m.startupPath != "" && msg.path == m.startupPath {
			// The path given on the command line never produced a map.
			m.exitCode = 1
			return m, tea.Quit
		}
		m.mode = ModeStartup
		return m, nil
	}

	// Whole-document swap: the renderer never sees a half-loaded map.
	m.doc = msg.doc
	m.mapPath = msg.path
	m.mode = ModeViewing
	m.vp.Reset()
	wpx, hpx := m.viewportPixels()
	m.vp.Resize(wpx, hpx, msg.doc.Width(), msg.doc.Height())

	m.successMessage = fmt.Sprintf("Loaded %s (%dx%d, %d objects)",
		displayName(msg.doc, msg.path), msg.doc.Width(), msg.doc.Height(), msg.doc.NumObjects())
	if !msg.doc.ChecksumOK() {
		m.errorMessage = fmt.Sprintf("warning: %s", mapfile.ErrChecksumMismatch)
	} else {
		m.errorMessage = ""
	}
	log.WithFields(log.Fields{
		"path":    msg.path,
		"size":    fmt.Sprintf("%dx%d", msg.doc.Width(), msg.doc.Height()),
		"objects": msg.doc.NumObjects(),
	}).Info("map loaded")
	return m, nil
}

func (m model) openFilePicker() (tea.Model, tea.Cmd) {
	m.scanMapFiles()
	m.mode = ModeFilePicker
	m.clearMessages()
	return m, nil
}

func (m model) handleFilePickerKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if m.selectedFileIndex < len(m.fileList)-1 {
			m.selectedFileIndex++
		}
		return m, nil
	case "k", "up":
		if m.selectedFileIndex > 0 {
			m.selectedFileIndex--
		}
		return m, nil
	case "enter":
		if m.selectedFileIndex < 0 || m.selectedFileIndex >= len(m.fileList) {
			return m, nil
		}
		path := m.selectedFilePath()
		m.loadSeq++
		m.loadingPath = path
		m.mode = ModeLoading
		return m, loadMapCmd(m.loadSeq, path)
	case "esc", "q":
		if m.doc != nil {
			m.mode = ModeViewing
		} else {
			m.mode = ModeStartup
		}
		return m, nil
	}
	return m, nil
}

// mapSize returns the loaded map's dimensions in tiles, or zeros when no map
// is loaded (which clamps the camera to the origin).
func (m *model) mapSize() (int, int) {
	if m.doc == nil {
		return 0, 0
	}
	return m.doc.Width(), m.doc.Height()
}

// viewportPixels derives the pixel-space viewport from the terminal size:
// each tile is one 2-column cell, the bottom row holds the status bar.
func (m *model) viewportPixels() (uint32, uint32) {
	cols := m.width / tileCellWidth
	rows := m.height - statusBarHeight
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return uint32(cols) * m.vp.TileSizePx, uint32(rows) * m.vp.TileSizePx
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}
