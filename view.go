package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ucosty/kknd2-mapview/mapfile"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("236"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	emptyCell    = strings.Repeat(" ", tileCellWidth)
)

// factionColors styles object glyphs by owner; neutral objects render white.
var factionColors = []lipgloss.Color{
	"196", "45", "226", "82", "213", "208", "51", "141",
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	switch m.mode {
	case ModeStartup:
		return m.startupView()
	case ModeLoading:
		return m.loadingView()
	case ModeFilePicker:
		return m.filePickerView()
	case ModeViewing:
		return m.mapView()
	}
	return ""
}

func (m model) startupView() string {
	lines := []string{
		"",
		"  " + titleStyle.Render("KKnD 2 Map Viewer"),
		"",
		"  Press 'o' to open a map file",
		"  Press '?' for help, 'q' to quit",
		"",
		"  Supports extracted KKnD 2 MAPD map files",
	}
	if m.errorMessage != "" {
		lines = append(lines, "", "  "+errorStyle.Render(m.errorMessage))
	}
	return strings.Join(lines, "\n")
}

func (m model) loadingView() string {
	return fmt.Sprintf("\n  Loading %s ...", m.loadingPath)
}

func (m model) filePickerView() string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Open map file") + "\n")
	b.WriteString(fmt.Sprintf("  %s\n\n", m.fileDir))

	if len(m.fileList) == 0 {
		b.WriteString("  No map files found here.\n")
		b.WriteString("\n  esc to cancel")
		return b.String()
	}

	// Keep the selection visible when the list is longer than the screen.
	visible := m.height - 6
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.selectedFileIndex >= visible {
		start = m.selectedFileIndex - visible + 1
	}
	end := start + visible
	if end > len(m.fileList) {
		end = len(m.fileList)
	}

	for i := start; i < end; i++ {
		if i == m.selectedFileIndex {
			b.WriteString(fmt.Sprintf("  > %s\n", m.fileList[i]))
		} else {
			b.WriteString(fmt.Sprintf("    %s\n", m.fileList[i]))
		}
	}

	b.WriteString("\n  j/k to select, enter to load, esc to cancel")
	return b.String()
}

func (m model) mapView() string {
	cols := m.width / tileCellWidth
	rows := m.height - statusBarHeight
	if cols < 1 || rows < 1 || m.doc == nil {
		return m.statusLine()
	}

	firstX := int(m.vp.CameraX / int64(m.vp.TileSizePx))
	firstY := int(m.vp.CameraY / int64(m.vp.TileSizePx))

	// Paint the visible tile window into a cell grid, then overlay object
	// glyphs on their tiles.
	grid := make([][]string, rows)
	for y := range grid {
		grid[y] = make([]string, cols)
		for x := range grid[y] {
			grid[y][x] = emptyCell
		}
	}

	for vt := range VisibleTiles(m.doc, m.vp) {
		cx := vt.TileX - firstX
		cy := vt.TileY - firstY
		if cx < 0 || cx >= cols || cy < 0 || cy >= rows {
			continue
		}
		bg := toTermColor(m.doc.TileColor(vt.Ref))
		grid[cy][cx] = lipgloss.NewStyle().Background(bg).Render(emptyCell)
	}

	for obj := range VisibleObjects(m.doc, m.vp) {
		cx := int(obj.X) - firstX
		cy := int(obj.Y) - firstY
		if cx < 0 || cx >= cols || cy < 0 || cy >= rows {
			continue
		}
		ref, _ := m.doc.TileAt(int(obj.X), int(obj.Y))
		style := lipgloss.NewStyle().
			Background(toTermColor(m.doc.TileColor(ref))).
			Foreground(objectColor(obj)).
			Bold(true)
		glyph := objectGlyph(obj.Kind)
		grid[cy][cx] = style.Render(glyph + strings.Repeat(" ", tileCellWidth-len(glyph)))
	}

	var b strings.Builder
	for y := 0; y < rows; y++ {
		b.WriteString(strings.Join(grid[y], ""))
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m model) statusLine() string {
	status := fmt.Sprintf("Mode: %s", m.modeString())
	if m.doc != nil {
		status += fmt.Sprintf(" | Map: %s (%dx%d)",
			displayName(m.doc, m.mapPath), m.doc.Width(), m.doc.Height())
		status += fmt.Sprintf(" | Camera: (%d,%d)", m.vp.CameraX, m.vp.CameraY)
	}
	if m.successMessage != "" {
		status += " | " + successStyle.Render(m.successMessage)
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render(m.errorMessage)
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}

	if pad := m.width - lipgloss.Width(status); pad > 0 {
		status += strings.Repeat(" ", pad)
	}
	return statusStyle.Render(status)
}

func (m model) modeString() string {
	switch m.mode {
	case ModeStartup:
		return "STARTUP"
	case ModeLoading:
		return "LOADING"
	case ModeViewing:
		return "VIEWING"
	case ModeFilePicker:
		return "FILE"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"KKnD 2 Map Viewer Help",
		"======================",
		"",
		"Navigation:",
		"-----------",
		"  h/←/j/↓/k/↑/l/→  Pan the map",
		"  Shift+h/j/k/l    Pan 4x faster",
		"",
		"Map symbols:",
		"------------",
		"  U  unit      B  building",
		"  $  resource  +  waypoint",
		"",
		"File Operations:",
		"----------------",
		"  o                Open a map file",
		"  e                Export visible map region as PNG",
		"  y                Copy map info to clipboard",
		"",
		"General:",
		"--------",
		"  ?                Toggle this help screen",
		"  q/Ctrl+C         Quit",
	}

	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	start := m.helpScroll
	maxStart := len(helpLines) - visibleHeight
	if maxStart < 0 {
		maxStart = 0
	}
	if start > maxStart {
		start = maxStart
	}
	end := start + visibleHeight
	if end > len(helpLines) {
		end = len(helpLines)
	}

	result := strings.Join(helpLines[start:end], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d) | j/k to scroll, any other key to close",
		start+1, end, len(helpLines))
	return result
}

func toTermColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func objectColor(obj mapfile.PlacedObject) lipgloss.Color {
	if obj.Neutral() {
		return lipgloss.Color("15")
	}
	return factionColors[int(obj.Owner)%len(factionColors)]
}
