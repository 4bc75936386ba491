package main

import (
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	log "github.com/sirupsen/logrus"

	"github.com/ucosty/kknd2-mapview/mapfile"
)

// displayName prefers the name embedded in the map file, falling back to the
// file name for maps that carry none.
func displayName(doc *mapfile.Document, path string) string {
	if doc != nil && doc.Name() != "" {
		return doc.Name()
	}
	return filepath.Base(path)
}

// copyMapInfo puts a one-line summary of the loaded map on the system
// clipboard.
func (m *model) copyMapInfo() {
	if m.doc == nil {
		return
	}
	info := fmt.Sprintf("%s: %dx%d tiles, tileset %d, %d objects (%s)",
		displayName(m.doc, m.mapPath), m.doc.Width(), m.doc.Height(),
		m.doc.TilesetID(), m.doc.NumObjects(), m.mapPath)
	if err := clipboard.WriteAll(info); err != nil {
		log.WithError(err).Warn("clipboard write failed")
		m.errorMessage = "Failed to copy map info to clipboard"
		return
	}
	m.successMessage = "Map info copied to clipboard"
}

func objectGlyph(kind mapfile.ObjectKind) string {
	switch kind {
	case mapfile.KindUnit:
		return "U"
	case mapfile.KindBuilding:
		return "B"
	case mapfile.KindResource:
		return "$"
	case mapfile.KindWaypoint:
		return "+"
	}
	return "?"
}
