package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/ucosty/kknd2-mapview/mapfile"
)

var exportFactionColors = []color.RGBA{
	{R: 0xe0, G: 0x30, B: 0x30, A: 0xff},
	{R: 0x30, G: 0x90, B: 0xe0, A: 0xff},
	{R: 0xe0, G: 0xd0, B: 0x30, A: 0xff},
	{R: 0x40, G: 0xc0, B: 0x40, A: 0xff},
	{R: 0xd0, G: 0x60, B: 0xd0, A: 0xff},
	{R: 0xe0, G: 0x90, B: 0x30, A: 0xff},
	{R: 0x30, G: 0xd0, B: 0xd0, A: 0xff},
	{R: 0x90, G: 0x60, B: 0xe0, A: 0xff},
}

// exportVisible renders the tiles currently in the viewport to a PNG at full
// pixel scale. Same resolver output the terminal view consumes, just drawn
// with real pixels instead of character cells.
func (m *model) exportVisible() {
	if m.doc == nil {
		return
	}

	tile := float64(m.vp.TileSizePx)
	imgW := int(m.vp.WidthPx)
	imgH := int(m.vp.HeightPx)

	// Never render past the map edge.
	mapWPx := int(int64(m.doc.Width())*int64(m.vp.TileSizePx) - m.vp.CameraX)
	mapHPx := int(int64(m.doc.Height())*int64(m.vp.TileSizePx) - m.vp.CameraY)
	if imgW > mapWPx {
		imgW = mapWPx
	}
	if imgH > mapHPx {
		imgH = mapHPx
	}
	if imgW < 1 || imgH < 1 {
		return
	}

	dc := gg.NewContext(imgW, imgH)
	dc.SetColor(color.Black)
	dc.Clear()

	for vt := range VisibleTiles(m.doc, m.vp) {
		dc.SetColor(m.doc.TileColor(vt.Ref))
		dc.DrawRectangle(float64(vt.ScreenX), float64(vt.ScreenY), tile, tile)
		dc.Fill()
	}

	for obj := range VisibleObjects(m.doc, m.vp) {
		cx := float64(int64(obj.X)*int64(m.vp.TileSizePx)-m.vp.CameraX) + tile/2
		cy := float64(int64(obj.Y)*int64(m.vp.TileSizePx)-m.vp.CameraY) + tile/2
		dc.SetColor(exportObjectColor(obj))
		dc.DrawCircle(cx, cy, tile/3)
		dc.Fill()
	}

	if err := m.drawExportLabel(dc); err != nil {
		log.WithError(err).Warn("export label skipped")
	}

	path := m.config.GetExportPath(exportFilename(m.doc, m.vp))
	if err := dc.SavePNG(path); err != nil {
		log.WithError(err).Error("png export failed")
		m.errorMessage = fmt.Sprintf("Export failed: %v", err)
		return
	}
	log.WithField("path", path).Info("exported visible region")
	m.successMessage = fmt.Sprintf("Exported %s", path)
}

func (m *model) drawExportLabel(dc *gg.Context) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12.0,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	label := fmt.Sprintf("%s  camera (%d,%d)",
		displayName(m.doc, m.mapPath), m.vp.CameraX, m.vp.CameraY)
	dc.SetColor(color.Black)
	dc.DrawString(label, 5, 14)
	dc.SetColor(color.White)
	dc.DrawString(label, 4, 13)
	return nil
}

func exportFilename(doc *mapfile.Document, vp ViewportState) string {
	name := doc.Name()
	if name == "" {
		name = "map"
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, name)
	return fmt.Sprintf("%s-%d-%d.png", name, vp.CameraX, vp.CameraY)
}

func exportObjectColor(obj mapfile.PlacedObject) color.RGBA {
	if obj.Neutral() {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return exportFactionColors[int(obj.Owner)%len(exportFactionColors)]
}
