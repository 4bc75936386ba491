package mapfile

import (
	"image/color"
	"iter"
)

// Document is a fully decoded, validated map. It is a value object: once a
// decode succeeds the document never changes, it is only ever replaced
// wholesale by the next successful decode.
type Document struct {
	width      int
	height     int
	tiles      []TileRef
	objects    []PlacedObject
	tilesetID  uint32
	tileCount  uint32
	name       string
	palette    []color.RGBA
	checksumOK bool
}

func (d *Document) Width() int        { return d.width }
func (d *Document) Height() int       { return d.height }
func (d *Document) Name() string      { return d.name }
func (d *Document) TilesetID() uint32 { return d.tilesetID }
func (d *Document) TileCount() uint32 { return d.tileCount }
func (d *Document) NumObjects() int   { return len(d.objects) }
func (d *Document) PaletteLen() int   { return len(d.palette) }

// ChecksumOK reports whether the file's checksum trailer, if present,
// matched. A mismatch is a warning only; the document is still usable.
func (d *Document) ChecksumOK() bool { return d.checksumOK }

// TileAt returns the tile at grid position (x, y). The second result is
// false only for queries outside the grid, which is a caller bug: every
// stored position was validated at decode time.
func (d *Document) TileAt(x, y int) (TileRef, bool) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0, false
	}
	return d.tiles[y*d.width+x], true
}

// Objects iterates the placed objects in file order.
func (d *Document) Objects() iter.Seq[PlacedObject] {
	return func(yield func(PlacedObject) bool) {
		for _, obj := range d.objects {
			if !yield(obj) {
				return
			}
		}
	}
}

// fallbackPalette colors maps that carry no palette section. Ordered so
// adjacent tile codes stay visually distinct.
var fallbackPalette = []color.RGBA{
	{R: 0x2e, G: 0x34, B: 0x36, A: 0xff},
	{R: 0x4e, G: 0x9a, B: 0x06, A: 0xff},
	{R: 0x8f, G: 0x59, B: 0x02, A: 0xff},
	{R: 0x20, G: 0x4a, B: 0x87, A: 0xff},
	{R: 0x5c, G: 0x35, B: 0x66, A: 0xff},
	{R: 0xc4, G: 0xa0, B: 0x00, A: 0xff},
	{R: 0xa4, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x55, G: 0x57, B: 0x53, A: 0xff},
}

// TileColor resolves a tile code to a displayable color using the map's
// embedded palette. The real tileset graphics live outside the map file;
// this is the flat-color stand-in both renderers draw with.
func (d *Document) TileColor(ref TileRef) color.RGBA {
	if len(d.palette) > 0 {
		return d.palette[int(ref)%len(d.palette)]
	}
	return fallbackPalette[int(ref)%len(fallbackPalette)]
}
