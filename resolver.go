package main

import (
	"iter"

	"github.com/ucosty/kknd2-mapview/mapfile"
)

// VisibleTile is one tile intersecting the viewport, with its grid position
// and its pixel position relative to the viewport origin. ScreenX/ScreenY go
// negative when the camera sits partway into the first visible tile.
type VisibleTile struct {
	TileX, TileY     int
	ScreenX, ScreenY int64
	Ref              mapfile.TileRef
}

// tileRange is the half-open window of tile indices covering the viewport
// along one axis: first = floor(camera/tile), last = ceil of the far edge,
// both clamped to the grid.
func tileRange(camera int64, viewportPx, tileSizePx uint32, mapTiles int) (first, last int) {
	tile := int64(tileSizePx)
	first = int(camera / tile)
	last = int((camera + int64(viewportPx) + tile - 1) / tile)
	if first < 0 {
		first = 0
	}
	if last > mapTiles {
		last = mapTiles
	}
	return first, last
}

// VisibleTiles yields, row by row, every tile whose bounding box intersects
// the viewport. The sequence is lazy, finite and restartable; it is rebuilt
// from scratch each frame since the visible window is always small.
func VisibleTiles(doc *mapfile.Document, vp ViewportState) iter.Seq[VisibleTile] {
	return func(yield func(VisibleTile) bool) {
		if doc == nil {
			return
		}
		firstX, lastX := tileRange(vp.CameraX, vp.WidthPx, vp.TileSizePx, doc.Width())
		firstY, lastY := tileRange(vp.CameraY, vp.HeightPx, vp.TileSizePx, doc.Height())
		tile := int64(vp.TileSizePx)

		for ty := firstY; ty < lastY; ty++ {
			for tx := firstX; tx < lastX; tx++ {
				ref, ok := doc.TileAt(tx, ty)
				if !ok {
					continue
				}
				vt := VisibleTile{
					TileX:   tx,
					TileY:   ty,
					ScreenX: int64(tx)*tile - vp.CameraX,
					ScreenY: int64(ty)*tile - vp.CameraY,
					Ref:     ref,
				}
				if !yield(vt) {
					return
				}
			}
		}
	}
}

// VisibleObjects yields the placed objects whose tile falls inside the same
// range VisibleTiles covers, in file order.
func VisibleObjects(doc *mapfile.Document, vp ViewportState) iter.Seq[mapfile.PlacedObject] {
	return func(yield func(mapfile.PlacedObject) bool) {
		if doc == nil {
			return
		}
		firstX, lastX := tileRange(vp.CameraX, vp.WidthPx, vp.TileSizePx, doc.Width())
		firstY, lastY := tileRange(vp.CameraY, vp.HeightPx, vp.TileSizePx, doc.Height())

		for obj := range doc.Objects() {
			x, y := int(obj.X), int(obj.Y)
			if x >= firstX && x < lastX && y >= firstY && y < lastY {
				if !yield(obj) {
					return
				}
			}
		}
	}
}
