package main

// MovementIntent is one discrete pan request. Key events are mapped to
// intents in the update loop; the viewport only ever sees intents.
type MovementIntent int

const (
	MoveUp MovementIntent = iota
	MoveDown
	MoveLeft
	MoveRight
)

// ViewportState is the camera rectangle over the map, in pixels. The clamp
// invariant (camera within [0, mapExtent-viewport] per axis) holds after
// every mutation, not just eventually.
type ViewportState struct {
	CameraX    int64
	CameraY    int64
	WidthPx    uint32
	HeightPx   uint32
	TileSizePx uint32
}

// ApplyMovement pans the camera by stepPx in the intent's direction, then
// clamps against the map extent. Movement at a boundary is never rejected,
// just truncated, so holding a key at the edge is a no-op rather than an
// error.
func (v *ViewportState) ApplyMovement(intent MovementIntent, stepPx int64, mapW, mapH int) {
	switch intent {
	case MoveUp:
		v.CameraY -= stepPx
	case MoveDown:
		v.CameraY += stepPx
	case MoveLeft:
		v.CameraX -= stepPx
	case MoveRight:
		v.CameraX += stepPx
	}
	v.Clamp(mapW, mapH)
}

// Resize records a new viewport size and re-clamps. A camera that is still
// valid for the new size does not move; resizing never teleports the view.
func (v *ViewportState) Resize(widthPx, heightPx uint32, mapW, mapH int) {
	v.WidthPx = widthPx
	v.HeightPx = heightPx
	v.Clamp(mapW, mapH)
}

// Reset puts the camera at the map origin, used when a new map loads.
func (v *ViewportState) Reset() {
	v.CameraX = 0
	v.CameraY = 0
}

func (v *ViewportState) Clamp(mapW, mapH int) {
	v.CameraX = clampAxis(v.CameraX, mapW, v.TileSizePx, v.WidthPx)
	v.CameraY = clampAxis(v.CameraY, mapH, v.TileSizePx, v.HeightPx)
}

func clampAxis(camera int64, mapTiles int, tileSizePx, viewportPx uint32) int64 {
	limit := int64(mapTiles)*int64(tileSizePx) - int64(viewportPx)
	if limit < 0 {
		limit = 0
	}
	if camera > limit {
		camera = limit
	}
	if camera < 0 {
		camera = 0
	}
	return camera
}
