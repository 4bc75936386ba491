package main

const (
	// Pan step per intent, matching the original viewer's pan speed.
	defaultPanStepPx = 16
	// KKND2 tiles are 32x32 pixels.
	defaultTileSizePx = 32

	fastPanMultiplier = 4

	// Terminal rendering: one tile occupies a 2-column cell so the map
	// stays roughly square on screen.
	tileCellWidth   = 2
	statusBarHeight = 1
)

var mapFileExtensions = []string{".mapd", ".map"}
