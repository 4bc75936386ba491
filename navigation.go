package main

// movementIntentFor maps a key event to a pan intent. Arrow keys and hjkl
// both work, with shift for a faster step.
func movementIntentFor(key string) (MovementIntent, bool) {
	switch key {
	case "h", "left", "H", "shift+left":
		return MoveLeft, true
	case "l", "right", "L", "shift+right":
		return MoveRight, true
	case "k", "up", "K", "shift+up":
		return MoveUp, true
	case "j", "down", "J", "shift+down":
		return MoveDown, true
	}
	return 0, false
}

func (m *model) panStep(key string) int64 {
	step := int64(m.config.PanStepPx)
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return step * fastPanMultiplier
	default:
		return step
	}
}
