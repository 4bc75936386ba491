package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMovementIntentMapping(t *testing.T) {
	tests := []struct {
		key    string
		intent MovementIntent
	}{
		{"up", MoveUp},
		{"k", MoveUp},
		{"down", MoveDown},
		{"j", MoveDown},
		{"left", MoveLeft},
		{"h", MoveLeft},
		{"right", MoveRight},
		{"l", MoveRight},
		{"shift+right", MoveRight},
		{"L", MoveRight},
	}
	for _, tc := range tests {
		intent, ok := movementIntentFor(tc.key)
		require.Truef(t, ok, "key %q", tc.key)
		require.Equalf(t, tc.intent, intent, "key %q", tc.key)
	}

	for _, key := range []string{"o", "q", "enter", "ctrl+c", "?"} {
		_, ok := movementIntentFor(key)
		require.Falsef(t, ok, "key %q should not pan", key)
	}
}

func TestPanStepShiftMultiplier(t *testing.T) {
	m := &model{config: testConfig()}
	require.Equal(t, int64(8), m.panStep("right"))
	require.Equal(t, int64(8*fastPanMultiplier), m.panStep("shift+right"))
	require.Equal(t, int64(8*fastPanMultiplier), m.panStep("L"))
}

func TestIsMapFile(t *testing.T) {
	require.True(t, isMapFile("level1.mapd"))
	require.True(t, isMapFile("LEVEL1.MAPD"))
	require.True(t, isMapFile("beach.map"))
	require.False(t, isMapFile("notes.txt"))
	require.False(t, isMapFile("mapd"))
}
