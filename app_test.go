package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ucosty/kknd2-mapview/mapfile"
)

func viewingModel(t *testing.T, doc *mapfile.Document, path string) model {
	t.Helper()
	m := initialModel(testConfig())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 4, Height: 3})
	next, _ = next.Update(mapLoadedMsg{seq: 0, path: path, doc: doc})

	got := next.(model)
	require.Equal(t, ModeViewing, got.mode)
	return got
}

func TestLoadSuccessEntersViewing(t *testing.T) {
	doc := mustDecode(t, 4, 4, nil, nil)
	m := viewingModel(t, doc, "a.mapd")

	require.Same(t, doc, m.doc)
	require.Equal(t, "a.mapd", m.mapPath)
	require.Equal(t, int64(0), m.vp.CameraX)
	require.Equal(t, int64(0), m.vp.CameraY)
}

func TestLoadFailureKeepsOldMap(t *testing.T) {
	docA := mustDecode(t, 4, 4, nil, nil)
	m := viewingModel(t, docA, "a.mapd")

	m.loadSeq++
	next, _ := m.Update(mapLoadedMsg{seq: m.loadSeq, path: "broken.mapd", err: mapfile.ErrTruncatedFile})
	got := next.(model)

	require.Equal(t, ModeViewing, got.mode)
	require.Same(t, docA, got.doc)
	require.Equal(t, "a.mapd", got.mapPath)
	require.Contains(t, got.errorMessage, "broken.mapd")
}

func TestLoadFailureWithoutPriorMapReturnsToStartup(t *testing.T) {
	m := initialModel(testConfig())
	next, _ := m.Update(mapLoadedMsg{seq: 0, path: "broken.mapd", err: mapfile.ErrInvalidFormat})
	got := next.(model)

	require.Equal(t, ModeStartup, got.mode)
	require.Nil(t, got.doc)
	require.NotEmpty(t, got.errorMessage)
}

func TestStartupPathFailureQuitsNonzero(t *testing.T) {
	m := initialModel(testConfig())
	m.startupPath = "missing.mapd"
	m.mode = ModeLoading

	next, cmd := m.Update(mapLoadedMsg{seq: 0, path: "missing.mapd", err: mapfile.ErrIO})
	got := next.(model)

	require.Equal(t, 1, got.exitCode)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSupersededDecodeResultIsDiscarded(t *testing.T) {
	docA := mustDecode(t, 4, 4, nil, nil)
	m := viewingModel(t, docA, "a.mapd")

	// Request b, then c before b finishes: b's result arrives stale.
	m.loadSeq = 2
	docB := mustDecode(t, 2, 2, nil, nil)
	next, _ := m.Update(mapLoadedMsg{seq: 1, path: "b.mapd", doc: docB})
	got := next.(model)

	require.Same(t, docA, got.doc)
	require.Equal(t, "a.mapd", got.mapPath)
}

func TestOpeningNewMapLeavesNoTraceOfOld(t *testing.T) {
	tilesA := make([]uint16, 16)
	for i := range tilesA {
		tilesA[i] = 7
	}
	docA := mustDecode(t, 4, 4, tilesA, nil)
	m := viewingModel(t, docA, "a.mapd")

	// Pan away from the origin so the camera reset is observable too.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(model)
	require.NotZero(t, m.vp.CameraX)

	tilesB := make([]uint16, 4)
	for i := range tilesB {
		tilesB[i] = 3
	}
	docB := mustDecode(t, 2, 2, tilesB, nil)
	m.loadSeq++
	next, _ = m.Update(mapLoadedMsg{seq: m.loadSeq, path: "b.mapd", doc: docB})
	m = next.(model)

	require.Equal(t, int64(0), m.vp.CameraX)
	for vt := range VisibleTiles(m.doc, m.vp) {
		require.Equal(t, mapfile.TileRef(3), vt.Ref)
		require.Less(t, vt.TileX, 2)
		require.Less(t, vt.TileY, 2)
	}
}

func TestArrowKeysPanAndClamp(t *testing.T) {
	// 4x4 map, 32px tiles, 64x64 viewport (terminal 4x3 cells), 8px step:
	// ten rights would be 80px but the camera clamps at 64.
	doc := mustDecode(t, 4, 4, nil, nil)
	m := viewingModel(t, doc, "a.mapd")

	var next tea.Model = m
	for i := 0; i < 10; i++ {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	got := next.(model)
	require.Equal(t, int64(64), got.vp.CameraX)
	require.Equal(t, int64(0), got.vp.CameraY)
}

func TestOpenNonexistentPathLeavesMapUnchanged(t *testing.T) {
	docA := mustDecode(t, 4, 4, nil, nil)
	m := viewingModel(t, docA, "a.mapd")

	m.loadSeq++
	msg := loadMapCmd(m.loadSeq, t.TempDir()+"/nope.mapd")()
	loaded, ok := msg.(mapLoadedMsg)
	require.True(t, ok)
	require.ErrorIs(t, loaded.err, mapfile.ErrIO)

	next, _ := m.Update(loaded)
	got := next.(model)
	require.Same(t, docA, got.doc)
	require.Equal(t, ModeViewing, got.mode)
}

func TestResizeWhileViewingReclamps(t *testing.T) {
	doc := mustDecode(t, 4, 4, nil, nil)
	m := viewingModel(t, doc, "a.mapd")

	var next tea.Model = m
	for i := 0; i < 10; i++ {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRight})
	}

	// Terminal grows to cover the whole 128px map: travel shrinks to zero.
	next, _ = next.Update(tea.WindowSizeMsg{Width: 8, Height: 5})
	got := next.(model)
	require.Equal(t, int64(0), got.vp.CameraX)
}

func TestHelpOverlayToggles(t *testing.T) {
	doc := mustDecode(t, 4, 4, nil, nil)
	m := viewingModel(t, doc, "a.mapd")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	got := next.(model)
	require.True(t, got.help)

	next, _ = got.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got = next.(model)
	require.False(t, got.help)
}

func TestFilePickerCancelReturnsToPriorMode(t *testing.T) {
	doc := mustDecode(t, 4, 4, nil, nil)
	m := viewingModel(t, doc, "a.mapd")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	got := next.(model)
	require.Equal(t, ModeFilePicker, got.mode)

	next, _ = got.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got = next.(model)
	require.Equal(t, ModeViewing, got.mode)
	require.Same(t, doc, got.doc)
}
