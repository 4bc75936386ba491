package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ucosty/kknd2-mapview/mapfile"
)

// loadMapCmd decodes path off the update loop. The sequence number travels
// with the result so a decode superseded by a newer open request can be
// recognized and discarded; bubbletea runs commands one goroutine each, and
// the swap itself happens back on the update loop, so the document slot is
// only ever written from one place.
func loadMapCmd(seq int, path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := mapfile.DecodeFile(path)
		return mapLoadedMsg{seq: seq, path: path, doc: doc, err: err}
	}
}
