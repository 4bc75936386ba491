package main

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ucosty/kknd2-mapview/mapfile"
)

// buildMapBytes assembles a minimal valid map file: width x height grid with
// the given row-major tile codes (all zero when nil), no palette, no
// checksum trailer.
func buildMapBytes(width, height uint32, tiles []uint16, objects []mapfile.PlacedObject) []byte {
	buf := binary.LittleEndian.AppendUint32(nil, mapfile.Magic)
	buf = binary.LittleEndian.AppendUint16(buf, mapfile.VersionSupported)
	buf = binary.LittleEndian.AppendUint16(buf, 0) // flags
	buf = binary.LittleEndian.AppendUint32(buf, width)
	buf = binary.LittleEndian.AppendUint32(buf, height)
	buf = binary.LittleEndian.AppendUint32(buf, 1)   // tileset id
	buf = binary.LittleEndian.AppendUint32(buf, 256) // tile count
	buf = append(buf, make([]byte, 32)...)           // name
	buf = binary.LittleEndian.AppendUint16(buf, 0)   // palette

	if tiles == nil {
		tiles = make([]uint16, width*height)
	}
	for _, code := range tiles {
		buf = binary.LittleEndian.AppendUint16(buf, code)
	}

	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(objects)))
	for _, obj := range objects {
		buf = append(buf, byte(obj.Kind), byte(obj.Owner))
		buf = binary.LittleEndian.AppendUint32(buf, obj.X)
		buf = binary.LittleEndian.AppendUint32(buf, obj.Y)
	}
	return buf
}

func mustDecode(t *testing.T, width, height uint32, tiles []uint16, objects []mapfile.PlacedObject) *mapfile.Document {
	t.Helper()
	doc, err := mapfile.Decode(buildMapBytes(width, height, tiles, objects))
	require.NoError(t, err)
	return doc
}

func testConfig() *Config {
	return &Config{
		PanStepPx:  8,
		TileSizePx: 32,
		LogLevel:   "info",
	}
}
