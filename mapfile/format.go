package mapfile

import "image/color"

// On-disk layout of an extracted MAPD map, little-endian throughout:
//
//	magic u32, version u16, flags u16,
//	width u32, height u32, tileset id u32, tileset tile count u32,
//	name [32]byte (NUL padded),
//	palette count u16, palette colors u16 each (packed RGB555),
//	tile codes u16 * width*height (row-major),
//	object count u32, objects (kind u8, owner u8, x u32, y u32),
//	crc32 u32 (IEEE, present iff flags bit 0 is set)
const (
	Magic            = 0x4450414D // "MAPD"
	VersionSupported = 1

	flagChecksum = 0x0001
	flagsKnown   = flagChecksum

	nameSize      = 32
	objectRecSize = 10

	// Guards against allocating for corrupt dimension fields.
	MaxDimension   = 4096
	MaxTileCount   = 65536
	MaxPaletteSize = 1024
)

// TileRef indexes the referenced tileset's catalog. Validated against the
// declared tile count at decode time, so render paths never range-check.
type TileRef uint16

type ObjectKind uint8

const (
	KindUnit ObjectKind = iota
	KindBuilding
	KindResource
	KindWaypoint
	kindCount
)

func (k ObjectKind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindBuilding:
		return "building"
	case KindResource:
		return "resource"
	case KindWaypoint:
		return "waypoint"
	}
	return "unknown"
}

// FactionID identifies the owning player of a placed object.
type FactionID uint8

// FactionNone marks neutral objects (resources, waypoints, creeps).
const FactionNone FactionID = 0xFF

type PlacedObject struct {
	Kind  ObjectKind
	X, Y  uint32
	Owner FactionID
}

func (o PlacedObject) Neutral() bool { return o.Owner == FactionNone }

// unpackRGB555 expands a packed 15-bit color the way the original game
// palette does: 5 bits per channel shifted up to 8-bit range.
func unpackRGB555(packed uint16) color.RGBA {
	return color.RGBA{
		R: uint8((packed & 0x7c00) >> 7),
		G: uint8((packed & 0x03e0) >> 2),
		B: uint8((packed & 0x001f) << 3),
		A: 0xff,
	}
}
