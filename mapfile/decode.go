package mapfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image/color"
	"os"
)

// Decode parses one extracted MAPD map from buf. It is a pure function of
// the input bytes: no file access, no global state, so corrupt input can be
// exercised exhaustively in tests.
//
// Every structural failure aborts the decode with one of the sentinel errors
// in errors.go. A checksum mismatch is the single exception: the document is
// returned with ChecksumOK() == false and a nil error.
func Decode(buf []byte) (*Document, error) {
	r := &cursor{buf: buf}

	magic, err := r.u32()
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: bad magic %#08x", ErrInvalidFormat, magic)
	}
	version, err := r.u16()
	if err != nil {
		return nil, err
	}
	if version != VersionSupported {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidFormat, version)
	}
	flags, err := r.u16()
	if err != nil {
		return nil, err
	}
	if flags&^uint16(flagsKnown) != 0 {
		return nil, fmt.Errorf("%w: unknown flags %#04x", ErrInvalidFormat, flags)
	}

	width, err := r.u32()
	if err != nil {
		return nil, err
	}
	height, err := r.u32()
	if err != nil {
		return nil, err
	}
	if width == 0 || height == 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensionOutOfRange, width, height)
	}

	tilesetID, err := r.u32()
	if err != nil {
		return nil, err
	}
	tileCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	if tileCount == 0 || tileCount > MaxTileCount {
		return nil, fmt.Errorf("%w: tileset tile count %d", ErrInvalidFormat, tileCount)
	}

	nameRaw, err := r.take(nameSize)
	if err != nil {
		return nil, err
	}
	name := string(bytes.TrimRight(nameRaw, "\x00"))

	paletteLen, err := r.u16()
	if err != nil {
		return nil, err
	}
	if paletteLen > MaxPaletteSize {
		return nil, fmt.Errorf("%w: palette size %d", ErrInvalidFormat, paletteLen)
	}
	palette := make([]color.RGBA, 0, paletteLen)
	for i := 0; i < int(paletteLen); i++ {
		packed, err := r.u16()
		if err != nil {
			return nil, err
		}
		palette = append(palette, unpackRGB555(packed))
	}

	// Check the whole layer fits before allocating width*height entries, so
	// a corrupt header cannot force a huge allocation for a tiny file.
	tileCells := int(width) * int(height)
	if r.remaining() < tileCells*2 {
		return nil, fmt.Errorf("%w: tile layer needs %d bytes, %d left",
			ErrTruncatedFile, tileCells*2, r.remaining())
	}
	tiles := make([]TileRef, tileCells)
	for i := range tiles {
		code, err := r.u16()
		if err != nil {
			return nil, err
		}
		tiles[i] = TileRef(code)
	}

	objectCount, err := r.u32()
	if err != nil {
		return nil, err
	}
	if objectCount > width*height {
		return nil, fmt.Errorf("%w: %d objects declared on a %dx%d map",
			ErrInvalidFormat, objectCount, width, height)
	}
	if r.remaining() < int(objectCount)*objectRecSize {
		return nil, fmt.Errorf("%w: %d object records declared, %d bytes left",
			ErrTruncatedFile, objectCount, r.remaining())
	}
	objects := make([]PlacedObject, 0, objectCount)
	for i := 0; i < int(objectCount); i++ {
		obj, err := r.object()
		if err != nil {
			return nil, err
		}
		if obj.X >= width || obj.Y >= height {
			return nil, fmt.Errorf("%w: object %d at (%d,%d) in %dx%d map",
				ErrOutOfRangeObjectPosition, i, obj.X, obj.Y, width, height)
		}
		objects = append(objects, obj)
	}

	checksumOK := true
	if flags&flagChecksum != 0 {
		payload := buf[:r.off]
		want, err := r.u32()
		if err != nil {
			return nil, err
		}
		checksumOK = crc32.ChecksumIEEE(payload) == want
	}

	for i, ref := range tiles {
		if uint32(ref) >= tileCount {
			return nil, fmt.Errorf("%w: tile %d has code %d, tileset holds %d",
				ErrInvalidTileIndex, i, ref, tileCount)
		}
	}

	return &Document{
		width:      int(width),
		height:     int(height),
		tiles:      tiles,
		objects:    objects,
		tilesetID:  tilesetID,
		tileCount:  tileCount,
		name:       name,
		palette:    palette,
		checksumOK: checksumOK,
	}, nil
}

// DecodeFile reads and decodes the map at path. Read failures carry ErrIO so
// the viewer can distinguish "file unreadable" from "file corrupt".
func DecodeFile(path string) (*Document, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return Decode(buf)
}

// cursor walks buf left to right. Every read past the end reports
// ErrTruncatedFile; nothing is ever zero-padded.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) remaining() int { return len(c.buf) - c.off }

func (c *cursor) take(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncatedFile, n, c.off, c.remaining())
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) u8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) object() (PlacedObject, error) {
	kind, err := c.u8()
	if err != nil {
		return PlacedObject{}, err
	}
	if ObjectKind(kind) >= kindCount {
		return PlacedObject{}, fmt.Errorf("%w: unknown object kind %d", ErrInvalidFormat, kind)
	}
	owner, err := c.u8()
	if err != nil {
		return PlacedObject{}, err
	}
	x, err := c.u32()
	if err != nil {
		return PlacedObject{}, err
	}
	y, err := c.u32()
	if err != nil {
		return PlacedObject{}, err
	}
	return PlacedObject{Kind: ObjectKind(kind), Owner: FactionID(owner), X: x, Y: y}, nil
}
