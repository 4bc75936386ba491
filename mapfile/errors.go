package mapfile

import "errors"

var (
	ErrInvalidFormat            = errors.New("invalid map format")
	ErrDimensionOutOfRange      = errors.New("map dimensions out of range")
	ErrTruncatedFile            = errors.New("truncated map file")
	ErrInvalidTileIndex         = errors.New("tile index outside tileset")
	ErrOutOfRangeObjectPosition = errors.New("object position outside map")
	ErrIO                       = errors.New("unable to read map file")

	// ErrChecksumMismatch is a warning, not a load failure: structural
	// validation wins over the checksum for viewing purposes.
	ErrChecksumMismatch = errors.New("map checksum mismatch")
)
