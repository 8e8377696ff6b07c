package moleman

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Orientation is a bitmask over the 8 compass neighbor directions of a
// tile, indicating which neighbors are also occupied. North is toward
// decreasing Y (up on screen).
//
// Diagonal bits are independent of the cardinals: a tile can have
// NorthEast set without North or East. The sprite configuration decides
// what each combination looks like.
type Orientation uint8

const (
	North Orientation = 1 << iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// OrientationNone is the mask of a tile with no filled neighbors.
const OrientationNone Orientation = 0

// OrientationAll is the mask of a fully surrounded tile.
const OrientationAll Orientation = 0xFF

// orientationNames lists direction names in bit order, for String.
var orientationNames = [8]string{"N", "S", "E", "W", "NE", "NW", "SE", "SW"}

// neighborOffsets pairs each direction bit with its grid offset.
var neighborOffsets = [8]struct {
	Dir    Orientation
	DX, DY int
}{
	{North, 0, -1},
	{South, 0, 1},
	{East, 1, 0},
	{West, -1, 0},
	{NorthEast, 1, -1},
	{NorthWest, -1, -1},
	{SouthEast, 1, 1},
	{SouthWest, -1, 1},
}

// Contains reports whether every direction bit in dir is set in o.
func (o Orientation) Contains(dir Orientation) bool {
	return o&dir == dir
}

// With returns o with the given direction bits set.
func (o Orientation) With(dir Orientation) Orientation {
	return o | dir
}

// Without returns o with the given direction bits cleared.
func (o Orientation) Without(dir Orientation) Orientation {
	return o &^ dir
}

// Count returns the number of directions set in the mask.
func (o Orientation) Count() int {
	return bits.OnesCount8(uint8(o))
}

// String returns the set directions joined by "|" (e.g. "N|E|NE"),
// or "none" for the zero mask.
func (o Orientation) String() string {
	if o == OrientationNone {
		return "none"
	}
	var parts []string
	for i, name := range orientationNames {
		if o&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Key returns the stable encoding of the mask used to address it in a
// persisted sprite configuration: the decimal value of the bitmask.
func (o Orientation) Key() string {
	return strconv.Itoa(int(o))
}

// ParseOrientationKey decodes a mask key produced by Key.
func ParseOrientationKey(key string) (Orientation, error) {
	v, err := strconv.ParseUint(key, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("moleman: invalid orientation key %q: %w", key, err)
	}
	return Orientation(v), nil
}
