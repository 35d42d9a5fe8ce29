// Package tilemap turns a character grid into wall segments.
package tilemap

import (
	"errors"
	"fmt"
	"strings"
)

// Wall is the character for a tile that blocks sight. Every other
// character is open floor.
const Wall = '#'

// ErrInvalidMap is returned by Parse for grids it cannot use.
var ErrInvalidMap = errors.New("tilemap: invalid map")

// Coord is a tile position in the grid.
type Coord struct {
	X, Y int
}

// Map is a rectangular grid of tiles.
type Map struct {
	Width    int
	Height   int
	TileSize float64
	rows     []string
}

// Parse builds a Map from rows of equal length.
func Parse(rows []string, tileSize float64) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidMap)
	}
	if !(tileSize > 0) {
		return nil, fmt.Errorf("%w: tile size must be positive, got %v", ErrInvalidMap, tileSize)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrInvalidMap, i, len(row), width)
		}
	}
	return &Map{
		Width:    width,
		Height:   len(rows),
		TileSize: tileSize,
		rows:     rows,
	}, nil
}

// BlocksSight reports whether the tile at (x, y) is a wall. Tiles outside
// the grid do not block.
func (m *Map) BlocksSight(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.rows[y][x] == Wall
}

func (m *Map) String() string {
	return strings.Join(m.rows, "\n")
}
