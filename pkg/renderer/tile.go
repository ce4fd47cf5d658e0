package renderer

import "sync/atomic"

// Tile is a rectangular, disjoint block of pixels: a unit of dispatch for
// the worker pool. Bounds are exclusive on the upper edge.
type Tile struct {
	X0, Y0, X1, Y1 int
}

// Width returns the tile's pixel width.
func (t Tile) Width() int { return t.X1 - t.X0 }

// Height returns the tile's pixel height.
func (t Tile) Height() int { return t.Y1 - t.Y0 }

// TileQueue partitions an image into tiles once at construction and hands
// them out via a single atomic counter. Workers never interact beyond
// this counter and the film's disjoint pixel writes.
type TileQueue struct {
	tiles []Tile
	next  uint64
}

// NewTileQueue enumerates tiles in row-major order over a width x height
// image, clamping the last tile in each dimension to the image bounds.
func NewTileQueue(width, height, tileSize int) *TileQueue {
	var tiles []Tile
	for y0 := 0; y0 < height; y0 += tileSize {
		y1 := y0 + tileSize
		if y1 > height {
			y1 = height
		}
		for x0 := 0; x0 < width; x0 += tileSize {
			x1 := x0 + tileSize
			if x1 > width {
				x1 = width
			}
			tiles = append(tiles, Tile{X0: x0, Y0: y0, X1: x1, Y1: y1})
		}
	}
	return &TileQueue{tiles: tiles}
}

// Next atomically claims the next tile. It returns false once the queue
// is exhausted.
func (q *TileQueue) Next() (Tile, bool) {
	i := atomic.AddUint64(&q.next, 1) - 1
	if i >= uint64(len(q.tiles)) {
		return Tile{}, false
	}
	return q.tiles[i], true
}

// Len returns the total number of tiles in the queue.
func (q *TileQueue) Len() int {
	return len(q.tiles)
}
