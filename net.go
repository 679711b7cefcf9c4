// Package tilenet holds integer-aligned tiles for broad-phase continuous
// collision detection. A Net is a dense, fixed-size, row-major grid of
// caller-defined values; Views iterate clipped rectangles of it and Sets
// sample it through arbitrary cell-coordinate sequences.
//
// Single-cell access outside the grid reports absence rather than
// panicking. Bulk writers clip silently instead: they exist to paint
// worlds, and erroring on a partially off-grid box would make them
// miserable to use. The asymmetry is deliberate.
package tilenet

import "github.com/tomz197/tilenet/geom"

// Net is a width×height grid of tiles. The zero value is not usable;
// construct with New or FromSlice.
//
// A Net is exclusively owned by its caller: views and sets borrow it and
// must not outlive it, and nothing in this package locks. A caller that
// wants concurrent checks against a shared net must provide its own
// synchronization.
type Net[T any] struct {
	tiles  []T // row-major: tiles[row*width+col]
	width  int
	height int
}

// New creates a net of the given size with every tile set to the zero
// value of T.
func New[T any](width, height int) *Net[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Net[T]{
		tiles:  make([]T, width*height),
		width:  width,
		height: height,
	}
}

// FromSlice creates a net filled row-major from values. If values is
// shorter than width×height the remainder keeps the zero value; if
// longer, the excess is ignored.
func FromSlice[T any](width, height int, values []T) *Net[T] {
	n := New[T](width, height)
	copy(n.tiles, values)
	return n
}

// Size returns the net's width and height in tiles.
func (n *Net[T]) Size() (width, height int) {
	return n.width, n.height
}

// Contains reports whether the cell lies inside the net.
func (n *Net[T]) Contains(col, row int) bool {
	return col >= 0 && col < n.width && row >= 0 && row < n.height
}

// Get returns the tile at (col, row), or ok=false if the cell lies
// outside the net. Out-of-range access is never a panic.
func (n *Net[T]) Get(col, row int) (T, bool) {
	if !n.Contains(col, row) {
		var zero T
		return zero, false
	}
	return n.tiles[row*n.width+col], true
}

// GetMut returns a pointer to the tile at (col, row), or ok=false if the
// cell lies outside the net. Writes through the pointer are immediately
// visible to subsequent reads.
func (n *Net[T]) GetMut(col, row int) (*T, bool) {
	if !n.Contains(col, row) {
		return nil, false
	}
	return &n.tiles[row*n.width+col], true
}

// at returns the tile pointer without a bounds check. Callers must have
// validated the cell.
func (n *Net[T]) at(col, row int) *T {
	return &n.tiles[row*n.width+col]
}

// Set writes value at (col, row). Cells outside the net are ignored.
func (n *Net[T]) Set(value T, col, row int) {
	if n.Contains(col, row) {
		n.tiles[row*n.width+col] = value
	}
}

// SetRow fills an entire row with value. Rows outside the net are
// ignored.
func (n *Net[T]) SetRow(value T, row int) {
	if row < 0 || row >= n.height {
		return
	}
	base := row * n.width
	for col := 0; col < n.width; col++ {
		n.tiles[base+col] = value
	}
}

// SetCol fills an entire column with value. Columns outside the net are
// ignored.
func (n *Net[T]) SetCol(value T, col int) {
	if col < 0 || col >= n.width {
		return
	}
	for row := 0; row < n.height; row++ {
		n.tiles[row*n.width+col] = value
	}
}

// SetBox fills the rectangle spanned by topLeft and bottomRight,
// inclusive on both corners, clipped to the net's bounds.
func (n *Net[T]) SetBox(value T, topLeft, bottomRight geom.Cell) {
	left := max(topLeft.Col, 0)
	top := max(topLeft.Row, 0)
	right := min(bottomRight.Col, n.width-1)
	bottom := min(bottomRight.Row, n.height-1)
	for row := top; row <= bottom; row++ {
		base := row * n.width
		for col := left; col <= right; col++ {
			n.tiles[base+col] = value
		}
	}
}

// Resize changes the net's dimensions. Tiles whose coordinates remain in
// range keep their value; newly exposed tiles get the zero value; tiles
// dropped by shrinking are discarded.
func (n *Net[T]) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	tiles := make([]T, width*height)
	keepW := min(width, n.width)
	keepH := min(height, n.height)
	for row := 0; row < keepH; row++ {
		copy(tiles[row*width:row*width+keepW], n.tiles[row*n.width:row*n.width+keepW])
	}
	n.tiles = tiles
	n.width = width
	n.height = height
}
