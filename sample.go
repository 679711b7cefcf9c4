package tilenet

import "github.com/tomz197/tilenet/geom"

// Sample returns a canned 10×10 demo net: solid walls on all four edges
// (1 through 4 for top, bottom, left, right) and a 5 block in the
// middle. Handy for tests and quick experiments.
func Sample() *Net[int] {
	n := New[int](10, 10)
	n.SetRow(1, 0)
	n.SetRow(2, 9)
	n.SetCol(3, 0)
	n.SetCol(4, 9)
	n.SetBox(5, geom.Cell{Col: 3, Row: 3}, geom.Cell{Col: 5, Row: 7})
	return n
}
