package geom

import "math"

// Line is a directed segment in continuous space, from Start to Stop.
// Lines are built per vertex per resolution attempt and consumed
// immediately by Supercover; they are never persisted.
type Line struct {
	Start, Stop Vector
}

// NewLine creates a line from start to stop.
func NewLine(start, stop Vector) Line {
	return Line{Start: start, Stop: stop}
}

// FromOrigin creates a line from (0, 0) to stop.
func FromOrigin(stop Vector) Line {
	return Line{Stop: stop}
}

// CellAt returns the grid cell containing the point v.
// Cells are half-open: a point exactly on a boundary belongs to the
// cell on the higher side (floor convention).
func CellAt(v Vector) Cell {
	return Cell{Col: floor32(v.X), Row: floor32(v.Y)}
}

func floor32(v float32) int {
	return int(math.Floor(float64(v)))
}
