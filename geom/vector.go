// Package geom provides the continuous-space primitives used by the
// collision engine: 2D vectors, line segments, and the supercover
// rasterizer that maps a segment onto the grid cells it touches.
//
// Coordinates are 32-bit floats. The rasterizer is only specified to be
// correct for magnitudes well below 2^24; beyond that, unit increments
// stop being representable and cell boundaries become ambiguous. Callers
// operating at very large world coordinates must re-center their
// coordinate space themselves.
package geom

// Vector is a point or displacement in continuous 2D space.
type Vector struct {
	X, Y float32
}

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by factor.
func (v Vector) Scale(factor float32) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Norm2Sq returns the squared Euclidean norm. Use this to detect
// near-zero speed without paying for a square root.
func (v Vector) Norm2Sq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Cell is an integer grid coordinate (column, row).
type Cell struct {
	Col, Row int
}
