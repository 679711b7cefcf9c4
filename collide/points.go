package collide

import "github.com/tomz197/tilenet/geom"

// Points iterates an object's vertices: a fixed slice of local-space
// points, each translated by an offset (normally the object's position).
// The slice is borrowed, not copied; it must not change while the
// iterator is in use.
type Points struct {
	index  int
	offset geom.Vector
	points []geom.Vector
}

// NewPoints returns an iterator over points, each translated by offset.
func NewPoints(offset geom.Vector, points []geom.Vector) *Points {
	return &Points{offset: offset, points: points}
}

// Next returns the next translated vertex, or ok=false when all vertices
// have been produced.
func (p *Points) Next() (geom.Vector, bool) {
	if p.index >= len(p.points) {
		return geom.Vector{}, false
	}
	v := p.points[p.index].Add(p.offset)
	p.index++
	return v, true
}

// Len returns the total number of vertices, consumed or not.
func (p *Points) Len() int {
	return len(p.points)
}
