package geom

import "math"

// CellSeq is a finite, ordered sequence of grid cells. Sequences produced
// by rasterization are ordered from the segment's origin toward its
// destination; they may contain out-of-range coordinates near grid edges,
// which are filtered downstream, not here.
type CellSeq interface {
	// Next returns the next cell in the sequence, or ok=false when the
	// sequence is exhausted.
	Next() (cell Cell, ok bool)
}

// CellSeqCloner is implemented by cell sequences that support
// independent, non-destructive duplication.
type CellSeqCloner interface {
	CellSeq
	// Clone returns an independent sequence starting from this one's
	// current state.
	Clone() CellSeq
}

// SuperCover enumerates every grid cell a line segment geometrically
// touches, in order from the cell containing the segment's start to the
// cell containing its stop. Unlike a thin Bresenham line, a segment that
// passes exactly through a lattice corner reports both the cell sharing
// the crossed edge and the cell sharing the corner.
//
// The endpoint cells are computed directly from the segment's endpoints,
// not by accumulating DDA steps, so floating-point drift over many steps
// cannot disagree with the true endpoint cell: the first cell is always
// CellAt(Start) and the last is always CellAt(Stop).
//
// A drained SuperCover stays exhausted; rasterize the segment again by
// calling Line.Supercover.
type SuperCover struct {
	cur, target      Cell
	stepX, stepY     int
	tMaxX, tMaxY     float32 // parametric distance to the next boundary crossing
	tDeltaX, tDeltaY float32 // parametric distance between crossings
	started          bool
	done             bool
	corner           bool // a corner crossing still owes its second cell
}

// Supercover returns the supercover rasterization of the line.
func (l Line) Supercover() *SuperCover {
	cur := CellAt(l.Start)
	s := &SuperCover{
		cur:    cur,
		target: CellAt(l.Stop),
		stepX:  1,
		stepY:  1,
	}

	inf := float32(math.Inf(1))
	dx := l.Stop.X - l.Start.X
	dy := l.Stop.Y - l.Start.Y

	if dx == 0 {
		s.tMaxX = inf
	} else {
		if dx < 0 {
			s.stepX = -1
			s.tMaxX = (float32(cur.Col) - l.Start.X) / dx
			s.tDeltaX = -1 / dx
		} else {
			s.tMaxX = (float32(cur.Col+1) - l.Start.X) / dx
			s.tDeltaX = 1 / dx
		}
	}

	if dy == 0 {
		s.tMaxY = inf
	} else {
		if dy < 0 {
			s.stepY = -1
			s.tMaxY = (float32(cur.Row) - l.Start.Y) / dy
			s.tDeltaY = -1 / dy
		} else {
			s.tMaxY = (float32(cur.Row+1) - l.Start.Y) / dy
			s.tDeltaY = 1 / dy
		}
	}

	return s
}

// Next returns the next covered cell. The first call always yields the
// cell containing the segment's start; the call that yields the cell
// containing its stop is the last.
func (s *SuperCover) Next() (Cell, bool) {
	if s.done {
		return Cell{}, false
	}
	if !s.started {
		s.started = true
		if s.cur == s.target {
			s.done = true
		}
		return s.cur, true
	}
	if s.corner {
		// Second half of a corner crossing: the diagonal neighbour.
		s.corner = false
		s.stepRow()
		return s.emit()
	}

	switch {
	// Once an axis has reached its target cell it stops moving, no
	// matter what the accumulated boundary distances claim. This is
	// what keeps drift from pushing the walk past the endpoint cell.
	case s.cur.Col == s.target.Col:
		s.stepRow()
	case s.cur.Row == s.target.Row:
		s.stepCol()
	case s.tMaxX < s.tMaxY:
		s.stepCol()
	case s.tMaxX > s.tMaxY:
		s.stepRow()
	default:
		// Exact lattice-corner crossing: emit the edge-sharing cell
		// now and the corner-sharing cell on the following call.
		s.stepCol()
		s.corner = true
	}
	return s.emit()
}

func (s *SuperCover) stepCol() {
	s.cur.Col += s.stepX
	s.tMaxX += s.tDeltaX
}

func (s *SuperCover) stepRow() {
	s.cur.Row += s.stepY
	s.tMaxY += s.tDeltaY
}

func (s *SuperCover) emit() (Cell, bool) {
	if s.cur == s.target {
		s.done = true
		s.corner = false
	}
	return s.cur, true
}

// Collect drains the remaining cells into a slice.
func (s *SuperCover) Collect() []Cell {
	var cells []Cell
	for {
		c, ok := s.Next()
		if !ok {
			return cells
		}
		cells = append(cells, c)
	}
}

// Clone returns an independent copy of the rasterizer at its current
// position.
func (s *SuperCover) Clone() CellSeq {
	dup := *s
	return &dup
}

var _ CellSeqCloner = (*SuperCover)(nil)
