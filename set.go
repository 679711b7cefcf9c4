package tilenet

import (
	"fmt"
	"strings"

	"github.com/tomz197/tilenet/geom"
)

// Set samples a Net through a cell-coordinate sequence: each in-bounds
// coordinate yields a pointer to its tile, and out-of-bounds coordinates
// are skipped outright, neither yielded as errors nor terminating the
// sequence. During collision resolution the coordinates arrive
// proximity-ordered, so the first tiles out of a Set are the ones the
// object would hit first.
type Set[T any] struct {
	net    *Net[T]
	coords geom.CellSeq
	last   geom.Cell
}

// CollideSet returns a Set that samples the net through coords.
func (n *Net[T]) CollideSet(coords geom.CellSeq) *Set[T] {
	return &Set[T]{net: n, coords: coords}
}

// Next returns a pointer to the next in-bounds tile, or ok=false when
// the coordinate sequence is exhausted.
func (s *Set[T]) Next() (*T, bool) {
	for {
		c, ok := s.coords.Next()
		if !ok {
			return nil, false
		}
		s.last = c
		if s.net.Contains(c.Col, c.Row) {
			return s.net.at(c.Col, c.Row), true
		}
	}
}

// LastCoord returns the most recently visited input coordinate, in
// bounds or not. After partial consumption this pinpoints the cell that
// caused a rejection.
func (s *Set[T]) LastCoord() geom.Cell {
	return s.last
}

// All reports whether pred holds for every remaining tile. It consumes
// the set up to the first tile for which pred is false, so LastCoord
// then names the offending cell.
func (s *Set[T]) All(pred func(*T) bool) bool {
	for {
		t, ok := s.Next()
		if !ok {
			return true
		}
		if !pred(t) {
			return false
		}
	}
}

// Clone returns an independent set with its own cursor, starting from
// this set's current state. It reports ok=false if the underlying
// coordinate sequence does not support duplication.
func (s *Set[T]) Clone() (*Set[T], bool) {
	cloner, ok := s.coords.(geom.CellSeqCloner)
	if !ok {
		return nil, false
	}
	return &Set[T]{net: s.net, coords: cloner.Clone(), last: s.last}, true
}

// String renders the remaining tiles of a clone, leaving the live cursor
// untouched. Sets over non-duplicable sequences render as a placeholder
// rather than consuming themselves.
func (s *Set[T]) String() string {
	dup, ok := s.Clone()
	if !ok {
		return fmt.Sprintf("tilenet.Set(last=%v)", s.last)
	}
	var b strings.Builder
	for {
		t, ok := dup.Next()
		if !ok {
			return b.String()
		}
		fmt.Fprintf(&b, "%v ", *t)
	}
}
