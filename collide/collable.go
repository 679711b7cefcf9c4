// Package collide drives dynamic objects through speculative, bounded
// collision resolution against a tilenet grid.
//
// An object takes part by implementing Collable: it reports its vertex
// positions and the displacement it wants, and decides in Resolve
// whether the tiles swept by that displacement are acceptable. The
// engine never moves the object; acceptance and shrinking are entirely
// the object's business.
package collide

import (
	"github.com/tomz197/tilenet"
	"github.com/tomz197/tilenet/geom"
)

// Collable is the capability an object needs to be driven by Solve.
type Collable[T any] interface {
	// Points returns the object's vertices in continuous space, already
	// offset by the object's current position. For a rectangle the four
	// corners may be points; for a circle, a whole ring of them.
	Points() *Points

	// Queued returns the displacement the object currently wants to
	// make.
	Queued() geom.Vector

	// Resolve inspects as much of the proximity-ordered tile set as it
	// needs and reports whether it accepts the queued displacement.
	//
	// On acceptance the object must itself apply the displacement to
	// its position and clear the queued displacement; the engine does
	// not do either. On rejection the object must shrink the queued
	// displacement (scaling it down, say) before returning, and the
	// engine retries with the smaller move.
	Resolve(set *tilenet.Set[T]) bool
}

// Presolver is optionally implemented by Collables that want a hook at
// the start of every Solve call, typically to reset derived state such
// as a grounded or has-jumped flag.
type Presolver interface {
	Presolve()
}

// Postsolver is optionally implemented by Collables that want the
// outcome of a Solve call: whether any attempt was rejected, and whether
// a displacement was finally accepted.
type Postsolver interface {
	Postsolve(collidedOnce, resolved bool)
}
