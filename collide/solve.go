package collide

import "github.com/tomz197/tilenet"

// DefaultMaxAttempts bounds the resolution loop in Solve. The bound is
// not a tuning knob for correct objects (a Resolve that shrinks its
// displacement converges long before 30 attempts); it exists so that a
// Resolve that rejects forever without shrinking cannot hang the caller.
const DefaultMaxAttempts = 30

// Solve runs the speculative resolution loop for c against net with the
// default attempt bound, and reports whether a displacement was
// accepted.
func Solve[T any](c Collable[T], net *tilenet.Net[T]) bool {
	return SolveN(c, net, DefaultMaxAttempts)
}

// SolveN is Solve with a caller-chosen attempt bound. A bound less than
// one falls back to DefaultMaxAttempts; the loop is always bounded,
// never indefinite.
//
// Each attempt sweeps the object's vertices along the currently queued
// displacement, samples the net through the merged cell sequence, and
// asks the object to resolve. Acceptance ends the loop; rejection
// continues with whatever smaller displacement the object queued.
// Presolve runs once on entry and Postsolve once on exit, whichever way
// the loop ended. Exhausting the bound is not an error: the object
// observes resolved=false in Postsolve and reacts as it sees fit.
func SolveN[T any](c Collable[T], net *tilenet.Net[T], maxAttempts int) bool {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if p, ok := any(c).(Presolver); ok {
		p.Presolve()
	}

	collidedOnce := false
	resolved := false
	for attempt := 0; attempt < maxAttempts; attempt++ {
		set := net.CollideSet(Sweep(c.Points(), c.Queued()))
		if c.Resolve(set) {
			resolved = true
			break
		}
		collidedOnce = true
	}

	if p, ok := any(c).(Postsolver); ok {
		p.Postsolve(collidedOnce, resolved)
	}
	return resolved
}
