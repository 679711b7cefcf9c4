package collide

import (
	"github.com/samber/lo"

	"github.com/tomz197/tilenet/geom"
)

// cellRun is a materialized, cloneable cell sequence over a slice.
type cellRun struct {
	cells []geom.Cell
	index int
}

func (r *cellRun) Next() (geom.Cell, bool) {
	if r.index >= len(r.cells) {
		return geom.Cell{}, false
	}
	c := r.cells[r.index]
	r.index++
	return c, true
}

func (r *cellRun) Clone() geom.CellSeq {
	dup := *r
	return &dup
}

var _ geom.CellSeqCloner = (*cellRun)(nil)

// Sweep rasterizes one line per vertex, from the vertex's current
// position to its position plus queued, and merges the per-vertex cell
// runs into a single proximity-ordered sequence: cells fewer steps along
// any ray come out before cells more steps along every ray.
//
// The merge is lo.Interleave's stable round-robin (sources alternate by
// steps taken so far, ties broken by vertex order), which is exactly the
// ordering the resolution protocol's nearest-first guarantee rests on.
// Do not substitute an ad hoc concatenation here; Resolve implementations
// base their decision on the first tiles they see.
func Sweep(points *Points, queued geom.Vector) geom.CellSeqCloner {
	runs := make([][]geom.Cell, 0, points.Len())
	for {
		p, ok := points.Next()
		if !ok {
			break
		}
		line := geom.NewLine(p, p.Add(queued))
		runs = append(runs, line.Supercover().Collect())
	}
	return &cellRun{cells: lo.Interleave(runs...)}
}
