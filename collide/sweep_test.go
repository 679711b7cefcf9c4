package collide

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/tilenet/geom"
)

func collect(seq geom.CellSeq) []geom.Cell {
	var cells []geom.Cell
	for {
		c, ok := seq.Next()
		if !ok {
			return cells
		}
		cells = append(cells, c)
	}
}

func TestSweepInterleavesByProximity(t *testing.T) {
	// Two vertices, each sweeping three cells to the right. Cells the
	// same number of steps along either ray must come out together,
	// vertex order breaking the tie.
	points := NewPoints(geom.Vector{X: 0.5, Y: 0.5}, []geom.Vector{
		{X: 0, Y: 0},
		{X: 3, Y: 0},
	})
	seq := Sweep(points, geom.Vector{X: 2, Y: 0})

	want := []geom.Cell{
		{Col: 0, Row: 0},
		{Col: 3, Row: 0},
		{Col: 1, Row: 0},
		{Col: 4, Row: 0},
		{Col: 2, Row: 0},
		{Col: 5, Row: 0},
	}
	assert.Equal(t, want, collect(seq))
}

func TestSweepUnevenRuns(t *testing.T) {
	// The two runs have different lengths; once the shorter one drops
	// out of the rotation, the longer one continues in order.
	points := NewPoints(geom.Vector{}, []geom.Vector{
		{X: 0.5, Y: 0.9},
		{X: 0.5, Y: 5.5},
	})
	seq := Sweep(points, geom.Vector{X: 0, Y: 2.2})

	// First vertex sweeps rows 0..3, second rows 5..7.
	want := []geom.Cell{
		{Col: 0, Row: 0},
		{Col: 0, Row: 5},
		{Col: 0, Row: 1},
		{Col: 0, Row: 6},
		{Col: 0, Row: 2},
		{Col: 0, Row: 7},
		{Col: 0, Row: 3},
	}
	assert.Equal(t, want, collect(seq))
}

func TestSweepCloneable(t *testing.T) {
	points := NewPoints(geom.Vector{}, []geom.Vector{{X: 0.5, Y: 0.5}})
	seq := Sweep(points, geom.Vector{X: 3, Y: 0})

	first := collect(seq.Clone())
	second := collect(seq)
	assert.Equal(t, first, second)
}

func TestSweepNoVertices(t *testing.T) {
	seq := Sweep(NewPoints(geom.Vector{}, nil), geom.Vector{X: 5, Y: 5})
	assert.Empty(t, collect(seq))
}

func TestPointsTranslation(t *testing.T) {
	points := NewPoints(geom.Vector{X: 3, Y: 4}, []geom.Vector{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
	})

	p, ok := points.Next()
	assert.True(t, ok)
	assert.Equal(t, geom.Vector{X: 3, Y: 4}, p)

	p, ok = points.Next()
	assert.True(t, ok)
	assert.Equal(t, geom.Vector{X: 4, Y: 4}, p)

	_, ok = points.Next()
	assert.False(t, ok)
}
