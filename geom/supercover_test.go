package geom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupercoverEndpoints(t *testing.T) {
	tests := []struct {
		name  string
		start Vector
		stop  Vector
	}{
		{"Axis aligned right", Vector{X: 0.5, Y: 0.5}, Vector{X: 7.5, Y: 0.5}},
		{"Axis aligned up", Vector{X: 2.3, Y: 9.7}, Vector{X: 2.3, Y: 0.2}},
		{"Shallow slope", Vector{X: 0.1, Y: 0.1}, Vector{X: 20.4, Y: 3.2}},
		{"Steep slope", Vector{X: 5.5, Y: 0.5}, Vector{X: 6.5, Y: 30.1}},
		{"Negative quadrant", Vector{X: -3.5, Y: -0.5}, Vector{X: 4.5, Y: -8.5}},
		{"Long diagonal", Vector{X: 1.1, Y: 1.1}, Vector{X: 101.1, Y: 101.1}},
		{"Degenerate", Vector{X: 4.2, Y: 4.2}, Vector{X: 4.2, Y: 4.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := NewLine(tt.start, tt.stop).Supercover().Collect()
			require.NotEmpty(t, cells)
			assert.Equal(t, CellAt(tt.start), cells[0], "first cell must contain the origin")
			assert.Equal(t, CellAt(tt.stop), cells[len(cells)-1], "last cell must contain the destination")
		})
	}
}

func TestSupercoverDegenerate(t *testing.T) {
	cells := NewLine(Vector{X: 3.7, Y: 8.2}, Vector{X: 3.7, Y: 8.2}).Supercover().Collect()
	assert.Equal(t, []Cell{{Col: 3, Row: 8}}, cells)
}

func TestSupercoverCornerCrossing(t *testing.T) {
	// A 45-degree segment through the lattice corners (1,1) and (2,2)
	// must report the edge-sharing cell before each corner-sharing cell.
	cells := NewLine(Vector{X: 0.5, Y: 0.5}, Vector{X: 2.5, Y: 2.5}).Supercover().Collect()
	want := []Cell{
		{Col: 0, Row: 0},
		{Col: 1, Row: 0},
		{Col: 1, Row: 1},
		{Col: 2, Row: 1},
		{Col: 2, Row: 2},
	}
	assert.Equal(t, want, cells)
}

func TestSupercoverCornerCrossingNegativeDirection(t *testing.T) {
	cells := NewLine(Vector{X: 2.5, Y: 2.5}, Vector{X: 0.5, Y: 0.5}).Supercover().Collect()
	want := []Cell{
		{Col: 2, Row: 2},
		{Col: 1, Row: 2},
		{Col: 1, Row: 1},
		{Col: 0, Row: 1},
		{Col: 0, Row: 0},
	}
	assert.Equal(t, want, cells)
}

func TestSupercoverAxisAligned(t *testing.T) {
	cells := NewLine(Vector{X: 0.5, Y: 3.5}, Vector{X: 4.5, Y: 3.5}).Supercover().Collect()
	want := []Cell{
		{Col: 0, Row: 3},
		{Col: 1, Row: 3},
		{Col: 2, Row: 3},
		{Col: 3, Row: 3},
		{Col: 4, Row: 3},
	}
	assert.Equal(t, want, cells)
}

// TestSupercoverNoTunneling checks the anti-tunneling contract on random
// segments: endpoint cells are exact, and every step in the cover moves
// to an edge-adjacent cell, so there is no gap a thin object could slip
// through.
func TestSupercoverNoTunneling(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		start := Vector{
			X: (rng.Float32() - 0.5) * 2000,
			Y: (rng.Float32() - 0.5) * 2000,
		}
		stop := Vector{
			X: (rng.Float32() - 0.5) * 2000,
			Y: (rng.Float32() - 0.5) * 2000,
		}

		cells := NewLine(start, stop).Supercover().Collect()
		require.NotEmpty(t, cells)
		require.Equal(t, CellAt(start), cells[0], "segment %v -> %v", start, stop)
		require.Equal(t, CellAt(stop), cells[len(cells)-1], "segment %v -> %v", start, stop)

		for j := 1; j < len(cells); j++ {
			dc := cells[j].Col - cells[j-1].Col
			dr := cells[j].Row - cells[j-1].Row
			require.Equal(t, 1, dc*dc+dr*dr,
				"cells %v and %v are not edge-adjacent (segment %v -> %v)",
				cells[j-1], cells[j], start, stop)
		}
	}
}

func TestSupercoverRestartable(t *testing.T) {
	line := NewLine(Vector{X: 0.2, Y: 0.9}, Vector{X: 6.4, Y: 2.8})
	first := line.Supercover().Collect()
	second := line.Supercover().Collect()
	assert.Equal(t, first, second)
}

func TestSupercoverClone(t *testing.T) {
	cover := NewLine(Vector{X: 0.5, Y: 0.5}, Vector{X: 5.5, Y: 1.5}).Supercover()
	_, ok := cover.Next()
	require.True(t, ok)

	dup := cover.Clone()
	rest := cover.Collect()

	var fromDup []Cell
	for {
		c, ok := dup.Next()
		if !ok {
			break
		}
		fromDup = append(fromDup, c)
	}
	assert.Equal(t, rest, fromDup, "clone must continue from the same state")
}
