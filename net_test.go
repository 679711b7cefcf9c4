package tilenet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/tilenet/geom"
)

// sequential returns the values 1..count for row-major fills.
func sequential(count int) []int {
	values := make([]int, count)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

func TestNetGetBounds(t *testing.T) {
	const w, h = 10, 7
	n := New[int](w, h)

	tests := []struct {
		name     string
		col, row int
		want     bool
	}{
		{"Origin", 0, 0, true},
		{"Last cell", w - 1, h - 1, true},
		{"Negative col", -1, 0, false},
		{"Negative row", 0, -1, false},
		{"Col at width", w, 0, false},
		{"Row at height", 0, h, false},
		{"Col in, row out", w - 1, h, false},
		{"Row in, col out", w, h - 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := n.Get(tt.col, tt.row)
			assert.Equal(t, tt.want, ok)
			ptr, ok := n.GetMut(tt.col, tt.row)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.want, ptr != nil)
		})
	}
}

func TestNetGetMutWritesVisible(t *testing.T) {
	n := New[int](10, 10)

	ptr, ok := n.GetMut(9, 9)
	require.True(t, ok)
	*ptr = 10

	got, ok := n.Get(9, 9)
	require.True(t, ok)
	assert.Equal(t, 10, got)

	*ptr = 1
	got, _ = n.Get(9, 9)
	assert.Equal(t, 1, got)
}

func TestNetSetClipsSilently(t *testing.T) {
	n := New[int](4, 4)

	// None of these may panic or write anything.
	n.Set(9, -1, 2)
	n.Set(9, 2, -1)
	n.Set(9, 4, 2)
	n.Set(9, 2, 4)
	n.SetRow(9, -1)
	n.SetRow(9, 4)
	n.SetCol(9, -1)
	n.SetCol(9, 4)

	all := n.ViewAll()
	for {
		v, _, _, ok := all.Next()
		if !ok {
			break
		}
		assert.Zero(t, v)
	}
}

func TestNetSetBoxClips(t *testing.T) {
	n := New[int](5, 5)
	n.SetBox(7, geom.Cell{Col: -2, Row: 3}, geom.Cell{Col: 1, Row: 9})

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			got, _ := n.Get(col, row)
			if col <= 1 && row >= 3 {
				assert.Equal(t, 7, got, "cell (%d,%d)", col, row)
			} else {
				assert.Zero(t, got, "cell (%d,%d)", col, row)
			}
		}
	}
}

func TestNetResizePreservesOverlap(t *testing.T) {
	n := FromSlice(10, 10, sequential(100))

	n.Resize(5, 5)
	n.Resize(10, 10)

	w, h := n.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)

	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			got, ok := n.Get(col, row)
			require.True(t, ok)
			if col < 5 && row < 5 {
				assert.Equal(t, row*10+col+1, got, "cell (%d,%d) must survive the round trip", col, row)
			} else {
				assert.Zero(t, got, "cell (%d,%d) was dropped and must be default", col, row)
			}
		}
	}
}

func TestFromSliceShortAndLong(t *testing.T) {
	short := FromSlice(10, 3, sequential(24))
	for i := 0; i < 30; i++ {
		got, ok := short.Get(i%10, i/10)
		require.True(t, ok)
		if i < 24 {
			assert.Equal(t, i+1, got)
		} else {
			assert.Zero(t, got, "underfilled remainder must be default")
		}
	}

	long := FromSlice(10, 3, sequential(45))
	w, h := long.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 3, h)
	got, _ := long.Get(9, 2)
	assert.Equal(t, 30, got, "excess input must be ignored")
}

func TestViewBoxRowMajorScenario(t *testing.T) {
	// Columns 3 through 8 of rows 1 through 3 of a row-major 1..100 fill.
	n := FromSlice(10, 10, sequential(100))
	view := n.ViewBox(3, 9, 1, 4)

	var want []int
	for _, base := range []int{14, 24, 34} {
		for i := 0; i < 6; i++ {
			want = append(want, base+i)
		}
	}

	var got []int
	for {
		v, _, _, ok := view.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, want, got)
}

func TestViewBoxClipped(t *testing.T) {
	n := FromSlice(4, 3, sequential(12))
	view := n.ViewBox(-2, 99, -5, 99)

	count := 0
	for {
		v, col, row, ok := view.Next()
		if !ok {
			break
		}
		assert.Equal(t, row*4+col+1, v)
		count++
	}
	assert.Equal(t, 12, count, "clipped view must cover exactly the net")
}

func TestViewCenterClampsNegativeOrigin(t *testing.T) {
	n := FromSlice(10, 10, sequential(100))

	view := n.ViewCenter(3, 3, 4, 2)
	_, col, row, ok := view.Next()
	require.True(t, ok)
	assert.Equal(t, 0, col, "negative left bound must clamp to 0")
	assert.Equal(t, 1, row)

	last := geom.Cell{}
	for {
		_, c, r, ok := view.Next()
		if !ok {
			break
		}
		last = geom.Cell{Col: c, Row: r}
	}
	assert.Equal(t, geom.Cell{Col: 6, Row: 4}, last)
}

func TestViewCenterF32(t *testing.T) {
	n := FromSlice(10, 10, sequential(100))

	view := n.ViewCenterF32(3.0, 3.0, 4, 2)
	_, col, row, ok := view.Next()
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, row)
}
