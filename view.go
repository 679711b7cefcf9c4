package tilenet

import (
	"fmt"
	"strings"
)

// View iterates a rectangular region of a Net in row-major order. The
// rectangle is clipped to the net's bounds at construction. A View never
// mutates the net; any number of views may coexist.
type View[T any] struct {
	net                      *Net[T]
	left, right, top, bottom int // half-open: [left,right)×[top,bottom)
	col, row                 int // cursor
}

// ViewBox returns a view over [left,right)×[top,bottom), clipped to the
// net's bounds.
func (n *Net[T]) ViewBox(left, right, top, bottom int) *View[T] {
	left = max(left, 0)
	top = max(top, 0)
	right = min(right, n.width)
	bottom = min(bottom, n.height)
	return &View[T]{
		net:    n,
		left:   left,
		right:  right,
		top:    top,
		bottom: bottom,
		col:    left,
		row:    top,
	}
}

// ViewAll returns a view over the entire net.
func (n *Net[T]) ViewAll() *View[T] {
	return n.ViewBox(0, n.width, 0, n.height)
}

// ViewCenter returns a view spanning spanX columns and spanY rows on
// either side of (cx, cy), clipped to the net. A rectangle that would
// start at a negative coordinate is clamped to start at 0.
func (n *Net[T]) ViewCenter(cx, cy, spanX, spanY int) *View[T] {
	return n.ViewBox(cx-spanX, cx+spanX, cy-spanY, cy+spanY)
}

// ViewCenterF32 is ViewCenter with a continuous-space center; the center
// cell is the one containing the point.
func (n *Net[T]) ViewCenterF32(cx, cy float32, spanX, spanY int) *View[T] {
	return n.ViewCenter(floorInt(cx), floorInt(cy), spanX, spanY)
}

func floorInt(v float32) int {
	i := int(v)
	if float32(i) > v {
		i--
	}
	return i
}

// Next returns the next tile value together with its column and row, or
// ok=false once the rectangle is exhausted.
func (v *View[T]) Next() (value T, col, row int, ok bool) {
	if v.row >= v.bottom || v.left >= v.right {
		var zero T
		return zero, 0, 0, false
	}
	value = *v.net.at(v.col, v.row)
	col, row = v.col, v.row

	v.col++
	if v.col >= v.right {
		v.col = v.left
		v.row++
	}
	return value, col, row, true
}

// Clone returns an independent view with the same rectangle and cursor.
func (v *View[T]) Clone() *View[T] {
	dup := *v
	return &dup
}

// String renders the remaining tiles as an aligned table, one line per
// row. The view's own cursor is left untouched.
func (v *View[T]) String() string {
	widest := 0
	probe := v.Clone()
	for {
		value, _, _, ok := probe.Next()
		if !ok {
			break
		}
		if l := len(fmt.Sprintf("%v", value)); l > widest {
			widest = l
		}
	}

	var b strings.Builder
	walk := v.Clone()
	prevRow := -1
	for {
		value, _, row, ok := walk.Next()
		if !ok {
			break
		}
		if prevRow >= 0 && row != prevRow {
			b.WriteByte('\n')
		}
		prevRow = row
		fmt.Fprintf(&b, "%-*v ", widest, value)
	}
	return b.String()
}

// String renders the whole net as an aligned table.
func (n *Net[T]) String() string {
	return n.ViewAll().String()
}
