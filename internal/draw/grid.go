package draw

import (
	"strings"

	"github.com/tomz197/tilenet"
)

// Glyphs maps tile values to the rune drawn for them.
type Glyphs func(tile int) rune

// DefaultGlyphs renders empty tiles as space and anything solid as a
// shaded block.
func DefaultGlyphs(tile int) rune {
	switch tile {
	case 0:
		return ' '
	case 1:
		return '█'
	case 2:
		return '▓'
	default:
		return '#'
	}
}

// Net draws the world grid into cw, one rune per tile, top-left at frame
// position (1, 1).
func Net(cw *ChunkWriter, net *tilenet.Net[int], glyphs Glyphs) {
	view := net.ViewAll()
	lastRow := -1
	for {
		tile, col, row, ok := view.Next()
		if !ok {
			return
		}
		if row != lastRow {
			cw.MoveCursor(col+1, row+1)
			lastRow = row
		}
		cw.WriteRune(glyphs(tile))
	}
}

// Sprite draws a single glyph at a tile coordinate. Coordinates outside
// the frame are the caller's problem; ANSI clamps them to the screen
// edge, which is good enough for a demo.
func Sprite(cw *ChunkWriter, col, row int, glyph rune) {
	cw.MoveCursor(col+1, row+1)
	cw.WriteRune(glyph)
}

// Status writes a status line directly below the grid.
func Status(cw *ChunkWriter, net *tilenet.Net[int], text string) {
	width, height := net.Size()
	if len(text) > width {
		text = text[:width]
	}
	cw.WriteAt(1, height+2, text+strings.Repeat(" ", width-len(text)))
}
