package sandbox

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/tilenet/geom"
	"github.com/tomz197/tilenet/internal/draw"
	"github.com/tomz197/tilenet/internal/input"
)

const targetFPS = 30
const targetFrameTime = time.Second / targetFPS

var spawn = geom.Vector{X: 3, Y: 3}

// Options configures a sandbox session.
type Options struct {
	// TermSizeFunc reports the terminal size for centering the world.
	// Nil falls back to probing os.Stdout.
	TermSizeFunc draw.TermSizeFunc
}

// Run plays the sandbox until the player quits or the writer fails
// (e.g. the SSH session went away). The reader must deliver raw,
// unbuffered key bytes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	world := BuildWorld()
	player := NewPlayer(spawn)
	stream := input.StartStream(r)
	cw := draw.NewChunkWriter(w, 0, 0)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	dt := float32(targetFrameTime.Seconds())

	for {
		frameStart := time.Now()

		inp := input.ReadInput(stream)
		if inp.Quit {
			break
		}
		if inp.Reset {
			player = NewPlayer(spawn)
			draw.ClearScreen(w)
		}

		player.Update(dt, inp, world)

		// Center the world if the terminal is larger than it.
		if termW, termH, err := sizeFunc(); err == nil {
			offCol := max((termW-WorldWidth)/2, 0)
			offRow := max((termH-WorldHeight-2)/2, 0)
			cw.SetOffset(offCol, offRow)
		}

		draw.Net(cw, world, draw.DefaultGlyphs)
		draw.Sprite(cw, player.Cell().Col, player.Cell().Row, '@')
		draw.Status(cw, world, statusLine(player))
		if err := cw.Flush(); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

func statusLine(p *Player) string {
	state := "airborne"
	if p.Grounded() {
		state = "grounded"
	}
	return fmt.Sprintf("a/d move  w jump  r reset  q quit   pos=(%.1f,%.1f) %s",
		p.Pos().X, p.Pos().Y, state)
}
