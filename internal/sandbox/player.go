package sandbox

import (
	"github.com/tomz197/tilenet"
	"github.com/tomz197/tilenet/collide"
	"github.com/tomz197/tilenet/geom"
	"github.com/tomz197/tilenet/internal/input"
)

// Movement tuning, in tiles and seconds.
const (
	walkSpeed = 14.0
	jumpSpeed = 18.0
	gravity   = 50.0
	maxFall   = 28.0
)

// solve axes: horizontal and vertical displacement are resolved in two
// separate passes per frame so the player slides along walls instead of
// stopping dead on a diagonal hit.
const (
	axisX = iota
	axisY
)

// Player is the controllable box. It implements collide.Collable and
// keeps its can-jump state in the presolve/postsolve hooks of the
// vertical pass, outside its geometry.
type Player struct {
	pos geom.Vector
	vel geom.Vector
	mov geom.Vector // displacement queued for the solve in flight

	pts      []geom.Vector // unit box corners, local space
	axis     int           // which pass the current solve belongs to
	grounded bool
}

// NewPlayer creates a player with its top-left corner at pos.
func NewPlayer(pos geom.Vector) *Player {
	return &Player{
		pos: pos,
		pts: []geom.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	}
}

// Points returns the box corners at the current position.
func (p *Player) Points() *collide.Points {
	return collide.NewPoints(p.pos, p.pts)
}

// Queued returns the displacement of the solve in flight.
func (p *Player) Queued() geom.Vector {
	return p.mov
}

// Resolve accepts when every swept tile is empty; otherwise it shrinks
// the queued displacement and retries via the engine.
func (p *Player) Resolve(set *tilenet.Set[int]) bool {
	switch {
	case set.All(func(v *int) bool { return *v == TileEmpty }):
		p.pos = p.pos.Add(p.mov)
		p.mov = geom.Vector{}
		return true
	case p.mov.Norm2Sq() > 1e-6:
		p.mov = p.mov.Scale(0.9)
		return false
	default:
		// Wedged against a tile; accept staying put.
		p.mov = geom.Vector{}
		return true
	}
}

// Presolve resets the grounded flag before the vertical pass measures it
// afresh.
func (p *Player) Presolve() {
	if p.axis == axisY {
		p.grounded = false
	}
}

// Postsolve turns collision outcomes into velocity changes: a blocked
// descent means the player landed, a blocked ascent means a head bump,
// and a blocked walk stops horizontal momentum.
func (p *Player) Postsolve(collidedOnce, resolved bool) {
	if !collidedOnce {
		return
	}
	switch p.axis {
	case axisX:
		p.vel.X = 0
	case axisY:
		if p.vel.Y > 0 {
			p.grounded = true
		}
		p.vel.Y = 0
	}
}

// Grounded reports whether the last vertical pass ended on solid ground.
func (p *Player) Grounded() bool {
	return p.grounded
}

// Pos returns the player's top-left corner in world space.
func (p *Player) Pos() geom.Vector {
	return p.pos
}

// Cell returns the tile containing the player's center.
func (p *Player) Cell() geom.Cell {
	return geom.CellAt(p.pos.Add(geom.Vector{X: 0.5, Y: 0.5}))
}

// Update advances the player by one frame: input to velocity, then one
// collision solve per axis.
func (p *Player) Update(dt float32, inp input.Input, net *tilenet.Net[int]) {
	p.vel.X = 0
	if inp.Left {
		p.vel.X = -walkSpeed
	}
	if inp.Right {
		p.vel.X = walkSpeed
	}
	if inp.Jump && p.grounded {
		p.vel.Y = -jumpSpeed
	}

	p.vel.Y += gravity * dt
	if p.vel.Y > maxFall {
		p.vel.Y = maxFall
	}

	p.axis = axisX
	p.mov = geom.Vector{X: p.vel.X * dt}
	collide.Solve[int](p, net)

	p.axis = axisY
	p.mov = geom.Vector{Y: p.vel.Y * dt}
	collide.Solve[int](p, net)
}
