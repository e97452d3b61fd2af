// Package collision implements the four pair resolvers (ball-ball,
// ball-paddle, ball-wall, paddle-wall) and the broad-phase/sub-tick
// engine that drives them, per spec.md §4.3-§4.4.
package collision

import (
	"github.com/lguibr/pongmaster/internal/entity"
	"github.com/lguibr/pongmaster/internal/geom"
)

// maxBackoutIterations bounds the overlap-removal loop so two
// stationary-after-resolution actors can never spin forever (spec.md §9,
// §7: invariant-violation fallback).
const maxBackoutIterations = 1000

// backOut translates a away from b in one-pixel increments along the
// negative of a's velocity until the shapes no longer intersect, or the
// iteration cap is hit (in which case a is snapped back to its pre-call
// position). forward reverses the direction, used for paddle/wall when
// the paddle's commanded velocity does not point away from the wall.
func backOut(a *entity.Actor, b *entity.Actor, forward bool) {
	speed := a.Speed()
	if speed <= 0 {
		return
	}
	start := a.Offset
	step := 1 / speed

	for i := 0; i < maxBackoutIterations; i++ {
		if !geom.Intersects(a.Polygon(), b.Polygon()) {
			return
		}
		if forward {
			a.MoveForward(step)
		} else {
			a.MoveBackward(step)
		}
	}
	a.Offset = start
}

// backOutMutual backs both reboundable actors away from each other,
// used by the ball-ball resolver where either side may be moving.
func backOutMutual(a, b *entity.Actor) {
	if a.Speed() > 0 {
		backOut(a, b, false)
	}
	if b.Speed() > 0 {
		backOut(b, a, false)
	}
}
