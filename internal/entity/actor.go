// Package entity holds the arena's occupants: walls, the net, back
// lines, paddles and balls, all sharing the same Actor shape+velocity
// model (spec.md §3, §4.2).
package entity

import "github.com/lguibr/pongmaster/internal/geom"

// Kind tags an Actor for collision dispatch and wire encoding.
type Kind int

const (
	KindWall Kind = iota
	KindNet
	KindBackLine
	KindPaddle
	KindBall
)

// Side identifies which half of the arena a paddle or backline belongs
// to.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Flavor distinguishes the scoring ball from reserved power-up balls.
type Flavor int

const (
	FlavorPrimary Flavor = iota
	FlavorGrowPaddle
	FlavorShrinkPaddle
)

// SpeedBound is the per-actor (min, max) speed cap in pixels/tick.
type SpeedBound struct {
	Min, Max float64
}

// Actor is any entity occupying the arena. Shape is a template at the
// origin; Offset is the mutable translation applied to it, so
// collision code never mutates polygon vertices directly (spec.md §9's
// shape-template/transform split).
type Actor struct {
	Name             string
	Kind             Kind
	Side             Side
	Flavor           Flavor
	Shape            geom.Polygon
	Offset           geom.Vector
	Velocity         geom.Vector
	SpeedBound       SpeedBound
	CollisionEnabled bool
	ReboundEnabled   bool
}

// Polygon returns the actor's current shape, transform applied.
func (a *Actor) Polygon() geom.Polygon {
	return a.Shape.Translate(a.Offset)
}

// Centroid returns the actor's current centroid.
func (a *Actor) Centroid() geom.Vector {
	return a.Shape.Centroid().Add(a.Offset)
}

// Speed returns the actor's current speed, ‖velocity‖.
func (a *Actor) Speed() float64 {
	return a.Velocity.Len()
}

// Stationary reports whether the actor rejects velocity writes and
// translation: walls, the net and back lines never move.
func (a *Actor) Stationary() bool {
	return a.Kind == KindWall || a.Kind == KindNet || a.Kind == KindBackLine
}

// MoveForward translates a by r*velocity (r defaults to 1 at the call
// site). Stationary actors no-op.
func (a *Actor) MoveForward(r float64) {
	if a.Stationary() {
		return
	}
	a.Offset = a.Offset.Add(a.Velocity.Scale(r))
}

// MoveBackward translates a by -r*velocity. Stationary actors no-op.
func (a *Actor) MoveBackward(r float64) {
	if a.Stationary() {
		return
	}
	a.Offset = a.Offset.Sub(a.Velocity.Scale(r))
}

// SetVelocity assigns v to the actor's velocity, throttled to the
// actor's SpeedBound (spec.md §3 invariant): below min scales up, above
// max scales down, zero stays zero. Stationary actors no-op.
func (a *Actor) SetVelocity(v geom.Vector) {
	if a.Stationary() {
		return
	}
	a.Velocity = throttle(v, a.SpeedBound)
}

// throttle rescales v's magnitude into [min, max], leaving the zero
// vector untouched.
func throttle(v geom.Vector, bound SpeedBound) geom.Vector {
	speed := v.Len()
	if speed <= 0 {
		return geom.Vector{}
	}
	target := speed
	if speed < bound.Min {
		target = bound.Min
	} else if speed > bound.Max {
		target = bound.Max
	}
	if target == speed {
		return v
	}
	return v.Scale(target / speed)
}
