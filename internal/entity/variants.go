package entity

import "github.com/lguibr/pongmaster/internal/geom"

// rectShape builds a polygon template (at the origin, so Offset carries
// the actual position) for a w x h rectangle whose top-left corner sits
// at the origin.
func rectShape(w, h float64) geom.Polygon {
	return geom.NewPolygon(
		geom.Vector{X: 0, Y: 0},
		geom.Vector{X: w, Y: 0},
		geom.Vector{X: w, Y: h},
		geom.Vector{X: 0, Y: h},
	)
}

// squareShape builds a polygon template approximating a ball's bounding
// box, centered on the origin with the given radius. The collision
// engine only needs bbox/centroid/edge operations, so a square stands
// in for the circle (consistent with the teacher's closest-point/radius
// distance checks in BallInterceptPaddles/InterceptsIndex).
func squareShape(radius float64) geom.Polygon {
	return geom.NewPolygon(
		geom.Vector{X: -radius, Y: -radius},
		geom.Vector{X: radius, Y: -radius},
		geom.Vector{X: radius, Y: radius},
		geom.Vector{X: -radius, Y: radius},
	)
}

// NewWall builds a stationary wall actor. Walls absorb paddles and
// reflect balls: collision on, rebound off.
func NewWall(name string, topLeft geom.Vector, w, h float64) *Actor {
	return &Actor{
		Name:             name,
		Kind:             KindWall,
		Shape:            rectShape(w, h),
		Offset:           topLeft,
		CollisionEnabled: true,
		ReboundEnabled:   false,
	}
}

// NewNet builds the decorative center net. Collision disabled entirely.
func NewNet(name string, topLeft geom.Vector, w, h float64) *Actor {
	return &Actor{
		Name:   name,
		Kind:   KindNet,
		Shape:  rectShape(w, h),
		Offset: topLeft,
	}
}

// NewBackLine builds a scoring-trigger back line. Collision disabled;
// the match loop tests ball centroid against its x directly.
func NewBackLine(name string, side Side, topLeft geom.Vector, w, h float64) *Actor {
	return &Actor{
		Name:   name,
		Kind:   KindBackLine,
		Side:   side,
		Shape:  rectShape(w, h),
		Offset: topLeft,
	}
}

// NewPaddle builds a paddle actor for the given side. Collision on,
// rebound off: a paddle pushes balls away but is itself stopped dead by
// walls (§4.3.5), never bounced.
func NewPaddle(name string, side Side, topLeft geom.Vector, w, h float64, bound SpeedBound) *Actor {
	return &Actor{
		Name:             name,
		Kind:             KindPaddle,
		Side:             side,
		Shape:            rectShape(w, h),
		Offset:           topLeft,
		SpeedBound:       bound,
		CollisionEnabled: true,
		ReboundEnabled:   false,
	}
}

// NewBall builds a ball actor of the given flavor. Collision and
// rebound both on: balls bounce off everything collidable.
func NewBall(name string, flavor Flavor, center geom.Vector, radius float64, bound SpeedBound) *Actor {
	return &Actor{
		Name:             name,
		Kind:             KindBall,
		Flavor:           flavor,
		Shape:            squareShape(radius),
		Offset:           center,
		SpeedBound:       bound,
		CollisionEnabled: true,
		ReboundEnabled:   true,
	}
}
