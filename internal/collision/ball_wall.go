package collision

import (
	"math"

	"github.com/lguibr/pongmaster/internal/entity"
	"github.com/lguibr/pongmaster/internal/geom"
)

// ResolveBallWall implements the polygon-edge reflection of spec.md
// §4.3.4. Only applies to barriers with collision enabled and rebound
// disabled (walls); nets and back lines are skipped by the dispatch
// table before this is ever called.
func ResolveBallWall(ball, wall *entity.Actor) {
	if !geom.Intersects(ball.Polygon(), wall.Polygon()) {
		return
	}
	backOut(ball, wall, false)

	_, edge := geom.NearestPointOnPolygon(ball.Centroid(), wall.Polygon())
	d := edge.Vector()
	if d.LenSq() <= 0 {
		return
	}

	// Euclidean basis flips y relative to canvas coordinates.
	ex, ey := d.X, -d.Y
	phi := math.Atan2(ey, ex)
	if phi > math.Pi/2 {
		phi -= math.Pi
	} else if phi < -math.Pi/2 {
		phi += math.Pi
	}
	normal := geom.Vector{X: -math.Sin(phi), Y: math.Cos(phi)}

	vx, vy := ball.Velocity.X, -ball.Velocity.Y
	vEuclid := geom.Vector{X: vx, Y: vy}

	reflected := vEuclid.Sub(normal.Scale(2 * vEuclid.Dot(normal)))
	ball.SetVelocity(geom.Vector{X: reflected.X, Y: -reflected.Y})
}
