package collision

import (
	"math"

	"github.com/lguibr/pongmaster/internal/entity"
	"github.com/lguibr/pongmaster/internal/geom"
)

// MaxPaddleAngle is the configured upper bound on the paddle rebound
// angle (spec.md §4.3.3 step 4, ball_paddle_collision.max_angle_degrees).
// The collision engine is constructed with the configured value; this
// is only the package-level default used by callers that don't thread
// one through (tests, primarily).
var MaxPaddleAngle = 60.0 * math.Pi / 180.0

// ResolveBallPaddle implements the angle-of-impact reflection of
// spec.md §4.3.3. Ball flavors other than Primary are a true no-op
// (matching the original's CollisionStrategyByFlavor, which returns a
// no-op callable for non-PRIMARY flavors): no backout, no velocity
// change, nothing.
func ResolveBallPaddle(ball, paddle *entity.Actor, maxAngle float64) {
	if ball.Flavor != entity.FlavorPrimary {
		return
	}
	if !geom.Intersects(ball.Polygon(), paddle.Polygon()) {
		return
	}
	backOut(ball, paddle, false)

	_, hy := closestPoint(ball, paddle)
	half := paddleHalfHeight(paddle)
	midY := paddle.Centroid().Y

	d := math.Abs(hy - midY)
	dNorm := geom.Clamp(safeDiv(d, half), 0, 1)

	theta := maxAngle * dNorm
	speed := ball.Speed()

	vx := speed * math.Cos(theta)
	if ball.Velocity.X >= 0 {
		vx = -vx
	}

	vy := speed * math.Sin(theta)
	if hy < midY {
		vy = -vy
	}

	ball.SetVelocity(geom.Vector{X: vx, Y: vy})
}

func closestPoint(ball, paddle *entity.Actor) (x, y float64) {
	nearest, _ := geom.NearestPointOnPolygon(ball.Centroid(), paddle.Polygon())
	return nearest.X, nearest.Y
}

func paddleHalfHeight(paddle *entity.Actor) float64 {
	bb := paddle.Polygon().BBox()
	return (bb.Max.Y - bb.Min.Y) / 2
}

func safeDiv(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}
