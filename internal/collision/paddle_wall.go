package collision

import (
	"github.com/lguibr/pongmaster/internal/entity"
	"github.com/lguibr/pongmaster/internal/geom"
)

// ResolvePaddleWall implements spec.md §4.3.5: back the paddle out (per
// the directional backout rule), then zero its velocity. A fresh
// directive is required to move it again.
func ResolvePaddleWall(paddle, wall *entity.Actor) {
	if !geom.Intersects(paddle.Polygon(), wall.Polygon()) {
		return
	}

	wallNormalOut := pointsAway(paddle, wall)
	backOut(paddle, wall, !wallNormalOut)

	paddle.Velocity = geom.Vector{}
}

// pointsAway reports whether the paddle's velocity already points away
// from the wall it overlaps, using the wall centroid -> paddle centroid
// direction as a stand-in for the wall's outward normal. When it does
// not, §4.3.1 calls for backing out forward instead.
func pointsAway(paddle, wall *entity.Actor) bool {
	away := paddle.Centroid().Sub(wall.Centroid())
	if away.LenSq() <= 0 {
		return true
	}
	return paddle.Velocity.Dot(away) >= 0
}
