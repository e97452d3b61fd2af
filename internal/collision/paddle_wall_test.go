package collision

import (
	"testing"

	"github.com/lguibr/pongmaster/internal/entity"
	"github.com/lguibr/pongmaster/internal/geom"
)

func TestResolvePaddleWallStopsPaddle(t *testing.T) {
	wall := entity.NewWall("top-wall", geom.Vector{X: 0, Y: 0}, 800, 10)
	paddle := entity.NewPaddle("left-paddle", entity.SideLeft, geom.Vector{X: 25, Y: 8}, 10, 100, entity.SpeedBound{Min: 1, Max: 10})
	paddle.SetVelocity(geom.Vector{X: 0, Y: -5})

	ResolvePaddleWall(paddle, wall)

	if paddle.Velocity != (geom.Vector{}) {
		t.Errorf("expected paddle velocity zeroed, got %v", paddle.Velocity)
	}
	if geom.Intersects(paddle.Polygon(), wall.Polygon()) {
		t.Error("paddle still overlaps wall after resolution")
	}
}
