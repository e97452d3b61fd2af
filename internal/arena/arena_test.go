package arena

import (
	"testing"

	"github.com/lguibr/pongmaster/internal/entity"
	"github.com/lguibr/pongmaster/internal/geom"
)

func testDims() Dimensions {
	return Dimensions{
		Width: 800, Height: 600,
		WallThickness: 10,
		PaddleOffset:  30,
		PaddleWidth:   10, PaddleHeight: 100,
		BallRadius:           10,
		StartingBallSpeed:    6,
		MaxStartAngleDegrees: 45,
	}
}

func TestNewArenaGeometry(t *testing.T) {
	a := New(testDims(), entity.SpeedBound{Min: 1, Max: 10}, entity.SpeedBound{Min: 1, Max: 10}, 42)

	ballCentroid := a.PrimaryBall.Centroid()
	if !geom.Equal(ballCentroid.X, 400) || !geom.Equal(ballCentroid.Y, 300) {
		t.Errorf("primary ball centroid = %v, want {400 300}", ballCentroid)
	}

	if a.PrimaryBall.Speed() <= 0 {
		t.Error("primary ball should launch with non-zero speed")
	}

	if !geom.Equal(a.LeftBacklineX(), 35) {
		t.Errorf("left backline x = %v, want 35", a.LeftBacklineX())
	}
	if !geom.Equal(a.RightBacklineX(), 765) {
		t.Errorf("right backline x = %v, want 765", a.RightBacklineX())
	}
}

func TestResetIsIdempotentForPaddlePositions(t *testing.T) {
	a := New(testDims(), entity.SpeedBound{Min: 1, Max: 10}, entity.SpeedBound{Min: 1, Max: 10}, 7)

	a.LeftPaddle.Offset = geom.Vector{X: 30, Y: 0}
	a.LeftPaddle.Velocity = geom.Vector{X: 0, Y: 5}

	a.Reset()
	firstOffset := a.LeftPaddle.Offset

	a.LeftPaddle.Velocity = geom.Vector{X: 0, Y: 5}
	a.Reset()
	secondOffset := a.LeftPaddle.Offset

	if firstOffset != secondOffset {
		t.Errorf("reset not idempotent for paddle position: %v vs %v", firstOffset, secondOffset)
	}
	if a.LeftPaddle.Velocity != (geom.Vector{}) {
		t.Errorf("expected paddle velocity zeroed after reset, got %v", a.LeftPaddle.Velocity)
	}
}

func TestNoTwoCollisionActorsOverlapAtStart(t *testing.T) {
	a := New(testDims(), entity.SpeedBound{Min: 1, Max: 10}, entity.SpeedBound{Min: 1, Max: 10}, 1)
	actors := a.Actors()
	for i := 0; i < len(actors); i++ {
		for j := i + 1; j < len(actors); j++ {
			x, y := actors[i], actors[j]
			if !x.CollisionEnabled || !y.CollisionEnabled {
				continue
			}
			if geom.Intersects(x.Polygon(), y.Polygon()) {
				t.Errorf("actors %s and %s overlap at arena start", x.Name, y.Name)
			}
		}
	}
}
