package entity

import (
	"testing"

	"github.com/lguibr/pongmaster/internal/geom"
)

func TestSetVelocityThrottles(t *testing.T) {
	bound := SpeedBound{Min: 2, Max: 10}
	testCases := []struct {
		name     string
		in       geom.Vector
		wantLen  float64
		wantZero bool
	}{
		{"below min scales up", geom.Vector{X: 1, Y: 0}, 2, false},
		{"above max scales down", geom.Vector{X: 20, Y: 0}, 10, false},
		{"within range unchanged", geom.Vector{X: 5, Y: 0}, 5, false},
		{"zero stays zero", geom.Vector{X: 0, Y: 0}, 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := &Actor{Kind: KindBall, SpeedBound: bound}
			a.SetVelocity(tc.in)
			if tc.wantZero {
				if a.Velocity != (geom.Vector{}) {
					t.Errorf("expected zero velocity, got %v", a.Velocity)
				}
				return
			}
			if !geom.Equal(a.Speed(), tc.wantLen) {
				t.Errorf("Speed() = %v, want %v", a.Speed(), tc.wantLen)
			}
		})
	}
}

func TestStationaryActorsRejectMutation(t *testing.T) {
	wall := NewWall("top-wall", geom.Vector{}, 100, 10)
	wall.SetVelocity(geom.Vector{X: 5, Y: 5})
	if wall.Velocity != (geom.Vector{}) {
		t.Errorf("wall velocity should stay zero, got %v", wall.Velocity)
	}

	before := wall.Offset
	wall.MoveForward(1)
	wall.MoveBackward(1)
	if wall.Offset != before {
		t.Errorf("wall offset should be unchanged, got %v want %v", wall.Offset, before)
	}
}

func TestMoveForwardAndBackward(t *testing.T) {
	paddle := NewPaddle("left-paddle", SideLeft, geom.Vector{X: 10, Y: 10}, 10, 100, SpeedBound{Min: 1, Max: 10})
	paddle.SetVelocity(geom.Vector{X: 0, Y: 5})

	paddle.MoveForward(1)
	if !geom.Equal(paddle.Offset.Y, 15) {
		t.Errorf("after MoveForward, offset.Y = %v, want 15", paddle.Offset.Y)
	}

	paddle.MoveBackward(1)
	if !geom.Equal(paddle.Offset.Y, 10) {
		t.Errorf("after MoveBackward, offset.Y = %v, want 10", paddle.Offset.Y)
	}
}

func TestCentroidTracksOffset(t *testing.T) {
	ball := NewBall("primary-ball", FlavorPrimary, geom.Vector{X: 400, Y: 300}, 10, SpeedBound{Min: 1, Max: 10})
	c := ball.Centroid()
	if !geom.Equal(c.X, 400) || !geom.Equal(c.Y, 300) {
		t.Errorf("Centroid() = %v, want {400 300}", c)
	}
}
