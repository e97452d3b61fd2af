package policy

import (
	"math/rand"

	"github.com/lguibr/pongmaster/internal/protocol"
)

// EnhancedFollowTheBall tracks the ball while it is incoming (moving
// toward this paddle's side) and recenters toward the arena's vertical
// middle while the ball moves away, per spec.md §4.8.
type EnhancedFollowTheBall struct {
	rng *rand.Rand
}

// NewEnhancedFollowTheBall builds a policy seeded from seed.
func NewEnhancedFollowTheBall(seed int64) *EnhancedFollowTheBall {
	return &EnhancedFollowTheBall{rng: rand.New(rand.NewSource(seed))}
}

func (p *EnhancedFollowTheBall) Name() string { return "enhanced_follow_the_ball" }

func (p *EnhancedFollowTheBall) Decide(state protocol.GameState, side protocol.PaddleSide) protocol.PaddleDirective {
	ball, ok := findActor(state, protocol.ActorPrimaryBall)
	if !ok {
		return protocol.DirectiveStationary
	}
	paddle, ok := findActor(state, ownPaddleType(side))
	if !ok {
		return protocol.DirectiveStationary
	}

	paddleY := centroidY(paddle)
	incoming := (side == protocol.SideLeft && ball.Velocity.X < 0) ||
		(side == protocol.SideRight && ball.Velocity.X > 0)

	var targetY float64
	if incoming {
		targetY = centroidY(ball)
	} else {
		targetY = arenaMidY(state)
	}

	switch {
	case targetY < paddleY:
		return protocol.DirectiveUp
	case targetY > paddleY:
		return protocol.DirectiveDown
	default:
		if p.rng.Intn(2) == 0 {
			return protocol.DirectiveUp
		}
		return protocol.DirectiveDown
	}
}

// arenaMidY estimates the arena's vertical center from the wall
// actors' coordinates, so the policy needs no config of its own.
func arenaMidY(state protocol.GameState) float64 {
	wall, ok := findActor(state, protocol.ActorWall)
	if !ok || len(wall.Coords) == 0 {
		return 0
	}
	var minY, maxY float64 = 1 << 30, -(1 << 30)
	for _, a := range state.Actors {
		if a.ActorType != protocol.ActorWall {
			continue
		}
		for _, c := range a.Coords {
			y := float64(c.Y)
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return (minY + maxY) / 2
}
