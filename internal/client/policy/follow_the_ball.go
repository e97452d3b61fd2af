package policy

import (
	"math/rand"

	"github.com/lguibr/pongmaster/internal/protocol"
)

// FollowTheBall chases the ball's y-coordinate, breaking ties randomly
// so two aligned actors don't livelock against each other forever
// (spec.md §4.8).
type FollowTheBall struct {
	rng *rand.Rand
}

// NewFollowTheBall builds a policy seeded from seed, so tie-break
// behavior is reproducible in tests.
func NewFollowTheBall(seed int64) *FollowTheBall {
	return &FollowTheBall{rng: rand.New(rand.NewSource(seed))}
}

func (p *FollowTheBall) Name() string { return "follow_the_ball" }

func (p *FollowTheBall) Decide(state protocol.GameState, side protocol.PaddleSide) protocol.PaddleDirective {
	ball, ok := findActor(state, protocol.ActorPrimaryBall)
	if !ok {
		return protocol.DirectiveStationary
	}
	paddle, ok := findActor(state, ownPaddleType(side))
	if !ok {
		return protocol.DirectiveStationary
	}

	ballY := centroidY(ball)
	paddleY := centroidY(paddle)

	switch {
	case ballY < paddleY:
		return protocol.DirectiveUp
	case ballY > paddleY:
		return protocol.DirectiveDown
	default:
		if p.rng.Intn(2) == 0 {
			return protocol.DirectiveUp
		}
		return protocol.DirectiveDown
	}
}
