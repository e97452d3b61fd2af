package policy

import "github.com/lguibr/pongmaster/internal/protocol"

// Stationary never moves the paddle.
type Stationary struct{}

func (Stationary) Name() string { return "stationary" }

func (Stationary) Decide(protocol.GameState, protocol.PaddleSide) protocol.PaddleDirective {
	return protocol.DirectiveStationary
}
