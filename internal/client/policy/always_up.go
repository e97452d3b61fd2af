package policy

import "github.com/lguibr/pongmaster/internal/protocol"

// AlwaysUp drives the paddle up on every tick.
type AlwaysUp struct{}

func (AlwaysUp) Name() string { return "always_up" }

func (AlwaysUp) Decide(protocol.GameState, protocol.PaddleSide) protocol.PaddleDirective {
	return protocol.DirectiveUp
}
