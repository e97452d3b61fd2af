package policy

import "github.com/lguibr/pongmaster/internal/protocol"

// AlwaysDown drives the paddle down on every tick.
type AlwaysDown struct{}

func (AlwaysDown) Name() string { return "always_down" }

func (AlwaysDown) Decide(protocol.GameState, protocol.PaddleSide) protocol.PaddleDirective {
	return protocol.DirectiveDown
}
