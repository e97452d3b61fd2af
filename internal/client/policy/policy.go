// Package policy holds the pluggable paddle strategies a client
// controller can bind to, one file per strategy per spec.md §4.8 and
// the original's paddles/ layout (original_source/_INDEX.md).
package policy

import (
	"fmt"

	"github.com/lguibr/pongmaster/internal/protocol"
)

// Policy maps a GameState snapshot to the next directive a client
// should submit.
type Policy interface {
	// Name identifies the strategy, sent as PlayerIdentifier's
	// paddle_strategy_name.
	Name() string
	// Decide returns the directive to submit for the given state, from
	// the perspective of the given side.
	Decide(state protocol.GameState, side protocol.PaddleSide) protocol.PaddleDirective
}

// Select builds the named strategy, seeding the ones that tie-break
// randomly. Shared by the left_player and right_player binaries so
// the catalogue of valid names lives in one place.
func Select(name string, seed int64) (Policy, error) {
	switch name {
	case "stationary":
		return Stationary{}, nil
	case "always_up":
		return AlwaysUp{}, nil
	case "always_down":
		return AlwaysDown{}, nil
	case "follow_the_ball":
		return NewFollowTheBall(seed), nil
	case "enhanced_follow_the_ball":
		return NewEnhancedFollowTheBall(seed), nil
	default:
		return nil, fmt.Errorf("policy: unknown paddle strategy %q", name)
	}
}
