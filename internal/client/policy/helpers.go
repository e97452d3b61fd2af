package policy

import "github.com/lguibr/pongmaster/internal/protocol"

// centroidY averages an Actor's coords, a cheap stand-in for calling
// back into geom just to find a y-coordinate on the wire
// representation.
func centroidY(a protocol.Actor) float64 {
	if len(a.Coords) == 0 {
		return 0
	}
	var sum float64
	for _, c := range a.Coords {
		sum += float64(c.Y)
	}
	return sum / float64(len(a.Coords))
}

func findActor(state protocol.GameState, t protocol.ActorType) (protocol.Actor, bool) {
	for _, a := range state.Actors {
		if a.ActorType == t {
			return a, true
		}
	}
	return protocol.Actor{}, false
}

func ownPaddleType(side protocol.PaddleSide) protocol.ActorType {
	if side == protocol.SideLeft {
		return protocol.ActorLeftPaddle
	}
	return protocol.ActorRightPaddle
}
