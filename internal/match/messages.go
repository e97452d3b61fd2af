package match

import "github.com/lguibr/pongmaster/internal/protocol"

// tick is self-sent by the ticker goroutine to drive one iteration of
// the PLAYING cycle (spec.md §4.6), mirroring the teacher's GameTick
// message sent from runTickerLoop into the actor's own mailbox.
type tick struct{}

// RegisterPlayer asks the match to record id for the requested side.
// Reply receives one of protocol's sentinel errors, or nil on success.
// Registration mutates match state, so it is routed through the actor
// mailbox rather than touched directly by the RPC handler goroutine.
type RegisterPlayer struct {
	ID    protocol.PlayerIdentifier
	Reply chan error
}

// Shutdown asks the match to terminate after completing its current
// tick (spec.md §5 Cancellation).
type Shutdown struct{}

// Disconnect reports that one client's stream has dropped. Either side
// dropping its stream terminates the match (spec.md §5 Cancellation);
// Side is informational only, recorded for logging.
type Disconnect struct {
	Side protocol.PaddleSide
}

// Subscribe asks the match for a new read-only state feed, the same
// queue type real clients stream from. Used by spectators such as the
// ASCII renderer that must never compete with a player's own outbound
// queue (spec.md §9 renderer coupling note).
type Subscribe struct {
	Reply chan *OutboundQueue
}
