// Package actorsys is a small single-process actor runtime: actors own
// their state exclusively and process messages from a buffered mailbox on
// their own goroutine. It backs the match loop (one actor owns the arena);
// the per-client stream handlers in internal/server are plain goroutines
// that reach that actor by sending it messages.
package actorsys

// Actor processes messages sequentially, delivered one at a time from its
// mailbox. Implementations must not be called concurrently; the runtime
// guarantees a single goroutine ever invokes Receive for a given actor.
type Actor interface {
	Receive(ctx Context)
}

// Producer creates a fresh Actor instance. A Producer is invoked exactly
// once per Spawn, on the actor's own goroutine, before it processes its
// first message.
type Producer func() Actor

// Props configures how an actor is created.
type Props struct {
	producer Producer
}

// NewProps wraps a Producer in Props for use with Engine.Spawn.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("actorsys: producer cannot be nil")
	}
	return &Props{producer: producer}
}

func (p *Props) produce() Actor { return p.producer() }
