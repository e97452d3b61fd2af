package actorsys

// Started is delivered once an actor's goroutine is running, before any
// user message.
type Started struct{}

// Stopping is delivered when an actor has been asked to shut down. No user
// messages are delivered after Stopping.
type Stopping struct{}

// Stopped is the final message an actor receives, after Stopping has been
// processed and its goroutine is about to exit.
type Stopped struct{}

// messageEnvelope wraps a user message together with the sender, if any.
type messageEnvelope struct {
	sender  *PID
	message interface{}
}
