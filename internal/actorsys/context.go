package actorsys

// Context gives an Actor access to the engine and to the message currently
// being processed.
type Context interface {
	// Engine returns the Engine running this actor.
	Engine() *Engine
	// Self returns this actor's own PID.
	Self() *PID
	// Sender returns the PID of whoever sent the current message, or nil.
	Sender() *PID
	// Message returns the message currently being processed.
	Message() interface{}
}

type context struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
}

func (c *context) Engine() *Engine      { return c.engine }
func (c *context) Self() *PID           { return c.self }
func (c *context) Sender() *PID         { return c.sender }
func (c *context) Message() interface{} { return c.message }
