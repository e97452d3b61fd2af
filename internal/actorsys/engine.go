package actorsys

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Engine owns the lifecycle of every actor spawned through it: assigning
// PIDs, dispatching messages, and tearing actors down on Shutdown.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex
	stopping   atomic.Bool
}

// NewEngine creates an empty actor engine.
func NewEngine() *Engine {
	return &Engine{actors: make(map[string]*process)}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{id: fmt.Sprintf("actor-%d", id)}
}

// Spawn starts a new actor from Props and returns its PID, or nil if the
// engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		return nil
	}
	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.id] = proc
	e.mu.Unlock()

	go proc.run()
	return pid
}

// Send delivers message to pid's mailbox. sender may be nil for messages
// originating outside the actor system (e.g. a network handler).
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil {
		return
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.id]
	e.mu.RUnlock()
	if ok {
		proc.send(message, sender)
	}
}

// Stop asks the actor identified by pid to shut down: it is sent Stopping
// and will receive no further user messages.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.id]
	e.mu.RUnlock()
	if ok {
		proc.send(Stopping{}, nil)
	}
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.id)
	e.mu.Unlock()
}

// Shutdown stops every actor and blocks until they have all exited, or
// until timeout elapses.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	pids := make([]*PID, 0, len(e.actors))
	for _, proc := range e.actors {
		pids = append(pids, proc.pid)
	}
	e.mu.RUnlock()

	for _, pid := range pids {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.actors)
		e.mu.RUnlock()
		if remaining == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	e.mu.Lock()
	e.actors = make(map[string]*process)
	e.mu.Unlock()
}
