package actorsys

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

const defaultMailboxSize = 256

// process is the running instance of a spawned actor: its state, mailbox,
// and goroutine.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	mailbox chan *messageEnvelope
	props   *Props
	stopCh  chan struct{}
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// send delivers a message to the actor's mailbox, dropping it if the
// mailbox is full or the actor has already begun stopping. System
// messages (Stopping/Stopped) are always allowed through.
func (p *process) send(message interface{}, sender *PID) {
	_, isStopping := message.(Stopping)
	_, isStopped := message.(Stopped)
	if p.stopped.Load() && !isStopping && !isStopped {
		return
	}
	envelope := &messageEnvelope{sender: sender, message: message}
	select {
	case p.mailbox <- envelope:
	default:
		fmt.Printf("actorsys: actor %s mailbox full, dropping message %T\n", p.pid, message)
	}
}

func (p *process) run() {
	var stoppingInvoked bool

	defer func() {
		p.stopped.Store(true)
		defer p.engine.remove(p.pid)
		if r := recover(); r != nil {
			fmt.Printf("actorsys: actor %s panicked during shutdown: %v\n", p.pid, r)
		}
		if p.actor != nil {
			p.invokeReceive(Stopped{}, nil)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("actorsys: actor %s panicked: %v\n%s\n", p.pid, r, debug.Stack())
			if p.stopped.CompareAndSwap(false, true) {
				closeOnce(p.stopCh)
				if p.actor != nil && !stoppingInvoked {
					p.invokeReceive(Stopping{}, nil)
					stoppingInvoked = true
				}
			}
		}
	}()

	p.actor = p.props.produce()
	if p.actor == nil {
		panic(fmt.Sprintf("actorsys: producer for %s returned nil actor", p.pid))
	}
	p.invokeReceive(Started{}, nil)

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) && !stoppingInvoked {
				p.invokeReceive(Stopping{}, nil)
				stoppingInvoked = true
			}
			return

		case envelope := <-p.mailbox:
			if _, isStopping := envelope.message.(Stopping); isStopping {
				if p.stopped.CompareAndSwap(false, true) {
					if !stoppingInvoked {
						p.invokeReceive(envelope.message, envelope.sender)
						stoppingInvoked = true
					}
					closeOnce(p.stopCh)
				}
				continue
			}
			if p.stopped.Load() {
				continue
			}
			p.invokeReceive(envelope.message, envelope.sender)
		}
	}
}

func (p *process) invokeReceive(msg interface{}, sender *PID) {
	ctx := &context{engine: p.engine, self: p.pid, sender: sender, message: msg}
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("actorsys: actor %s panicked in Receive(%T): %v\n%s\n", p.pid, msg, r, debug.Stack())
		}
	}()
	p.actor.Receive(ctx)
}

func closeOnce(ch chan struct{}) {
	select {
	case <-ch:
	default:
		close(ch)
	}
}
