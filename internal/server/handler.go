// Package server binds a running match.Match to incoming websocket
// connections, grounded on the teacher's server package
// (server/websocket.go's connection registry, server/handlers.go's
// HandleSubscribe) generalized from the teacher's per-room ConnectionHandler
// actor to this module's single always-on match.
package server

import (
	"sync"
	"time"

	"github.com/lguibr/pongmaster/internal/logging"
	"github.com/lguibr/pongmaster/internal/match"
	"github.com/lguibr/pongmaster/internal/protocol"
	"golang.org/x/net/websocket"
)

// statePollInterval bounds how often a connection handler checks its
// outbound queue for a new snapshot; finer than the match's own 60Hz
// tick so no state is held back waiting on the poll.
const statePollInterval = 5 * time.Millisecond

// Server owns the websocket connection registry for one match.
type Server struct {
	match *match.Match
	ws    *protocol.WebsocketServer
	log   *logging.Logger
}

// New binds a Server to m. One Server serves exactly the one match it
// is built with; this module runs a single match per process (spec.md
// §1 Non-goals: no room manager, no >2 players).
func New(m *match.Match) *Server {
	return &Server{match: m, ws: protocol.NewWebsocketServer(), log: logging.New("server")}
}

// HandleSubscribe is the golang.org/x/net/websocket.Handler entry point:
// it reads the client's registration frame, forwards it to the match
// actor, and on acceptance pumps GameState out and PaddleAction in until
// the socket closes or the match reports a winner.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		defer s.ws.Close(ws)

		id, err := protocol.ReadRegistration(ws)
		if err != nil {
			s.log.Printf("registration read failed: %v", err)
			return
		}

		reply := make(chan error, 1)
		s.match.Engine.Send(s.match.PID, match.RegisterPlayer{ID: id, Reply: reply}, nil)
		regErr := <-reply

		if err := protocol.SendRegistrationAck(ws, regErr); err != nil {
			s.log.Printf("registration ack failed for %s: %v", id.PlayerName, err)
			return
		}
		if regErr != nil {
			s.log.Printf("registration rejected for %s: %v", id.PlayerName, regErr)
			return
		}
		s.ws.Register(ws, id)
		s.log.Printf("player %s registered on side %v", id.PlayerName, id.PaddleType)

		outbound, inbound := s.queuesFor(id.PaddleType)
		if outbound == nil || inbound == nil {
			return
		}

		var disconnectOnce sync.Once
		notifyDisconnect := func() {
			disconnectOnce.Do(func() {
				s.match.Engine.Send(s.match.PID, match.Disconnect{Side: id.PaddleType}, nil)
			})
		}

		done := make(chan struct{})
		watchDone := make(chan struct{})
		go func() {
			select {
			case <-s.match.Done:
				s.ws.Close(ws)
			case <-watchDone:
			}
		}()

		go s.pumpOutbound(ws, outbound, done, notifyDisconnect)
		s.pumpInbound(ws, inbound, notifyDisconnect)
		<-done
		close(watchDone)
	}
}

func (s *Server) queuesFor(side protocol.PaddleSide) (*match.OutboundQueue, *match.InboundQueue) {
	switch side {
	case protocol.SideLeft:
		return s.match.LeftOutbound, s.match.LeftInbound
	case protocol.SideRight:
		return s.match.RightOutbound, s.match.RightInbound
	default:
		return nil, nil
	}
}

// pumpOutbound drains queue into ws until the socket errors (reported
// to the match as a Disconnect, spec.md §5 Cancellation), a terminal
// GameState (winner set) is sent, or the match itself terminates.
func (s *Server) pumpOutbound(ws *websocket.Conn, queue *match.OutboundQueue, done chan struct{}, notifyDisconnect func()) {
	defer close(done)
	ticker := time.NewTicker(statePollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.match.Done:
			return
		case <-ticker.C:
			raw, ok := queue.Pop()
			if !ok {
				continue
			}
			state, ok := raw.(protocol.GameState)
			if !ok {
				continue
			}
			if err := protocol.SendGameState(ws, state); err != nil {
				notifyDisconnect()
				return
			}
			if state.WinningPlayer != nil {
				return
			}
		}
	}
}

// pumpInbound reads PaddleAction frames until the socket closes,
// pushing each onto queue for the match loop to drain on its next tick.
// A read error means the client dropped its stream; that is reported to
// the match as a Disconnect (spec.md §5 Cancellation).
func (s *Server) pumpInbound(ws *websocket.Conn, queue *match.InboundQueue, notifyDisconnect func()) {
	for {
		action, err := protocol.ReadPaddleAction(ws)
		if err != nil {
			notifyDisconnect()
			return
		}
		queue.Push(action)
	}
}
