package protocol

import (
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/net/websocket"
)

// envelope tags every frame exchanged over the single websocket
// connection a client opens, so one socket can carry registration,
// the outbound state stream and the inbound action stream (spec.md §6's
// three RPCs collapsed onto one transport, grounded on the teacher's
// single `/subscribe` socket per client).
type envelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

const (
	kindRegister     = "register"
	kindRegisterAck  = "register_ack"
	kindGameState    = "game_state"
	kindPaddleAction = "paddle_action"
)

// WebsocketServer tracks active client connections and frames GameState
// / PaddleAction messages as JSON over golang.org/x/net/websocket,
// grounded on the teacher's server/websocket.go connection registry.
type WebsocketServer struct {
	mu          sync.RWMutex
	connections map[*websocket.Conn]PlayerIdentifier
}

// NewWebsocketServer builds an empty connection registry.
func NewWebsocketServer() *WebsocketServer {
	return &WebsocketServer{connections: make(map[*websocket.Conn]PlayerIdentifier)}
}

// Register associates a connection with the player identity it sent
// during its register handshake.
func (s *WebsocketServer) Register(ws *websocket.Conn, id PlayerIdentifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections[ws] = id
}

// Close closes ws and removes it from the registry. A connection that
// was never registered is left untouched.
func (s *WebsocketServer) Close(ws *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.connections[ws]; ok {
		ws.Close()
		delete(s.connections, ws)
	}
}

// ReadRegistration blocks for the client's first frame and decodes it
// as a PlayerIdentifier.
func ReadRegistration(ws *websocket.Conn) (PlayerIdentifier, error) {
	var env envelope
	if err := websocket.JSON.Receive(ws, &env); err != nil {
		return PlayerIdentifier{}, fmt.Errorf("protocol: reading registration: %w", err)
	}
	if env.Kind != kindRegister {
		return PlayerIdentifier{}, fmt.Errorf("protocol: expected %q frame, got %q", kindRegister, env.Kind)
	}
	var id PlayerIdentifier
	if err := json.Unmarshal(env.Payload, &id); err != nil {
		return PlayerIdentifier{}, fmt.Errorf("protocol: decoding PlayerIdentifier: %w", err)
	}
	return id, nil
}

// SendRegistrationAck replies to a registration attempt; err is encoded
// as its message string, empty on success.
func SendRegistrationAck(ws *websocket.Conn, err error) error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	payload, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: msg})
	return websocket.JSON.Send(ws, envelope{Kind: kindRegisterAck, Payload: payload})
}

// SendGameState frames and writes one GameState snapshot. Per spec.md
// §5, the caller must never block the game loop on a slow consumer;
// SendGameState itself is a single non-blocking-by-convention write and
// the caller is responsible for running it off a bounded, stale-drop
// queue (see match.OutboundQueue).
func SendGameState(ws *websocket.Conn, state GameState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("protocol: encoding GameState: %w", err)
	}
	return websocket.JSON.Send(ws, envelope{Kind: kindGameState, Payload: payload})
}

// ReadPaddleAction blocks for the next inbound frame and decodes it as
// a PaddleAction. Malformed frames decode to a STATIONARY directive
// rather than erroring, per spec.md §7's protocol-error recovery rule.
func ReadPaddleAction(ws *websocket.Conn) (PaddleAction, error) {
	var env envelope
	if err := websocket.JSON.Receive(ws, &env); err != nil {
		return PaddleAction{}, err
	}
	if env.Kind != kindPaddleAction {
		return PaddleAction{PaddleDirective: DirectiveStationary}, nil
	}
	var action PaddleAction
	if err := json.Unmarshal(env.Payload, &action); err != nil {
		return PaddleAction{PaddleDirective: DirectiveStationary}, nil
	}
	return action, nil
}

// SendPaddleAction frames and writes one PaddleAction (client side).
func SendPaddleAction(ws *websocket.Conn, action PaddleAction) error {
	payload, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("protocol: encoding PaddleAction: %w", err)
	}
	return websocket.JSON.Send(ws, envelope{Kind: kindPaddleAction, Payload: payload})
}

// SendRegistration frames and writes the client's registration request.
func SendRegistration(ws *websocket.Conn, id PlayerIdentifier) error {
	payload, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("protocol: encoding PlayerIdentifier: %w", err)
	}
	return websocket.JSON.Send(ws, envelope{Kind: kindRegister, Payload: payload})
}

// ReadRegistrationAck blocks for the server's registration reply.
func ReadRegistrationAck(ws *websocket.Conn) error {
	var env envelope
	if err := websocket.JSON.Receive(ws, &env); err != nil {
		return fmt.Errorf("protocol: reading registration ack: %w", err)
	}
	var ack struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(env.Payload, &ack); err != nil {
		return fmt.Errorf("protocol: decoding registration ack: %w", err)
	}
	if ack.Error != "" {
		return fmt.Errorf("protocol: registration rejected: %s", ack.Error)
	}
	return nil
}

// ReadGameState blocks for the next outbound state frame (client side).
func ReadGameState(ws *websocket.Conn) (GameState, error) {
	var env envelope
	if err := websocket.JSON.Receive(ws, &env); err != nil {
		return GameState{}, err
	}
	var state GameState
	if err := json.Unmarshal(env.Payload, &state); err != nil {
		return GameState{}, fmt.Errorf("protocol: decoding GameState: %w", err)
	}
	return state, nil
}
