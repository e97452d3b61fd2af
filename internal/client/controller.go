// Package client implements the controller side of spec.md §4.8: open
// a connection, register, then pump GameState -> policy -> PaddleAction
// until the stream closes.
package client

import (
	"fmt"

	"github.com/lguibr/pongmaster/internal/client/policy"
	"github.com/lguibr/pongmaster/internal/logging"
	"github.com/lguibr/pongmaster/internal/protocol"
	"golang.org/x/net/websocket"
)

// Controller drives one client connection end to end.
type Controller struct {
	ID     protocol.PlayerIdentifier
	Policy policy.Policy
	log    *logging.Logger
}

// New builds a controller for the given identity and strategy.
func New(id protocol.PlayerIdentifier, p policy.Policy) *Controller {
	id.PaddleStrategyName = p.Name()
	return &Controller{ID: id, Policy: p, log: logging.New("client")}
}

// Run connects to addr, registers, then loops receiving state and
// submitting the policy's directive until the connection closes.
func (c *Controller) Run(addr string) error {
	ws, err := websocket.Dial(addr, "", "http://localhost/")
	if err != nil {
		return fmt.Errorf("client: dial %s: %w", addr, err)
	}
	defer ws.Close()

	if err := protocol.SendRegistration(ws, c.ID); err != nil {
		return fmt.Errorf("client: sending registration: %w", err)
	}
	if err := protocol.ReadRegistrationAck(ws); err != nil {
		return err
	}
	c.log.Printf("registered as %s (%s)", c.ID.PlayerName, c.Policy.Name())

	for {
		state, err := protocol.ReadGameState(ws)
		if err != nil {
			c.log.Printf("state stream closed: %v", err)
			return nil
		}

		directive := c.Policy.Decide(state, c.ID.PaddleType)
		action := protocol.PaddleAction{PlayerIdentifier: c.ID, PaddleDirective: directive}
		if err := protocol.SendPaddleAction(ws, action); err != nil {
			return fmt.Errorf("client: submitting action: %w", err)
		}

		if state.WinningPlayer != nil {
			c.log.Printf("match terminated, winner=%+v", *state.WinningPlayer)
			return nil
		}
	}
}
