package renderer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/pongmaster/internal/match"
	"github.com/lguibr/pongmaster/internal/protocol"
)

// Observer drains GameState snapshots from a match's outbound queue
// and prints an ASCII frame to out, clearing the terminal between
// frames the same way the teacher's pongoClient does before printing
// each update (helpers.ClearScreen).
type Observer struct {
	Queue        *match.OutboundQueue
	Frame        Frame
	Out          io.Writer
	PollInterval time.Duration
	ClearOnFrame bool
}

// New builds an Observer bound to queue, the same stream a websocket
// client would be reading (spec.md §9's renderer design note: it uses
// the identical state-stream interface, never the match loop directly).
func New(queue *match.OutboundQueue, frame Frame, out io.Writer, refreshInterval time.Duration) *Observer {
	if refreshInterval <= 0 {
		refreshInterval = 200 * time.Millisecond
	}
	return &Observer{Queue: queue, Frame: frame, Out: out, PollInterval: refreshInterval, ClearOnFrame: true}
}

// Run polls the queue until ctx is canceled or a terminal GameState
// (one carrying a WinningPlayer) arrives, printing each frame as it is
// consumed. Unlike a websocket client it never submits paddle actions:
// it is a read-only spectator.
func (o *Observer) Run(ctx context.Context) error {
	ticker := time.NewTicker(o.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			raw, ok := o.Queue.Pop()
			if !ok {
				continue
			}
			state, ok := raw.(protocol.GameState)
			if !ok {
				continue
			}
			if o.ClearOnFrame {
				helpers.ClearScreen()
			}
			fmt.Fprint(o.Out, o.Frame.Render(state))
			if state.WinningPlayer != nil {
				return nil
			}
		}
	}
}
