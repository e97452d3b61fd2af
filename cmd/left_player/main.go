// Command left_player runs a client bound to the left paddle, driven
// by a pluggable policy (spec.md §4.8).
package main

import (
	"flag"
	"os"

	"github.com/lguibr/pongmaster/internal/client"
	"github.com/lguibr/pongmaster/internal/client/policy"
	"github.com/lguibr/pongmaster/internal/logging"
	"github.com/lguibr/pongmaster/internal/protocol"
)

func main() {
	addr := flag.String("addr", "ws://localhost:8080/subscribe", "game master websocket address")
	name := flag.String("name", "left", "player name")
	strategy := flag.String("strategy", "follow_the_ball", "paddle policy: stationary|always_up|always_down|follow_the_ball|enhanced_follow_the_ball")
	seed := flag.Int64("seed", 1, "RNG seed for tie-breaking policies")
	flag.Parse()

	log := logging.New("left_player")

	p, err := policy.Select(*strategy, *seed)
	if err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}

	id := protocol.PlayerIdentifier{PlayerName: *name, PaddleType: protocol.SideLeft}
	if err := client.New(id, p).Run(*addr); err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}
}
