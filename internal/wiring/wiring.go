// Package wiring assembles a game_master process by plain constructor
// calls, deliberately with no dependency-injection container (spec.md
// §9's wiring note): Build is the one place that knows how the actor
// engine, the match and the websocket server fit together.
package wiring

import (
	"github.com/lguibr/pongmaster/internal/actorsys"
	"github.com/lguibr/pongmaster/internal/config"
	"github.com/lguibr/pongmaster/internal/match"
	"github.com/lguibr/pongmaster/internal/server"
)

// Process bundles everything cmd/game_master needs to run and to shut
// down cleanly.
type Process struct {
	Engine *actorsys.Engine
	Match  *match.Match
	Server *server.Server
}

// Build constructs one match actor and the websocket server bound to
// it, ready to be mounted on an http.ServeMux.
func Build(cfg *config.Config) *Process {
	engine := actorsys.NewEngine()
	m := match.Spawn(engine, cfg)
	srv := server.New(m)
	return &Process{Engine: engine, Match: m, Server: srv}
}
