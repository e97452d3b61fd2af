// Command game_master runs the authoritative match server: it loads
// configuration, spawns the single match actor, and serves both
// players over a websocket per client (spec.md §6), grounded on the
// teacher's root main.go wiring sequence (config -> engine -> server ->
// ListenAndServe -> engine.Shutdown on exit).
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/pongmaster/internal/config"
	"github.com/lguibr/pongmaster/internal/logging"
	"github.com/lguibr/pongmaster/internal/match"
	"github.com/lguibr/pongmaster/internal/renderer"
	"github.com/lguibr/pongmaster/internal/wiring"
	"golang.org/x/net/websocket"
)

func main() {
	configPath := flag.String("config", "configs/default.yaml", "path to the server configuration file")
	flag.Parse()

	log := logging.New("game_master")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("fatal: %v", err)
		os.Exit(1)
	}

	process := wiring.Build(cfg)
	log.Printf("match actor spawned on %s, awaiting two players", process.Match.PID)

	if cfg.GameRenderer != nil {
		go runRenderer(process, cfg)
	}

	mux := http.NewServeMux()
	mux.Handle("/subscribe", websocket.Handler(process.Server.HandleSubscribe()))
	mux.HandleFunc("/health-check/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	addr := fmt.Sprintf("%s:%d", cfg.GameMasterService.Host, cfg.GameMasterService.Port)
	httpSrv := &http.Server{Addr: addr, Handler: mux}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		serveErr <- httpSrv.ListenAndServe()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil && err != http.ErrServerClosed {
			log.Printf("server stopped: %v", err)
		}
	case s := <-sig:
		log.Printf("received %v, shutting down after the current tick", s)
		process.Engine.Send(process.Match.PID, match.Shutdown{}, nil)
	case <-process.Match.Done:
		log.Printf("match terminated, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(shutdownCtx)
	process.Engine.Shutdown(5 * time.Second)
}

// runRenderer attaches the optional ASCII observer to its own spectator
// feed (match.Match.Subscribe), so it never competes with a player's
// outbound queue, and prints frames to stdout until the match ends.
func runRenderer(process *wiring.Process, cfg *config.Config) {
	queue := process.Match.Subscribe()
	frame := renderer.NewFrame(120, 40, cfg.GameArena.ArenaWidth, cfg.GameArena.ArenaHeight)
	refresh := time.Duration(cfg.GameRenderer.RefreshIntervalMilliseconds) * time.Millisecond
	observer := renderer.New(queue, frame, os.Stdout, refresh)
	_ = observer.Run(context.Background())
}
