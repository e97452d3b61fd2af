package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

const validConfig = `
game_master_service:
  host: "0.0.0.0"
  port: 50051
  max_workers: 4
  thread_prefix: "rpc"
player:
  left_player_name: "left"
  right_player_name: "right"
game_arena:
  arena_width: 800
  arena_height: 600
  wall_thickness: 10
  paddle_offset: 30
  paddle_width: 10
  paddle_height: 100
  white_ball_radius: 10
  starting_ball_speed: 6
  max_ball_starting_angle_degrees: 45
game_engine:
  max_speed: 10
  min_speed: 2
  max_ball_speed: 10
  min_ball_speed: 2
  max_paddle_speed: 10
  min_paddle_speed: 1
  default_paddle_speed: 6
ball_paddle_collision:
  max_angle_degrees: 60
match_play:
  points_in_match: 5
  hits_for_draw: 20
server_client_communication:
  block_client_paddle_response: false
  action_queue_timeout: 0.05
`

func TestLoadValidConfig(t *testing.T) {
	path := writeTempConfig(t, validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.GameArena.ArenaWidth != 800 {
		t.Errorf("ArenaWidth = %v, want 800", cfg.GameArena.ArenaWidth)
	}
	if cfg.MatchPlay.PointsInMatch != 5 {
		t.Errorf("PointsInMatch = %v, want 5", cfg.MatchPlay.PointsInMatch)
	}
}

func TestLoadRejectsMissingRequiredKey(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"missing host", `
player:
  left_player_name: "left"
  right_player_name: "right"
game_arena:
  arena_width: 800
  arena_height: 600
  wall_thickness: 10
  paddle_width: 10
  paddle_height: 100
  white_ball_radius: 10
  starting_ball_speed: 6
game_engine:
  max_speed: 10
  min_speed: 2
ball_paddle_collision:
  max_angle_degrees: 60
match_play:
  points_in_match: 5
  hits_for_draw: 20
`},
		{"missing points_in_match", `
game_master_service:
  host: "0.0.0.0"
  port: 50051
  max_workers: 4
  thread_prefix: "rpc"
player:
  left_player_name: "left"
  right_player_name: "right"
game_arena:
  arena_width: 800
  arena_height: 600
  wall_thickness: 10
  paddle_width: 10
  paddle_height: 100
  white_ball_radius: 10
  starting_ball_speed: 6
game_engine:
  max_speed: 10
  min_speed: 2
ball_paddle_collision:
  max_angle_degrees: 60
match_play:
  hits_for_draw: 20
`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempConfig(t, tc.body)
			if _, err := Load(path); err == nil {
				t.Error("expected Load() to return an error for missing required key")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Error("expected Load() to error for a missing file")
	}
}
