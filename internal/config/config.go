// Package config loads the server's nested configuration from YAML,
// mirroring the section layout of spec.md §6. A malformed file, or a
// missing key among those validate checks, is a fatal configuration
// error at startup (spec.md §7).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full process configuration, unmarshaled from a single
// YAML document.
type Config struct {
	GameMasterService     GameMasterService     `yaml:"game_master_service"`
	Player                Player                `yaml:"player"`
	GameArena             GameArena             `yaml:"game_arena"`
	GameEngine            GameEngine            `yaml:"game_engine"`
	BallPaddleCollision   BallPaddleCollision   `yaml:"ball_paddle_collision"`
	MatchPlay             MatchPlay             `yaml:"match_play"`
	ServerClientComms     ServerClientComms     `yaml:"server_client_communication"`
	GameRenderer          *GameRenderer         `yaml:"game_renderer"`
}

// GameMasterService configures the server's listen address and RPC
// worker pool.
type GameMasterService struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	MaxWorkers   int    `yaml:"max_workers"`
	ThreadPrefix string `yaml:"thread_prefix"`
}

// Player names the two default client identities.
type Player struct {
	LeftPlayerName  string `yaml:"left_player_name"`
	RightPlayerName string `yaml:"right_player_name"`
}

// GameArena sizes the playfield and its fixed scenery.
type GameArena struct {
	ArenaWidth              float64 `yaml:"arena_width"`
	ArenaHeight             float64 `yaml:"arena_height"`
	WallThickness           float64 `yaml:"wall_thickness"`
	PaddleOffset            float64 `yaml:"paddle_offset"`
	PaddleWidth             float64 `yaml:"paddle_width"`
	PaddleHeight            float64 `yaml:"paddle_height"`
	WhiteBallRadius         float64 `yaml:"white_ball_radius"`
	StartingBallSpeed       float64 `yaml:"starting_ball_speed"`
	MaxBallStartingAngleDeg float64 `yaml:"max_ball_starting_angle_degrees"`
}

// GameEngine bounds actor speeds and selects the collision strategy.
type GameEngine struct {
	MaxSpeed          float64 `yaml:"max_speed"`
	MinSpeed          float64 `yaml:"min_speed"`
	MaxBallSpeed      float64 `yaml:"max_ball_speed"`
	MinBallSpeed      float64 `yaml:"min_ball_speed"`
	MaxPaddleSpeed    float64 `yaml:"max_paddle_speed"`
	MinPaddleSpeed    float64 `yaml:"min_paddle_speed"`
	DefaultPaddleSpeed float64 `yaml:"default_paddle_speed"`
	CollisionMode     string  `yaml:"collision_mode"`
}

// BallPaddleCollision configures the paddle-rebound angle cap.
type BallPaddleCollision struct {
	MaxAngleDegrees float64 `yaml:"max_angle_degrees"`
}

// MatchPlay configures scoring thresholds.
type MatchPlay struct {
	PointsInMatch int `yaml:"points_in_match"`
	HitsForDraw   int `yaml:"hits_for_draw"`
}

// ServerClientComms configures the per-tick action drain policy
// (spec.md §4.6 step 1, §5).
type ServerClientComms struct {
	BlockClientPaddleResponse bool          `yaml:"block_client_paddle_response"`
	ActionQueueTimeoutSeconds float64       `yaml:"action_queue_timeout"`
}

// ActionQueueTimeout returns the configured timeout as a Duration.
func (s ServerClientComms) ActionQueueTimeout() time.Duration {
	return time.Duration(s.ActionQueueTimeoutSeconds * float64(time.Second))
}

// GameRenderer configures the optional ASCII observer. Only consumed by
// the renderer goroutine cmd/game_master starts; nil when the section is
// absent, in which case no renderer is attached.
type GameRenderer struct {
	RefreshIntervalMilliseconds int `yaml:"refresh_interval_milliseconds"`
}

// Load reads and validates a Config from the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// validate rejects a config missing one of the keys checked below; a
// key counts as missing when it loads as its zero value. It does not
// check thread_prefix, paddle_offset, max_ball_starting_angle_degrees,
// the ball and paddle speed bounds, default_paddle_speed, collision_mode
// or the server_client_communication keys: when one of those is absent
// it loads as zero (collision_mode as "accurate") without an error.
func (c *Config) validate() error {
	switch {
	case c.GameMasterService.Host == "":
		return fmt.Errorf("game_master_service.host is required")
	case c.GameMasterService.Port == 0:
		return fmt.Errorf("game_master_service.port is required")
	case c.GameMasterService.MaxWorkers == 0:
		return fmt.Errorf("game_master_service.max_workers is required")
	case c.Player.LeftPlayerName == "":
		return fmt.Errorf("player.left_player_name is required")
	case c.Player.RightPlayerName == "":
		return fmt.Errorf("player.right_player_name is required")
	case c.GameArena.ArenaWidth == 0:
		return fmt.Errorf("game_arena.arena_width is required")
	case c.GameArena.ArenaHeight == 0:
		return fmt.Errorf("game_arena.arena_height is required")
	case c.GameArena.WallThickness == 0:
		return fmt.Errorf("game_arena.wall_thickness is required")
	case c.GameArena.PaddleWidth == 0:
		return fmt.Errorf("game_arena.paddle_width is required")
	case c.GameArena.PaddleHeight == 0:
		return fmt.Errorf("game_arena.paddle_height is required")
	case c.GameArena.WhiteBallRadius == 0:
		return fmt.Errorf("game_arena.white_ball_radius is required")
	case c.GameArena.StartingBallSpeed == 0:
		return fmt.Errorf("game_arena.starting_ball_speed is required")
	case c.GameEngine.MaxSpeed == 0:
		return fmt.Errorf("game_engine.max_speed is required")
	case c.GameEngine.MinSpeed == 0:
		return fmt.Errorf("game_engine.min_speed is required")
	case c.BallPaddleCollision.MaxAngleDegrees == 0:
		return fmt.Errorf("ball_paddle_collision.max_angle_degrees is required")
	case c.MatchPlay.PointsInMatch == 0:
		return fmt.Errorf("match_play.points_in_match is required")
	case c.MatchPlay.HitsForDraw == 0:
		return fmt.Errorf("match_play.hits_for_draw is required")
	}
	return nil
}
