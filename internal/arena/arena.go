// Package arena builds the fixed scenery (walls, net, back lines) and
// the movable actors (paddles, primary ball) that live inside it, per
// spec.md §3's Arena data model and §4.7's reset semantics.
package arena

import (
	"math"
	"math/rand"

	"github.com/lguibr/pongmaster/internal/entity"
	"github.com/lguibr/pongmaster/internal/geom"
)

// Dimensions is the geometry the arena is built from (game_arena config
// section, spec.md §6).
type Dimensions struct {
	Width, Height           float64
	WallThickness           float64
	PaddleOffset            float64
	PaddleWidth, PaddleHeight float64
	BallRadius              float64
	StartingBallSpeed       float64
	MaxStartAngleDegrees    float64
}

// Arena owns the fixed scenery and the mutable actor list. Arena state
// is exclusively owned and mutated by the match loop thread (spec.md
// §5); nothing else may read or write Actors concurrently.
type Arena struct {
	dims Dimensions

	TopWall    *entity.Actor
	BottomWall *entity.Actor
	Net        *entity.Actor
	LeftLine   *entity.Actor
	RightLine  *entity.Actor
	LeftPaddle *entity.Actor
	RightPaddle *entity.Actor
	PrimaryBall *entity.Actor

	rng *rand.Rand
}

// New constructs the arena's scenery and actors once at process start
// (spec.md §3 Lifecycle: "actors are created then and never
// re-allocated"). paddleBound and ballBound are the speed caps for
// paddles and the ball respectively (game_engine config section).
func New(dims Dimensions, paddleBound, ballBound entity.SpeedBound, seed int64) *Arena {
	if dims.Width <= 0 || dims.Height <= 0 {
		panic("arena: width and height must be positive")
	}
	t := dims.WallThickness

	a := &Arena{
		dims: dims,
		rng:  rand.New(rand.NewSource(seed)),
	}

	a.TopWall = entity.NewWall("top-wall", geom.Vector{X: 0, Y: 0}, dims.Width, t)
	a.BottomWall = entity.NewWall("bottom-wall", geom.Vector{X: 0, Y: dims.Height - t}, dims.Width, t)

	netX := dims.Width/2 - t/2
	a.Net = entity.NewNet("net", geom.Vector{X: netX, Y: 0}, t, dims.Height)

	leftLineX := dims.PaddleOffset + dims.PaddleWidth/2
	rightLineX := dims.Width - dims.PaddleOffset - dims.PaddleWidth/2
	a.LeftLine = entity.NewBackLine("left-backline", entity.SideLeft, geom.Vector{X: leftLineX - 0.5, Y: 0}, 1, dims.Height)
	a.RightLine = entity.NewBackLine("right-backline", entity.SideRight, geom.Vector{X: rightLineX - 0.5, Y: 0}, 1, dims.Height)

	a.LeftPaddle = entity.NewPaddle("left-paddle", entity.SideLeft,
		geom.Vector{X: dims.PaddleOffset, Y: dims.Height/2 - dims.PaddleHeight/2},
		dims.PaddleWidth, dims.PaddleHeight, paddleBound)
	a.RightPaddle = entity.NewPaddle("right-paddle", entity.SideRight,
		geom.Vector{X: dims.Width - dims.PaddleOffset - dims.PaddleWidth, Y: dims.Height/2 - dims.PaddleHeight/2},
		dims.PaddleWidth, dims.PaddleHeight, paddleBound)

	a.PrimaryBall = entity.NewBall("primary-ball", entity.FlavorPrimary,
		geom.Vector{X: dims.Width / 2, Y: dims.Height / 2}, dims.BallRadius, ballBound)
	a.launchBall(a.PrimaryBall)

	return a
}

// Actors returns every actor in dispatch order, scenery first.
func (a *Arena) Actors() []*entity.Actor {
	return []*entity.Actor{
		a.TopWall, a.BottomWall, a.Net, a.LeftLine, a.RightLine,
		a.LeftPaddle, a.RightPaddle, a.PrimaryBall,
	}
}

// LeftBacklineX and RightBacklineX expose the scoring-trigger
// x-coordinates the match loop tests the ball centroid against.
func (a *Arena) LeftBacklineX() float64  { return a.LeftLine.Centroid().X }
func (a *Arena) RightBacklineX() float64 { return a.RightLine.Centroid().X }

// Reset implements spec.md §4.7: paddles recenter vertically and stop;
// the primary ball recenters and is relaunched at a fresh random angle.
func (a *Arena) Reset() {
	a.recenterPaddle(a.LeftPaddle)
	a.recenterPaddle(a.RightPaddle)

	a.PrimaryBall.Offset = geom.Vector{X: a.dims.Width / 2, Y: a.dims.Height / 2}
	a.launchBall(a.PrimaryBall)
}

func (a *Arena) recenterPaddle(p *entity.Actor) {
	p.Offset = geom.Vector{X: p.Offset.X, Y: a.dims.Height/2 - a.dims.PaddleHeight/2}
	p.Velocity = geom.Vector{}
}

// launchBall assigns the ball a fresh random velocity per spec.md §4.7:
// speed S at angle alpha in [0, alpha_max], signs drawn independently.
func (a *Arena) launchBall(ball *entity.Actor) {
	alphaMax := a.dims.MaxStartAngleDegrees * math.Pi / 180
	alpha := a.rng.Float64() * alphaMax

	sigmaX := sign(a.rng)
	sigmaY := sign(a.rng)

	s := a.dims.StartingBallSpeed
	vx := s * math.Cos(alpha) * sigmaX
	vy := s * math.Sin(alpha) * sigmaY

	ball.SetVelocity(geom.Vector{X: vx, Y: vy})
}

func sign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
