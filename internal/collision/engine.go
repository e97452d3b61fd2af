package collision

import (
	"math"
	"sort"

	"github.com/lguibr/pongmaster/internal/entity"
	"github.com/lguibr/pongmaster/internal/geom"
)

// Mode selects which sub-tick strategy the engine uses to advance and
// resolve actors (spec.md §4.4, Open Question 1: both are legal,
// selected by config).
type Mode int

const (
	// ModeAccurate runs the sub-tick stepping scaled to the faster
	// actor in a candidate pair, so fast balls cannot tunnel through
	// thin walls.
	ModeAccurate Mode = iota
	// ModeFast resolves each candidate pair once per tick, then
	// advances every actor by its full velocity.
	ModeFast
)

// Engine is the configured tick driver: it knows the dispatch table and
// which resolution strategy to use.
type Engine struct {
	Mode          Mode
	MaxBallPaddle float64 // max paddle rebound angle, radians
}

// NewEngine builds a collision engine. maxBallPaddleAngle is the
// ball_paddle_collision.max_angle_degrees config value, in radians.
func NewEngine(mode Mode, maxBallPaddleAngle float64) *Engine {
	return &Engine{Mode: mode, MaxBallPaddle: maxBallPaddleAngle}
}

// Tick advances every actor in actors by one tick, resolving collisions
// per spec.md §4.4.
func (e *Engine) Tick(actors []*entity.Actor) {
	pairs := e.broadPhase(actors)
	if len(pairs) == 0 {
		for _, a := range actors {
			a.MoveForward(1)
		}
		return
	}

	// Ball-paddle pairs run before every other pair, so a ball touching
	// both a paddle and a wall in the same tick resolves against the
	// paddle first (Open Question 3).
	ballPaddle := func(p pair) bool {
		return (p.a.Kind == entity.KindBall && p.b.Kind == entity.KindPaddle) ||
			(p.a.Kind == entity.KindPaddle && p.b.Kind == entity.KindBall)
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return ballPaddle(pairs[i]) && !ballPaddle(pairs[j])
	})

	inPair := make(map[*entity.Actor]bool, len(actors))
	for _, p := range pairs {
		inPair[p.a] = true
		inPair[p.b] = true
	}

	switch e.Mode {
	case ModeFast:
		for _, p := range pairs {
			e.dispatch(p.a, p.b)
		}
		for _, a := range actors {
			a.MoveForward(1)
		}
	default:
		for _, p := range pairs {
			steps := subTickCount(p.a, p.b)
			for s := 0; s < steps; s++ {
				e.dispatch(p.a, p.b)
				p.a.MoveForward(1 / float64(steps))
				p.b.MoveForward(1 / float64(steps))
			}
		}
		for _, a := range actors {
			if !inPair[a] {
				a.MoveForward(1)
			}
		}
	}
}

type pair struct{ a, b *entity.Actor }

// broadPhase enumerates candidate pairs: both collision-enabled,
// distinct, at least one moving, and their speed-inflated bounding
// boxes intersect (spec.md §4.4 step 1).
func (e *Engine) broadPhase(actors []*entity.Actor) []pair {
	var pairs []pair
	for i := 0; i < len(actors); i++ {
		for j := i + 1; j < len(actors); j++ {
			a, b := actors[i], actors[j]
			if !a.CollisionEnabled || !b.CollisionEnabled {
				continue
			}
			if a.Speed() <= 0 && b.Speed() <= 0 {
				continue
			}
			if inflatedBBox(a).Intersects(inflatedBBox(b)) {
				pairs = append(pairs, pair{a, b})
			}
		}
	}
	return pairs
}

func inflatedBBox(a *entity.Actor) geom.BBox {
	bb := a.Polygon().BBox()
	v := a.Speed()
	return geom.BBox{
		Min: geom.Vector{X: bb.Min.X - v, Y: bb.Min.Y - v},
		Max: geom.Vector{X: bb.Max.X + v, Y: bb.Max.Y + v},
	}
}

// subTickCount sizes the sub-tick loop to the faster of the two actors
// (spec.md §4.4 step 3), at least 1.
func subTickCount(a, b *entity.Actor) int {
	s := math.Max(math.Ceil(a.Speed()), math.Ceil(b.Speed()))
	if s < 1 {
		s = 1
	}
	return int(s)
}

// dispatch routes a candidate pair to its resolver by (Kind, Kind),
// order-insensitive. All other combinations are explicit no-ops
// (spec.md §4.4's 4-entry dispatch table).
func (e *Engine) dispatch(a, b *entity.Actor) {
	switch {
	case a.Kind == entity.KindBall && b.Kind == entity.KindBall:
		ResolveBallBall(a, b)
	case a.Kind == entity.KindBall && b.Kind == entity.KindWall:
		ResolveBallWall(a, b)
	case a.Kind == entity.KindWall && b.Kind == entity.KindBall:
		ResolveBallWall(b, a)
	case a.Kind == entity.KindBall && b.Kind == entity.KindPaddle:
		// Tick runs ball-paddle pairs before ball-wall pairs, so
		// the paddle resolves first when both apply to the same ball
		// (Open Question 3); each pair's sub-steps run in full
		// before the next pair's.
		ResolveBallPaddle(a, b, e.MaxBallPaddle)
	case a.Kind == entity.KindPaddle && b.Kind == entity.KindBall:
		ResolveBallPaddle(b, a, e.MaxBallPaddle)
	case a.Kind == entity.KindPaddle && b.Kind == entity.KindWall:
		ResolvePaddleWall(a, b)
	case a.Kind == entity.KindWall && b.Kind == entity.KindPaddle:
		ResolvePaddleWall(b, a)
	}
}
