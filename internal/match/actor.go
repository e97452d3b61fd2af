package match

import (
	"math"
	"time"

	"github.com/lguibr/pongmaster/internal/actorsys"
	"github.com/lguibr/pongmaster/internal/arena"
	"github.com/lguibr/pongmaster/internal/collision"
	"github.com/lguibr/pongmaster/internal/config"
	"github.com/lguibr/pongmaster/internal/entity"
	"github.com/lguibr/pongmaster/internal/geom"
	"github.com/lguibr/pongmaster/internal/logging"
	"github.com/lguibr/pongmaster/internal/protocol"
	"github.com/lguibr/pongmaster/internal/score"
)

// Match is the authoritative per-game process: one MatchActor owns the
// arena and scorekeeper exclusively, per spec.md §5. Its two input
// queues and two output queues are the only channel through which any
// other goroutine touches match state.
type Match struct {
	PID    *actorsys.PID
	Engine *actorsys.Engine

	LeftInbound, RightInbound   *InboundQueue
	LeftOutbound, RightOutbound *OutboundQueue

	// Done is closed once the match actor has entered StateTerminated,
	// so a still-connected client's handler can learn the other side
	// dropped its stream (or a shutdown signal arrived) without polling.
	Done chan struct{}
}

// Subscribe asks the match for a new spectator feed and blocks until it
// is allocated. The returned queue receives every published GameState
// alongside the two players' own queues, and is never drained by
// anything else.
func (m *Match) Subscribe() *OutboundQueue {
	reply := make(chan *OutboundQueue, 1)
	m.Engine.Send(m.PID, Subscribe{Reply: reply}, nil)
	return <-reply
}

// Spawn builds and starts a MatchActor on engine, returning handles to
// its queues and PID. cfg carries every §6 config section the match
// needs.
func Spawn(engine *actorsys.Engine, cfg *config.Config) *Match {
	leftIn := NewInboundQueue(8)
	rightIn := NewInboundQueue(8)
	leftOut := NewOutboundQueue(8)
	rightOut := NewOutboundQueue(8)
	done := make(chan struct{})

	producer := func() actorsys.Actor {
		return newMatchActor(engine, cfg, leftIn, rightIn, leftOut, rightOut, done)
	}
	pid := engine.Spawn(actorsys.NewProps(producer))

	return &Match{
		PID:           pid,
		Engine:        engine,
		LeftInbound:   leftIn,
		RightInbound:  rightIn,
		LeftOutbound:  leftOut,
		RightOutbound: rightOut,
		Done:          done,
	}
}

type matchActor struct {
	cfg       *config.Config
	log       *logging.Logger
	engineRef *actorsys.Engine

	arena  *arena.Arena
	engine *collision.Engine
	keeper *score.Keeper

	state State
	left  *protocol.PlayerIdentifier
	right *protocol.PlayerIdentifier

	leftInbound, rightInbound   *InboundQueue
	leftOutbound, rightOutbound *OutboundQueue
	spectators                  []*OutboundQueue

	lastLeftDirective, lastRightDirective protocol.PaddleDirective

	stateIteration         uint64
	lastBallVxSign         float64
	changeOfDirectionCount int

	ticker       *time.Ticker
	stopTickerCh chan struct{}
	doneCh       chan struct{}
	self         *actorsys.PID
}

func newMatchActor(engine *actorsys.Engine, cfg *config.Config, leftIn, rightIn *InboundQueue, leftOut, rightOut *OutboundQueue, done chan struct{}) *matchActor {
	dims := arena.Dimensions{
		Width: cfg.GameArena.ArenaWidth, Height: cfg.GameArena.ArenaHeight,
		WallThickness: cfg.GameArena.WallThickness,
		PaddleOffset:  cfg.GameArena.PaddleOffset,
		PaddleWidth:   cfg.GameArena.PaddleWidth, PaddleHeight: cfg.GameArena.PaddleHeight,
		BallRadius:           cfg.GameArena.WhiteBallRadius,
		StartingBallSpeed:    cfg.GameArena.StartingBallSpeed,
		MaxStartAngleDegrees: cfg.GameArena.MaxBallStartingAngleDeg,
	}
	paddleBound := entity.SpeedBound{Min: cfg.GameEngine.MinPaddleSpeed, Max: cfg.GameEngine.MaxPaddleSpeed}
	ballBound := entity.SpeedBound{Min: cfg.GameEngine.MinBallSpeed, Max: cfg.GameEngine.MaxBallSpeed}

	mode := collision.ModeAccurate
	if cfg.GameEngine.CollisionMode == "fast" {
		mode = collision.ModeFast
	}
	maxAngle := cfg.BallPaddleCollision.MaxAngleDegrees * math.Pi / 180

	return &matchActor{
		cfg:            cfg,
		log:            logging.New("match"),
		engineRef:      engine,
		arena:          arena.New(dims, paddleBound, ballBound, time.Now().UnixNano()),
		engine:         collision.NewEngine(mode, maxAngle),
		leftInbound:    leftIn,
		rightInbound:   rightIn,
		leftOutbound:   leftOut,
		rightOutbound:  rightOut,
		stopTickerCh:   make(chan struct{}),
		doneCh:         done,
		lastBallVxSign: 0,
	}
}

func (m *matchActor) Receive(ctx actorsys.Context) {
	switch msg := ctx.Message().(type) {
	case actorsys.Started:
		m.self = ctx.Self()
		m.state = StateWaiting

	case RegisterPlayer:
		msg.Reply <- m.register(msg.ID)

	case Subscribe:
		queue := NewOutboundQueue(8)
		m.spectators = append(m.spectators, queue)
		msg.Reply <- queue

	case tick:
		m.onTick()

	case Shutdown:
		ctx.Engine().Stop(m.self)

	case Disconnect:
		m.log.Printf("client disconnected (side %v), terminating match", msg.Side)
		ctx.Engine().Stop(m.self)

	case actorsys.Stopping:
		if m.ticker != nil {
			m.ticker.Stop()
		}
		closeOnce(m.stopTickerCh)
		m.state = StateTerminated
		closeOnce(m.doneCh)

	case actorsys.Stopped:
	}
}

func (m *matchActor) register(id protocol.PlayerIdentifier) error {
	if m.state != StateWaiting && m.state != StateRegistering {
		return protocol.ErrMatchInProgress
	}
	switch id.PaddleType {
	case protocol.SideLeft:
		if m.left != nil {
			return protocol.ErrSideTaken
		}
		if m.right != nil && sameIdentity(*m.right, id) {
			return protocol.ErrDuplicateIdentity
		}
		m.left = &id
	case protocol.SideRight:
		if m.right != nil {
			return protocol.ErrSideTaken
		}
		if m.left != nil && sameIdentity(*m.left, id) {
			return protocol.ErrDuplicateIdentity
		}
		m.right = &id
	default:
		return protocol.ErrSideNotSet
	}

	if m.left != nil && m.right != nil {
		m.commence()
	} else {
		m.state = StateRegistering
	}
	return nil
}

func sameIdentity(a, b protocol.PlayerIdentifier) bool {
	return a.PlayerName == b.PlayerName && a.PaddleStrategyName == b.PaddleStrategyName
}

func (m *matchActor) commence() {
	m.state = StateCommencing
	m.keeper = score.NewKeeper(
		score.PlayerIdentifier{Name: m.left.PlayerName, StrategyName: m.left.PaddleStrategyName, Side: entity.SideLeft},
		score.PlayerIdentifier{Name: m.right.PlayerName, StrategyName: m.right.PaddleStrategyName, Side: entity.SideRight},
		m.cfg.MatchPlay.PointsInMatch, m.cfg.MatchPlay.HitsForDraw,
	)
	m.publishState(nil)
	m.state = StatePlaying
	m.ticker = time.NewTicker(time.Second / 60)
	go m.runTickerLoop()
}

// runTickerLoop feeds tick messages into the actor's own mailbox,
// mirroring the teacher's GameActor.runTickerLoop pattern.
func (m *matchActor) runTickerLoop() {
	for {
		select {
		case <-m.stopTickerCh:
			return
		case <-m.ticker.C:
			if m.self == nil {
				continue
			}
			m.engineRef.Send(m.self, tick{}, nil)
		}
	}
}

func (m *matchActor) onTick() {
	if m.state != StatePlaying {
		return
	}

	m.drainInputs()
	m.engine.Tick(m.arena.Actors())
	winner := m.updateScore()

	m.stateIteration++
	m.publishState(winner)
}

func (m *matchActor) drainInputs() {
	m.lastLeftDirective = m.nextDirective(m.leftInbound, m.lastLeftDirective)
	m.lastRightDirective = m.nextDirective(m.rightInbound, m.lastRightDirective)

	applyDirective(m.arena.LeftPaddle, m.lastLeftDirective, m.cfg.GameEngine.DefaultPaddleSpeed)
	applyDirective(m.arena.RightPaddle, m.lastRightDirective, m.cfg.GameEngine.DefaultPaddleSpeed)
}

// nextDirective fetches the next paddle directive from q, either by the
// blocking policy (bounded by action_queue_timeout) or the non-blocking
// one, per server_client_communication.block_client_paddle_response
// (spec.md §4.6 step 1, §5). Reuses last when nothing arrives in time.
func (m *matchActor) nextDirective(q *InboundQueue, last protocol.PaddleDirective) protocol.PaddleDirective {
	var v interface{}
	var ok bool
	if m.cfg.ServerClientComms.BlockClientPaddleResponse {
		v, ok = q.PopWait(m.cfg.ServerClientComms.ActionQueueTimeout())
	} else {
		v, ok = q.Pop()
	}
	if ok {
		if action, ok := v.(protocol.PaddleAction); ok {
			return action.PaddleDirective
		}
	}
	return last
}

func applyDirective(paddle *entity.Actor, directive protocol.PaddleDirective, speed float64) {
	switch directive {
	case protocol.DirectiveUp:
		paddle.SetVelocity(geom.Vector{X: 0, Y: -speed})
	case protocol.DirectiveDown:
		paddle.SetVelocity(geom.Vector{X: 0, Y: speed})
	default:
		paddle.SetVelocity(geom.Vector{})
	}
}

// updateScore tallies the current rally's outcome, if any, and reports
// the winning identity when that point completed the match (spec.md
// §4.5, §4.6 step 4). A nil return means the rally either hasn't ended
// or ended without finishing the match.
func (m *matchActor) updateScore() *protocol.PlayerIdentifier {
	ball := m.arena.PrimaryBall
	bx := ball.Centroid().X

	rallyEnded := false
	var matchWinner *protocol.PlayerIdentifier

	switch {
	case bx < m.arena.LeftBacklineX():
		if m.keeper.TallyPoint(entity.SideRight) {
			matchWinner = m.right
		}
		rallyEnded = true
	case bx > m.arena.RightBacklineX():
		if m.keeper.TallyPoint(entity.SideLeft) {
			matchWinner = m.left
		}
		rallyEnded = true
	}

	vx := ball.Velocity.X
	if vx != 0 {
		sign := 1.0
		if vx < 0 {
			sign = -1.0
		}
		if m.lastBallVxSign != 0 && sign != m.lastBallVxSign {
			m.changeOfDirectionCount++
		}
		m.lastBallVxSign = sign
	}

	if !rallyEnded && m.changeOfDirectionCount >= m.cfg.MatchPlay.HitsForDraw {
		m.keeper.TallyAbortedPoint()
		rallyEnded = true
	}

	if rallyEnded {
		m.arena.Reset()
		m.changeOfDirectionCount = 0
		m.lastBallVxSign = 0
	}

	return matchWinner
}

func (m *matchActor) publishState(winner *protocol.PlayerIdentifier) {
	state := protocol.GameState{
		StateIteration: m.stateIteration,
		Actors:         m.snapshotActors(),
		LeftScorecard:  m.scorecardOf(protocol.SideLeft),
		RightScorecard: m.scorecardOf(protocol.SideRight),
		WinningPlayer:  winner,
	}
	m.leftOutbound.Push(state)
	m.rightOutbound.Push(state)
	for _, spectator := range m.spectators {
		spectator.Push(state)
	}
}

func (m *matchActor) snapshotActors() []protocol.Actor {
	actors := []struct {
		a *entity.Actor
		t protocol.ActorType
	}{
		{m.arena.LeftPaddle, protocol.ActorLeftPaddle},
		{m.arena.RightPaddle, protocol.ActorRightPaddle},
		{m.arena.PrimaryBall, protocol.ActorPrimaryBall},
		{m.arena.TopWall, protocol.ActorWall},
		{m.arena.BottomWall, protocol.ActorWall},
	}
	out := make([]protocol.Actor, 0, len(actors))
	for _, e := range actors {
		poly := e.a.Polygon()
		coords := make([]protocol.Coord, 0, len(poly.Vertices))
		for _, v := range poly.Vertices {
			coords = append(coords, protocol.Coord{X: int32(v.X), Y: int32(v.Y)})
		}
		out = append(out, protocol.Actor{
			ActorType: e.t,
			Coords:    coords,
			Velocity:  protocol.Coord{X: int32(e.a.Velocity.X), Y: int32(e.a.Velocity.Y)},
		})
	}
	return out
}

func (m *matchActor) scorecardOf(side protocol.PaddleSide) protocol.ScoreCard {
	if m.keeper == nil {
		return protocol.ScoreCard{}
	}
	var card score.Scorecard
	var id protocol.PlayerIdentifier
	if side == protocol.SideLeft {
		card = m.keeper.Left
		if m.left != nil {
			id = *m.left
		}
	} else {
		card = m.keeper.Right
		if m.right != nil {
			id = *m.right
		}
	}
	return protocol.ScoreCard{
		Player:            id,
		CurrentGamePoints: card.MatchPoints,
		TotalMatchPoints:  card.MatchesWon,
		TotalPoints:       card.TotalPoints,
	}
}

func closeOnce(ch chan struct{}) {
	select {
	case <-ch:
	default:
		close(ch)
	}
}
