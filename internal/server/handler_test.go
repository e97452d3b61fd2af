package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/pongmaster/internal/actorsys"
	"github.com/lguibr/pongmaster/internal/config"
	"github.com/lguibr/pongmaster/internal/match"
	"github.com/lguibr/pongmaster/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func testConfig() *config.Config {
	return &config.Config{
		GameMasterService: config.GameMasterService{Host: "localhost", Port: 8080, MaxWorkers: 4},
		Player:            config.Player{LeftPlayerName: "left", RightPlayerName: "right"},
		GameArena: config.GameArena{
			ArenaWidth: 800, ArenaHeight: 600, WallThickness: 10,
			PaddleOffset: 30, PaddleWidth: 10, PaddleHeight: 100,
			WhiteBallRadius: 10, StartingBallSpeed: 4, MaxBallStartingAngleDeg: 30,
		},
		GameEngine: config.GameEngine{
			MaxSpeed: 20, MinSpeed: 1, MaxBallSpeed: 20, MinBallSpeed: 2,
			MaxPaddleSpeed: 10, MinPaddleSpeed: 1, DefaultPaddleSpeed: 5,
			CollisionMode: "accurate",
		},
		BallPaddleCollision: config.BallPaddleCollision{MaxAngleDegrees: 60},
		MatchPlay:           config.MatchPlay{PointsInMatch: 5, HitsForDraw: 50},
	}
}

func dialSubscriber(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(url, "http")
	ws, err := websocket.Dial(wsURL, "", url)
	require.NoError(t, err)
	return ws
}

func TestHandleSubscribeRegistersBothSidesAndStreamsState(t *testing.T) {
	engine := actorsys.NewEngine()
	defer engine.Shutdown(time.Second)
	m := match.Spawn(engine, testConfig())

	srv := New(m)
	httpSrv := httptest.NewServer(websocket.Handler(srv.HandleSubscribe()))
	defer httpSrv.Close()

	left := dialSubscriber(t, httpSrv.URL)
	defer left.Close()
	right := dialSubscriber(t, httpSrv.URL)
	defer right.Close()

	require.NoError(t, protocol.SendRegistration(left, protocol.PlayerIdentifier{PlayerName: "lefty", PaddleType: protocol.SideLeft}))
	require.NoError(t, protocol.ReadRegistrationAck(left))

	require.NoError(t, protocol.SendRegistration(right, protocol.PlayerIdentifier{PlayerName: "righty", PaddleType: protocol.SideRight}))
	require.NoError(t, protocol.ReadRegistrationAck(right))

	state, err := protocol.ReadGameState(left)
	require.NoError(t, err)
	assert.NotEmpty(t, state.Actors)
}

func TestHandleSubscribeDisconnectTerminatesMatch(t *testing.T) {
	engine := actorsys.NewEngine()
	defer engine.Shutdown(time.Second)
	m := match.Spawn(engine, testConfig())

	srv := New(m)
	httpSrv := httptest.NewServer(websocket.Handler(srv.HandleSubscribe()))
	defer httpSrv.Close()

	left := dialSubscriber(t, httpSrv.URL)
	right := dialSubscriber(t, httpSrv.URL)
	defer right.Close()

	require.NoError(t, protocol.SendRegistration(left, protocol.PlayerIdentifier{PlayerName: "lefty", PaddleType: protocol.SideLeft}))
	require.NoError(t, protocol.ReadRegistrationAck(left))
	require.NoError(t, protocol.SendRegistration(right, protocol.PlayerIdentifier{PlayerName: "righty", PaddleType: protocol.SideRight}))
	require.NoError(t, protocol.ReadRegistrationAck(right))

	left.Close()

	select {
	case <-m.Done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected match to terminate after a client disconnected")
	}
}

func TestHandleSubscribeRejectsTakenSide(t *testing.T) {
	engine := actorsys.NewEngine()
	defer engine.Shutdown(time.Second)
	m := match.Spawn(engine, testConfig())

	srv := New(m)
	httpSrv := httptest.NewServer(websocket.Handler(srv.HandleSubscribe()))
	defer httpSrv.Close()

	first := dialSubscriber(t, httpSrv.URL)
	defer first.Close()
	require.NoError(t, protocol.SendRegistration(first, protocol.PlayerIdentifier{PlayerName: "one", PaddleType: protocol.SideLeft}))
	require.NoError(t, protocol.ReadRegistrationAck(first))

	second := dialSubscriber(t, httpSrv.URL)
	defer second.Close()
	require.NoError(t, protocol.SendRegistration(second, protocol.PlayerIdentifier{PlayerName: "two", PaddleType: protocol.SideLeft}))
	err := protocol.ReadRegistrationAck(second)
	assert.Error(t, err)
}
