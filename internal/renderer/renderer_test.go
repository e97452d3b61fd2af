package renderer

import (
	"strings"
	"testing"

	"github.com/lguibr/pongmaster/internal/protocol"
)

func sampleState() protocol.GameState {
	return protocol.GameState{
		Actors: []protocol.Actor{
			{ActorType: protocol.ActorWall, Coords: []protocol.Coord{{X: 0, Y: 0}}},
			{ActorType: protocol.ActorLeftPaddle, Coords: []protocol.Coord{{X: 5, Y: 50}}},
			{ActorType: protocol.ActorRightPaddle, Coords: []protocol.Coord{{X: 95, Y: 50}}},
			{ActorType: protocol.ActorPrimaryBall, Coords: []protocol.Coord{{X: 50, Y: 50}}},
		},
		LeftScorecard:  protocol.ScoreCard{Player: protocol.PlayerIdentifier{PlayerName: "lefty"}, CurrentGamePoints: 2},
		RightScorecard: protocol.ScoreCard{Player: protocol.PlayerIdentifier{PlayerName: "righty"}, CurrentGamePoints: 1},
	}
}

func TestFrameRenderPlacesGlyphs(t *testing.T) {
	f := NewFrame(20, 10, 100, 100)
	out := f.Render(sampleState())

	if !strings.Contains(out, "lefty 2 - 1 righty") {
		t.Errorf("Render() header = %q, want score line", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "@") {
		t.Errorf("Render() missing ball glyph:\n%s", out)
	}
	if !strings.Contains(out, "|") {
		t.Errorf("Render() missing paddle glyph:\n%s", out)
	}
	if !strings.Contains(out, "#") {
		t.Errorf("Render() missing wall glyph:\n%s", out)
	}
}

func TestFrameRenderWinnerHeader(t *testing.T) {
	state := sampleState()
	winner := protocol.PlayerIdentifier{PlayerName: "lefty"}
	state.WinningPlayer = &winner
	f := NewFrame(20, 10, 100, 100)

	out := f.Render(state)
	if !strings.Contains(out, "winner: lefty") {
		t.Errorf("Render() = %q, want winner annotation", out)
	}
}

func TestFrameDefaultsWhenDimensionsUnset(t *testing.T) {
	f := NewFrame(0, 0, 100, 100)
	if f.Columns != 80 || f.Rows != 24 {
		t.Errorf("NewFrame() = %+v, want 80x24 defaults", f)
	}
}

func TestClampIndexStaysInBounds(t *testing.T) {
	if got := clampIndex(-5, 10); got != 0 {
		t.Errorf("clampIndex(-5, 10) = %d, want 0", got)
	}
	if got := clampIndex(15, 10); got != 9 {
		t.Errorf("clampIndex(15, 10) = %d, want 9", got)
	}
	if got := clampIndex(4, 10); got != 4 {
		t.Errorf("clampIndex(4, 10) = %d, want 4", got)
	}
}
