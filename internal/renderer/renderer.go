// Package renderer implements the optional ASCII terminal observer
// described in spec.md §9's renderer coupling note: a view that
// subscribes to the same state stream real clients consume, and is
// never imported by the match loop itself. It plays the role of the
// teacher's render package (render/ascii.go), adapted from coloring a
// pixel framebuffer to rasterizing polygon actors onto a character
// grid.
package renderer

import (
	"strconv"
	"strings"

	"github.com/lguibr/pongmaster/internal/protocol"
)

// asciiChars ramps from empty space to the densest glyph, mirroring
// the teacher's grayscale ramp in render/ascii.go.
const asciiChars = " .:-=+*#%@"

// glyphFor picks a fixed glyph per actor kind ('#' and '@' from the
// ramp above, '|' for paddles, '?' otherwise) so the frame reads as a
// recognizable court rather than a grayscale photograph.
func glyphFor(t protocol.ActorType) byte {
	switch t {
	case protocol.ActorWall:
		return '#'
	case protocol.ActorLeftPaddle, protocol.ActorRightPaddle:
		return '|'
	case protocol.ActorPrimaryBall:
		return '@'
	default:
		return '?'
	}
}

// Frame rasterizes a GameState onto a Columns x Rows character grid
// scaled from the arena's pixel dimensions, plus a scoreboard header.
type Frame struct {
	Columns, Rows           int
	ArenaWidth, ArenaHeight float64
}

// NewFrame builds a Frame sized for the given arena dimensions.
func NewFrame(columns, rows int, arenaWidth, arenaHeight float64) Frame {
	if columns <= 0 {
		columns = 80
	}
	if rows <= 0 {
		rows = 24
	}
	return Frame{Columns: columns, Rows: rows, ArenaWidth: arenaWidth, ArenaHeight: arenaHeight}
}

// Render draws state into a grid of Columns x Rows and returns the
// finished string, header first.
func (f Frame) Render(state protocol.GameState) string {
	grid := make([][]byte, f.Rows)
	for r := range grid {
		row := make([]byte, f.Columns)
		for c := range row {
			row[c] = ' '
		}
		grid[r] = row
	}

	for _, actor := range state.Actors {
		glyph := glyphFor(actor.ActorType)
		for _, coord := range actor.Coords {
			col := f.toColumn(float64(coord.X))
			row := f.toRow(float64(coord.Y))
			grid[row][col] = glyph
		}
	}

	var out strings.Builder
	out.WriteString(f.header(state))
	out.WriteString("\n")
	for _, row := range grid {
		out.Write(row)
		out.WriteString("\n")
	}
	return out.String()
}

func (f Frame) toColumn(x float64) int {
	return clampIndex(int(x/f.ArenaWidth*float64(f.Columns)), f.Columns)
}

func (f Frame) toRow(y float64) int {
	return clampIndex(int(y/f.ArenaHeight*float64(f.Rows)), f.Rows)
}

func clampIndex(i, limit int) int {
	if i < 0 {
		return 0
	}
	if i >= limit {
		return limit - 1
	}
	return i
}

func (f Frame) header(state protocol.GameState) string {
	left, right := state.LeftScorecard, state.RightScorecard
	if state.WinningPlayer != nil {
		return left.Player.PlayerName + " " +
			strconv.Itoa(int(left.TotalMatchPoints)) + " - " + strconv.Itoa(int(right.TotalMatchPoints)) +
			" " + right.Player.PlayerName + "  (winner: " + state.WinningPlayer.PlayerName + ")"
	}
	return left.Player.PlayerName + " " +
		strconv.Itoa(int(left.CurrentGamePoints)) + " - " + strconv.Itoa(int(right.CurrentGamePoints)) +
		" " + right.Player.PlayerName
}
