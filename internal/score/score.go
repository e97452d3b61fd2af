// Package score tracks rally and match points for both sides, per
// spec.md §3 (Scorecard/ScoreKeeper) and §4.5 (tally rules). The match
// loop owns all scoring trigger logic; this package only applies the
// configured point/match thresholds.
package score

import "github.com/lguibr/pongmaster/internal/entity"

// PlayerIdentifier names a registered player, immutable after
// registration (spec.md §3 Lifecycle).
type PlayerIdentifier struct {
	Name         string
	StrategyName string
	Side         entity.Side
}

// Scorecard is one side's running tally.
type Scorecard struct {
	Player       PlayerIdentifier
	MatchPoints  uint32
	TotalPoints  uint32
	MatchesWon   uint32
}

// Keeper holds both sides' scorecards, keyed by side.
type Keeper struct {
	PointsPerMatch int
	HitsForDraw    int

	Left  Scorecard
	Right Scorecard
}

// NewKeeper builds a Keeper for the given identifiers and configured
// thresholds (match_play.points_in_match, match_play.hits_for_draw).
func NewKeeper(left, right PlayerIdentifier, pointsPerMatch, hitsForDraw int) *Keeper {
	return &Keeper{
		PointsPerMatch: pointsPerMatch,
		HitsForDraw:    hitsForDraw,
		Left:           Scorecard{Player: left},
		Right:          Scorecard{Player: right},
	}
}

// bySide returns a pointer to the scorecard for the given side.
func (k *Keeper) bySide(side entity.Side) *Scorecard {
	if side == entity.SideLeft {
		return &k.Left
	}
	return &k.Right
}

// TallyPoint awards a rally to winner and resets both match-point
// counters if that completes a match (spec.md §4.5). It reports
// whether this point completed the match, so callers can surface the
// winning identity without re-deriving it from the scorecards.
func (k *Keeper) TallyPoint(winner entity.Side) (matchComplete bool) {
	w := k.bySide(winner)
	w.MatchPoints++
	w.TotalPoints++
	if int(w.MatchPoints) == k.PointsPerMatch {
		w.MatchesWon++
		k.Left.MatchPoints = 0
		k.Right.MatchPoints = 0
		return true
	}
	return false
}

// TallyAbortedPoint records a drawn rally: neither side scores.
func (k *Keeper) TallyAbortedPoint() {}
