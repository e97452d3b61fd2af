package score

import (
	"testing"

	"github.com/lguibr/pongmaster/internal/entity"
)

func TestTallyPointAccumulates(t *testing.T) {
	k := NewKeeper(PlayerIdentifier{Name: "l", Side: entity.SideLeft}, PlayerIdentifier{Name: "r", Side: entity.SideRight}, 5, 20)

	k.TallyPoint(entity.SideLeft)
	if k.Left.MatchPoints != 1 || k.Left.TotalPoints != 1 {
		t.Errorf("left scorecard = %+v, want match_points=1 total_points=1", k.Left)
	}
	if k.Right.MatchPoints != 0 {
		t.Errorf("right scorecard unexpectedly changed: %+v", k.Right)
	}
}

func TestTallyPointCompletesMatch(t *testing.T) {
	k := NewKeeper(PlayerIdentifier{Name: "l", Side: entity.SideLeft}, PlayerIdentifier{Name: "r", Side: entity.SideRight}, 5, 20)

	for i := 0; i < 4; i++ {
		k.TallyPoint(entity.SideLeft)
	}
	k.TallyPoint(entity.SideRight)
	k.TallyPoint(entity.SideLeft)

	if k.Left.MatchesWon != 1 {
		t.Fatalf("expected left to have won one match, got %+v", k.Left)
	}
	if k.Left.MatchPoints != 0 || k.Right.MatchPoints != 0 {
		t.Errorf("expected both match_points reset to 0, got left=%v right=%v", k.Left.MatchPoints, k.Right.MatchPoints)
	}
	if k.Left.TotalPoints != 5 {
		t.Errorf("left total_points = %v, want 5", k.Left.TotalPoints)
	}
}
