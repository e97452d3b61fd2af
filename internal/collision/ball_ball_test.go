package collision

import (
	"testing"

	"github.com/lguibr/pongmaster/internal/entity"
	"github.com/lguibr/pongmaster/internal/geom"
)

func TestResolveBallBallConservesMomentumAndEnergy(t *testing.T) {
	a := entity.NewBall("ball-a", entity.FlavorPrimary, geom.Vector{X: 395, Y: 300}, 10, entity.SpeedBound{Min: 1, Max: 20})
	b := entity.NewBall("ball-b", entity.FlavorPrimary, geom.Vector{X: 405, Y: 300}, 10, entity.SpeedBound{Min: 1, Max: 20})
	a.SetVelocity(geom.Vector{X: 5, Y: 0})
	b.SetVelocity(geom.Vector{X: -5, Y: 0})

	mass := polygonArea(a.Shape)
	momentumBefore := a.Velocity.Scale(mass).Add(b.Velocity.Scale(mass))
	energyBefore := mass*a.Velocity.LenSq() + mass*b.Velocity.LenSq()

	ResolveBallBall(a, b)

	momentumAfter := a.Velocity.Scale(mass).Add(b.Velocity.Scale(mass))
	energyAfter := mass*a.Velocity.LenSq() + mass*b.Velocity.LenSq()

	if diff := momentumAfter.Sub(momentumBefore).Len(); diff > 1e-6*(momentumBefore.Len()+1) {
		t.Errorf("momentum not conserved: before=%v after=%v", momentumBefore, momentumAfter)
	}
	if diff := energyAfter - energyBefore; diff > 1e-6*energyBefore || diff < -1e-6*energyBefore {
		t.Errorf("energy not conserved: before=%v after=%v", energyBefore, energyAfter)
	}
}

func TestResolveBallBallNoOpWhenSeparated(t *testing.T) {
	a := entity.NewBall("ball-a", entity.FlavorPrimary, geom.Vector{X: 0, Y: 0}, 10, entity.SpeedBound{Min: 1, Max: 20})
	b := entity.NewBall("ball-b", entity.FlavorPrimary, geom.Vector{X: 500, Y: 500}, 10, entity.SpeedBound{Min: 1, Max: 20})
	a.SetVelocity(geom.Vector{X: 1, Y: 1})
	b.SetVelocity(geom.Vector{X: -1, Y: -1})

	beforeA, beforeB := a.Velocity, b.Velocity
	ResolveBallBall(a, b)
	if a.Velocity != beforeA || b.Velocity != beforeB {
		t.Error("expected no velocity change for separated balls")
	}
}
