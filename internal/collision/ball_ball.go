package collision

import (
	"github.com/lguibr/pongmaster/internal/entity"
	"github.com/lguibr/pongmaster/internal/geom"
)

// polygonArea is the shoelace formula, used as a stand-in for mass:
// spec.md §4.3.2 treats mass as proportional to polygon area.
func polygonArea(p geom.Polygon) float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

// ResolveBallBall implements the textbook elastic 2-D collision of
// spec.md §4.3.2. A no-op (beyond backing out) unless both balls are
// reboundable.
func ResolveBallBall(a, b *entity.Actor) {
	if !geom.Intersects(a.Polygon(), b.Polygon()) {
		return
	}
	backOutMutual(a, b)

	if !a.ReboundEnabled || !b.ReboundEnabled {
		return
	}

	m1 := polygonArea(a.Shape)
	m2 := polygonArea(b.Shape)
	mass := m1 + m2
	if mass <= 0 {
		return
	}

	dx := a.Centroid().Sub(b.Centroid())
	distSq := dx.LenSq()
	if distSq <= 0 {
		return
	}

	dv := a.Velocity.Sub(b.Velocity)
	coeffA := (2 * m2 / mass) * (dv.Dot(dx) / distSq)
	vA := a.Velocity.Sub(dx.Scale(coeffA))

	negDv := dv.Scale(-1)
	negDx := dx.Scale(-1)
	coeffB := (2 * m1 / mass) * (negDv.Dot(negDx) / distSq)
	vB := b.Velocity.Sub(negDx.Scale(coeffB))

	a.SetVelocity(vA)
	b.SetVelocity(vB)
}
