package geom

// Polygon is an ordered list of vertices describing a simple (non
// self-intersecting) convex or non-convex shape. Vertices are assumed to
// wind consistently; exterior edges are consecutive vertex pairs
// (including the closing edge back to vertex 0).
type Polygon struct {
	Vertices []Vector
}

// NewPolygon builds a Polygon from the given vertices.
func NewPolygon(vertices ...Vector) Polygon {
	return Polygon{Vertices: vertices}
}

// Translate returns a copy of p shifted by delta.
func (p Polygon) Translate(delta Vector) Polygon {
	shifted := make([]Vector, len(p.Vertices))
	for i, v := range p.Vertices {
		shifted[i] = v.Add(delta)
	}
	return Polygon{Vertices: shifted}
}

// Edge is a line segment between two consecutive polygon vertices.
type Edge struct {
	A, B Vector
}

// Vector returns the directed edge vector B-A.
func (e Edge) Vector() Vector { return e.B.Sub(e.A) }

// Normal returns the outward-ish edge normal (rotate edge vector -90deg),
// not normalized.
func (e Edge) Normal() Vector {
	d := e.Vector()
	return Vector{X: d.Y, Y: -d.X}
}

// ExteriorEdges returns the polygon's edges in winding order, including
// the closing edge from the last vertex back to the first.
func (p Polygon) ExteriorEdges() []Edge {
	n := len(p.Vertices)
	if n < 2 {
		return nil
	}
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = Edge{A: p.Vertices[i], B: p.Vertices[(i+1)%n]}
	}
	return edges
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	Min, Max Vector
}

// Contains reports whether point p lies within the bbox (inclusive).
func (b BBox) Contains(p Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersects reports whether two bboxes overlap, used for the collision
// engine's broad phase.
func (b BBox) Intersects(o BBox) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// BBox returns the polygon's axis-aligned bounding box.
func (p Polygon) BBox() BBox {
	if len(p.Vertices) == 0 {
		return BBox{}
	}
	min, max := p.Vertices[0], p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return BBox{Min: min, Max: max}
}

// Centroid returns the arithmetic mean of the polygon's vertices. For the
// regular shapes this engine deals with (rectangles, the ball's bounding
// square) that coincides with the geometric center, which is all the
// collision engine needs.
func (p Polygon) Centroid() Vector {
	if len(p.Vertices) == 0 {
		return Vector{}
	}
	var sum Vector
	for _, v := range p.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(p.Vertices)))
}

// NearestPointOnSegment returns the closest point to p lying on segment e.
func NearestPointOnSegment(p Vector, e Edge) Vector {
	d := e.Vector()
	lenSq := d.LenSq()
	if lenSq <= epsilonBase {
		return e.A
	}
	t := Clamp(p.Sub(e.A).Dot(d)/lenSq, 0, 1)
	return e.A.Add(d.Scale(t))
}

// NearestPointOnPolygon returns the closest point on p's boundary to the
// given point, along with the edge it lies on.
func NearestPointOnPolygon(point Vector, p Polygon) (nearest Vector, edge Edge) {
	edges := p.ExteriorEdges()
	if len(edges) == 0 {
		return point, Edge{}
	}
	best := NearestPointOnSegment(point, edges[0])
	bestEdge := edges[0]
	bestDist := Distance(point, best)
	for _, e := range edges[1:] {
		candidate := NearestPointOnSegment(point, e)
		d := Distance(point, candidate)
		if d < bestDist {
			best, bestEdge, bestDist = candidate, e, d
		}
	}
	return best, bestEdge
}

// Intersects reports whether two polygons' bounding boxes overlap. The
// collision engine only ever deals with axis-aligned rectangles and a
// square ball bbox, so bbox overlap is an exact test, not merely a broad
// phase.
func Intersects(a, b Polygon) bool {
	return a.BBox().Intersects(b.BBox())
}
