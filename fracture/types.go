package fracture

import (
	"math"

	"github.com/pkg/errors"
)

// Note that every point involved with the fracture is a plain value with
// exact coordinate equality, so points can be used as map keys. We only ever
// key maps by *original* points (sites fed into the triangulation), never by
// computed points like circumcenters or clip intersections, where float
// equality would be meaningless.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Cross gives the z component of the 3D cross product, treating both points
// as vectors. Positive when o is counterclockwise of p.
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}

func (p Point) DistSq(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

func (p Point) Dist(o Point) float64 {
	return math.Sqrt(p.DistSq(o))
}

// Edge is an undirected pair of points. Two edges are the same edge if their
// endpoints match in either order; use canonical() before keying a map.
type Edge struct {
	A, B Point
}

// canonical orders the endpoints lexicographically so that the two directed
// versions of an edge collapse to one map key.
func (e Edge) canonical() Edge {
	if e.B.X < e.A.X || (e.B.X == e.A.X && e.B.Y < e.A.Y) {
		return Edge{e.B, e.A}
	}
	return e
}

type Triangle struct {
	A, B, C Point
}

// NewTriangle rejects triangles with coincident vertices. A zero-area but
// vertex-distinct (collinear) triangle is allowed here; the triangulator
// filters those by area instead, since "how zero is zero" depends on context.
func NewTriangle(a, b, c Point) (Triangle, error) {
	if a == b || b == c || a == c {
		return Triangle{}, errors.Wrapf(ErrInvalidGeometry, "triangle with duplicate vertex (%g, %g)", a.X, a.Y)
	}
	return Triangle{a, b, c}, nil
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

// SignedArea is positive for counterclockwise triangles and negative for
// clockwise ones.
func (t Triangle) SignedArea() float64 {
	return (t.B.Sub(t.A)).Cross(t.C.Sub(t.A)) / 2
}

// Circumcenter solves the perpendicular bisector equations for the center of
// the circumscribed circle. ok is false for degenerate (collinear) triangles,
// where no finite circumcenter exists.
func (t Triangle) Circumcenter() (center Point, ok bool) {
	d := 2 * (t.A.X*(t.B.Y-t.C.Y) + t.B.X*(t.C.Y-t.A.Y) + t.C.X*(t.A.Y-t.B.Y))
	if math.Abs(d) < 1e-12 {
		return Point{}, false
	}
	a2 := t.A.X*t.A.X + t.A.Y*t.A.Y
	b2 := t.B.X*t.B.X + t.B.Y*t.B.Y
	c2 := t.C.X*t.C.X + t.C.Y*t.C.Y
	center.X = (a2*(t.B.Y-t.C.Y) + b2*(t.C.Y-t.A.Y) + c2*(t.A.Y-t.B.Y)) / d
	center.Y = (a2*(t.C.X-t.B.X) + b2*(t.A.X-t.C.X) + c2*(t.B.X-t.A.X)) / d
	return center, true
}

// CircumcircleContains reports whether p lies inside or exactly on the
// circumscribed circle, by comparing squared distances with <=. Counting ties
// as contained keeps cocircular configurations deterministic: the insertion
// order of the sites decides which diagonal a cocircular quad gets.
func (t Triangle) CircumcircleContains(p Point) bool {
	center, ok := t.Circumcenter()
	if !ok {
		return false
	}
	return center.DistSq(p) <= center.DistSq(t.A)
}
