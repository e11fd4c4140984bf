package fracture

import "math"

type Polygon struct {
	Points []Point
}

// SignedArea is the shoelace sum: positive for counterclockwise winding,
// negative for clockwise.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	n := len(poly.Points)
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		sum += p.Cross(q)
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// EnsureCCW normalizes winding. Every clipping operation in this package
// assumes counterclockwise input, so this runs on anything that crosses the
// package boundary.
func (poly Polygon) EnsureCCW() Polygon {
	if poly.IsCCW() {
		return poly
	}
	return poly.Reverse()
}

// IsConvex reports whether every turn winds the same way. Collinear runs
// are allowed.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 4 {
		return true
	}
	var sign float64
	for i, b := range poly.Points {
		a := poly.Points[CircularIndex(i-1, n)]
		c := poly.Points[CircularIndex(i+1, n)]
		cross := b.Sub(a).Cross(c.Sub(b))
		if math.Abs(cross) < CollinearTolerance {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

func (poly Polygon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.Points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// ContainsPoint is the even-odd (crossing count) point-in-polygon rule. The
// winding of the polygon doesn't matter for this test.
func (poly Polygon) ContainsPoint(p Point) bool {
	inside := false
	n := len(poly.Points)
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, n)]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			crossX := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// ClosestBoundaryPoint projects p perpendicularly onto each edge segment and
// returns the nearest of the clamped projections. Used to pull jittered
// sites that escaped the polygon back onto it.
func (poly Polygon) ClosestBoundaryPoint(p Point) Point {
	best := poly.Points[0]
	bestDistSq := math.Inf(1)
	n := len(poly.Points)
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, n)]
		candidate := closestPointOnSegment(p, a, b)
		distSq := p.DistSq(candidate)
		if distSq < bestDistSq {
			bestDistSq = distSq
			best = candidate
		}
	}
	return best
}

func closestPointOnSegment(p, a, b Point) Point {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}

// Centroid of the polygon's vertices. This is not the area centroid, but
// it's inside for the convex-ish cells we feed it, and cheap.
func (poly Polygon) Centroid() Point {
	var c Point
	for _, p := range poly.Points {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(poly.Points))
	return Point{c.X / n, c.Y / n}
}
