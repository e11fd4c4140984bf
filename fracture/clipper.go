package fracture

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/pkg/errors"
)

// Coordinates are snapped to a grid of this resolution (in boundary units)
// before boolean operations. Running the exact clipper on grid-aligned
// coordinates sidesteps the near-coincident-vertex degeneracies that make
// naive float clipping of concave shapes fall apart.
const clipScale = 1000

// ClipHalfPlane keeps the portion of subject on the side of the line through
// mid where (p - mid)·normal <= 0. Crossing points are linearly
// interpolated. The subject is treated as a closed loop; the result can be
// empty.
func ClipHalfPlane(subject []Point, mid, normal Point) []Point {
	var out []Point
	n := len(subject)
	for i, cur := range subject {
		next := subject[CircularIndex(i+1, n)]
		curSide := cur.Sub(mid).Dot(normal)
		nextSide := next.Sub(mid).Dot(normal)
		if curSide <= 0 {
			out = append(out, cur)
		}
		if (curSide < 0 && nextSide > 0) || (curSide > 0 && nextSide < 0) {
			t := curSide / (curSide - nextSide)
			out = append(out, cur.Add(next.Sub(cur).Scale(t)))
		}
	}
	return out
}

// ClipConvex is Sutherland-Hodgman: clip the subject against each edge of
// the clip polygon in turn. Exact only when clip is convex; a concave clip
// polygon needs Intersect instead.
func ClipConvex(subject []Point, clip Polygon) []Point {
	clip = clip.EnsureCCW()
	out := subject
	n := len(clip.Points)
	for i, a := range clip.Points {
		b := clip.Points[CircularIndex(i+1, n)]
		// Outward normal of a CCW edge. Keeping the <= 0 side keeps the
		// polygon interior.
		normal := Point{b.Y - a.Y, a.X - b.X}
		out = ClipHalfPlane(out, a, normal)
		if len(out) == 0 {
			break
		}
	}
	return out
}

// Intersect computes the intersection region of two simple polygons, which
// may be concave, via the exact boolean engine on grid-snapped coordinates.
// The result may be several disjoint polygons. An empty result is reported
// as ErrClipperFailure: our callers only intersect shapes known to overlap
// (the site generating a cell lies in both operands), so nothing coming back
// means the clipper choked, and the caller should fall back to convex
// clipping.
func Intersect(subject, clip Polygon) ([]Polygon, error) {
	if len(subject.Points) < 3 || len(clip.Points) < 3 {
		fatalf("Intersect needs polygons, got %d and %d vertices", len(subject.Points), len(clip.Points))
	}
	result, err := construct(polyclip.INTERSECTION, toClip(subject), toClip(clip))
	if err != nil {
		return nil, err
	}
	polys := fromClip(result)
	if len(polys) == 0 {
		return nil, errors.Wrap(ErrClipperFailure, "intersection of overlapping polygons came back empty")
	}
	return polys, nil
}

// RepairSelfIntersections splits a self-crossing loop ("bowtie") into simple
// polygons by unioning the path with itself: the boolean engine subdivides
// the path at its crossings and re-emits the covered region as simple
// contours. This is a heuristic with no area-preservation proof; the
// pipeline tests watch the area-sum property so a repair that loses area
// shows up as a failure instead of being quietly accepted. A path that is
// already simple is returned unchanged.
func RepairSelfIntersections(points []Point) []Polygon {
	if IsSimple(points) {
		return []Polygon{{Points: points}}
	}
	snapped := toClip(Polygon{Points: points})
	result, err := construct(polyclip.UNION, snapped, snapped)
	if err != nil {
		// Keep the bowtie rather than dropping the area on the floor. The
		// degeneracy filter downstream still gets a say.
		return []Polygon{{Points: points}}
	}
	polys := fromClip(result)
	if len(polys) == 0 {
		return []Polygon{{Points: points}}
	}
	return polys
}

// IsSimple reports whether the closed path has no self-intersections, by
// checking every non-adjacent segment pair. Quadratic, but fragment polygons
// are small.
func IsSimple(points []Point) bool {
	n := len(points)
	for i := 0; i < n; i++ {
		a1 := points[i]
		a2 := points[CircularIndex(i+1, n)]
		for j := i + 1; j < n; j++ {
			// Adjacent edges share an endpoint and always "intersect" there.
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b1 := points[j]
			b2 := points[CircularIndex(j+1, n)]
			if segmentsCross(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

// segmentsCross tests for proper crossing (the segments intersect at a point
// interior to both).
func segmentsCross(a1, a2, b1, b2 Point) bool {
	d1 := a2.Sub(a1).Cross(b1.Sub(a1))
	d2 := a2.Sub(a1).Cross(b2.Sub(a1))
	d3 := b2.Sub(b1).Cross(a1.Sub(b1))
	d4 := b2.Sub(b1).Cross(a2.Sub(b1))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// Cleanup removes consecutive near-duplicate vertices and nearly collinear
// vertex triples. Runs to a fixed point, so cleaning an already-clean
// polygon is a no-op.
func Cleanup(points []Point) []Point {
	for {
		deduped := dropNearDuplicates(points)
		decollineared := dropCollinear(deduped)
		if len(decollineared) == len(points) {
			return decollineared
		}
		points = decollineared
	}
}

func dropNearDuplicates(points []Point) []Point {
	n := len(points)
	if n == 0 {
		return points
	}
	var out []Point
	for i, p := range points {
		next := points[CircularIndex(i+1, n)]
		if p.Dist(next) < Tolerance {
			// Keep the later of the pair; for a trailing vertex that
			// duplicates the head this drops the tail, keeping the head.
			continue
		}
		out = append(out, p)
	}
	return out
}

func dropCollinear(points []Point) []Point {
	n := len(points)
	if n < 3 {
		return points
	}
	var out []Point
	for i, b := range points {
		a := points[CircularIndex(i-1, n)]
		c := points[CircularIndex(i+1, n)]
		if math.Abs(b.Sub(a).Cross(c.Sub(b))) < CollinearTolerance {
			continue
		}
		out = append(out, b)
	}
	return out
}

// FilterDegenerate drops polygons that collapsed below 3 vertices or below
// the minimum area during clipping. Dropping is always preferred to handing
// a degenerate fragment downstream.
func FilterDegenerate(polys []Polygon) []Polygon {
	var out []Polygon
	for _, poly := range polys {
		if len(poly.Points) < 3 {
			continue
		}
		if poly.Area() < MinFragmentArea {
			continue
		}
		out = append(out, poly)
	}
	return out
}

// construct wraps the boolean engine with a panic guard. polyclip can panic
// on pathological input; the fracture must not.
func construct(op polyclip.Op, subject, clip polyclip.Polygon) (result polyclip.Polygon, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.Wrapf(ErrClipperFailure, "boolean clipper panicked: %v", r)
		}
	}()
	return subject.Construct(op, clip), nil
}

func toClip(poly Polygon) polyclip.Polygon {
	contour := make(polyclip.Contour, len(poly.Points))
	for i, p := range poly.Points {
		contour[i] = polyclip.Point{
			X: math.Round(p.X * clipScale),
			Y: math.Round(p.Y * clipScale),
		}
	}
	return polyclip.Polygon{contour}
}

func fromClip(cp polyclip.Polygon) []Polygon {
	var polys []Polygon
	for _, contour := range cp {
		points := make([]Point, len(contour))
		for i, p := range contour {
			points[i] = Point{p.X / clipScale, p.Y / clipScale}
		}
		polys = append(polys, Polygon{Points: points})
	}
	return polys
}
