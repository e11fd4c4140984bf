package fracture

import "math"

// Triangulate runs Bowyer-Watson over the sites and returns a triangulation
// with the empty-circumcircle property: no site lies strictly inside the
// circumcircle of any output triangle. The result covers the convex hull of
// the sites. Fewer than 3 sites, or sites that are all collinear, produce an
// empty triangulation rather than an error; the caller decides what a
// missing triangulation means.
//
// Triangles never escape the package as part of the fracture output; they
// exist to be dualized into cells and neighbor sets.
func Triangulate(sites []Point) []Triangle {
	if len(sites) < 3 {
		return nil
	}

	super := superTriangle(sites)
	triangles := []Triangle{super}

	for _, site := range sites {
		// Every triangle whose circumcircle contains the new site is invalid
		// under the Delaunay condition and has to go.
		var bad []Triangle
		var kept []Triangle
		for _, tri := range triangles {
			if tri.CircumcircleContains(site) {
				bad = append(bad, tri)
			} else {
				kept = append(kept, tri)
			}
		}

		// The cavity left by the bad triangles is bounded by the edges that
		// belong to exactly one of them. Edges shared by two bad triangles
		// are interior to the cavity and vanish with it.
		edgeCount := make(map[Edge]int)
		for _, tri := range bad {
			for _, e := range tri.Edges() {
				edgeCount[e.canonical()]++
			}
		}

		triangles = kept
		for _, tri := range bad {
			for _, e := range tri.Edges() {
				if edgeCount[e.canonical()] != 1 {
					continue
				}
				newTri, err := NewTriangle(e.A, e.B, site)
				if err != nil {
					// The site coincides with a cavity vertex. The sampler's
					// dedup epsilon should prevent this, but a caller feeding
					// its own sites can hit it; skipping just loses adjacency.
					continue
				}
				if math.Abs(newTri.SignedArea()) < Tolerance {
					// Collinear triple. Creating this triangle would give it
					// an unusable circumcircle, so the site simply gets no
					// neighbor across this edge.
					continue
				}
				triangles = append(triangles, newTri)
			}
		}
	}

	// Drop everything still attached to the scaffolding.
	var result []Triangle
	for _, tri := range triangles {
		if tri.HasVertex(super.A) || tri.HasVertex(super.B) || tri.HasVertex(super.C) {
			continue
		}
		result = append(result, tri)
	}
	return result
}

// superTriangle builds a triangle comfortably enclosing all sites, used to
// seed the incremental insertion and discarded at the end.
func superTriangle(sites []Point) Triangle {
	min, max := Polygon{Points: sites}.Bounds()
	span := math.Max(max.X-min.X, max.Y-min.Y)
	if span == 0 {
		span = 1
	}
	margin := span * 16
	return Triangle{
		A: Point{min.X - margin, min.Y - margin},
		B: Point{max.X + margin, min.Y - margin},
		C: Point{(min.X + max.X) / 2, max.Y + margin},
	}
}
