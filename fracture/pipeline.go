package fracture

import (
	"sync"

	"github.com/pkg/errors"
)

type Options struct {
	// Sites is the target number of fragments. The sampler may place fewer
	// on cramped boundaries; fewer than 3 makes the whole fracture a no-op.
	Sites int

	// Jitter perturbs each site by up to this distance, in boundary units.
	// Zero keeps the raw uniform samples.
	Jitter float64

	// Seed drives all randomness. Equal seed and parameters give byte
	// identical fragments.
	Seed int64

	// Workers fans the per-site clipping across goroutines. Values below 2
	// keep the pipeline fully sequential. The output is identical either
	// way; only wall time changes.
	Workers int
}

func DefaultOptions() Options {
	return Options{Sites: 16}
}

// Fragment is one output piece: the site that generated it and the simple,
// counterclockwise polygon that was carved out for it. A single site can
// produce several fragments when self-intersection repair splits its cell.
type Fragment struct {
	Site    Point
	Polygon Polygon
}

// Fracture splits the boundary polygon into Voronoi-shaped fragments.
//
// The only error condition is a malformed boundary. Degenerate-but-valid
// situations degrade instead: fewer than 3 placeable sites yields an empty
// fragment list, cells that collapse during clipping are dropped, and a
// failing boolean clip falls back to a coarser convex clip. The union of the
// returned fragments approximates the boundary's area; callers should treat
// the list as a set keyed by site, not a meaningful sequence.
func Fracture(boundary Polygon, opts Options) ([]Fragment, error) {
	if len(boundary.Points) < 3 {
		return nil, errors.Wrapf(ErrInvalidGeometry, "boundary polygon has %d vertices, need at least 3", len(boundary.Points))
	}
	boundary = boundary.EnsureCCW()
	sites := SampleSites(boundary, opts.Sites, opts.Jitter, opts.Seed)
	return FractureWithSites(boundary, sites, opts.Workers)
}

// FractureWithSites runs the pipeline over caller-chosen sites. Sites must
// lie inside the boundary and be pairwise well separated; SampleSites
// guarantees both, hosts providing their own sites are on the hook
// themselves. Fewer than 3 sites returns an empty list and no error.
func FractureWithSites(boundary Polygon, sites []Point, workers int) ([]Fragment, error) {
	if len(boundary.Points) < 3 {
		return nil, errors.Wrapf(ErrInvalidGeometry, "boundary polygon has %d vertices, need at least 3", len(boundary.Points))
	}
	if len(sites) < 3 {
		return nil, nil
	}
	boundary = boundary.EnsureCCW()

	triangles := Triangulate(sites)
	neighbors := Neighbors(sites, triangles)
	rect := boundingRect(sites, boundary)
	convex := boundary.IsConvex()

	// Per-site cell building and clipping only reads the shared site list,
	// neighbor map and boundary, and each site writes its own slot, so the
	// fan-out needs no locking and the result order is fixed by site index
	// regardless of scheduling.
	perSite := make([][]Fragment, len(sites))
	process := func(i int) {
		site := sites[i]
		cell := CellForSite(site, neighbors[site], sites, rect)
		perSite[i] = clipCellToBoundary(site, cell, boundary, convex, rect)
	}

	if workers > 1 {
		var wg sync.WaitGroup
		jobs := make(chan int)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					process(i)
				}
			}()
		}
		for i := range sites {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	} else {
		for i := range sites {
			process(i)
		}
	}

	var fragments []Fragment
	for _, frags := range perSite {
		fragments = append(fragments, frags...)
	}
	return fragments, nil
}

// CellForSite builds the site's bounded Voronoi cell by clipping the given
// rectangle against the perpendicular bisector to each neighbor: everything
// closer to a neighbor than to the site is cut away. This is the per-site
// entry point; hosts that want to spread fracture work across frames can
// call it (plus the boundary clip) one site at a time.
//
// A site can end up with no recorded neighbors when degenerate input makes
// the triangulation collapse. In that case we fall back to bisecting
// against every other site. Slower, but the cell always comes out bounded.
func CellForSite(site Point, neighbors []Point, allSites []Point, rect []Point) []Point {
	if len(neighbors) == 0 {
		for _, other := range allSites {
			if other != site {
				neighbors = append(neighbors, other)
			}
		}
	}
	cell := rect
	for _, neighbor := range neighbors {
		mid := site.Add(neighbor).Scale(0.5)
		normal := neighbor.Sub(site)
		cell = ClipHalfPlane(cell, mid, normal)
		if len(cell) == 0 {
			break
		}
	}
	return cell
}

// clipCellToBoundary intersects a raw cell with the boundary and tidies the
// result into zero or more emitted fragments. A convex boundary gets plain
// Sutherland-Hodgman, which is exact there; a concave one needs the boolean
// engine.
func clipCellToBoundary(site Point, cell []Point, boundary Polygon, convex bool, rect []Point) []Fragment {
	if len(cell) < 3 {
		return nil
	}

	var pieces []Polygon
	if convex {
		pieces = []Polygon{{Points: ClipConvex(cell, boundary)}}
	} else {
		var err error
		pieces, err = Intersect(Polygon{Points: cell}.EnsureCCW(), boundary)
		if err != nil {
			// Boolean clip failed. Fall back to the convex clip against the
			// bounding rectangle only: less accurate near a concave
			// boundary, but it never crashes the fracture.
			fallback := ClipConvex(cell, Polygon{Points: rect})
			pieces = []Polygon{{Points: fallback}}
		}
	}

	var repaired []Polygon
	for _, piece := range pieces {
		points := Cleanup(piece.Points)
		if len(points) < 3 {
			continue
		}
		repaired = append(repaired, RepairSelfIntersections(points)...)
	}

	// The repair path runs the boolean engine, which can reintroduce
	// collinear vertices, so clean again before filtering.
	var cleaned []Polygon
	for _, poly := range repaired {
		cleaned = append(cleaned, Polygon{Points: Cleanup(poly.Points)})
	}

	var fragments []Fragment
	for _, poly := range FilterDegenerate(cleaned) {
		fragments = append(fragments, Fragment{Site: site, Polygon: poly.EnsureCCW()})
	}
	return fragments
}

// boundingRect returns a CCW rectangle with a margin of twice the combined
// bounding box diagonal, large enough that every bisector-bounded cell stays
// finite and no boundary area pokes out past any cell.
func boundingRect(sites []Point, boundary Polygon) []Point {
	all := make([]Point, 0, len(sites)+len(boundary.Points))
	all = append(all, sites...)
	all = append(all, boundary.Points...)
	min, max := Polygon{Points: all}.Bounds()
	margin := 2 * min.Dist(max)
	if margin == 0 {
		margin = 1
	}
	return []Point{
		{min.X - margin, min.Y - margin},
		{max.X + margin, min.Y - margin},
		{max.X + margin, max.Y + margin},
		{min.X - margin, max.Y + margin},
	}
}

// FractureDepth fractures the boundary, then re-fractures each resulting
// fragment, depth levels deep. This replaces runtime re-fracture
// orchestration with a plain recursive call: depth <= 1 is a single
// fracture. Each recursion level derives its seed from the parent's so
// sibling fragments shatter differently but the whole tree stays
// deterministic.
func FractureDepth(boundary Polygon, opts Options, depth int) ([]Fragment, error) {
	fragments, err := Fracture(boundary, opts)
	if err != nil || depth <= 1 {
		return fragments, err
	}
	var out []Fragment
	for i, frag := range fragments {
		subOpts := opts
		subOpts.Seed = opts.Seed*31 + int64(i) + 1
		sub, err := FractureDepth(frag.Polygon, subOpts, depth-1)
		if err != nil {
			return nil, err
		}
		if len(sub) == 0 {
			// Too small to shatter further; keep the fragment as is.
			out = append(out, frag)
			continue
		}
		out = append(out, sub...)
	}
	return out, nil
}
