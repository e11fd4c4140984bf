package fracture

import (
	"fmt"
	"math"
	"sort"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/shatter/dbg"
)

// Cell is one Voronoi cell: a generator site and the cell's boundary
// vertices, ordered counterclockwise around the site.
//
// A raw cell built straight from the triangulation dual is incomplete for
// sites on the convex hull: their true cell extends to infinity, and the
// finite circumcenters alone don't close it. That's why the pipeline never
// uses raw cells directly; it bounds every cell against a large rectangle
// before clipping to the real boundary.
type Cell struct {
	Site  Point
	Verts []Point
}

// BuildCells derives the Voronoi diagram as the dual of the triangulation:
// each cell's vertices are the circumcenters of the triangles incident to
// its site. Sites that appear in no triangle get an empty cell.
func BuildCells(sites []Point, triangles []Triangle) []Cell {
	// Keyed by original site points only. Circumcenters are computed values
	// and never become map keys.
	centers := make(map[Point][]Point, len(sites))
	for _, tri := range triangles {
		center, ok := tri.Circumcenter()
		if !ok {
			// The triangulator filters degenerate triangles, but a caller
			// can feed its own; skip instead of poisoning the cell.
			continue
		}
		for _, v := range [3]Point{tri.A, tri.B, tri.C} {
			centers[v] = append(centers[v], center)
		}
	}

	cells := make([]Cell, 0, len(sites))
	for _, site := range sites {
		verts := centers[site]
		sortAroundCCW(site, verts)
		cells = append(cells, Cell{Site: site, Verts: verts})
	}
	return cells
}

// sortAroundCCW orders points by angle about the center, in place. Ascending
// atan2 gives counterclockwise order.
func sortAroundCCW(center Point, points []Point) {
	sort.Slice(points, func(i, j int) bool {
		ai := math.Atan2(points[i].Y-center.Y, points[i].X-center.X)
		aj := math.Atan2(points[j].Y-center.Y, points[j].X-center.X)
		return ai < aj
	})
}

// Neighbors maps each site to its Delaunay neighbors: two sites are
// neighbors iff some triangle has both as vertices. Neighbor lists preserve
// triangle order, so the same triangulation always yields the same lists.
// The half-plane clipping downstream is order-sensitive at the last float
// bit, and we want fractures reproducible bit for bit.
func Neighbors(sites []Point, triangles []Triangle) map[Point][]Point {
	neighbors := make(map[Point][]Point, len(sites))
	add := func(a, b Point) {
		for _, existing := range neighbors[a] {
			if existing == b {
				return
			}
		}
		neighbors[a] = append(neighbors[a], b)
	}
	for _, tri := range triangles {
		add(tri.A, tri.B)
		add(tri.B, tri.A)
		add(tri.B, tri.C)
		add(tri.C, tri.B)
		add(tri.C, tri.A)
		add(tri.A, tri.C)
	}
	return neighbors
}

func (c *Cell) String() string {
	return fmt.Sprintf("Cell %s @ (%g, %g), %d verts", c.DbgName(), c.Site.X, c.Site.Y, len(c.Verts))
}

func (c *Cell) DbgName() string {
	// Cells too degenerate to ever become fragments are colored red.
	name := dbg.Name(c)
	if len(c.Verts) < 3 {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
