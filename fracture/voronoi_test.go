package fracture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Four corner sites plus one in the middle. The middle site's cell is a
// closed diamond of circumcenters; the corner cells are open (hull sites).
func fanSites() []Point {
	return []Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}, {5, 5}}
}

func TestBuildCells(t *testing.T) {
	sites := fanSites()
	triangles := Triangulate(sites)
	require.Len(t, triangles, 4)

	cells := BuildCells(sites, triangles)
	require.Len(t, cells, len(sites))

	t.Run("interior site gets the dual diamond", func(t *testing.T) {
		var center Cell
		for _, cell := range cells {
			if cell.Site == (Point{5, 5}) {
				center = cell
			}
		}
		require.Len(t, center.Verts, 4)
		assert.ElementsMatch(t, []Point{{5, 2}, {8, 5}, {5, 8}, {2, 5}}, center.Verts)

		// Ordered counterclockwise around the site
		assert.True(t, Polygon{center.Verts}.IsCCW())
	})

	t.Run("cells are keyed by the original sites", func(t *testing.T) {
		for i, cell := range cells {
			assert.Equal(t, sites[i], cell.Site)
		}
	})
}

func TestBuildCellsVertexOrdering(t *testing.T) {
	// Angles about the site must be nondecreasing for every cell with enough
	// vertices to form a polygon.
	sites := SampleSites(square10(), 20, 1, 21)
	triangles := Triangulate(sites)
	for _, cell := range BuildCells(sites, triangles) {
		for i := 0; i+1 < len(cell.Verts); i++ {
			a := math.Atan2(cell.Verts[i].Y-cell.Site.Y, cell.Verts[i].X-cell.Site.X)
			b := math.Atan2(cell.Verts[i+1].Y-cell.Site.Y, cell.Verts[i+1].X-cell.Site.X)
			assert.LessOrEqual(t, a, b)
		}
	}
}

func TestBuildCellsSkipsDegenerateTriangles(t *testing.T) {
	// Hand the builder a collinear triangle; it must skip it, not blow up.
	sites := []Point{{0, 0}, {5, 5}, {9, 9}}
	flat := Triangle{Point{0, 0}, Point{5, 5}, Point{9, 9}}
	assert.NotPanics(t, func() {
		cells := BuildCells(sites, []Triangle{flat})
		for _, cell := range cells {
			assert.Empty(t, cell.Verts)
		}
	})
}

func TestNeighbors(t *testing.T) {
	sites := fanSites()
	triangles := Triangulate(sites)
	neighbors := Neighbors(sites, triangles)

	t.Run("interior site borders everyone", func(t *testing.T) {
		assert.ElementsMatch(t, []Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}}, neighbors[Point{5, 5}])
	})

	t.Run("opposite corners are not adjacent", func(t *testing.T) {
		assert.NotContains(t, neighbors[Point{2, 2}], Point{8, 8})
		assert.NotContains(t, neighbors[Point{8, 2}], Point{2, 8})
	})

	t.Run("symmetric", func(t *testing.T) {
		for site, siteNeighbors := range neighbors {
			for _, other := range siteNeighbors {
				assert.Contains(t, neighbors[other], site)
			}
		}
	})
}

func TestCellString(t *testing.T) {
	cell := &Cell{Site: Point{1, 2}, Verts: []Point{{0, 0}, {1, 0}, {0, 1}}}
	s := cell.String()
	assert.Contains(t, s, "(1, 2)")
	assert.Contains(t, s, "3 verts")
}
