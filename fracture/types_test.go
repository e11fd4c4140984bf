package fracture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTriangle(t *testing.T) {
	t.Run("distinct vertices", func(t *testing.T) {
		_, err := NewTriangle(Point{0, 0}, Point{1, 0}, Point{0, 1})
		assert.NoError(t, err)
	})

	t.Run("duplicate vertices", func(t *testing.T) {
		for _, points := range [][3]Point{
			{{0, 0}, {0, 0}, {0, 1}},
			{{0, 0}, {1, 0}, {1, 0}},
			{{2, 3}, {1, 0}, {2, 3}},
		} {
			_, err := NewTriangle(points[0], points[1], points[2])
			assert.ErrorIs(t, err, ErrInvalidGeometry)
		}
	})
}

func TestEdgeCanonical(t *testing.T) {
	a := Point{1, 2}
	b := Point{3, 4}
	assert.Equal(t, Edge{a, b}.canonical(), Edge{b, a}.canonical())

	// Vertical edges fall back to the y comparison
	c := Point{1, 5}
	assert.Equal(t, Edge{a, c}.canonical(), Edge{c, a}.canonical())
}

func TestCircumcenter(t *testing.T) {
	t.Run("right triangle", func(t *testing.T) {
		tri := Triangle{Point{0, 0}, Point{4, 0}, Point{0, 4}}
		center, ok := tri.Circumcenter()
		require.True(t, ok)
		assert.InDelta(t, 2, center.X, Tolerance)
		assert.InDelta(t, 2, center.Y, Tolerance)

		// Equidistant from all three vertices
		assert.InDelta(t, center.DistSq(tri.A), center.DistSq(tri.B), Tolerance)
		assert.InDelta(t, center.DistSq(tri.A), center.DistSq(tri.C), Tolerance)
	})

	t.Run("collinear triangle has none", func(t *testing.T) {
		tri := Triangle{Point{0, 0}, Point{1, 1}, Point{2, 2}}
		_, ok := tri.Circumcenter()
		assert.False(t, ok)
	})
}

func TestCircumcircleContains(t *testing.T) {
	// Circumcircle is centered at (2, 2) with squared radius 8
	tri := Triangle{Point{0, 0}, Point{4, 0}, Point{0, 4}}

	t.Run("interior point", func(t *testing.T) {
		assert.True(t, tri.CircumcircleContains(Point{2, 2}))
	})

	t.Run("point exactly on the circle counts as contained", func(t *testing.T) {
		assert.True(t, tri.CircumcircleContains(Point{4, 4}))
	})

	t.Run("exterior point", func(t *testing.T) {
		assert.False(t, tri.CircumcircleContains(Point{5, 5}))
		assert.False(t, tri.CircumcircleContains(Point{-3, -3}))
	})

	t.Run("degenerate triangle contains nothing", func(t *testing.T) {
		flat := Triangle{Point{0, 0}, Point{1, 1}, Point{2, 2}}
		assert.False(t, flat.CircumcircleContains(Point{1, 0}))
	})
}
