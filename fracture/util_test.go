package fracture

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1+Tolerance/2))
	assert.False(t, Equal(1, 1+Tolerance*2))
}

func TestTriangleSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		cwI := cwI // import into inner scope
		t.Run(fmt.Sprintf("With %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			tri := Triangle{
				A: Point{0, -1},
				B: Point{1, 0},
				C: Point{0, 1},
			}
			// Clockwise triangles will have negative area, so sign is -1 for CW = 1
			sign := 1 - 2*float64(cwI)
			assertArea := func(expected float64) {
				assert.InDelta(t, sign*expected, tri.SignedArea(), Tolerance)
			}
			if cwI == 1 {
				tri.A, tri.B = tri.B, tri.A
			}
			assertArea(1)
			// Stretch the triangle out
			tri.A.Y *= 2
			tri.B.Y *= 2
			tri.C.Y *= 2
			assertArea(2)

			// Rotate the triangle repeatedly by a weird angle
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				tri.A = rotatePoint(tri.A, angle)
				tri.B = rotatePoint(tri.B, angle)
				tri.C = rotatePoint(tri.C, angle)
				assertArea(2)
			}

			// Translate the triangle and do the whole rotation thing again
			offset := Point{5, 3}
			tri.A = tri.A.Add(offset)
			tri.B = tri.B.Add(offset)
			tri.C = tri.C.Add(offset)

			for i := 0; i < 14; i++ {
				tri.A = rotatePoint(tri.A, angle)
				tri.B = rotatePoint(tri.B, angle)
				tri.C = rotatePoint(tri.C, angle)
				assertArea(2)
			}
		})
	}
}

// Helpers

func rotatePoint(point Point, angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: point.X*cos - point.Y*sin,
		Y: point.X*sin + point.Y*cos,
	}
}
