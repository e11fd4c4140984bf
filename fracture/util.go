package fracture

import "math"

const Tolerance = 1e-6

// Cross products below this are considered collinear during cleanup. This is
// separate from Tolerance because a cross product scales with the square of
// the edge lengths, so a distance-sized epsilon would eat real vertices on
// long edges.
const CollinearTolerance = 1e-9

// Fragments whose absolute signed area falls below this are discarded rather
// than handed to the caller, where they would choke any downstream
// triangulation-for-rendering step.
const MinFragmentArea = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, clipping emits absurdly thin slivers wherever a
// bisector grazes a vertex.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
