// A 2D polygon fracture package for Go.
//
// This package breaks a simple polygon, which may be non-convex, into an
// irregular mosaic of convex-ish fragments shaped like a Voronoi diagram
// clipped to the polygon's boundary. The fragments together cover the
// original area; degenerate input yields fewer fragments (even zero) rather
// than an error.
package shatter

import "github.com/osuushi/shatter/fracture"

type Point = fracture.Point
type Polygon = fracture.Polygon
type Fragment = fracture.Fragment
type Options = fracture.Options

func DefaultOptions() Options {
	return fracture.DefaultOptions()
}

// Shatter fractures the boundary polygon into (site, fragment) pairs.
//
// The boundary must be simple and have at least 3 vertices; its winding
// doesn't matter. Identical input and options always produce identical
// fragments. See the fracture package for the per-site entry points.
func Shatter(boundary []Point, opts Options) (result []Fragment, err error) {
	defer func() {
		recoveredErr := fracture.HandleFracturePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return fracture.Fracture(Polygon{Points: boundary}, opts)
}

// ShatterDepth recursively re-fractures each fragment, depth levels deep.
func ShatterDepth(boundary []Point, opts Options, depth int) (result []Fragment, err error) {
	defer func() {
		recoveredErr := fracture.HandleFracturePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return fracture.FractureDepth(Polygon{Points: boundary}, opts, depth)
}
