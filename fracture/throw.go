package fracture

import "github.com/pkg/errors"

// The error taxonomy. InsufficientSites and DegenerateCell from the design
// are deliberately absent: placing fewer sites than requested is a reported
// outcome (a short or empty fragment list), and degenerate cells are dropped
// silently, so neither ever surfaces as an error value.
var (
	// ErrInvalidGeometry covers malformed constructor input: a boundary with
	// fewer than 3 vertices, or a triangle with duplicate vertices.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrClipperFailure means the exact boolean clipper panicked or returned
	// nothing where an overlap had to exist. The pipeline reacts by falling
	// back to plain convex clipping rather than aborting the fracture.
	ErrClipperFailure = errors.New("clipper failure")
)

// Threading errors up through the per-site clipping helpers would add a lot
// of plumbing for conditions that are all handled in one place. Instead, deep
// invariant violations panic, and the public API recovers to convert to an
// error.

type FractureError error

// Panic with a FractureError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleFracturePanicRecover(r interface{}) error {
	if r != nil {
		if fractureError, ok := r.(FractureError); ok {
			return fractureError
		}
		panic(r)
	}
	return nil
}
