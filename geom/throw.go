package geom

import "github.com/pkg/errors"

// Threading errors up through the recursive merge and traversal code would
// add a lot of plumbing for conditions that indicate a broken internal
// invariant rather than bad input. Instead those sites panic with a
// GeometryError, and the public API boundary recovers it into an ordinary
// returned error. Bad input never takes this path; it produces empty or
// partial results.

// GeometryError marks a panic raised by Fatalf so the recovery handler can
// tell our panics from everyone else's.
type GeometryError error

// Fatalf panics with a GeometryError.
func Fatalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf(format, args...)))
}

// HandlePanicRecover converts a recovered GeometryError into an error,
// re-panicking on anything it does not own. Use it in a deferred recover at
// the outermost API layer:
//
//	defer func() { err = geom.HandlePanicRecover(recover()) }()
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geomErr, ok := r.(GeometryError); ok {
			return geomErr
		}
		panic(r)
	}
	return nil
}
