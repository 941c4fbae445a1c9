// Package clip cuts subject polygons down to a clip window. Convex windows
// are handled directly by Sutherland-Hodgman or Cyrus-Beck; a concave window
// is first decomposed into triangles and the subject is clipped against each
// triangle in turn.
package clip

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/polydraw/polydraw/earclip"
	"github.com/polydraw/polydraw/geom"
)

// Algorithm selects which clipper refines the subject against each window
// edge. Both produce the same clipped area on convex windows; they differ in
// how they compute the boundary crossings, and may emit collinear points in
// different numbers.
type Algorithm int

const (
	SutherlandHodgman Algorithm = iota
	CyrusBeck
)

func (a Algorithm) String() string {
	switch a {
	case SutherlandHodgman:
		return "sutherland-hodgman"
	case CyrusBeck:
		return "cyrus-beck"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm maps the command-line names onto the enum.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "sutherland-hodgman":
		return SutherlandHodgman, nil
	case "cyrus-beck":
		return CyrusBeck, nil
	}
	return 0, errors.Errorf("unknown clip algorithm %q", s)
}

// Window clips subject against an arbitrary window polygon and returns the
// surviving pieces. A convex window yields at most one piece. A concave
// window is decomposed into triangles and the subject is clipped against
// each triangle independently; the pieces are returned as-is, NOT unioned,
// so where the subject covers an edge shared by two window triangles the
// coverage is duplicated. Fewer than 3 vertices on either input yields nil.
func Window(subject, window geom.Polygon, algo Algorithm) []geom.Polygon {
	if len(subject.Points) < 3 || len(window.Points) < 3 {
		return nil
	}

	if !IsConcave(window) {
		out := clipConvex(subject, window, algo)
		if len(out.Points) < 3 {
			return nil
		}
		return []geom.Polygon{out}
	}

	tris := earclip.Simple(window)
	geom.Logger().Debug("clipping against concave window piecewise",
		"algorithm", algo, "windowTriangles", len(tris))
	var pieces []geom.Polygon
	for _, tri := range tris {
		win := geom.Polygon{Points: []geom.Point{tri.A, tri.B, tri.C}}
		out := clipConvex(subject, win, algo)
		if len(out.Points) >= 3 {
			pieces = append(pieces, out)
		}
	}
	return pieces
}

// ClipSutherlandHodgman clips subject against a convex window. The result
// may be empty (fully clipped away) and may contain fewer than 3 points if
// the subject degenerates to a sliver on the window boundary.
func ClipSutherlandHodgman(subject, window geom.Polygon) geom.Polygon {
	if len(subject.Points) < 3 || len(window.Points) < 3 {
		return geom.Polygon{}
	}
	return clipConvex(subject, window, SutherlandHodgman)
}

// ClipCyrusBeck clips subject against a convex window with the parametric
// Cyrus-Beck test. Same contract as ClipSutherlandHodgman.
func ClipCyrusBeck(subject, window geom.Polygon) geom.Polygon {
	if len(subject.Points) < 3 || len(window.Points) < 3 {
		return geom.Polygon{}
	}
	return clipConvex(subject, window, CyrusBeck)
}

// clipConvex runs the shared edge-by-edge refinement: the window's edges are
// visited in ring order and each one cuts down the polygon left by the
// previous edge, starting from the whole subject. An empty intermediate
// result short-circuits. The window is normalized counterclockwise so that
// "left of the edge" always means inside.
func clipConvex(subject, window geom.Polygon, algo Algorithm) geom.Polygon {
	win := window
	if win.SignedArea() <= 0 {
		win = win.Reverse()
	}

	out := subject
	for i := range win.Points {
		e := win.EdgeAt(i)
		if algo == CyrusBeck {
			out = clipEdgeCyrusBeck(out, e.Start, e.End)
		} else {
			out = clipEdgeSutherlandHodgman(out, e.Start, e.End)
		}
		if len(out.Points) == 0 {
			return geom.Polygon{}
		}
	}
	return out
}

// IsConcave reports whether the ring has both left and right turns. The
// cross product of each consecutive edge pair is checked for a sign change;
// collinear pairs (within Epsilon) carry no turn and are ignored. Winding
// does not matter, only that the turn direction flips somewhere.
func IsConcave(poly geom.Polygon) bool {
	n := len(poly.Points)
	if n < 4 {
		return false
	}
	sign := 0
	for i := 0; i < n; i++ {
		a := poly.Points[i]
		b := poly.Points[geom.CircularIndex(i+1, n)]
		c := poly.Points[geom.CircularIndex(i+2, n)]
		cross := b.Sub(a).Cross(c.Sub(b))
		switch {
		case cross > geom.Epsilon:
			if sign < 0 {
				return true
			}
			sign = 1
		case cross < -geom.Epsilon:
			if sign > 0 {
				return true
			}
			sign = -1
		}
	}
	return false
}
