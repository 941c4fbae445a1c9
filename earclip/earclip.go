// Package earclip triangulates simple polygons by ear clipping, including
// polygons with holes (fused into a single pseudo-simple ring over zero-area
// bridges) and whole nesting trees of rings.
package earclip

import (
	"github.com/polydraw/polydraw/geom"
)

// maxClipPasses caps the number of ear removals. A simple polygon with n
// vertices needs exactly n-3 removals, so a well-formed input never gets
// near the cap; hitting it means the input self-intersects in a way the
// no-ear check didn't catch, and we bail with whatever was clipped so far.
const maxClipPasses = 1000

// Simple triangulates a simple polygon into len(points)-2 triangles whose
// vertices are drawn from the input ring. The ring may wind either way;
// clockwise input is reversed internally so clipping always walks a
// counterclockwise ring.
//
// Fewer than three vertices yields nil. Degenerate input (self-intersecting,
// or repeated points producing zero-area ears) does not error: clipping
// stops as soon as no ear can be found and returns the triangles emitted up
// to that point, so callers always get a usable partial mesh. Zero-area
// triangles from duplicate input points are not filtered out.
func Simple(poly geom.Polygon) []geom.Triangle {
	if len(poly.Points) < 3 {
		return nil
	}

	ring := poly
	if ring.SignedArea() <= 0 {
		ring = ring.Reverse()
	}
	pts := ring.Points

	// Rings merged from a shape and its holes visit the bridge vertices
	// twice. The containment check below must treat both visits as the same
	// vertex or each copy would block the other's ears, so candidates are
	// compared by their deduplicated first occurrence rather than by list
	// position.
	first := ring.FirstIndexes()

	// Indices into pts, shrinking as ears get clipped. Neighbor lookups go
	// through this list, not the original ring, so clipped vertices stop
	// participating immediately.
	indices := make([]int, len(pts))
	for i := range indices {
		indices[i] = i
	}

	triangles := make([]geom.Triangle, 0, len(pts)-2)
	passes := 0
	for len(indices) > 3 {
		if passes >= maxClipPasses {
			geom.Logger().Warn("ear clipping hit iteration cap, returning partial result",
				"cap", maxClipPasses, "clipped", len(triangles), "remaining", len(indices))
			return triangles
		}
		passes++

		clipped := false
		for k := range indices {
			a := pts[indices[geom.CircularIndex(k-1, len(indices))]]
			b := pts[indices[k]]
			c := pts[indices[geom.CircularIndex(k+1, len(indices))]]

			if !isConvex(a, b, c) {
				continue
			}
			if blocked(geom.Triangle{A: a, B: b, C: c}, pts, indices, first) {
				continue
			}

			// First fit: take the first ear in scan order and restart. Not
			// best fit; the exact decomposition depends on this choice, the
			// triangle count and total area do not.
			triangles = append(triangles, geom.Triangle{A: a, B: b, C: c})
			indices = append(indices[:k], indices[k+1:]...)
			clipped = true
			break
		}

		if !clipped {
			geom.Logger().Warn("no ear found, input is not a simple polygon, returning partial result",
				"clipped", len(triangles), "remaining", len(indices))
			return triangles
		}
	}

	return append(triangles, geom.Triangle{
		A: pts[indices[0]],
		B: pts[indices[1]],
		C: pts[indices[2]],
	})
}

// isConvex reports whether b is a convex vertex of the counterclockwise ring
// a -> b -> c. The cross product must clear Epsilon; near-collinear vertices
// would otherwise read as sliver ears and produce degenerate triangles from
// healthy input.
func isConvex(a, b, c geom.Point) bool {
	return b.Sub(a).Cross(c.Sub(b)) > geom.Epsilon
}

// blocked reports whether any remaining ring vertex outside the ear's own
// triple lies inside or on the candidate triangle. On-boundary vertices
// block: clipping such an ear would strand the blocking vertex on a
// degenerate sliver.
func blocked(tri geom.Triangle, pts []geom.Point, indices []int, first map[geom.Point]int) bool {
	fa, fb, fc := first[tri.A], first[tri.B], first[tri.C]
	for _, idx := range indices {
		f := first[pts[idx]]
		if f == fa || f == fb || f == fc {
			continue
		}
		if tri.ContainsPoint(pts[idx]) {
			return true
		}
	}
	return false
}
