package clip

import (
	"github.com/polydraw/polydraw/geom"
)

// clipEdgeCyrusBeck clips poly against window edge a→b using the parametric
// entering/leaving test. Each subject edge p1→p2 is intersected with the
// clip line as p1 + t·(p2−p1), with t solved against the edge's outward
// normal; the transition table matches Sutherland-Hodgman's, only the
// crossing computation differs.
func clipEdgeCyrusBeck(poly geom.Polygon, a, b geom.Point) geom.Polygon {
	d := b.Sub(a)
	// Outward normal of a counterclockwise window edge points to its right;
	// a point is inside when its normal dot is ≤ 0.
	normal := geom.Point{X: d.Y, Y: -d.X}

	var out geom.Polygon
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		cur := poly.Points[i]
		next := poly.Points[geom.CircularIndex(i+1, n)]
		nextIn := normal.Dot(next.Sub(a)) <= 0

		// Zero-length subject edge: no direction to parametrize, degrade to
		// a point-inclusion test.
		if cur == next {
			if nextIn {
				out.Points = append(out.Points, next)
			}
			continue
		}

		seg := next.Sub(cur)
		den := normal.Dot(seg)
		if den > -geom.IntersectEpsilon && den < geom.IntersectEpsilon {
			// Subject edge parallel to the clip line: both endpoints sit on
			// the same side, keep the edge as a whole or drop it as a whole.
			if nextIn {
				out.Points = append(out.Points, next)
			}
			continue
		}

		curIn := normal.Dot(cur.Sub(a)) <= 0
		switch {
		case curIn && nextIn:
			out.Points = append(out.Points, next)
		case curIn:
			t := normal.Dot(a.Sub(cur)) / den
			out.Points = append(out.Points, cur.Add(seg.Mul(t)))
		case nextIn:
			t := normal.Dot(a.Sub(cur)) / den
			out.Points = append(out.Points, cur.Add(seg.Mul(t)), next)
		}
	}
	return out
}
