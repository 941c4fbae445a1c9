package clip

import (
	"github.com/polydraw/polydraw/geom"
)

// clipEdgeSutherlandHodgman clips poly against the half-plane on and left of
// window edge a→b. Vertices are walked pairwise with wraparound and each
// pair contributes points per the classic transition table: staying inside
// keeps the endpoint, crossing the edge line swaps in the intersection.
func clipEdgeSutherlandHodgman(poly geom.Polygon, a, b geom.Point) geom.Polygon {
	dir := b.Sub(a)
	var out geom.Polygon
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		cur := poly.Points[i]
		next := poly.Points[geom.CircularIndex(i+1, n)]
		curIn := dir.Cross(cur.Sub(a)) >= 0
		nextIn := dir.Cross(next.Sub(a)) >= 0

		switch {
		case curIn && nextIn:
			out.Points = append(out.Points, next)
		case curIn:
			if p, ok := lineIntersection(a, b, cur, next); ok {
				out.Points = append(out.Points, p)
			}
		case nextIn:
			if p, ok := lineIntersection(a, b, cur, next); ok {
				out.Points = append(out.Points, p)
			}
			out.Points = append(out.Points, next)
		}
	}
	return out
}

// lineIntersection intersects the carrier lines of (a, b) and (p1, p2) with
// the standard determinant form. ok is false when the determinant magnitude
// is under IntersectEpsilon, meaning the lines are parallel or one segment
// is degenerate; callers skip the point rather than treating it as an error.
func lineIntersection(a, b, p1, p2 geom.Point) (geom.Point, bool) {
	den := (a.X-b.X)*(p1.Y-p2.Y) - (a.Y-b.Y)*(p1.X-p2.X)
	if den > -geom.IntersectEpsilon && den < geom.IntersectEpsilon {
		return geom.Point{}, false
	}
	d1 := a.X*b.Y - a.Y*b.X
	d2 := p1.X*p2.Y - p1.Y*p2.X
	return geom.Point{
		X: (d1*(p1.X-p2.X) - (a.X-b.X)*d2) / den,
		Y: (d1*(p1.Y-p2.Y) - (a.Y-b.Y)*d2) / den,
	}, true
}
