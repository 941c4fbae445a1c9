package earclip

import (
	"math"
	"sort"

	"github.com/polydraw/polydraw/geom"
)

// CombineToPseudoSimple fuses a polygon with its holes into one ring that
// Simple can triangulate. Each hole is joined to the enclosing ring by a
// bridge: a pair of coincident edges running between a hole vertex and a
// visible point on the ring, so the result traverses the outer boundary,
// crosses to the hole, walks around it, and crosses back. The bridges have
// zero area, and the ring is pseudo-simple: it touches itself along each
// bridge but never crosses itself.
//
// The outer ring is normalized counterclockwise and holes clockwise, which
// keeps the interior on the left along the whole merged traversal. Holes are
// merged rightmost first so that earlier bridges cannot occlude the ray cast
// for later holes. A hole whose ray finds no ring edge (it lies outside the
// outer ring, or past its right edge) is dropped with a warning rather than
// corrupting the ring.
func CombineToPseudoSimple(outer geom.Polygon, holes []geom.Polygon) geom.Polygon {
	ring := outer
	if ring.SignedArea() <= 0 {
		ring = ring.Reverse()
	}
	if len(holes) == 0 {
		return ring
	}

	ordered := make([]geom.Polygon, 0, len(holes))
	for _, h := range holes {
		if len(h.Points) < 3 {
			geom.Logger().Warn("dropping degenerate hole", "points", len(h.Points))
			continue
		}
		if h.IsCCW() {
			h = h.Reverse()
		}
		ordered = append(ordered, h)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return maxX(ordered[i]) > maxX(ordered[j])
	})

	for _, hole := range ordered {
		ring = spliceHole(ring, hole)
	}
	return ring
}

// spliceHole merges one clockwise hole into the counterclockwise ring.
// Returns the ring unchanged if no bridge target can be found.
func spliceHole(ring geom.Polygon, hole geom.Polygon) geom.Polygon {
	m := maxXIndex(hole)
	mp := hole.Points[m]

	// A hole outside the ring would still see the ring's far side on its
	// ray; reject it before it can splice a crossing bridge.
	if !ring.ContainsPointEvenOdd(mp) {
		geom.Logger().Warn("hole lies outside the ring, dropping it",
			"holeVertex", mp, "ringPoints", len(ring.Points))
		return ring
	}

	edge, crossX := rightwardCrossing(ring, mp)
	if edge < 0 {
		geom.Logger().Warn("no visible ring vertex for hole, dropping it",
			"holeVertex", mp, "ringPoints", len(ring.Points))
		return ring
	}

	rotated := make([]geom.Point, 0, len(hole.Points))
	rotated = append(rotated, hole.Points[m:]...)
	rotated = append(rotated, hole.Points[:m]...)

	// Prefer the crossed edge's rightmost endpoint, which keeps the bridge on
	// an existing ring vertex. A reflex feature of the ring can sit between
	// the hole and that endpoint; when the sight line to it is blocked, the
	// bridge lands on the ray crossing itself, spliced into the crossed edge
	// as a new vertex. The crossing is the first boundary point on the ray,
	// so it is always in clear sight.
	iv := edge
	next := geom.CircularIndex(edge+1, len(ring.Points))
	if ring.Points[next].X > ring.Points[iv].X {
		iv = next
	}
	if visible(ring, hole, mp, ring.Points[iv]) {
		merged := make([]geom.Point, 0, len(ring.Points)+len(rotated)+2)
		merged = append(merged, ring.Points[:iv+1]...)
		merged = append(merged, rotated...)
		merged = append(merged, rotated[0], ring.Points[iv])
		merged = append(merged, ring.Points[iv+1:]...)
		return geom.Polygon{Points: merged}
	}

	crossing := geom.Point{X: crossX, Y: mp.Y}
	merged := make([]geom.Point, 0, len(ring.Points)+len(rotated)+4)
	merged = append(merged, ring.Points[:edge+1]...)
	merged = append(merged, crossing)
	merged = append(merged, rotated...)
	merged = append(merged, rotated[0], crossing)
	merged = append(merged, ring.Points[edge+1:]...)
	return geom.Polygon{Points: merged}
}

// visible reports whether the open segment between a hole vertex and a
// bridge target crosses no edge of the ring or the hole. Edges that only
// touch the segment at a shared endpoint do not block it.
func visible(ring, hole geom.Polygon, from, to geom.Point) bool {
	for i := range ring.Points {
		e := ring.EdgeAt(i)
		if properCross(from, to, e.Start, e.End) {
			return false
		}
	}
	for i := range hole.Points {
		e := hole.EdgeAt(i)
		if properCross(from, to, e.Start, e.End) {
			return false
		}
	}
	return true
}

// properCross reports whether segments ab and cd intersect at a point
// strictly interior to both. Touching endpoints and collinear overlap do
// not count.
func properCross(a, b, c, d geom.Point) bool {
	return sideOf(c, d, a)*sideOf(c, d, b) < 0 && sideOf(a, b, c)*sideOf(a, b, d) < 0
}

// sideOf places p relative to the directed line a -> b: 1 left, -1 right,
// 0 within Epsilon of the line.
func sideOf(a, b, p geom.Point) int {
	cross := b.Sub(a).Cross(p.Sub(a))
	switch {
	case cross > geom.Epsilon:
		return 1
	case cross < -geom.Epsilon:
		return -1
	}
	return 0
}

// rightwardCrossing casts a ray in +x from p and returns the index of the
// nearest ring edge it exits through, plus the crossing's x coordinate.
// Candidate edges must straddle the ray's height, cross it ahead of p, and
// keep p on their interior side; the last test rejects entry crossings, so
// from an interior point the nearest qualifying crossing is the first exit.
// Returns -1 if no edge qualifies.
func rightwardCrossing(ring geom.Polygon, p geom.Point) (int, float64) {
	best := -1
	bestX := math.Inf(1)
	for i := range ring.Points {
		e := ring.EdgeAt(i)
		a, b := e.Start, e.End
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		if b.Sub(a).Cross(p.Sub(a)) <= geom.Epsilon {
			continue
		}
		x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if x < p.X {
			continue // behind the ray origin
		}
		if x < bestX {
			best = i
			bestX = x
		}
	}
	return best, bestX
}

func maxX(poly geom.Polygon) float64 {
	return poly.Points[maxXIndex(poly)].X
}

func maxXIndex(poly geom.Polygon) int {
	best := 0
	for i, pt := range poly.Points {
		if pt.X > poly.Points[best].X {
			best = i
		}
	}
	return best
}
